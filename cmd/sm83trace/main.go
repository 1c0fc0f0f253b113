package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/thelolagemann/sm83/internal/cpu"
	"github.com/thelolagemann/sm83/internal/ram"
	"github.com/thelolagemann/sm83/internal/trace"
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
	"github.com/thelolagemann/sm83/pkg/utils"
)

func main() {
	imageFile := flag.String("image", "", "The program image to load (raw, .gz, .zip or .7z)")
	origin := flag.String("origin", "0x0100", "The address to load the image at")
	asModel := flag.String("model", "dmg", "The model whose power-on registers to use")
	fromReset := flag.Bool("reset", false, "Start from cleared registers at 0x0000 instead of the power-on state")
	steps := flag.Int("steps", 1000, "The maximum number of instructions to execute")
	verbose := flag.Bool("v", false, "Log every executed instruction")
	flag.Parse()

	logger := log.New()
	if err := run(logger, *imageFile, *origin, *asModel, *fromReset, *steps, *verbose); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(logger log.Logger, imageFile, origin, asModel string, fromReset bool, steps int, verbose bool) error {
	if imageFile == "" {
		return errors.New("no image given, use -image")
	}
	address, err := strconv.ParseUint(origin, 0, 16)
	if err != nil {
		return errors.Wrapf(err, "invalid origin %q", origin)
	}
	model := types.StringToModel(asModel)
	if model == types.Unset {
		return errors.Errorf("unknown model %q", asModel)
	}

	image, err := utils.LoadFile(imageFile)
	if err != nil {
		return err
	}
	mem := ram.NewRAM()
	if err := mem.Load(uint16(address), image); err != nil {
		return err
	}

	opts := []cpu.Opt{cpu.WithModel(model), cpu.WithLogger(logger)}
	if fromReset {
		opts = append(opts, cpu.FromReset())
	}
	c := cpu.NewCPU(mem, opts...)

	traceLogger := log.NewNullLogger()
	if verbose {
		traceLogger = logger
	}
	n, err := trace.Run(c, mem, steps, traceLogger)

	fmt.Printf("executed %d instructions\n", n)
	fmt.Println(c)
	fmt.Printf("IME:%v mode:%d digest:%016X\n", c.IME, c.Mode(), trace.Digest(c, mem))
	return err
}
