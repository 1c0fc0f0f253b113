package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/pkg/errors"
)

// archive is the subset of zip.File and sevenzip.File used to open the
// first member of an archive.
type archive interface {
	Open() (io.ReadCloser, error)
}

// LoadFile loads the given file and performs decompression if
// necessary. Archives (.zip, .7z) yield their first file, .gz files
// are inflated, and anything else is returned as is.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "load file")
	}
	data, err = Decompress(filepath.Ext(filename), data)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", filename)
	}
	return data, nil
}

// Decompress decodes data according to the file extension ext.
func Decompress(ext string, data []byte) ([]byte, error) {
	var decoder io.Reader
	switch strings.ToLower(ext) {
	case ".gz":
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, errors.Wrap(err, "gzip")
		}
		defer r.Close()
		decoder = r
	case ".zip":
		r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, errors.Wrap(err, "zip")
		}
		if len(r.File) == 0 {
			return nil, errors.New("zip: empty archive")
		}
		return readFirst(r.File[0])
	case ".7z":
		r, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, errors.Wrap(err, "7z")
		}
		if len(r.File) == 0 {
			return nil, errors.New("7z: empty archive")
		}
		return readFirst(r.File[0])
	default:
		return data, nil
	}

	out, err := io.ReadAll(decoder)
	if err != nil {
		return nil, errors.Wrap(err, "decompress")
	}
	return out, nil
}

func readFirst(f archive) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, errors.Wrap(err, "open archive member")
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, errors.Wrap(err, "read archive member")
	}
	return data, nil
}
