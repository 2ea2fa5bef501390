// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsx

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
)

// WriterSink returns a Sink writing the workbook to w, regardless of the file name.
func WriterSink(w io.Writer) Sink {
	return SinkFunc(func(_ context.Context, _, _ string, data []byte) error {
		_, err := w.Write(data)
		return err
	})
}

// DirSink returns a Sink saving the workbook in dir, as the base name of the file name.
//
// The data is written into a temporary file in dir first, which is renamed
// when complete, so an existing file is either replaced or left intact.
func DirSink(dir string) Sink {
	return SinkFunc(func(_ context.Context, fileName, _ string, data []byte) error {
		base := filepath.Base(fileName)
		if base == "." || base == ".." || base == string(filepath.Separator) {
			return fmt.Errorf("%q: invalid file name", fileName)
		}
		fh, err := os.CreateTemp(dir, "."+base+".*")
		if err != nil {
			return err
		}
		defer os.Remove(fh.Name())
		if _, err = fh.Write(data); err != nil {
			fh.Close()
			return err
		}
		if err = fh.Chmod(0644); err != nil {
			fh.Close()
			return err
		}
		if err = fh.Close(); err != nil {
			return err
		}
		return os.Rename(fh.Name(), filepath.Join(dir, base))
	})
}

// HTTPSink returns a Sink sending the workbook as an attachment named as the file.
func HTTPSink(w http.ResponseWriter) Sink {
	return SinkFunc(func(_ context.Context, fileName, contentType string, data []byte) error {
		h := w.Header()
		h.Set("Content-Type", contentType)
		h.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": fileName}))
		h.Set("Content-Length", strconv.Itoa(len(data)))
		w.WriteHeader(http.StatusOK)
		_, err := w.Write(data)
		return err
	})
}
