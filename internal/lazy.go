/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"io"
	"os"
)

// LazyWriteCloser delays opening its destination until the first write, so a
// run that fails before producing output leaves no empty file behind.
type LazyWriteCloser struct {
	open   func() (io.WriteCloser, error)
	writer io.WriteCloser
}

func NewLazyWriteCloser(open func() (io.WriteCloser, error)) *LazyWriteCloser {
	return &LazyWriteCloser{open: open}
}

// NewLazyFile opens path for truncating writes on first use.
func NewLazyFile(path string) *LazyWriteCloser {
	return NewLazyWriteCloser(func() (io.WriteCloser, error) {
		return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	})
}

func (l *LazyWriteCloser) Write(p []byte) (int, error) {
	if l.writer == nil {
		var err error
		l.writer, err = l.open()
		if err != nil {
			return 0, err
		}
	}

	return l.writer.Write(p)
}

func (l *LazyWriteCloser) Close() error {
	if l.writer != nil {
		return l.writer.Close()
	}
	return nil
}
