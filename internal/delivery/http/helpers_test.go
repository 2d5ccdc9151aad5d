package http

import (
	"bytes"
	"io"
)

func bytesOfLen(n int) io.Reader {
	return bytes.NewReader(bytes.Repeat([]byte("a"), n))
}
