package catio

import (
	"bufio"
	"io"
	"strconv"
)

type Encoder struct {
	W       io.Writer
	Numeric bool
}

// Encode writes values as bytes modulo 256 or, in numeric mode, one decimal per line.
func (e Encoder) Encode(values []int64) error {
	w := bufio.NewWriter(e.W)
	var buf []byte
	for _, v := range values {
		if e.Numeric {
			buf = strconv.AppendInt(buf[:0], v, 10)
			buf = append(buf, '\n')
			if _, err := w.Write(buf); err != nil {
				return err
			}
			continue
		}
		if err := w.WriteByte(Byte(v)); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Byte returns the non-negative remainder of v modulo 256.
func Byte(v int64) byte {
	return byte(((v % 256) + 256) % 256)
}
