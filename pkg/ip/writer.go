package ip

import (
	"bufio"
	"io"
)

type Writer struct {
	buf  *bufio.Writer
	line []byte
}

func NewWriter(dst io.Writer, pageSize int) *Writer {
	return &Writer{
		buf:  bufio.NewWriterSize(dst, pageSize),
		line: make([]byte, 0, MaxIpAddrSize),
	}
}

// WriteIP writes ip as one line.
func (w *Writer) WriteIP(ip IP) error {
	w.line = append(ip.AppendText(w.line[:0]), '\n')
	_, err := w.buf.Write(w.line)
	return err
}

// WriteLine writes s followed by a newline.
func (w *Writer) WriteLine(s string) error {
	if _, err := w.buf.WriteString(s); err != nil {
		return err
	}
	return w.buf.WriteByte('\n')
}

func (w *Writer) Flush() error {
	return w.buf.Flush()
}
