package ip

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"iter"
)

const alignChunkSize = 4 * 1024

// Segment is a byte range of an ip file that starts at a line start and
// ends after a newline or at the end of the file.
type Segment struct {
	r      io.ReaderAt
	Offset int64
	Size   int64
}

// Segments breaks size bytes of r into at most count segments of roughly
// equal size, for parallel reading. Every line belongs to exactly one
// segment.
func Segments(r io.ReaderAt, size int64, count int) ([]Segment, error) {
	if count < 1 {
		count = 1
	}

	segments := make([]Segment, 0, count)
	start := int64(0)
	for i := 1; i <= count && start < size; i++ {
		end := size
		if i < count {
			var err error
			end, err = lineStart(r, size, max(size*int64(i)/int64(count), start))
			if err != nil {
				return nil, err
			}
		}
		if end > start {
			segments = append(segments, Segment{r: r, Offset: start, Size: end - start})
		}
		start = end
	}
	return segments, nil
}

// lineStart returns the first line start at or after pos.
func lineStart(r io.ReaderAt, size, pos int64) (int64, error) {
	if pos == 0 {
		return 0, nil
	}

	buf := make([]byte, alignChunkSize)
	for off := pos - 1; off < size; off += int64(len(buf)) {
		n, err := r.ReadAt(buf, off)
		if i := bytes.IndexByte(buf[:n], '\n'); i >= 0 {
			return off + int64(i) + 1, nil
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, err
		}
		if n == 0 {
			break
		}
	}
	return size, nil
}

// Lines yields every non-empty line of the segment without its line
// terminator. The yielded slice is only valid until the next iteration.
// pageSize is the read buffer size and bounds the line length.
func (s Segment) Lines(pageSize int) iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		sc := bufio.NewScanner(io.NewSectionReader(s.r, s.Offset, s.Size))
		sc.Buffer(make([]byte, 0, pageSize), max(pageSize, MaxIpAddrSize))
		for sc.Scan() {
			line := sc.Bytes()
			if len(line) == 0 {
				continue
			}
			if !yield(line, nil) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			yield(nil, err)
		}
	}
}
