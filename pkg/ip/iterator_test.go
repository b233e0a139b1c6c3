package ip

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, segs []Segment, pageSize int) []string {
	t.Helper()
	var lines []string
	for _, seg := range segs {
		for line, err := range seg.Lines(pageSize) {
			require.NoError(t, err)
			lines = append(lines, string(line))
		}
	}
	return lines
}

func TestSegmentsCoverEveryLineOnce(t *testing.T) {
	var want []string
	var sb strings.Builder
	for i := range 997 {
		line := fmt.Sprintf("10.%d.%d.%d", i/65536%256, i/256%256, i%256)
		want = append(want, line)
		sb.WriteString(line)
		if i%7 == 0 {
			sb.WriteString("\r")
		}
		sb.WriteString("\n")
	}
	data := sb.String()

	for _, count := range []int{0, 1, 2, 3, 10, 64, 5000} {
		segs, err := Segments(strings.NewReader(data), int64(len(data)), count)
		require.NoError(t, err)
		require.LessOrEqual(t, len(segs), max(count, 1))

		offset := int64(0)
		for _, seg := range segs {
			require.Equal(t, offset, seg.Offset, "segments must be contiguous")
			require.Positive(t, seg.Size)
			if seg.Offset > 0 {
				require.Equal(t, byte('\n'), data[seg.Offset-1], "segment must start a line")
			}
			offset += seg.Size
		}
		require.Equal(t, int64(len(data)), offset)
		require.Equal(t, want, collect(t, segs, 32), "count %d", count)
	}
}

func TestSegmentsWithoutTrailingNewline(t *testing.T) {
	data := "1.1.1.1\n\n2.2.2.2\n3.3.3.3"
	segs, err := Segments(strings.NewReader(data), int64(len(data)), 4)
	require.NoError(t, err)
	require.Equal(t, []string{"1.1.1.1", "2.2.2.2", "3.3.3.3"}, collect(t, segs, 32))
}

func TestSegmentsEmpty(t *testing.T) {
	segs, err := Segments(strings.NewReader(""), 0, 4)
	require.NoError(t, err)
	require.Empty(t, segs)
}

func TestLinesTooLong(t *testing.T) {
	data := strings.Repeat("9", 100) + "\n"
	segs, err := Segments(strings.NewReader(data), int64(len(data)), 1)
	require.NoError(t, err)

	var gotErr error
	for _, err := range segs[0].Lines(MaxIpAddrSize) {
		gotErr = err
	}
	require.Error(t, gotErr)
}

type failingReader struct{}

func (failingReader) ReadAt(p []byte, off int64) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestSegmentsReadError(t *testing.T) {
	_, err := Segments(failingReader{}, 1000, 4)
	require.Error(t, err)
}
