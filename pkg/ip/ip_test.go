package ip

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	p := Parser()
	for _, tc := range []struct {
		in   string
		want IP
	}{
		{"0.0.0.0", 0},
		{"1.2.3.4", 0x01020304},
		{"255.255.255.255", 0xffffffff},
		{"10.0.0.1\r", 0x0a000001},
		{"192.168.001.010", 0xc0a8010a},
	} {
		got, err := p.Parse([]byte(tc.in))
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseMalformed(t *testing.T) {
	p := Parser()
	for _, in := range []string{
		"",
		"1.2.3",
		"1.2.3.4.5",
		"1..3.4",
		"256.1.1.1",
		"1.2.3.-4",
		"a.b.c.d",
		"1.2.3.4 ",
		"1234.1.1.1",
	} {
		_, err := p.Parse([]byte(in))
		require.ErrorIs(t, err, ErrMalformed, "%q", in)
	}

	// the parser recovers after an error
	got, err := p.Parse([]byte("8.8.4.4"))
	require.NoError(t, err)
	require.Equal(t, IP(0x08080404), got)
}

func TestString(t *testing.T) {
	require.Equal(t, "0.0.0.0", IP(0).String())
	require.Equal(t, "192.168.1.10", IP(0xc0a8010a).String())
	require.Equal(t, "255.255.255.255", IP(0xffffffff).String())
}

func TestWriterRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, 16)
	ips := []IP{0, 0x7f000001, 0xffffffff}
	for _, ip := range ips {
		require.NoError(t, w.WriteIP(ip))
	}
	require.NoError(t, w.Flush())
	require.Equal(t, "0.0.0.0\n127.0.0.1\n255.255.255.255\n", buf.String())

	segs, err := Segments(bytes.NewReader(buf.Bytes()), int64(buf.Len()), 1)
	require.NoError(t, err)
	p := Parser()
	var got []IP
	for line, err := range segs[0].Lines(64) {
		require.NoError(t, err)
		ip, err := p.Parse(line)
		require.NoError(t, err)
		got = append(got, ip)
	}
	require.Equal(t, ips, got)
}

func TestGenerate(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, Generate(&a, 100, 42))
	require.NoError(t, Generate(&b, 100, 42))
	require.Equal(t, a.String(), b.String(), "same seed, same output")

	lines := strings.Split(strings.TrimSuffix(a.String(), "\n"), "\n")
	require.Len(t, lines, 100)
	p := Parser()
	for _, line := range lines {
		_, err := p.Parse([]byte(line))
		require.NoError(t, err, line)
	}
}
