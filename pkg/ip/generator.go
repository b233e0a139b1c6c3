package ip

import (
	"io"

	"github.com/brianvoe/gofakeit/v6"
)

const generatorPageSize = 16 * 4096

// Generate writes count random ip addresses to dst, one per line.
// The same seed produces the same output.
func Generate(dst io.Writer, count int, seed int64) error {
	faker := gofakeit.New(seed)
	w := NewWriter(dst, generatorPageSize)
	for range count {
		if err := w.WriteLine(faker.IPv4Address()); err != nil {
			return err
		}
	}
	return w.Flush()
}
