package util

import "unsafe"

// BytesToString returns a string sharing memory with bytes.
// bytes must not be modified while the string is in use.
func BytesToString(bytes []byte) string {
	return unsafe.String(unsafe.SliceData(bytes), len(bytes))
}
