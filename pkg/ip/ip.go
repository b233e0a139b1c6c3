// Package ip reads and writes IPv4 addresses in dotted-quad text form.
package ip

import (
	"errors"
	"strconv"
)

// MaxIpAddrSize is the longest well-formed line, terminator included.
const MaxIpAddrSize = len("255.255.255.255\r\n")

var ErrMalformed = errors.New("malformed ip address")

// IP is an IPv4 address with the first octet in the high byte.
type IP uint32

func (ip IP) String() string {
	return string(ip.AppendText(make([]byte, 0, MaxIpAddrSize)))
}

// AppendText appends the dotted-quad form of ip to b.
func (ip IP) AppendText(b []byte) []byte {
	b = strconv.AppendUint(b, uint64(ip>>24), 10)
	b = append(b, '.')
	b = strconv.AppendUint(b, uint64(ip>>16&0xff), 10)
	b = append(b, '.')
	b = strconv.AppendUint(b, uint64(ip>>8&0xff), 10)
	b = append(b, '.')
	return strconv.AppendUint(b, uint64(ip&0xff), 10)
}
