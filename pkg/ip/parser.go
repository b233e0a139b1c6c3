package ip

import (
	"fmt"
	"strconv"

	"veb_counter/pkg/util"
)

type parser struct {
	num []byte
}

// Parser returns a reusable parser. It is not safe for concurrent use.
func Parser() *parser {
	return &parser{
		num: make([]byte, 0, 3),
	}
}

// Parse converts a dotted-quad line into an IP. A trailing '\r' is ignored.
func (p *parser) Parse(src []byte) (IP, error) {
	if n := len(src); n > 0 && src[n-1] == '\r' {
		src = src[:n-1]
	}

	var ip IP
	octets := 0
	p.num = p.num[:0]
	for i := 0; i <= len(src); i++ {
		if i < len(src) && src[i] != '.' {
			p.num = append(p.num, src[i])
			continue
		}

		part, err := strconv.ParseUint(util.BytesToString(p.num), 10, 8)
		if err != nil || octets == 4 {
			return 0, fmt.Errorf("%w: %q", ErrMalformed, src)
		}
		ip = ip<<8 | IP(part)
		octets++
		p.num = p.num[:0]
	}

	if octets != 4 {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, src)
	}
	return ip, nil
}
