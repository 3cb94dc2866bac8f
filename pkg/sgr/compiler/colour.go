package compiler

import (
	"fmt"
	"strconv"
	"strings"

	"awesome-dragon.science/go/sgrfmt/pkg/sgr"
)

// colour decodes a # directive payload into the SGR codes it stands for. Named keywords
// resolve through the colour table; everything else must be an 'f' or 'b' prefix followed by
// a numeric form: (n) or (r,g,b) in decimal, [xx] or [rrggbb] in hex.
func (c *Compiler) colour(payload string) ([]uint8, error) {
	if code, ok := sgr.ColourCode(c.resolve(payload)); ok {
		return []uint8{code}, nil
	}

	if len(payload) < 4 { // shortest numeric form is f(n)
		return nil, fmt.Errorf("%w: %q", ErrInvalidColour, payload)
	}

	var prefix uint8

	switch payload[0] {
	case 'f':
		prefix = sgr.ExtendedFg
	case 'b':
		prefix = sgr.ExtendedBg
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidColour, payload)
	}

	body := payload[1:]
	inner := body[1 : len(body)-1]

	switch {
	case body[0] == '(' && body[len(body)-1] == ')':
		return decimalColour(prefix, inner, payload)
	case body[0] == '[' && body[len(body)-1] == ']':
		return hexColour(prefix, inner, payload)
	}

	return nil, fmt.Errorf("%w: %q", ErrInvalidColour, payload)
}

// decimalColour decodes (n) as a palette index and (r,g,b) as truecolour
func decimalColour(prefix uint8, inner, payload string) ([]uint8, error) {
	parts := strings.Split(inner, ",")

	values := make([]uint8, 0, len(parts))

	for _, part := range parts {
		v, err := strconv.ParseUint(part, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidColour, payload)
		}

		values = append(values, uint8(v))
	}

	switch len(values) {
	case 1:
		return []uint8{prefix, sgr.Indexed, values[0]}, nil
	case 3:
		return []uint8{prefix, sgr.Truecolour, values[0], values[1], values[2]}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrInvalidColour, payload)
}

// hexColour decodes [xx] as a palette index and [rrggbb] as truecolour
func hexColour(prefix uint8, inner, payload string) ([]uint8, error) {
	switch len(inner) {
	case 2:
		v, err := strconv.ParseUint(inner, 16, 8)
		if err != nil {
			break
		}

		return []uint8{prefix, sgr.Indexed, uint8(v)}, nil

	case 6:
		out := []uint8{prefix, sgr.Truecolour}

		for i := 0; i < 6; i += 2 {
			v, err := strconv.ParseUint(inner[i:i+2], 16, 8)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrInvalidColour, payload)
			}

			out = append(out, uint8(v))
		}

		return out, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrInvalidColour, payload)
}
