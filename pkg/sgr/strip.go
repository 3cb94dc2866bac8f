package sgr

import "strings"

// Strip removes all SGR escape sequences from the passed string. Anything that looks like the
// start of a sequence but is malformed is left untouched; only complete "\x1b[<codes>m" runs
// are removed.
func Strip(in string) string {
	out := strings.Builder{}
	out.Grow(len(in))

	for i := 0; i < len(in); i++ {
		if in[i] != 0x1b || i+1 >= len(in) || in[i+1] != '[' {
			out.WriteByte(in[i])
			continue
		}

		end := i + 2
		for end < len(in) && (in[end] == ';' || ('0' <= in[end] && in[end] <= '9')) {
			end++
		}

		if end < len(in) && in[end] == 'm' {
			i = end
			continue
		}

		out.WriteByte(in[i])
	}

	return out.String()
}
