package sgr

// CSI is the Control Sequence Introducer that starts every SGR sequence. The terminating
// byte is always 'm'.
const CSI = "\x1b["

// Parameter codes used to introduce extended colours. An extended colour is written as
// either prefix;5;n for a 256-colour palette index or prefix;2;r;g;b for a truecolour value.
const (
	ExtendedFg uint8 = 38
	ExtendedBg uint8 = 48

	Indexed    uint8 = 5
	Truecolour uint8 = 2
)

var styleCodes = map[string]uint8{
	"Reset":         0,
	"Bold":          1,
	"Dim":           2,
	"Italic":        3,
	"Underline":     4,
	"Blinking":      5,
	"Inverse":       7,
	"Hidden":        8,
	"Strikethrough": 9,
}

// Bold and Dim share a removal code.
var styleResetCodes = map[string]uint8{
	"Bold":          22,
	"Dim":           22,
	"Italic":        23,
	"Underline":     24,
	"Blinking":      25,
	"Inverse":       27,
	"Hidden":        28,
	"Strikethrough": 29,
}

var colourCodes = map[string]uint8{
	"BlackFg":   30,
	"RedFg":     31,
	"GreenFg":   32,
	"YellowFg":  33,
	"BlueFg":    34,
	"MagentaFg": 35,
	"CyanFg":    36,
	"WhiteFg":   37,
	"DefaultFg": 39,
	"BlackBg":   40,
	"RedBg":     41,
	"GreenBg":   42,
	"YellowBg":  43,
	"BlueBg":    44,
	"MagentaBg": 45,
	"CyanBg":    46,
	"WhiteBg":   47,
	"DefaultBg": 49,
}

// StyleCode returns the code that applies the named style, eg. "Bold" -> 1
func StyleCode(name string) (uint8, bool) {
	code, ok := styleCodes[name]
	return code, ok
}

// StyleResetCode returns the code that removes the named style, eg. "Bold" -> 22
func StyleResetCode(name string) (uint8, bool) {
	code, ok := styleResetCodes[name]
	return code, ok
}

// ColourCode returns the code for a named 16-colour keyword, eg. "RedFg" -> 31
func ColourCode(name string) (uint8, bool) {
	code, ok := colourCodes[name]
	return code, ok
}

// Styles returns the names of all styles that have an apply code
func Styles() []string {
	out := make([]string, 0, len(styleCodes))
	for name := range styleCodes {
		out = append(out, name)
	}

	return out
}

// Colours returns all supported colour keywords
func Colours() []string {
	out := make([]string, 0, len(colourCodes))
	for name := range colourCodes {
		out = append(out, name)
	}

	return out
}
