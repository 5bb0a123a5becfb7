package sketch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/gg"
)

// ErrInvalidHexColor is returned when a string is not a hex color.
var ErrInvalidHexColor = errors.New("sketch: invalid hex color")

// StringValidator checks strings against the hex color notation used by
// palettes and styles: "#RGB", "#RGBA", "#RRGGBB" or "#RRGGBBAA", digits in
// either case.
type StringValidator struct {
	// OptionalHash accepts strings without the leading '#'.
	OptionalHash bool

	// NoAlpha rejects the 4 and 8 digit forms.
	NoAlpha bool

	// NoShorthand rejects the 3 and 4 digit forms.
	NoShorthand bool
}

// HexValidator is the strict validator: '#' required, every form accepted.
var HexValidator = StringValidator{}

// looseValidator is HexValidator without the '#' requirement.
var looseValidator = StringValidator{OptionalHash: true}

// IsHexColor reports whether s is a hex color under v's rules.
func (v StringValidator) IsHexColor(s string) bool {
	digits, ok := v.digits(s)
	if !ok {
		return false
	}
	switch len(digits) {
	case 3:
		return !v.NoShorthand
	case 4:
		return !v.NoShorthand && !v.NoAlpha
	case 6:
		return true
	case 8:
		return !v.NoAlpha
	default:
		return false
	}
}

// digits strips the '#' and checks that the rest is made of hex digits.
func (v StringValidator) digits(s string) (string, bool) {
	switch {
	case strings.HasPrefix(s, "#"):
		s = s[1:]
	case !v.OptionalHash:
		return "", false
	}
	if s == "" {
		return "", false
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return "", false
		}
	}
	return s, true
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// Normalize returns s in canonical form: '#', lower case, shorthand expanded
// to "#rrggbb" or "#rrggbbaa".
func (v StringValidator) Normalize(s string) (string, error) {
	if !v.IsHexColor(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidHexColor, s)
	}
	digits, _ := v.digits(s)
	digits = strings.ToLower(digits)
	if len(digits) == 3 || len(digits) == 4 {
		var b strings.Builder
		b.Grow(len(digits) * 2)
		for i := 0; i < len(digits); i++ {
			b.WriteByte(digits[i])
			b.WriteByte(digits[i])
		}
		digits = b.String()
	}
	return "#" + digits, nil
}

// Parse validates s and converts it to a color.
func (v StringValidator) Parse(s string) (gg.RGBA, error) {
	n, err := v.Normalize(s)
	if err != nil {
		return gg.RGBA{}, err
	}
	return gg.Hex(n), nil
}

// Filter splits values into the ones v accepts and the ones it rejects,
// preserving order.
func (v StringValidator) Filter(values []string) (valid, invalid []string) {
	for _, s := range values {
		if v.IsHexColor(s) {
			valid = append(valid, s)
		} else {
			invalid = append(invalid, s)
		}
	}
	return valid, invalid
}

// IsHexColor reports whether s is a '#'-prefixed hex color.
func IsHexColor(s string) bool { return HexValidator.IsHexColor(s) }

// IsHexColorLoose is IsHexColor with the '#' optional.
func IsHexColorLoose(s string) bool { return looseValidator.IsHexColor(s) }

// ParseHexColor converts a '#'-prefixed hex color. The error wraps
// ErrInvalidHexColor.
func ParseHexColor(s string) (gg.RGBA, error) { return HexValidator.Parse(s) }

// NormalizeHex returns the canonical lower-case "#rrggbb[aa]" form of s.
func NormalizeHex(s string) (string, error) { return HexValidator.Normalize(s) }

// FilterHexColors splits values into valid and invalid hex colors.
func FilterHexColors(values []string) (valid, invalid []string) {
	return HexValidator.Filter(values)
}
