package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/funvibe/typeinfo/internal/config"
)

// Capitalize upper-cases the first rune of s.
// Example: "object" -> "Object".
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size == 0 {
		return ""
	}
	upper := unicode.ToUpper(r)
	if upper == r {
		return s
	}
	return string(upper) + s[size:]
}

// IsConstructorName reports whether name follows the New / NewT constructor
// convention. "Newton" is not a constructor.
func IsConstructorName(name string) bool {
	rest, ok := strings.CutPrefix(name, config.ConstructorPrefix)
	if !ok {
		return false
	}
	if rest == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return unicode.IsUpper(r)
}

// LocalName drops generic instantiation arguments from a type name:
// "Box[int]" -> "Box".
func LocalName(name string) string {
	if i := strings.IndexByte(name, '['); i >= 0 {
		return name[:i]
	}
	return name
}
