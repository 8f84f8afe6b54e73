package typeinfo

import (
	"errors"
	"fmt"
	"strconv"
)

// Category is the coarse type tag of a value.
type Category uint8

const (
	CategoryUndefined Category = iota
	CategoryNumber
	CategoryNull
	CategoryArray
	CategoryFunction
	CategoryObject
	CategoryString
	CategoryBoolean
	CategorySymbol
)

var categoryNames = [...]string{
	CategoryUndefined: "undefined",
	CategoryNumber:    "number",
	CategoryNull:      "null",
	CategoryArray:     "array",
	CategoryFunction:  "function",
	CategoryObject:    "object",
	CategoryString:    "string",
	CategoryBoolean:   "boolean",
	CategorySymbol:    "symbol",
}

// ErrUnknownCategory is returned when decoding a category name that is not
// one of the tags above.
var ErrUnknownCategory = errors.New("unknown category")

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "Category(" + strconv.Itoa(int(c)) + ")"
}

func (c Category) MarshalText() ([]byte, error) {
	if int(c) >= len(categoryNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, c)
	}
	return []byte(categoryNames[c]), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	for i, name := range categoryNames {
		if name == string(text) {
			*c = Category(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownCategory, text)
}
