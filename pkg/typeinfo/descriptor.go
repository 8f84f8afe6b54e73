package typeinfo

import (
	"strconv"
	"strings"
)

// Descriptor is the result of classifying a value. Type is always set; the
// remaining fields are sparse and only meaningful when non-zero.
type Descriptor struct {
	Type               Category `json:"type" yaml:"type"`
	Name               string   `json:"name,omitempty" yaml:"name,omitempty"`
	IsAsync            bool     `json:"isAsync,omitempty" yaml:"isAsync,omitempty"`
	IsGenerator        bool     `json:"isGenerator,omitempty" yaml:"isGenerator,omitempty"`
	IsClass            bool     `json:"isClass,omitempty" yaml:"isClass,omitempty"`
	IsInstance         bool     `json:"isInstance,omitempty" yaml:"isInstance,omitempty"`
	IsFunctionInstance bool     `json:"isFunctionInstance,omitempty" yaml:"isFunctionInstance,omitempty"`
}

// String renders the fields that are set, e.g.
// {type: function, name: "Foo", isClass: true}.
func (d Descriptor) String() string {
	var out strings.Builder
	out.WriteString("{type: ")
	out.WriteString(d.Type.String())
	if d.Name != "" {
		out.WriteString(", name: ")
		out.WriteString(strconv.Quote(d.Name))
	}
	flags := []struct {
		name string
		set  bool
	}{
		{"isAsync", d.IsAsync},
		{"isGenerator", d.IsGenerator},
		{"isClass", d.IsClass},
		{"isInstance", d.IsInstance},
		{"isFunctionInstance", d.IsFunctionInstance},
	}
	for _, f := range flags {
		if f.set {
			out.WriteString(", ")
			out.WriteString(f.name)
			out.WriteString(": true")
		}
	}
	out.WriteString("}")
	return out.String()
}
