package typeinfo_test

import (
	"math"
	"testing"

	"github.com/funvibe/typeinfo/pkg/typeinfo"
)

// FuzzClassify checks that classification is total and keeps its invariants
// for values derived from arbitrary input.
func FuzzClassify(f *testing.F) {
	f.Add("seed", int64(0), 0.0, false)
	f.Add("", int64(-1), math.NaN(), true)
	f.Add("Object", int64(math.MaxInt64), math.Inf(-1), false)

	f.Fuzz(func(t *testing.T, s string, i int64, x float64, b bool) {
		values := []any{
			s, i, x, b,
			[]byte(s),
			map[string]float64{s: x},
			struct {
				S string
				I int64
			}{s, i},
			&x,
			Color(s),
			complex(x, float64(i)),
			typeinfo.NewSymbol(s),
			func() string { return s },
		}

		for _, v := range values {
			d := typeinfo.Classify(v)
			if d.IsInstance && d.IsFunctionInstance {
				t.Errorf("%v: both instance and function instance", d)
			}
			if d.IsAsync && d.IsGenerator {
				t.Errorf("%v: both async and generator", d)
			}
			if typeinfo.NameOf(v) == "" {
				t.Errorf("%#v: empty name", v)
			}
			if typeinfo.TypeOf(v) != d.Type.String() {
				t.Errorf("%#v: TypeOf disagrees with Classify", v)
			}
		}

		if x != x && typeinfo.NameOf(x) != "NaN" {
			t.Errorf("NaN input named %q", typeinfo.NameOf(x))
		}
	})
}
