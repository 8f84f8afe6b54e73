package utils

import (
	"reflect"
	"runtime"
	"strings"

	"github.com/funvibe/typeinfo/internal/config"
)

// FuncSymbol is a function value's runtime symbol split into parts.
type FuncSymbol struct {
	Full        string // e.g. "example.com/shop.(*Cart).Total-fm"
	Package     string // e.g. "example.com/shop"
	Name        string // declared identifier; empty for closures
	MethodValue bool   // bound to a receiver, as in cart.Total

	Receiver        string // receiver type of a method, e.g. "Cart"
	PointerReceiver bool   // declared on *Receiver
}

// FuncSymbolOf looks up the symbol of fn, a non-nil func value.
func FuncSymbolOf(fn reflect.Value) FuncSymbol {
	f := runtime.FuncForPC(fn.Pointer())
	if f == nil {
		return FuncSymbol{}
	}
	return ParseFuncSymbol(f.Name())
}

// ParseFuncSymbol splits a name as reported by runtime.Func.Name.
//
// The last element of the package path never contains a dot (the linker
// escapes it), so the first dot after the last slash ends the package.
func ParseFuncSymbol(full string) FuncSymbol {
	sym := FuncSymbol{Full: full}
	if full == "" || full == config.MakeFuncStub || full == config.MethodValueStub {
		return sym
	}

	rest := full
	if trimmed, ok := strings.CutSuffix(rest, config.MethodValueSuffix); ok {
		sym.MethodValue = true
		rest = trimmed
	}
	rest = strings.ReplaceAll(rest, config.GenericMarker, "")

	start := strings.LastIndexByte(rest, '/') + 1
	dot := strings.IndexByte(rest[start:], '.')
	if dot < 0 {
		return sym
	}
	dot += start
	sym.Package = rest[:dot]

	parts := strings.Split(rest[dot+1:], ".")
	last := parts[len(parts)-1]
	if isClosureSegment(last) {
		return sym
	}
	sym.Name = last
	if len(parts) == 2 {
		recv := parts[0]
		if inner, ok := strings.CutPrefix(recv, "(*"); ok {
			recv = strings.TrimSuffix(inner, ")")
			sym.PointerReceiver = true
		}
		sym.Receiver = recv
	}
	return sym
}

// isClosureSegment matches the compiler's names for function literals:
// "func1", the nested "1" in "func1.1", and the go/defer wrappers.
func isClosureSegment(seg string) bool {
	if seg == "" || isDigits(seg) {
		return true
	}
	for _, prefix := range append([]string{config.ClosurePrefix}, config.ClosureWrapperPrefixes...) {
		if n, ok := strings.CutPrefix(seg, prefix); ok && isDigits(n) {
			return true
		}
	}
	return false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
