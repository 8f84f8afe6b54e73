// Package typeinfo classifies arbitrary Go values: a coarse category, a
// display name derived from the value's declared type, and flags describing
// constructors, generators, futures and instances of user-declared types.
//
// The package-level functions use Default. Every function is total: it
// returns a result for any input, nil and cyclic values included.
package typeinfo

import "sync"

// Default returns the process-wide classifier, built with no options.
var Default = sync.OnceValue(func() *Classifier { return New() })

// Classify returns the descriptor of v.
func Classify(v any) Descriptor { return Default().Classify(v) }

// InfoOf is an alias of Classify.
func InfoOf(v any) Descriptor { return Default().Classify(v) }

// TypeOf returns the lower-case category of v.
func TypeOf(v any) string { return Default().TypeOf(v) }

// NameOf returns the name of v, or its category when it has none.
func NameOf(v any) string { return Default().NameOf(v) }

// Name is NameOf lower-cased.
func Name(v any) string { return Default().Name(v) }

// FunctionInfo classifies a callable; ok is false for anything else.
func FunctionInfo(v any) (Descriptor, bool) { return Default().FunctionInfo(v) }

// FunctionInfoOr returns the Descriptor of a callable v, or returnIfBad.
func FunctionInfoOr(v, returnIfBad any) any { return Default().FunctionInfoOr(v, returnIfBad) }

// IsAsync reports whether v is a func returning a receive channel.
func IsAsync(v any) bool { return Default().IsAsync(v) }

// IsGenerator reports whether v is an iterator or a func returning one.
func IsGenerator(v any) bool { return Default().IsGenerator(v) }

// IsClass reports whether v is a constructor of a user-declared struct.
func IsClass(v any) bool { return Default().IsClass(v) }

// IsInstance reports whether v is an instance of a user-declared struct.
func IsInstance(v any) bool { return Default().IsInstance(v) }

// IsFunctionInstance reports whether v is a value of a user-declared non-struct type.
func IsFunctionInstance(v any) bool { return Default().IsFunctionInstance(v) }

// BuiltinTag returns the builtin tag of v.
func BuiltinTag(v any) string { return Default().BuiltinTag(v) }

// ObjectString renders v's builtin tag as "[object Tag]".
func ObjectString(v any) string { return Default().ObjectString(v) }
