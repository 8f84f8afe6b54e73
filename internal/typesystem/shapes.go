package typesystem

import "reflect"

var errorType = reflect.TypeFor[error]()

// ImplementsError reports whether values of t satisfy the error interface.
func ImplementsError(t reflect.Type) bool { return t.Implements(errorType) }

// IsIterator reports whether t has the range-over-func shape
// func(yield func(...) bool), as iter.Seq and iter.Seq2 do.
func IsIterator(t reflect.Type) bool {
	if t.Kind() != reflect.Func || t.NumIn() != 1 || t.NumOut() != 0 || t.IsVariadic() {
		return false
	}
	yield := t.In(0)
	return yield.Kind() == reflect.Func &&
		!yield.IsVariadic() &&
		yield.NumIn() <= 2 &&
		yield.NumOut() == 1 &&
		yield.Out(0).Kind() == reflect.Bool
}

// IsGenerator reports whether t is an iterator or a function returning
// exactly one iterator.
func IsGenerator(t reflect.Type) bool {
	if IsIterator(t) {
		return true
	}
	return t.Kind() == reflect.Func && t.NumOut() == 1 && IsIterator(t.Out(0))
}

// IsFuture reports whether t's last result, ignoring a trailing error, is a
// channel the caller can receive from.
func IsFuture(t reflect.Type) bool {
	if t.Kind() != reflect.Func {
		return false
	}
	n := t.NumOut()
	if n > 0 && t.Out(n-1) == errorType {
		n--
	}
	if n == 0 {
		return false
	}
	out := t.Out(n - 1)
	return out.Kind() == reflect.Chan && out.ChanDir()&reflect.RecvDir != 0
}
