package typesystem

import (
	"context"
	"iter"
	"maps"
	"reflect"
	"testing"
)

func TestShapes(t *testing.T) {
	tests := []struct {
		name          string
		fn            any
		wantIterator  bool
		wantGenerator bool
		wantFuture    bool
	}{
		{"plain", func(int) string { return "" }, false, false, false},
		{"seq", func(yield func(int) bool) {}, true, true, false},
		{"seq2", func(yield func(string, int) bool) {}, true, true, false},
		{"seq0", func(yield func() bool) {}, true, true, false},
		{"named seq", iter.Seq[int](func(func(int) bool) {}), true, true, false},
		{"seq factory", maps.Keys[map[string]int], false, true, false},
		{"yield without bool", func(yield func(int)) {}, false, false, false},
		{"future", func() <-chan int { return nil }, false, false, true},
		{"future with error", func(context.Context) (chan string, error) { return nil, nil }, false, false, true},
		{"send-only channel", func() chan<- int { return nil }, false, false, false},
		{"only error", func() error { return nil }, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ := reflect.TypeOf(tt.fn)
			if got := IsIterator(typ); got != tt.wantIterator {
				t.Errorf("IsIterator = %v, want %v", got, tt.wantIterator)
			}
			if got := IsGenerator(typ); got != tt.wantGenerator {
				t.Errorf("IsGenerator = %v, want %v", got, tt.wantGenerator)
			}
			if got := IsFuture(typ); got != tt.wantFuture {
				t.Errorf("IsFuture = %v, want %v", got, tt.wantFuture)
			}
			if IsGenerator(typ) && IsFuture(typ) {
				t.Errorf("%s is both generator and future", tt.name)
			}
		})
	}
}

func TestImplementsError(t *testing.T) {
	if !ImplementsError(reflect.TypeOf(context.Canceled)) {
		t.Errorf("context.Canceled should implement error")
	}
	if ImplementsError(reflect.TypeFor[int]()) {
		t.Errorf("int should not implement error")
	}
}
