package typeinfo

import (
	"fmt"
	"reflect"

	"github.com/funvibe/typeinfo/internal/config"
	"github.com/funvibe/typeinfo/internal/pipeline"
	"github.com/funvibe/typeinfo/internal/typesystem"
)

// A Tagger is a source of builtin tags. ok is false when the Tagger does not
// recognise v and the next source should be asked.
type Tagger interface {
	Tag(v any) (tag string, ok bool)
}

// TaggerFunc adapts an ordinary function to the Tagger interface.
type TaggerFunc func(v any) (string, bool)

func (f TaggerFunc) Tag(v any) (string, bool) { return f(v) }

type taggerProcessor struct {
	tagger Tagger
}

func (p taggerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if tag, ok := p.tagger.Tag(ctx.Value); ok && tag != "" {
		ctx.Tag = tag
		ctx.Done = true
	}
	return ctx
}

func (p taggerProcessor) String() string {
	return fmt.Sprintf("%T", p.tagger)
}

// reflectTag answers for every value and ends each tag pipeline.
func reflectTag(v any) (string, bool) {
	if v == nil {
		return config.TagUndefined, true
	}
	if _, ok := v.(Symbol); ok {
		return config.TagSymbol, true
	}
	rv := reflect.ValueOf(v)
	if isNil(rv) {
		return config.TagNull, true
	}
	if typesystem.ImplementsError(rv.Type()) {
		return config.TagError, true
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return config.TagNumber, true
	case reflect.String:
		return config.TagString, true
	case reflect.Bool:
		return config.TagBoolean, true
	case reflect.Slice, reflect.Array:
		return config.TagArray, true
	case reflect.Func:
		switch t := rv.Type(); {
		case typesystem.IsGenerator(t):
			return config.TagGeneratorFunction, true
		case typesystem.IsFuture(t):
			return config.TagAsyncFunction, true
		}
		return config.TagFunction, true
	case reflect.Map:
		return config.TagMap, true
	case reflect.Chan:
		return config.TagChan, true
	case reflect.Pointer:
		if rv.Type().Elem().Kind() != reflect.Struct {
			return config.TagPointer, true
		}
	case reflect.UnsafePointer:
		return config.TagUnsafePointer, true
	}
	return config.TagObject, true
}

func isNil(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
