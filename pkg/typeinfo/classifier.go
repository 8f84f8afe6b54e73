package typeinfo

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/funvibe/typeinfo/internal/config"
	"github.com/funvibe/typeinfo/internal/pipeline"
	"github.com/funvibe/typeinfo/internal/typesystem"
	"github.com/funvibe/typeinfo/internal/utils"
	"github.com/funvibe/typeinfo/pkg/ext"
)

// Classifier classifies Go values. It is immutable once built and safe for
// concurrent use.
type Classifier struct {
	tags   *pipeline.Pipeline
	logger *zap.Logger
}

type options struct {
	taggers []Tagger
	logger  *zap.Logger
}

// Option configures a Classifier.
type Option func(*options)

// WithTagger adds a tag source consulted before the built-in ones. Sources
// added this way are consulted in the order they were given.
func WithTagger(t Tagger) Option {
	return func(o *options) {
		if t != nil {
			o.taggers = append(o.taggers, t)
		}
	}
}

// WithLogger sets the logger used to report failing tag sources.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// New builds a Classifier. Taggers given with WithTagger run before the
// protobuf and reflection tag sources.
func New(opts ...Option) *Classifier {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	processors := make([]pipeline.Processor, 0, len(o.taggers)+2)
	for _, t := range o.taggers {
		processors = append(processors, taggerProcessor{tagger: t})
	}
	processors = append(processors,
		taggerProcessor{tagger: TaggerFunc(ext.ProtoTag)},
		taggerProcessor{tagger: TaggerFunc(reflectTag)},
	)

	return &Classifier{
		tags:   pipeline.New(processors...),
		logger: o.logger,
	}
}

// Classify returns the descriptor of v.
func (c *Classifier) Classify(v any) Descriptor {
	cat, rv := categoryOf(v)
	switch cat {
	case CategoryUndefined, CategoryNull, CategoryArray:
		return Descriptor{Type: cat}
	case CategoryNumber:
		name := config.TagNumber
		if isNaN(rv) {
			name = config.NaNName
		}
		return Descriptor{Type: cat, Name: name}
	case CategoryFunction:
		return c.functionInfo(v, rv)
	case CategoryObject:
		return c.objectInfo(v, rv)
	default:
		return Descriptor{Type: cat, Name: fallbackName(cat, rv)}
	}
}

// TypeOf returns the lower-case category of v.
func (c *Classifier) TypeOf(v any) string {
	return c.Classify(v).Type.String()
}

// NameOf returns the name of v, or its category when it has none. The
// generic function, object and array tags are capitalised.
func (c *Classifier) NameOf(v any) string {
	d := c.Classify(v)
	if d.Name != "" {
		return normalizeName(d.Name)
	}
	return normalizeName(d.Type.String())
}

// Name is NameOf lower-cased.
func (c *Classifier) Name(v any) string {
	return cases.Lower(language.Und).String(c.NameOf(v))
}

// FunctionInfo classifies a callable. ok is false when v is not a non-nil func.
func (c *Classifier) FunctionInfo(v any) (d Descriptor, ok bool) {
	cat, rv := categoryOf(v)
	if cat != CategoryFunction {
		return Descriptor{}, false
	}
	return c.functionInfo(v, rv), true
}

// FunctionInfoOr returns the Descriptor of a callable v, or returnIfBad when
// v is not callable.
func (c *Classifier) FunctionInfoOr(v, returnIfBad any) any {
	if d, ok := c.FunctionInfo(v); ok {
		return d
	}
	return returnIfBad
}

// IsAsync reports whether v is a func returning a receive channel.
func (c *Classifier) IsAsync(v any) bool {
	d, ok := c.FunctionInfo(v)
	return ok && d.IsAsync
}

// IsGenerator reports whether v is an iterator or a func returning one.
func (c *Classifier) IsGenerator(v any) bool {
	d, ok := c.FunctionInfo(v)
	return ok && d.IsGenerator
}

// IsClass reports whether v is a constructor of a user-declared struct.
func (c *Classifier) IsClass(v any) bool {
	d, ok := c.FunctionInfo(v)
	return ok && d.IsClass
}

// IsInstance reports whether v is a value of a user-declared struct type, or
// a method value bound to a pointer to one.
func (c *Classifier) IsInstance(v any) bool {
	return c.Classify(v).IsInstance
}

// IsFunctionInstance reports whether v is a value of a user-declared named
// type that is not a struct, such as a HandlerFunc.
func (c *Classifier) IsFunctionInstance(v any) bool {
	return c.Classify(v).IsFunctionInstance
}

// BuiltinTag returns the builtin tag of v from the first tag source that
// recognises it.
func (c *Classifier) BuiltinTag(v any) string {
	ctx := c.tags.Run(pipeline.NewPipelineContext(v))
	for _, err := range ctx.Errors {
		fields := []zap.Field{zap.String("type", fmt.Sprintf("%T", v)), zap.Error(err)}
		if te, ok := err.(*pipeline.TaggerError); ok {
			fields = append(fields, zap.String("tagger", te.Tagger))
		}
		c.logger.Warn("tag source failed", fields...)
	}
	if ctx.Tag == "" {
		return config.TagObject
	}
	return ctx.Tag
}

// ObjectString renders v's builtin tag as "[object Tag]".
func (c *Classifier) ObjectString(v any) string {
	return config.TagPrefix + c.BuiltinTag(v) + config.TagSuffix
}

func (c *Classifier) functionInfo(v any, rv reflect.Value) Descriptor {
	t := rv.Type()
	sym := utils.FuncSymbolOf(rv)
	d := Descriptor{Type: CategoryFunction, Name: sym.Name}

	if class := typesystem.ConstructedType(t); class != nil && utils.IsConstructorName(sym.Name) {
		d.IsClass = true
		d.Name = typesystem.ConstructorName(class)
	}
	if !d.IsClass {
		switch c.BuiltinTag(v) {
		case config.TagAsyncFunction:
			d.IsAsync = true
		case config.TagGeneratorFunction:
			d.IsGenerator = true
		}
	}
	d.IsInstance = typesystem.IsClassMethod(sym)
	d.IsFunctionInstance = !d.IsInstance && typesystem.IsCustom(t)
	return d
}

func (c *Classifier) objectInfo(v any, rv reflect.Value) Descriptor {
	t := rv.Type()
	name := typesystem.ConstructorName(t)
	if name == "" || name == config.TagObject {
		name = c.BuiltinTag(v)
	}
	d := Descriptor{Type: CategoryObject, Name: name}
	d.IsInstance = typesystem.IsClass(t)
	d.IsFunctionInstance = !d.IsInstance && typesystem.IsCustom(t)
	return d
}

// categoryOf maps v onto the closed set of categories. The order of the
// checks matters: numbers are never nil, and nil slices are null.
func categoryOf(v any) (Category, reflect.Value) {
	if v == nil {
		return CategoryUndefined, reflect.Value{}
	}
	rv := reflect.ValueOf(v)
	if _, ok := v.(Symbol); ok {
		return CategorySymbol, rv
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return CategoryNumber, rv
	}
	if isNil(rv) {
		return CategoryNull, rv
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return CategoryArray, rv
	case reflect.Func:
		return CategoryFunction, rv
	case reflect.String:
		return CategoryString, rv
	case reflect.Bool:
		return CategoryBoolean, rv
	}
	return CategoryObject, rv
}

// isNaN relies on NaN being the only value not equal to itself.
func isNaN(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != f
	case reflect.Complex64, reflect.Complex128:
		z := rv.Complex()
		return z != z
	}
	return false
}

// fallbackName names strings, booleans and symbols after their declared type.
// Values without one get their category's tag, or Object.
func fallbackName(cat Category, rv reflect.Value) string {
	if name := typesystem.ConstructorName(rv.Type()); name != "" {
		return name
	}
	switch cat {
	case CategoryString:
		return config.TagString
	case CategoryBoolean:
		return config.TagBoolean
	case CategorySymbol:
		return config.TagSymbol
	}
	return config.TagObject
}

func normalizeName(name string) string {
	switch name {
	case "function", "object", "array":
		return utils.Capitalize(name)
	}
	return name
}
