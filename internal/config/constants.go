package config

// Tag rendering used by ObjectString: "[object Tag]".
const (
	TagPrefix = "[object "
	TagSuffix = "]"
)

// Builtin tags reported by the reflect tag source.
const (
	TagUndefined         = "Undefined"
	TagNull              = "Null"
	TagNumber            = "Number"
	TagString            = "String"
	TagBoolean           = "Boolean"
	TagSymbol            = "Symbol"
	TagArray             = "Array"
	TagFunction          = "Function"
	TagGeneratorFunction = "GeneratorFunction"
	TagAsyncFunction     = "AsyncFunction"
	TagObject            = "Object"
	TagMap               = "Map"
	TagChan              = "Chan"
	TagError             = "Error"
	TagPointer           = "Pointer"
	TagUnsafePointer     = "UnsafePointer"
)

// NaNName is the display name of a number that is not equal to itself.
const NaNName = "NaN"

// ConstructorPrefix marks a constructor function: New or NewT.
const ConstructorPrefix = "New"

// Runtime symbol fragments produced by the Go toolchain.
const (
	MethodValueSuffix = "-fm"
	GenericMarker     = "[...]"
	ClosurePrefix     = "func"
	MakeFuncStub      = "reflect.makeFuncStub"
	MethodValueStub   = "reflect.methodValueCall"
)

// ClosureWrapperPrefixes are the compiler-generated wrappers around go/defer
// statements; they name no declaration.
var ClosureWrapperPrefixes = []string{"gowrap", "deferwrap"}
