package typesystem

import (
	"go/token"
	"reflect"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/funvibe/typeinfo/internal/utils"
)

// buildModules lists the module paths linked into the running binary.
var buildModules = sync.OnceValue(func() []string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}
	return ModulePaths(info)
})

// ModulePaths returns the main module path and the path of every dependency
// recorded in info. Replaced modules keep their original path, which is the
// one their packages are compiled under.
func ModulePaths(info *debug.BuildInfo) []string {
	paths := make([]string, 0, len(info.Deps)+1)
	if info.Main.Path != "" {
		paths = append(paths, info.Main.Path)
	}
	for _, dep := range info.Deps {
		if dep != nil && dep.Path != "" {
			paths = append(paths, dep.Path)
		}
	}
	return paths
}

// IsStdPkg reports whether pkgPath belongs to the Go standard library.
// Predeclared types (empty path) count as standard; "main" and packages of
// any module linked into the binary do not. Anything else falls back to the
// goimports rule: a dot-free first path element marks a standard package.
func IsStdPkg(pkgPath string) bool {
	return isStdPkg(pkgPath, buildModules())
}

func isStdPkg(pkgPath string, modules []string) bool {
	if pkgPath == "main" {
		return false
	}
	for _, mod := range modules {
		if pkgPath == mod || strings.HasPrefix(pkgPath, mod+"/") {
			return false
		}
	}
	first, _, _ := strings.Cut(pkgPath, "/")
	return !strings.Contains(first, ".")
}

// IsClassMethod reports whether sym is a method value bound to a pointer to
// a type declared outside the standard library. Symbols do not record the
// receiver's kind; pointer receivers are taken to belong to structs.
func IsClassMethod(sym utils.FuncSymbol) bool {
	return sym.MethodValue && sym.PointerReceiver && !IsStdPkg(sym.Package)
}

// Constructor strips unnamed pointer indirections from t and returns the
// declared type behind them, or nil when that type is unnamed or predeclared.
func Constructor(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer && t.Name() == "" {
		t = t.Elem()
	}
	if t.Name() == "" || t.PkgPath() == "" {
		return nil
	}
	return t
}

// ConstructorName is the display name of t's constructor. Unexported
// standard library types are implementation details and have no name.
func ConstructorName(t reflect.Type) string {
	c := Constructor(t)
	if c == nil {
		return ""
	}
	name := utils.LocalName(c.Name())
	if IsStdPkg(c.PkgPath()) && !token.IsExported(name) {
		return ""
	}
	return name
}

// IsClass reports whether t (or the type t points to) is a struct type
// declared outside the standard library.
func IsClass(t reflect.Type) bool {
	c := Constructor(t)
	return c != nil && c.Kind() == reflect.Struct && !IsStdPkg(c.PkgPath())
}

// IsCustom reports whether t's constructor is a user-declared named type
// that is not a struct, e.g. type HandlerFunc func() or type Set map[string]bool.
func IsCustom(t reflect.Type) bool {
	c := Constructor(t)
	return c != nil && c.Kind() != reflect.Struct && !IsStdPkg(c.PkgPath())
}

// ConstructedType returns the class built by a constructor signature:
// func(...) *T, func(...) T, optionally followed by an error result.
// It returns nil for any other signature.
func ConstructedType(t reflect.Type) reflect.Type {
	if t.Kind() != reflect.Func {
		return nil
	}
	switch t.NumOut() {
	case 1:
	case 2:
		if t.Out(1) != errorType {
			return nil
		}
	default:
		return nil
	}
	if !IsClass(t.Out(0)) {
		return nil
	}
	return Constructor(t.Out(0))
}
