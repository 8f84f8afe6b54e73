package utils

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseFuncSymbol(t *testing.T) {
	tests := []struct {
		name        string
		full        string
		wantPkg     string
		wantName    string
		methodValue bool
	}{
		{"plain function", "strings.ToUpper", "strings", "ToUpper", false},
		{"nested path", "github.com/acme/shop.Checkout", "github.com/acme/shop", "Checkout", false},
		{"escaped path element", "gopkg.in/yaml%2ev3.Marshal", "gopkg.in/yaml%2ev3", "Marshal", false},
		{"closure", "github.com/acme/shop.Checkout.func1", "github.com/acme/shop", "", false},
		{"nested closure", "github.com/acme/shop.Checkout.func1.2", "github.com/acme/shop", "", false},
		{"package level closure", "github.com/acme/shop.glob..func3", "github.com/acme/shop", "", false},
		{"go wrapper", "github.com/acme/shop.Checkout.gowrap1", "github.com/acme/shop", "", false},
		{"pointer method", "github.com/acme/shop.(*Cart).Total", "github.com/acme/shop", "Total", false},
		{"value method", "github.com/acme/shop.Cart.Total", "github.com/acme/shop", "Total", false},
		{"method value", "github.com/acme/shop.(*Cart).Total-fm", "github.com/acme/shop", "Total", true},
		{"generic function", "slices.Index[...]", "slices", "Index", false},
		{"closure in generic function", "slices.SortFunc[...].func1", "slices", "", false},
		{"make func stub", "reflect.makeFuncStub", "", "", false},
		{"empty", "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFuncSymbol(tt.full)
			if got.Package != tt.wantPkg {
				t.Errorf("Package = %q, want %q", got.Package, tt.wantPkg)
			}
			if got.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", got.Name, tt.wantName)
			}
			if got.MethodValue != tt.methodValue {
				t.Errorf("MethodValue = %v, want %v", got.MethodValue, tt.methodValue)
			}
		})
	}
}

func TestParseFuncSymbolReceiver(t *testing.T) {
	tests := []struct {
		full        string
		wantRecv    string
		wantPointer bool
	}{
		{"github.com/acme/shop.(*Cart).Total-fm", "Cart", true},
		{"github.com/acme/shop.Cart.Total", "Cart", false},
		{"time.Time.String-fm", "Time", false},
		{"github.com/acme/shop.(*Box[...]).Get-fm", "Box", true},
		{"github.com/acme/shop.Checkout", "", false},
		{"github.com/acme/shop.(*Cart).Total.func1", "", false},
		{"github.com/acme/shop.glob..func3", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.full, func(t *testing.T) {
			got := ParseFuncSymbol(tt.full)
			if got.Receiver != tt.wantRecv || got.PointerReceiver != tt.wantPointer {
				t.Errorf("receiver = (%q, %v), want (%q, %v)", got.Receiver, got.PointerReceiver, tt.wantRecv, tt.wantPointer)
			}
		})
	}
}

func TestFuncSymbolOf(t *testing.T) {
	sym := FuncSymbolOf(reflect.ValueOf(strings.ToUpper))
	if sym.Name != "ToUpper" || sym.Package != "strings" {
		t.Errorf("strings.ToUpper: got %+v", sym)
	}

	closure := func() {}
	if sym := FuncSymbolOf(reflect.ValueOf(closure)); sym.Name != "" {
		t.Errorf("closure should be anonymous, got %q", sym.Name)
	}

	var b strings.Builder
	sym = FuncSymbolOf(reflect.ValueOf(b.Len))
	if !sym.MethodValue || sym.Name != "Len" || !sym.PointerReceiver {
		t.Errorf("b.Len: got %+v", sym)
	}

	stub := reflect.MakeFunc(reflect.TypeOf(closure), func([]reflect.Value) []reflect.Value { return nil })
	if sym := FuncSymbolOf(stub); sym.Name != "" {
		t.Errorf("MakeFunc value should be anonymous, got %q", sym.Name)
	}
}
