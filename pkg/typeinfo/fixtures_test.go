package typeinfo_test

import (
	"errors"
	"iter"
)

type Foo struct{ id int }

func NewFoo() *Foo { return &Foo{id: 1} }

// Newton returns a *Foo but is not a constructor.
func Newton() *Foo { return &Foo{} }

func MakeFoo() *Foo { return &Foo{} }

type Person struct {
	Name string
	Age  int
}

func NewPerson(name string, age int) (*Person, error) {
	if name == "" {
		return nil, errors.New("empty name")
	}
	return &Person{Name: name, Age: age}, nil
}

func (p *Person) Greet() string { return "hello, " + p.Name }

type HandlerFunc func(string) string

type Set map[string]bool

func (s Set) Has(k string) bool { return s[k] }

type Color string

type Celsius float64

type Box[T any] struct{ Value T }

type node struct {
	next *node
}

func Greeting() string { return "hi" }

func Count(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := range n {
			if !yield(i) {
				return
			}
		}
	}
}

func Fetch(url string) <-chan string {
	ch := make(chan string, 1)
	ch <- url
	close(ch)
	return ch
}
