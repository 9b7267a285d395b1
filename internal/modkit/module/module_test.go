package module

import (
	"testing"
)

type FooPort interface{ Foo() int }

type fooImpl struct{ v int }

func (f fooImpl) Foo() int { return f.v }

type fakeModule struct {
	name  string
	ports any
}

func (m fakeModule) Name() string { return m.name }
func (m fakeModule) Ports() any   { return m.ports }

var _ Module = fakeModule{}

func TestPortsOf(t *testing.T) {
	type Ports struct {
		Other int
		Foo   FooPort
		foo   FooPort
	}
	cases := []struct {
		name  string
		ports any
		want  int
		ok    bool
	}{
		{"nil ports", nil, 0, false},
		{"direct", FooPort(fooImpl{v: 42}), 42, true},
		{"exported field", Ports{Foo: fooImpl{v: 7}}, 7, true},
		{"unexported ignored", Ports{foo: fooImpl{v: 9}}, 0, false},
		{"non struct", 5, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := PortsOf[FooPort](fakeModule{name: tc.name, ports: tc.ports})
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if ok && got.Foo() != tc.want {
				t.Fatalf("Foo() = %d, want %d", got.Foo(), tc.want)
			}
		})
	}
}

func TestMustPortsOf_PanicsWithModuleName(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic")
		}
		if s, _ := r.(string); s != "module: requested port not found on module ledger" {
			t.Fatalf("panic = %v", r)
		}
	}()
	_ = MustPortsOf[FooPort](fakeModule{name: "ledger"})
}

func TestRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register("ledger", fooImpl{v: 1})
	if got, ok := PortsAs[fooImpl]("ledger"); !ok || got.v != 1 {
		t.Fatalf("PortsAs = %+v %v", got, ok)
	}
	if _, ok := PortsAs[int]("ledger"); ok {
		t.Fatalf("type mismatch should be false")
	}
	if _, ok := PortsAs[fooImpl]("missing"); ok {
		t.Fatalf("missing should be false")
	}
}
