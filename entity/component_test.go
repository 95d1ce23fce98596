package entity

import (
	"errors"
	"testing"

	"gopkg.in/yaml.v3"
)

type nopComponent struct{}

func (nopComponent) Attach(*Entity) {}
func (nopComponent) Detach()        {}

func TestRegistry_RegisterAndNew(t *testing.T) {
	r := NewRegistry()
	err := r.Register("nop", func(opts *yaml.Node) (Component, error) {
		return nopComponent{}, nil
	})
	if err != nil {
		t.Fatal(err)
	}

	c, err := r.New("nop", nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.(nopComponent); !ok {
		t.Errorf("unexpected component type %T", c)
	}
}

func TestRegistry_DuplicateNameRejected(t *testing.T) {
	r := NewRegistry()
	f := func(*yaml.Node) (Component, error) { return nopComponent{}, nil }

	if err := r.Register("nop", f); err != nil {
		t.Fatal(err)
	}
	if err := r.Register("nop", f); err == nil {
		t.Error("expected error for duplicate registration")
	}
}

func TestRegistry_UnknownTypeRejected(t *testing.T) {
	r := NewRegistry()
	if _, err := r.New("missing", nil); err == nil {
		t.Error("expected error for unknown component type")
	}
}

func TestRegistry_FactoryErrorWrapped(t *testing.T) {
	r := NewRegistry()
	sentinel := errors.New("bad options")
	r.Register("failing", func(*yaml.Node) (Component, error) {
		return nil, sentinel
	})

	_, err := r.New("failing", nil)
	if !errors.Is(err, sentinel) {
		t.Errorf("expected wrapped factory error, got %v", err)
	}
}

func TestRegistry_NamesSorted(t *testing.T) {
	r := NewRegistry()
	f := func(*yaml.Node) (Component, error) { return nopComponent{}, nil }
	r.Register("b", f)
	r.Register("a", f)
	r.Register("c", f)

	names := r.Names()
	if len(names) != 3 || names[0] != "a" || names[1] != "b" || names[2] != "c" {
		t.Errorf("expected sorted names, got %v", names)
	}
}
