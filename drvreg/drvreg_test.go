package drvreg

import (
	"context"
	"encoding/json"
	"testing"

	"cbufring/errcode"
)

func TestRegisterAndLookup(t *testing.T) {
	r := New()
	if _, ok := r.Lookup("ring"); ok {
		t.Fatalf("unregistered type should not be found")
	}
	r.Register("ring", RingBuilder{})
	if _, ok := r.Lookup("ring"); !ok {
		t.Fatalf("lookup failed after Register")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	r := New()
	r.Register("ring", RingBuilder{})
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate registration")
		}
	}()
	r.Register("ring", RingBuilder{})
}

func TestBuildUnknownTypeReturnsErrcode(t *testing.T) {
	r := New()
	_, err := r.Build(context.Background(), "d0", "ring", nil)
	if err == nil {
		t.Fatalf("expected error for unregistered type")
	}
	if got := errcode.Of(err); got != errcode.UnknownCapability {
		t.Fatalf("code: got %v, want %v", got, errcode.UnknownCapability)
	}
}

func TestBuildAndRingLookup(t *testing.T) {
	r := New()
	r.Register("ring", RingBuilder{})
	ri, err := r.Build(context.Background(), "d0", "ring", json.RawMessage(`{"len": 32}`))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if ri.Size() != 32 {
		t.Fatalf("built ring size: got %d, want 32", ri.Size())
	}
	got, ok := r.Ring("d0")
	if !ok || got != ri {
		t.Fatalf("Ring lookup after Build: got %v, %v", got, ok)
	}
}

func TestBuildPropagatesBuilderErrcode(t *testing.T) {
	r := New()
	r.Register("ring", RingBuilder{})
	_, err := r.Build(context.Background(), "d0", "ring", json.RawMessage(`{"len": 0}`))
	if err == nil {
		t.Fatalf("expected error for non-positive len")
	}
	if got := errcode.Of(err); got != errcode.InvalidParams {
		t.Fatalf("code: got %v, want %v", got, errcode.InvalidParams)
	}
}
