// Package drvreg is the ring buffer module's stand-in for a device/driver
// registration framework: the out-of-scope collaborator spec.md §1 calls
// out as "a driver/device registration framework (how a concrete producer
// or consumer gets wired to a ring instance)". It is deliberately thin: a
// named-builder registry that turns a JSON-shaped configuration payload
// into a running *ring.Ring, not a general device model.
package drvreg

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"cbufring/errcode"
	"cbufring/ring"
)

// BuildInput is passed to a registered Builder.
type BuildInput struct {
	Ctx        context.Context
	DeviceID   string
	Type       string
	ParamsJSON json.RawMessage
}

// BuildOutput carries the ring instance a Builder constructed.
// Registry.Build records it under the DeviceID it was built with.
type BuildOutput struct {
	Ring *ring.Ring
}

// Builder constructs a ring instance from a BuildInput.
type Builder interface {
	Build(in BuildInput) (BuildOutput, error)
}

// Registry is a name -> Builder table plus the set of rings built from
// it, so a caller can both register new ring "device types" and look up
// live instances by the DeviceID they were built with.
type Registry struct {
	mu       sync.RWMutex
	builders map[string]Builder
	rings    map[string]*ring.Ring
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{
		builders: make(map[string]Builder),
		rings:    make(map[string]*ring.Ring),
	}
}

// Register adds a Builder under deviceType. It panics on a duplicate
// registration, matching the teacher's registry: a second call for the
// same type is a programming error caught at init time, not a runtime
// condition to recover from.
func (r *Registry) Register(deviceType string, b Builder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.builders[deviceType]; exists {
		panic(fmt.Sprintf("drvreg: builder already registered for type %q", deviceType))
	}
	r.builders[deviceType] = b
}

// Lookup returns the Builder registered for deviceType, if any.
func (r *Registry) Lookup(deviceType string) (Builder, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.builders[deviceType]
	return b, ok
}

// Build runs the Builder registered for typ against params, records the
// resulting ring under id for later lookup via Ring, and returns it.
//
// Errors are *errcode.E values, the structured-error shape errcode.go
// defines for the rest of this module's bus-facing failures: an unknown
// type is errcode.UnknownCapability, a builder failure wraps whatever
// the Builder returned and carries its code (errcode.Of), falling back to
// errcode.Error when the Builder's error has no code.
func (r *Registry) Build(ctx context.Context, id, typ string, params json.RawMessage) (*ring.Ring, error) {
	b, ok := r.Lookup(typ)
	if !ok {
		return nil, &errcode.E{C: errcode.UnknownCapability, Op: "drvreg.Build", Msg: fmt.Sprintf("unknown ring type %q", typ)}
	}
	out, err := b.Build(BuildInput{Ctx: ctx, DeviceID: id, Type: typ, ParamsJSON: params})
	if err != nil {
		return nil, &errcode.E{C: errcode.Of(err), Op: "drvreg.Build", Msg: fmt.Sprintf("build %q (%s)", id, typ), Err: err}
	}
	r.mu.Lock()
	r.rings[id] = out.Ring
	r.mu.Unlock()
	return out.Ring, nil
}

// Ring returns the previously built ring registered under id.
func (r *Registry) Ring(id string) (*ring.Ring, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ri, ok := r.rings[id]
	return ri, ok
}
