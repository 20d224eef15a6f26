package hashcode

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Registry maps type keys to strategies. Primitive strategies are
// registered up front, at most one per key; composite strategies are
// built on demand from their element strategies and cached. Once the
// registration phase is over it's safe to Resolve from any number of
// goroutines.
type Registry struct {
	mu         sync.RWMutex
	primitives map[string]*Strategy
	composites map[string]*Strategy

	resolutions uint64
	cacheHits   uint64
}

func NewRegistry() *Registry {
	return &Registry{
		primitives: make(map[string]*Strategy),
		composites: make(map[string]*Strategy),
	}
}

// NewStandardRegistry returns a registry with the Text, Number, and
// Bool strategies already registered.
func NewStandardRegistry() *Registry {
	r := NewRegistry()
	for _, s := range []*Strategy{NewTextStrategy(), NewNumberStrategy(), NewBoolStrategy()} {
		if err := r.Register(s.Key(), s); err != nil {
			// fresh registry; nothing to collide with
			panic(err)
		}
	}
	return r
}

// Register adds a strategy for a primitive key. Composite keys are
// never registered directly; Resolve derives them, which is what keeps
// "exactly one strategy per key" structural.
func (r *Registry) Register(key TypeKey, strategy *Strategy) error {
	if err := validateKey(key); err != nil {
		return err
	}
	prim, ok := key.(*TPrim)
	if !ok {
		return &InvalidTypeKey{Key: key.Key(), Reason: "only primitive keys can be registered"}
	}
	if strategy == nil {
		return &InvalidTypeKey{Key: key.Key(), Reason: "nil strategy"}
	}
	if !KeysEqual(strategy.Key(), key) {
		return &InvalidTypeKey{
			Key:    key.Key(),
			Reason: fmt.Sprintf("strategy is tagged %s", strategy.Key().Key()),
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, present := r.primitives[prim.name]; present {
		return &DuplicateRegistration{Key: prim.name}
	}
	r.primitives[prim.name] = strategy
	return nil
}

// Resolve returns the strategy for a key: a lookup for primitives, a
// recursive build for composites. It terminates on any valid key
// because composite keys strictly shrink toward their primitives.
func (r *Registry) Resolve(key TypeKey) (*Strategy, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	atomic.AddUint64(&r.resolutions, 1)

	if prim, ok := key.(*TPrim); ok {
		r.mu.RLock()
		s, present := r.primitives[prim.name]
		r.mu.RUnlock()
		if !present {
			return nil, &UnknownType{Key: prim.name}
		}
		return s, nil
	}

	canonical := key.Key()
	r.mu.RLock()
	s, present := r.composites[canonical]
	r.mu.RUnlock()
	if present {
		atomic.AddUint64(&r.cacheHits, 1)
		return s, nil
	}

	s, err := r.build(key)
	if err != nil {
		return nil, err
	}

	// Two goroutines may race to build the same strategy; first one
	// in wins, so all callers share a single instance.
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, present := r.composites[canonical]; present {
		return existing, nil
	}
	r.composites[canonical] = s
	return s, nil
}

func (r *Registry) build(key TypeKey) (*Strategy, error) {
	switch k := key.(type) {
	case *TSeq:
		elem, err := r.Resolve(k.elem)
		if err != nil {
			return nil, err
		}
		return NewSeqStrategy(elem), nil
	case *TOption:
		elem, err := r.Resolve(k.elem)
		if err != nil {
			return nil, err
		}
		return NewOptionStrategy(elem), nil
	case *TPair:
		first, err := r.Resolve(k.first)
		if err != nil {
			return nil, err
		}
		second, err := r.Resolve(k.second)
		if err != nil {
			return nil, err
		}
		return NewPairStrategy(first, second), nil
	case *TUnion:
		left, err := r.Resolve(k.left)
		if err != nil {
			return nil, err
		}
		right, err := r.Resolve(k.right)
		if err != nil {
			return nil, err
		}
		return NewUnionStrategy(left, right), nil
	}
	return nil, &InvalidTypeKey{Key: key.Key(), Reason: "not a registrable or composite key"}
}

// The accessors below feed the server's metrics.

func (r *Registry) NumPrimitives() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.primitives)
}

func (r *Registry) NumCachedComposites() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.composites)
}

func (r *Registry) Resolutions() uint64 {
	return atomic.LoadUint64(&r.resolutions)
}

func (r *Registry) CacheHits() uint64 {
	return atomic.LoadUint64(&r.cacheHits)
}
