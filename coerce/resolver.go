package coerce

import (
	"sync/atomic"

	"github.com/viant/coercly/coerce/ident"
	"github.com/viant/coercly/internal/syncmap"
)

// Pair is the ordered (source, target) key of one resolution outcome.
type Pair struct {
	Source ident.Name
	Target ident.Name
}

// String renders the pair for diagnostics.
func (p Pair) String() string {
	return p.Source.String() + " -> " + p.Target.String()
}

// Resolver answers "how does source convert to target" against a registry.
// Every answer, including a negative one, is computed once and cached for
// the lifetime of the resolver; conversions registered after a pair has been
// probed do not change its cached outcome.
type Resolver struct {
	registry *Registry
	cache    *syncmap.Map[Pair, Hint]
	probes   uint64
	hits     uint64
}

// Stats is a point-in-time snapshot of resolver activity.
type Stats struct {
	Probes  uint64
	Hits    uint64
	Entries int
}

// NewResolver returns a resolver bound to the supplied registry.
func NewResolver(registry *Registry) *Resolver {
	return &Resolver{
		registry: registry,
		cache:    syncmap.New[Pair, Hint](),
	}
}

// Resolve returns the conversion hint for the pair. A cached outcome is
// returned as is; otherwise the pair is probed, externals first, then a
// source side push, then a target side pull. Concurrent first probes of the
// same pair agree on whichever outcome lands in the cache first.
func (r *Resolver) Resolve(source, target ident.Name) Hint {
	key := Pair{Source: source, Target: target}
	if hint, ok := r.cache.Lookup(key); ok {
		atomic.AddUint64(&r.hits, 1)
		return hint
	}
	atomic.AddUint64(&r.probes, 1)
	hint, _ := r.cache.LoadOrStore(key, r.probe(key))
	return hint
}

func (r *Resolver) probe(key Pair) Hint {
	if ref, ok := r.registry.ExternalFor(key); ok {
		return Hint{
			Kind:     HintExternal,
			Source:   key.Source,
			Target:   key.Target,
			Module:   ref.Module,
			Function: ref.Function,
			adapter:  ref.Invoke,
		}
	}
	if src, ok := r.registry.LookupType(key.Source); ok {
		if c, ok := src.PushTo(key.Target); ok {
			return Hint{
				Kind:    HintPush,
				Source:  key.Source,
				Target:  key.Target,
				Method:  c.Method,
				adapter: c.Invoke,
			}
		}
	}
	if dst, ok := r.registry.LookupType(key.Target); ok {
		if c, ok := dst.PullFrom(key.Source); ok {
			return Hint{
				Kind:    HintPull,
				Source:  key.Source,
				Target:  key.Target,
				Method:  c.Method,
				adapter: c.Invoke,
			}
		}
	}
	return Hint{Kind: HintNone, Source: key.Source, Target: key.Target}
}

// Stats reports probe and cache activity since the resolver was built.
func (r *Resolver) Stats() Stats {
	return Stats{
		Probes:  atomic.LoadUint64(&r.probes),
		Hits:    atomic.LoadUint64(&r.hits),
		Entries: r.cache.Len(),
	}
}
