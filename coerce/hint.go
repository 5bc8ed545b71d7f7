package coerce

import (
	"fmt"

	"github.com/viant/coercly/coerce/ident"
)

// HintKind enumerates resolution outcomes.
type HintKind int

//go:generate go tool stringer -type=HintKind -output=hintkind_string.go

const (
	// HintNone records that no conversion exists for the pair.
	HintNone HintKind = iota
	// HintPush converts on the source side through "as_<target>".
	HintPush
	// HintPull converts on the target side through "from_<source>".
	HintPull
	// HintExternal converts through a function exported by a third module.
	HintExternal
)

// Hint is one immutable resolution outcome for a (source, target) pair. The
// resolver caches hints forever, including negative ones.
type Hint struct {
	Kind     HintKind
	Source   ident.Name
	Target   ident.Name
	Method   string
	Module   string
	Function string

	adapter Adapter
}

// Exists reports whether the hint names a usable conversion.
func (h Hint) Exists() bool { return h.Kind != HintNone }

// String renders the hint for diagnostics.
func (h Hint) String() string {
	switch h.Kind {
	case HintPush:
		return fmt.Sprintf("push %s -> %s via %s", h.Source, h.Target, h.Method)
	case HintPull:
		return fmt.Sprintf("pull %s -> %s via %s", h.Source, h.Target, h.Method)
	case HintExternal:
		return fmt.Sprintf("external %s -> %s via %s.%s", h.Source, h.Target, h.Module, h.Function)
	default:
		return fmt.Sprintf("no conversion %s -> %s", h.Source, h.Target)
	}
}

func (h Hint) invoke(value any) (any, error) {
	if h.adapter == nil {
		return nil, nil
	}
	return h.adapter(value)
}
