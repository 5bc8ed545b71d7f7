package coerce

import (
	"sort"

	"github.com/viant/coercly/coerce/ident"
	"github.com/viant/coercly/internal/syncmap"
)

// Namespace is a named set of installed coercion helpers, one per consumer.
// Namespaces built from the same service share its registry and resolver
// cache but keep independent helper tables, so two consumers never collide
// on helper names.
type Namespace struct {
	svc     *Service
	owner   ident.Name
	entries *syncmap.Map[string, *helperEntry]
}

type helperEntry struct {
	name    string
	target  ident.Name
	generic bool
	helper  Helper
}

func newNamespace(s *Service, owner ident.Name) *Namespace {
	return &Namespace{
		svc:     s,
		owner:   owner,
		entries: syncmap.New[string, *helperEntry](),
	}
}

// NamespaceFor returns a fresh helper namespace. A non empty owner must be a
// valid dotted type name; installs of "from" resolve against it. An empty
// owner yields an anonymous namespace that holds only generic and explicitly
// targeted helpers.
func (s *Service) NamespaceFor(owner string) (*Namespace, error) {
	if owner == "" {
		return newNamespace(s, ""), nil
	}
	name, err := ident.Parse(owner)
	if err != nil {
		return nil, configf("namespace owner: %w", err)
	}
	return newNamespace(s, name), nil
}

// Install adds a helper to the namespace. Three forms are accepted:
//
//	Install("coerce")         generic helper taking (target name, value)
//	Install("from")           helper bound to the namespace owner type
//	Install(name, target)     named helper bound to the given type
//
// Anything else, an invalid name or a name already taken is a configuration
// error. Installation validates names eagerly but loads nothing; the target
// module loads when the helper first runs.
func (n *Namespace) Install(args ...string) error {
	switch len(args) {
	case 1:
		switch args[0] {
		case "coerce":
			return n.add(&helperEntry{name: "coerce", generic: true})
		case "from":
			if n.owner == "" {
				return configf("installing %q requires a namespace owner type", "from")
			}
			return n.add(n.bound("from", n.owner))
		default:
			return configf("unknown helper export %q: single argument form accepts %q or %q", args[0], "coerce", "from")
		}
	case 2:
		name := args[0]
		if !ident.ValidIdentifier(name) {
			return configf("invalid helper name %q", name)
		}
		target, err := ident.Parse(args[1])
		if err != nil {
			return configf("helper %q target: %w", name, err)
		}
		return n.add(n.bound(name, target))
	default:
		return configf("install expects (%q), (%q) or (name, target); got %d arguments", "coerce", "from", len(args))
	}
}

func (n *Namespace) bound(name string, target ident.Name) *helperEntry {
	return &helperEntry{
		name:   name,
		target: target,
		helper: func(value any) (any, bool, error) {
			return n.svc.Coerce(string(target), value)
		},
	}
}

func (n *Namespace) add(entry *helperEntry) error {
	if _, exists := n.entries.LoadOrStore(entry.name, entry); exists {
		return configf("helper %q already installed", entry.name)
	}
	return nil
}

// Call invokes an installed helper by name. The generic "coerce" helper
// expects (target name, value); bound helpers expect the value alone.
// Unknown helpers and wrong arities are configuration errors.
func (n *Namespace) Call(name string, args ...any) (any, bool, error) {
	entry, ok := n.entries.Lookup(name)
	if !ok {
		return nil, false, configf("unknown helper %q", name)
	}
	if entry.generic {
		if len(args) != 2 {
			return nil, false, configf("helper %q expects (target, value); got %d arguments", name, len(args))
		}
		target, ok := args[0].(string)
		if !ok {
			return nil, false, configf("helper %q expects a string target; got %T", name, args[0])
		}
		return n.svc.Coerce(target, args[1])
	}
	if len(args) != 1 {
		return nil, false, configf("helper %q expects a single value; got %d arguments", name, len(args))
	}
	return entry.helper(args[0])
}

// Helper returns the bound helper installed under name. Generic helpers
// carry no fixed target and are reported as absent.
func (n *Namespace) Helper(name string) (Helper, bool) {
	entry, ok := n.entries.Lookup(name)
	if !ok || entry.generic {
		return nil, false
	}
	return entry.helper, true
}

// Names lists installed helper names, sorted.
func (n *Namespace) Names() []string {
	result := n.entries.Keys()
	sort.Strings(result)
	return result
}

// Owner returns the namespace owner type name, empty when anonymous.
func (n *Namespace) Owner() ident.Name { return n.owner }
