// Package ident validates and manipulates dotted type identifiers.
package ident

import (
	"fmt"
	"strings"
)

// Name is a dotted type identifier such as "geom.Point". The segment before
// the last dot names the package-level namespace, the final segment the type
// itself. A Name produced by Parse is guaranteed to be well formed.
type Name string

// Parse validates text as a dotted identifier and returns it as a Name.
// A legal identifier consists of one or more dot-separated segments, each
// starting with a letter or underscore followed by letters, digits or
// underscores.
func Parse(text string) (Name, error) {
	if text == "" {
		return "", fmt.Errorf("empty type identifier")
	}
	for _, segment := range strings.Split(text, ".") {
		if !validSegment(segment) {
			return "", fmt.Errorf("invalid type identifier %q", text)
		}
	}
	return Name(text), nil
}

// Valid reports whether text parses as a type identifier.
func Valid(text string) bool {
	_, err := Parse(text)
	return err == nil
}

// ValidIdentifier reports whether text is a single undotted identifier
// segment, the form required for installed helper names.
func ValidIdentifier(text string) bool {
	return validSegment(text)
}

func validSegment(segment string) bool {
	if segment == "" {
		return false
	}
	for i, r := range segment {
		switch {
		case r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// Package returns the namespace portion of the identifier, empty for an
// undotted name.
func (n Name) Package() string {
	name := string(n)
	if idx := strings.LastIndex(name, "."); idx != -1 {
		return name[:idx]
	}
	return ""
}

// Local returns the final segment of the identifier.
func (n Name) Local() string {
	name := string(n)
	if idx := strings.LastIndex(name, "."); idx != -1 {
		return name[idx+1:]
	}
	return name
}

// Mangled returns the identifier with namespace separators replaced by
// underscores, producing a flat, collision-resistant form used in derived
// conversion method names.
func (n Name) Mangled() string {
	return strings.ReplaceAll(string(n), ".", "_")
}

func (n Name) String() string {
	return string(n)
}

// PushMethod derives the conventional name of a push conversion producing
// target. Independent packages arrive at the same name for the same target
// without coordinating.
func PushMethod(target Name) string {
	return "as_" + target.Mangled()
}

// PullMethod derives the conventional name of a pull conversion consuming
// source.
func PullMethod(source Name) string {
	return "from_" + source.Mangled()
}
