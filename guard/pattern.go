package guard

import (
	"regexp"
	"sort"
	"strings"
)

// DefaultMarker is the leading marker character recognized by the default
// pattern.
const DefaultMarker = '_'

// Pattern decides membership in the restricted set. Implementations must
// be pure, deterministic and total over the space of member names; a
// pattern is data fixed at wrap time, never re-evaluated with different
// results for the same wrapped value.
type Pattern interface {
	// Matches reports whether the named member is restricted.
	Matches(name string) bool

	// String returns a canonical description of the pattern. Two patterns
	// with equal strings classify identically; the string doubles as a
	// memoization key component.
	String() string
}

// Prefix restricts members whose name begins with Marker.
type Prefix struct {
	Marker rune
}

// Default returns the default pattern: a leading DefaultMarker character.
func Default() Pattern {
	return Prefix{Marker: DefaultMarker}
}

// Matches reports whether name begins with the marker character.
func (p Prefix) Matches(name string) bool {
	return strings.HasPrefix(name, string(p.Marker))
}

func (p Prefix) String() string {
	return "prefix(" + string(p.Marker) + ")"
}

// Suffix restricts members whose name ends with the given suffix.
type Suffix struct {
	Suffix string
}

// Matches reports whether name ends with the suffix. An empty suffix
// matches nothing rather than everything.
func (p Suffix) Matches(name string) bool {
	return p.Suffix != "" && strings.HasSuffix(name, p.Suffix)
}

func (p Suffix) String() string {
	return "suffix(" + p.Suffix + ")"
}

// Names restricts an explicit set of member names.
type Names struct {
	names map[string]struct{}
}

// ByName builds a Names pattern from the given member names.
func ByName(names ...string) Names {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}

	return Names{names: set}
}

// Matches reports whether name is in the explicit set.
func (p Names) Matches(name string) bool {
	_, ok := p.names[name]
	return ok
}

func (p Names) String() string {
	sorted := make([]string, 0, len(p.names))
	for n := range p.names {
		sorted = append(sorted, n)
	}

	sort.Strings(sorted)

	return "names(" + strings.Join(sorted, ",") + ")"
}

// Regexp restricts members whose full name matches the expression.
type Regexp struct {
	re *regexp.Regexp
}

// ByExpr compiles expr into a Regexp pattern. The expression is anchored
// so that it must match the whole member name.
func ByExpr(expr string) (Regexp, error) {
	re, err := regexp.Compile("^(?:" + expr + ")$")
	if err != nil {
		return Regexp{}, err
	}

	return Regexp{re: re}, nil
}

// Matches reports whether the whole name matches the expression.
func (p Regexp) Matches(name string) bool {
	return p.re != nil && p.re.MatchString(name)
}

func (p Regexp) String() string {
	if p.re == nil {
		return "regexp()"
	}

	return "regexp(" + p.re.String() + ")"
}
