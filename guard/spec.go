package guard

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Pattern spec kinds accepted in configuration files.
const (
	KindPrefix = "prefix"
	KindSuffix = "suffix"
	KindNames  = "names"
	KindRegexp = "regexp"
)

var (
	ErrUnknownPatternKind = errors.New("unknown pattern kind")
	ErrEmptyPattern       = errors.New("pattern spec has no parameters for its kind")
)

// Spec is the data form of a pattern as written in YAML configuration.
// Exactly the fields relevant to Kind must be set; Compile validates this.
type Spec struct {
	// Kind selects the pattern type: prefix, suffix, names, or regexp.
	// An empty kind compiles to the default pattern.
	Kind string `yaml:"kind,omitempty"`

	// Marker is the leading marker character for prefix patterns.
	// Defaults to "_" when omitted.
	Marker string `yaml:"marker,omitempty"`

	// Suffix is the trailing string for suffix patterns.
	Suffix string `yaml:"suffix,omitempty"`

	// Names lists explicitly restricted member names.
	Names []string `yaml:"names,omitempty"`

	// Expr is the regular expression for regexp patterns. It is anchored
	// to the whole member name.
	Expr string `yaml:"expr,omitempty"`
}

// Compile turns the spec into a Pattern.
func (s Spec) Compile() (Pattern, error) {
	switch s.Kind {
	case "":
		return Default(), nil

	case KindPrefix:
		if s.Marker == "" {
			return Default(), nil
		}

		marker, size := utf8.DecodeRuneInString(s.Marker)
		if size != len(s.Marker) {
			return nil, fmt.Errorf("prefix marker %q: %w", s.Marker, errMarkerNotSingleRune)
		}

		return Prefix{Marker: marker}, nil

	case KindSuffix:
		if s.Suffix == "" {
			return nil, fmt.Errorf("suffix pattern: %w", ErrEmptyPattern)
		}

		return Suffix{Suffix: s.Suffix}, nil

	case KindNames:
		if len(s.Names) == 0 {
			return nil, fmt.Errorf("names pattern: %w", ErrEmptyPattern)
		}

		return ByName(s.Names...), nil

	case KindRegexp:
		if s.Expr == "" {
			return nil, fmt.Errorf("regexp pattern: %w", ErrEmptyPattern)
		}

		p, err := ByExpr(s.Expr)
		if err != nil {
			return nil, fmt.Errorf("regexp pattern %q: %w", s.Expr, err)
		}

		return p, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPatternKind, s.Kind)
	}
}

var errMarkerNotSingleRune = errors.New("marker must be a single character")
