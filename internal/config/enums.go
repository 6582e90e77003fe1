package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Every option below is a closed enumeration. Each type implements
// pflag.Value (String, Set, Type) so cobra rejects unknown values while
// parsing, and yaml.Unmarshaler so the defaults file is checked the same way.

// parseEnum returns the index of s in names.
func parseEnum(names []string, s string) (int, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for i, name := range names {
		if name == normalized {
			return i, nil
		}
	}
	return 0, fmt.Errorf("must be one of: %s", strings.Join(names, ", "))
}

func enumName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return "unknown"
	}
	return names[i]
}

// Policy is the always/auto/never switch used by --classify, --color and --icons.
type Policy int

const (
	PolicyAlways Policy = iota
	PolicyAuto
	PolicyNever
)

var policyNames = []string{"always", "auto", "never"}

func (p Policy) String() string { return enumName(policyNames, int(p)) }

// Set implements pflag.Value.
func (p *Policy) Set(s string) error {
	v, err := parseEnum(policyNames, s)
	if err != nil {
		return err
	}
	*p = Policy(v)
	return nil
}

// Type implements pflag.Value.
func (p Policy) Type() string { return "always|auto|never" }

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Policy) UnmarshalYAML(n *yaml.Node) error { return p.Set(n.Value) }

// Resolve collapses the policy to a boolean; auto defers to interactive.
func (p Policy) Resolve(interactive bool) bool {
	switch p {
	case PolicyAlways:
		return true
	case PolicyAuto:
		return interactive
	default:
		return false
	}
}

// SortKey selects the ordering of entries.
type SortKey int

const (
	SortName SortKey = iota
	SortSize
	SortTime
)

var sortKeyNames = []string{"name", "size", "time"}

func (k SortKey) String() string { return enumName(sortKeyNames, int(k)) }

// Set implements pflag.Value.
func (k *SortKey) Set(s string) error {
	v, err := parseEnum(sortKeyNames, s)
	if err != nil {
		return err
	}
	*k = SortKey(v)
	return nil
}

// Type implements pflag.Value.
func (k SortKey) Type() string { return "name|size|time" }

// UnmarshalYAML implements yaml.Unmarshaler.
func (k *SortKey) UnmarshalYAML(n *yaml.Node) error { return k.Set(n.Value) }

// DisplayMode selects the layout renderer.
type DisplayMode int

const (
	ModeOneLine DisplayMode = iota
	ModeLong
	ModeGrid
	ModeTree
)

var displayModeNames = []string{"oneline", "long", "grid", "tree"}

func (m DisplayMode) String() string { return enumName(displayModeNames, int(m)) }

// Set implements pflag.Value.
func (m *DisplayMode) Set(s string) error {
	v, err := parseEnum(displayModeNames, s)
	if err != nil {
		return err
	}
	*m = DisplayMode(v)
	return nil
}

// Type implements pflag.Value.
func (m DisplayMode) Type() string { return "oneline|long|grid|tree" }

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *DisplayMode) UnmarshalYAML(n *yaml.Node) error { return m.Set(n.Value) }

// ColorScale selects which attribute drives scale coloring.
type ColorScale int

const (
	ScaleNone ColorScale = iota
	ScaleAge
	ScaleSize
	ScaleAll
)

var colorScaleNames = []string{"none", "age", "size", "all"}

func (c ColorScale) String() string { return enumName(colorScaleNames, int(c)) }

// Set implements pflag.Value.
func (c *ColorScale) Set(s string) error {
	v, err := parseEnum(colorScaleNames, s)
	if err != nil {
		return err
	}
	*c = ColorScale(v)
	return nil
}

// Type implements pflag.Value.
func (c ColorScale) Type() string { return "all|age|size" }

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *ColorScale) UnmarshalYAML(n *yaml.Node) error { return c.Set(n.Value) }

// HasAge reports whether age coloring is active.
func (c ColorScale) HasAge() bool { return c == ScaleAge || c == ScaleAll }

// HasSize reports whether size coloring is active.
func (c ColorScale) HasSize() bool { return c == ScaleSize || c == ScaleAll }

// ScaleMode selects bucketed or continuous scale colors.
type ScaleMode int

const (
	ScaleFixed ScaleMode = iota
	ScaleGradient
)

var scaleModeNames = []string{"fixed", "gradient"}

func (m ScaleMode) String() string { return enumName(scaleModeNames, int(m)) }

// Set implements pflag.Value.
func (m *ScaleMode) Set(s string) error {
	v, err := parseEnum(scaleModeNames, s)
	if err != nil {
		return err
	}
	*m = ScaleMode(v)
	return nil
}

// Type implements pflag.Value.
func (m ScaleMode) Type() string { return "fixed|gradient" }

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *ScaleMode) UnmarshalYAML(n *yaml.Node) error { return m.Set(n.Value) }

// AbsolutePolicy controls how display paths are resolved.
type AbsolutePolicy int

const (
	AbsoluteOff AbsolutePolicy = iota
	AbsoluteOn
	AbsoluteFollow
)

var absolutePolicyNames = []string{"off", "on", "follow"}

func (a AbsolutePolicy) String() string { return enumName(absolutePolicyNames, int(a)) }

// Set implements pflag.Value.
func (a *AbsolutePolicy) Set(s string) error {
	v, err := parseEnum(absolutePolicyNames, s)
	if err != nil {
		return err
	}
	*a = AbsolutePolicy(v)
	return nil
}

// Type implements pflag.Value.
func (a AbsolutePolicy) Type() string { return "on|follow|off" }

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *AbsolutePolicy) UnmarshalYAML(n *yaml.Node) error { return a.Set(n.Value) }

// FillDirection is the grid packing order.
type FillDirection int

const (
	// FillDown fills column by column.
	FillDown FillDirection = iota
	// FillAcross fills row by row.
	FillAcross
)

var fillDirectionNames = []string{"down", "across"}

func (f FillDirection) String() string { return enumName(fillDirectionNames, int(f)) }

// Set implements pflag.Value.
func (f *FillDirection) Set(s string) error {
	v, err := parseEnum(fillDirectionNames, s)
	if err != nil {
		return err
	}
	*f = FillDirection(v)
	return nil
}

// Type implements pflag.Value.
func (f FillDirection) Type() string { return "down|across" }

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *FillDirection) UnmarshalYAML(n *yaml.Node) error { return f.Set(n.Value) }
