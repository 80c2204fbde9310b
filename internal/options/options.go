package options

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// Options is an ordered set of p4 command line switches. Each key is a switch as
// p4 expects it (ie "-c", "-Rs", "--parallel"), and each value is either the
// switch's argument, or nil for switches that take no argument.
//
// Switches are kept in the order they were first set, which is the order they are
// rendered by Args and String.
type Options struct {
	m *orderedmap.OrderedMap[string, *string]
}

func New() *Options {
	return &Options{m: orderedmap.New[string, *string]()}
}

// Set adds a switch that takes no argument.
func (o *Options) Set(sw string) {
	o.lazyInit()
	o.m.Set(sw, nil)
}

// SetValue adds a switch with an argument. If the switch was already set, its value
// is replaced but its position is kept.
func (o *Options) SetValue(sw, value string) {
	o.lazyInit()
	v := value
	o.m.Set(sw, &v)
}

// Get returns the argument for the given switch. hasValue is false for switches that
// take no argument, and ok is false if the switch is not set at all.
func (o *Options) Get(sw string) (value string, hasValue bool, ok bool) {
	if o == nil || o.m == nil {
		return "", false, false
	}
	v, ok := o.m.Get(sw)
	if !ok {
		return "", false, false
	}
	if v == nil {
		return "", false, true
	}
	return *v, true, true
}

func (o *Options) Has(sw string) bool {
	_, _, ok := o.Get(sw)
	return ok
}

func (o *Options) Delete(sw string) {
	if o == nil || o.m == nil {
		return
	}
	o.m.Delete(sw)
}

// Clear removes every switch.
func (o *Options) Clear() {
	o.m = orderedmap.New[string, *string]()
}

func (o *Options) Len() int {
	if o == nil || o.m == nil {
		return 0
	}
	return o.m.Len()
}

// Keys returns the switches in order.
func (o *Options) Keys() []string {
	out := make([]string, 0, o.Len())
	o.each(func(sw string, _ *string) {
		out = append(out, sw)
	})
	return out
}

// Args flattens the switches into the tokens passed to p4: each switch, followed by
// its argument if it has one.
func (o *Options) Args() []string {
	out := make([]string, 0, o.Len()*2)
	o.each(func(sw string, v *string) {
		out = append(out, sw)
		if v != nil {
			out = append(out, *v)
		}
	})
	return out
}

// String renders the switches as they would be typed on a command line.
func (o *Options) String() string {
	args := o.Args()
	for i := range args {
		args[i] = QuoteArg(args[i])
	}
	return strings.Join(args, " ")
}

// Equal reports whether both hold the same switches and values, in the same order.
func (o *Options) Equal(other *Options) bool {
	if o.Len() != other.Len() {
		return false
	}
	if o.Len() == 0 {
		return true
	}
	a, b := o.m.Oldest(), other.m.Oldest()
	for a != nil && b != nil {
		if a.Key != b.Key {
			return false
		}
		if (a.Value == nil) != (b.Value == nil) {
			return false
		}
		if a.Value != nil && *a.Value != *b.Value {
			return false
		}
		a, b = a.Next(), b.Next()
	}
	return true
}

func (o *Options) Clone() *Options {
	out := New()
	out.Merge(o)
	return out
}

// Merge sets every switch from other onto o, in other's order.
func (o *Options) Merge(other *Options) {
	other.each(func(sw string, v *string) {
		if v == nil {
			o.Set(sw)
		} else {
			o.SetValue(sw, *v)
		}
	})
}

// MarshalJSON writes the switches as a JSON object in order, with null for switches
// that take no argument.
func (o *Options) MarshalJSON() ([]byte, error) {
	if o == nil || o.m == nil {
		return []byte("{}"), nil
	}
	return o.m.MarshalJSON()
}

// MarshalYAML writes the switches as a YAML mapping in order.
func (o *Options) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	o.each(func(sw string, v *string) {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: sw}
		val := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
		if v != nil {
			val = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: *v}
		}
		node.Content = append(node.Content, key, val)
	})
	return node, nil
}

// QuoteArg makes a token survive the command line parser used by bsh, which splits
// on spaces and tabs, keeps everything between matching ' or " quotes (with no
// escapes inside them), and treats a backslash outside quotes as an escape.
// Tokens without whitespace, backslashes or quotes are returned unchanged.
//
// A token holding both kinds of quote can't be wrapped in either, so its special
// characters are backslash-escaped instead. That form needs at least one ordinary
// character in the token, since the parser only starts a new token on one.
func QuoteArg(s string) string {
	switch {
	case len(s) == 0:
		return `""`
	case !strings.ContainsAny(s, " \t\n\r\\'\""):
		return s
	case !strings.Contains(s, `"`):
		return `"` + s + `"`
	case !strings.Contains(s, "'"):
		return "'" + s + "'"
	}

	var b strings.Builder
	b.Grow(len(s) * 2)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\\', '\'', '"':
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// helpers

func (o *Options) lazyInit() {
	if o.m == nil {
		o.m = orderedmap.New[string, *string]()
	}
}

func (o *Options) each(fn func(sw string, v *string)) {
	if o == nil || o.m == nil {
		return
	}
	for pair := o.m.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}
