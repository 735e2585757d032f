package bitbar

import "strings"

// Separator is the host-recognized section break.
const Separator = "---"

// Attr is a single key=value styling parameter understood by the host.
type Attr struct {
	Key   string
	Value string
}

// Attrs is an ordered list of styling parameters. Order is preserved on output.
type Attrs []Attr

// Get returns the value for key and whether it was present
func (a Attrs) Get(key string) (string, bool) {
	for _, attr := range a {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// Line is one line of plugin output
type Line struct {
	Text  string
	Attrs Attrs
}

// String serializes the line as `text | k=v k=v`, or the bare text when there
// are no attributes.
func (l Line) String() string {
	if len(l.Attrs) == 0 {
		return l.Text
	}
	params := make([]string, 0, len(l.Attrs))
	for _, attr := range l.Attrs {
		params = append(params, attr.Key+"="+attr.Value)
	}
	return l.Text + " | " + strings.Join(params, " ")
}

// IsSeparator reports whether the line is a bare section break
func (l Line) IsSeparator() bool {
	return l.Text == Separator && len(l.Attrs) == 0
}
