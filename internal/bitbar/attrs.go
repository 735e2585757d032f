package bitbar

import "strconv"

// Color sets the text color (hex or a named color).
func Color(c string) Attr { return Attr{Key: "color", Value: c} }

// Size sets the font size in points.
func Size(n int) Attr { return Attr{Key: "size", Value: strconv.Itoa(n)} }

// Href makes the line clickable.
func Href(url string) Attr { return Attr{Key: "href", Value: url} }

// Trim controls whether the host strips leading/trailing whitespace.
func Trim(b bool) Attr {
	if b {
		return Attr{Key: "trim", Value: "True"}
	}
	return Attr{Key: "trim", Value: "False"}
}
