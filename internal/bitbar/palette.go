package bitbar

// Palette holds the colors plugins use for titles and secondary text
type Palette struct {
	Inactive string
	Title    string
	Subtitle string
	Warning  string
}

// NewPalette returns the palette for the host's current appearance.
// darkMode mirrors the host's BitBarDarkMode environment variable.
func NewPalette(darkMode bool) Palette {
	title := "#000000"
	if darkMode {
		title = "#ffffff"
	}
	return Palette{
		Inactive: "#b4b4b4",
		Title:    title,
		Subtitle: "#586069",
		Warning:  "red",
	}
}
