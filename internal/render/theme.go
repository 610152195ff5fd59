package render

import "fmt"

// HeaderStyle selects the section-heading decoration rules used by the
// LaTeX template builder.
type HeaderStyle string

const (
	HeaderModern     HeaderStyle = "modern"
	HeaderVintage    HeaderStyle = "vintage"
	HeaderMinimalist HeaderStyle = "minimalist"
)

// RGB is a color with components in [0, 1].
type RGB struct {
	R, G, B float64
}

// LaTeX renders the color the way \definecolor{...}{rgb}{...} expects it.
func (c RGB) LaTeX() string {
	return fmt.Sprintf("%.2f, %.2f, %.2f", c.R, c.G, c.B)
}

// Bytes converts the color to 0-255 components for the library renderer.
func (c RGB) Bytes() (int, int, int) {
	return int(c.R*255 + 0.5), int(c.G*255 + 0.5), int(c.B*255 + 0.5)
}

// Theme is a fixed visual configuration selectable by the caller.
type Theme struct {
	ID          string
	Name        string
	Primary     RGB
	Secondary   RGB
	Accent      RGB
	Geometry    string
	FontPackage string
	HeaderStyle HeaderStyle
}

var themes = map[string]Theme{
	"modern": {
		ID:          "modern",
		Name:        "Modern Professional",
		Primary:     RGB{0.15, 0.39, 0.92}, // #2563eb
		Secondary:   RGB{0.49, 0.23, 0.93}, // #7c3aed
		Accent:      RGB{0.02, 0.59, 0.41}, // #059669
		Geometry:    "top=2cm, bottom=2cm, left=2.5cm, right=2.5cm",
		FontPackage: `\usepackage{lmodern}`,
		HeaderStyle: HeaderModern,
	},
	"vintage": {
		ID:          "vintage",
		Name:        "Vintage Explorer",
		Primary:     RGB{0.57, 0.25, 0.05}, // #92400e
		Secondary:   RGB{0.71, 0.32, 0.04}, // #b45309
		Accent:      RGB{0.02, 0.37, 0.27}, // #065f46
		Geometry:    "top=2.5cm, bottom=2.5cm, left=3cm, right=3cm",
		FontPackage: `\usepackage{mathptmx}`,
		HeaderStyle: HeaderVintage,
	},
	"minimalist": {
		ID:          "minimalist",
		Name:        "Minimalist Zen",
		Primary:     RGB{0.22, 0.25, 0.32}, // #374151
		Secondary:   RGB{0.42, 0.45, 0.50}, // #6b7280
		Accent:      RGB{0.05, 0.65, 0.91}, // #0ea5e9
		Geometry:    "top=2cm, bottom=2cm, left=2cm, right=2cm",
		FontPackage: `\usepackage{helvet}\renewcommand{\familydefault}{\sfdefault}`,
		HeaderStyle: HeaderMinimalist,
	},
}

// ThemeByID resolves a theme identifier. Unknown identifiers resolve to the
// modern theme, never to an error.
func ThemeByID(id string) Theme {
	if t, ok := themes[id]; ok {
		return t
	}
	return themes["modern"]
}
