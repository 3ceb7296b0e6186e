// Package trades infers a trade category from free-text job descriptions and holds the
// static per-trade pricing reference data used to seed quotes.
package trades

// Type is a coarse occupational category.
type Type string

const (
	Gardening  Type = "gardening"
	Plumbing   Type = "plumbing"
	Electrical Type = "electrical"
	Painting   Type = "painting"
	Handyman   Type = "handyman"
	Roofing    Type = "roofing"
	Carpentry  Type = "carpentry"
	Concrete   Type = "concrete"
	Other      Type = "other"
)

// All lists every trade in declaration order. Detection ties resolve to the trade that
// appears first here.
var All = []Type{Gardening, Plumbing, Electrical, Painting, Handyman, Roofing, Carpentry, Concrete, Other}

// Valid reports whether t is one of the declared trades.
func (t Type) Valid() bool {
	for _, known := range All {
		if t == known {
			return true
		}
	}
	return false
}

// Parse converts a string into a trade, reporting false for unknown values.
func Parse(s string) (Type, bool) {
	t := Type(s)
	return t, t.Valid()
}

// Title returns the display name ("Plumbing") of t.
func (t Type) Title() string {
	if t == "" {
		return ""
	}
	s := string(t)
	return string(s[0]-'a'+'A') + s[1:]
}
