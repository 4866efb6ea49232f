package catalog

// Restaurant is one entry of the restaurant catalog.
type Restaurant struct {
	Name    string
	Cuisine string
	Budget  string // cheap | medium | expensive
	Zone    string
}

// Activity is one entry of the leisure-activity catalog. All activities are
// local to the Calafell area (Segur de Calafell, Calafell, Cunit, Comarruga).
type Activity struct {
	Name        string
	GroupType   string // family | friends | couple
	Zone        string
	Description string
}

// PropertyFacts holds the per-apartment knowledge used to answer
// informational questions.
type PropertyFacts struct {
	Name       string
	Facilities map[string]string
	Rules      []string
	Penalties  []string
}
