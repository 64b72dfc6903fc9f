package models

// Version is the content of a tutorial at one revision. Catalog code never
// looks inside it beyond the version number.
type Version interface {
	Number() string
}

// Step is one chapter of a tutorial manual.
type Step struct {
	Number string `toml:"number" json:"number"`
	Title  string `toml:"title" json:"title"`
}

// Manual is the Version implementation used by tortilla tutorials.
type Manual struct {
	Version     string `toml:"version" json:"version"`
	Description string `toml:"description,omitempty" json:"description,omitempty"`
	Steps       []Step `toml:"steps" json:"steps,omitempty"`
}

func (m *Manual) Number() string { return m.Version }

// Step returns the step with the given number, or nil.
func (m *Manual) Step(number string) *Step {
	for i := range m.Steps {
		if m.Steps[i].Number == number {
			return &m.Steps[i]
		}
	}
	return nil
}
