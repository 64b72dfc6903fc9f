package models

// Patch is a parsed tutorial step diff. Resolvers only need the commit it
// was taken from and the files it touches.
type Patch interface {
	CommitSHA() string
	Files() []string
}

// ParsedPatch is a plain Patch value.
type ParsedPatch struct {
	SHA     string   `json:"sha,omitempty"`
	Subject string   `json:"subject,omitempty"`
	Paths   []string `json:"files,omitempty"`
}

func (p ParsedPatch) CommitSHA() string { return p.SHA }

func (p ParsedPatch) Files() []string { return p.Paths }
