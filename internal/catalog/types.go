package catalog

// Entry is a tutorial listed in a catalog.json file.
type Entry struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	GitHub    string            `json:"github"`
	BaseRoute string            `json:"base_route"`
	Versions  map[string]string `json:"versions"` // revision => version number
}
