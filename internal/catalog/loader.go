package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spachava753/tutorials/internal/improvecode"
	"github.com/spachava753/tutorials/internal/models"
)

// LoadFromPath loads a catalog.json from a local filesystem path.
func LoadFromPath(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	return parseEntries(data)
}

// LoadFromURL loads a catalog.json from a remote URL.
func LoadFromURL(ctx context.Context, client *http.Client, url string) ([]Entry, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching catalog: HTTP %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return parseEntries(data)
}

func parseEntries(data []byte) ([]Entry, error) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing catalog JSON: %w", err)
	}
	return entries, nil
}

// FindEntry searches for an entry by id in a list of catalog entries.
func FindEntry(entries []Entry, id string) (*Entry, error) {
	for i := range entries {
		if entries[i].ID == id {
			return &entries[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q not in catalog listing", ErrNotFound, id)
}

// Definition converts the entry into a tortilla tutorial definition whose
// links are resolved by delegate.
func (e Entry) Definition(delegate improvecode.Func) *models.TutorialDefinition {
	versions := make(map[string]models.Version, len(e.Versions))
	for rev, number := range e.Versions {
		versions[rev] = &models.Manual{Version: number}
	}

	return &models.TutorialDefinition{
		ID:                    e.ID,
		Name:                  e.Name,
		GitHub:                e.GitHub,
		BaseRoute:             e.BaseRoute,
		ImproveCodeURLResolve: improvecode.TortillaURLResolver(delegate),
		Versions:              versions,
	}
}

// RegisterEntries registers every entry in c, stopping at the first error.
func RegisterEntries(c *Catalog, entries []Entry, delegate improvecode.Func) error {
	if delegate == nil {
		return errors.New("registering catalog entries: improve-code delegate is nil")
	}
	for _, e := range entries {
		if err := c.Register(e.Definition(delegate)); err != nil {
			return fmt.Errorf("registering %q: %w", e.ID, err)
		}
	}
	return nil
}
