package models

import (
	"context"
	"net/http"
	"sort"
	"strings"
)

// ImproveCodeURLFunc builds the "improve this code" link for a file shown in
// a tutorial step. The owning definition is passed explicitly.
type ImproveCodeURLFunc func(
	ctx context.Context,
	tutorial *TutorialDefinition,
	patch Patch,
	filename string,
	stepNumber string,
	revision string,
	client *http.Client,
) (string, error)

// TutorialDefinition is a catalog entry describing one interactive tutorial
// and its version history. Definitions are built once at startup and must
// not be mutated afterwards.
type TutorialDefinition struct {
	ID        string
	Name      string
	GitHub    string // owner/repo
	BaseRoute string

	ImproveCodeURLResolve ImproveCodeURLFunc

	// Git revision (branch or commit) => version content
	Versions map[string]Version
}

// ResolveImproveCodeURL calls the definition's resolver with itself as the
// owning tutorial.
func (t *TutorialDefinition) ResolveImproveCodeURL(ctx context.Context, patch Patch, filename, stepNumber, revision string, client *http.Client) (string, error) {
	return t.ImproveCodeURLResolve(ctx, t, patch, filename, stepNumber, revision, client)
}

// Owner returns the owner half of the GitHub reference.
func (t *TutorialDefinition) Owner() string {
	owner, _, _ := strings.Cut(t.GitHub, "/")
	return owner
}

// Repo returns the repository half of the GitHub reference.
func (t *TutorialDefinition) Repo() string {
	_, repo, _ := strings.Cut(t.GitHub, "/")
	return repo
}

// ValidGitHub reports whether GitHub is exactly owner/repo with both parts set.
func (t *TutorialDefinition) ValidGitHub() bool {
	owner, repo, ok := strings.Cut(t.GitHub, "/")
	return ok && owner != "" && repo != "" && !strings.Contains(repo, "/")
}

// HasRevision reports whether revision is a key of Versions.
func (t *TutorialDefinition) HasRevision(revision string) bool {
	_, ok := t.Versions[revision]
	return ok
}

// Revisions returns the Versions keys in sorted order.
func (t *TutorialDefinition) Revisions() []string {
	revs := make([]string, 0, len(t.Versions))
	for rev := range t.Versions {
		revs = append(revs, rev)
	}
	sort.Strings(revs)
	return revs
}
