package improvecode

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"regexp"
	"strings"

	gh "github.com/google/go-github/v80/github"

	"github.com/spachava753/tutorials/internal/models"
)

const (
	// GeneratedManualsPath holds manuals rendered by tortilla on the
	// development branch.
	GeneratedManualsPath = "/.tortilla/manuals/"
	// StaticManualsPath holds manuals committed by hand in release revisions.
	StaticManualsPath = "/manuals/"

	DefaultWebBaseURL = "https://github.com"
)

// Func resolves an improve-this-code link against the given manuals base path.
type Func func(
	ctx context.Context,
	manualsBase string,
	tutorial *models.TutorialDefinition,
	patch models.Patch,
	filename string,
	stepNumber string,
	revision string,
	client *http.Client,
) (string, error)

// ManualsPath returns the manuals base path for a revision kind.
func ManualsPath(kind models.RevisionKind) string {
	if kind.IsDevelopment() {
		return GeneratedManualsPath
	}
	return StaticManualsPath
}

// TortillaURLResolver returns the resolver used by tortilla tutorials: the
// development branch and its history read generated manuals, every other
// revision reads static manuals. All arguments are handed to delegate as is.
// A nil delegate yields a nil resolver, which catalogs refuse to register.
func TortillaURLResolver(delegate Func) models.ImproveCodeURLFunc {
	if delegate == nil {
		return nil
	}
	return func(ctx context.Context, tutorial *models.TutorialDefinition, patch models.Patch, filename, stepNumber, revision string, client *http.Client) (string, error) {
		kind := models.ParseRevisionKind(revision)
		if kind == models.RevisionOther && tutorial != nil && !tutorial.HasRevision(revision) {
			slog.Debug("revision not in tutorial versions, using static manuals",
				"tutorial", tutorial.ID,
				"revision", revision)
		}
		return delegate(ctx, ManualsPath(kind), tutorial, patch, filename, stepNumber, revision, client)
	}
}

// Resolver builds improve-this-code links pointing at GitHub.
type Resolver struct {
	// APIBaseURL overrides the GitHub API endpoint. Empty means api.github.com.
	APIBaseURL string
	// WebBaseURL overrides the GitHub web host. Empty means DefaultWebBaseURL.
	WebBaseURL string
}

var defaultResolver = &Resolver{}

// Resolve resolves a link with the default GitHub endpoints.
func Resolve(ctx context.Context, manualsBase string, tutorial *models.TutorialDefinition, patch models.Patch, filename, stepNumber, revision string, client *http.Client) (string, error) {
	return defaultResolver.Resolve(ctx, manualsBase, tutorial, patch, filename, stepNumber, revision, client)
}

// Resolve implements Func.
//
// Manual pages (*.md) link to the editable step template under manualsBase if
// it exists at revision, and to the rendered step view otherwise. Code files
// link to the file at the patch commit, or at revision when there is none.
// Manual links on a commit hash revision are blob links since GitHub only
// edits files on branches.
func (r *Resolver) Resolve(ctx context.Context, manualsBase string, tutorial *models.TutorialDefinition, patch models.Patch, filename, stepNumber, revision string, client *http.Client) (string, error) {
	if !tutorial.ValidGitHub() {
		return "", fmt.Errorf("tutorial %q: invalid github repository %q", tutorial.ID, tutorial.GitHub)
	}

	if !isManual(filename) {
		ref := revision
		if patch != nil && patch.CommitSHA() != "" {
			ref = patch.CommitSHA()
		}
		return r.webURL(tutorial, "blob", ref, filename), nil
	}

	if stepNumber == "" {
		return "", fmt.Errorf("tutorial %q: step number required for manual %s", tutorial.ID, filename)
	}

	base := strings.TrimPrefix(manualsBase, "/")
	templatePath := path.Join(base, "templates", "step"+stepNumber+".tmpl")
	viewPath := path.Join(base, "views", "step"+stepNumber+".md")

	ghc, err := r.client(client)
	if err != nil {
		return "", err
	}

	slog.Debug("checking step template",
		"tutorial", tutorial.ID,
		"path", templatePath,
		"revision", revision)

	exists, err := fileExists(ctx, ghc, tutorial.Owner(), tutorial.Repo(), templatePath, revision)
	if err != nil {
		return "", fmt.Errorf("checking %s at %s: %w", templatePath, revision, err)
	}
	action := "edit"
	if isCommitHash(revision) {
		action = "blob"
	}
	if exists {
		return r.webURL(tutorial, action, revision, templatePath), nil
	}

	slog.Debug("step template missing, linking view", "tutorial", tutorial.ID, "path", viewPath)
	return r.webURL(tutorial, action, revision, viewPath), nil
}

func (r *Resolver) client(httpClient *http.Client) (*gh.Client, error) {
	c := gh.NewClient(httpClient)
	if r.APIBaseURL != "" {
		u, err := url.Parse(strings.TrimSuffix(r.APIBaseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("parsing api base url: %w", err)
		}
		c.BaseURL = u
	}
	return c, nil
}

func (r *Resolver) webURL(tutorial *models.TutorialDefinition, action, ref, filePath string) string {
	web := r.WebBaseURL
	if web == "" {
		web = DefaultWebBaseURL
	}
	return fmt.Sprintf("%s/%s/%s/%s/%s/%s",
		strings.TrimSuffix(web, "/"),
		tutorial.Owner(), tutorial.Repo(),
		action, ref,
		strings.TrimPrefix(filePath, "/"))
}

// fileExists reports whether filePath is a file at ref. A 404 is not an error.
func fileExists(ctx context.Context, c *gh.Client, owner, repo, filePath, ref string) (bool, error) {
	opts := &gh.RepositoryContentGetOptions{Ref: ref}
	file, _, resp, err := c.Repositories.GetContents(ctx, owner, repo, filePath, opts)
	if err != nil {
		var errResp *gh.ErrorResponse
		if errors.As(err, &errResp) && errResp.Response != nil && errResp.Response.StatusCode == http.StatusNotFound {
			return false, nil
		}
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return false, nil
		}
		return false, err
	}
	return file != nil, nil
}

var commitHashRe = regexp.MustCompile(`^[0-9a-f]{7,40}$`)

// isCommitHash reports whether revision looks like an abbreviated or full
// commit id rather than a branch name.
func isCommitHash(revision string) bool {
	return commitHashRe.MatchString(revision)
}

func isManual(filename string) bool {
	return strings.EqualFold(path.Ext(filename), ".md")
}
