// Package verify checks that every revision a tutorial lists in its versions
// map exists in the tutorial's GitHub repository.
package verify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/sync/errgroup"

	"github.com/spachava753/tutorials/internal/models"
)

// Result is the outcome of checking one revision.
type Result struct {
	TutorialID string            `json:"tutorial_id"`
	Revision   string            `json:"revision"`
	CommitSHA  string            `json:"commit_sha,omitempty"`
	Error      *models.ErrorType `json:"error,omitempty"`
	Message    string            `json:"message,omitempty"`
}

// OK reports whether the revision was found.
func (r Result) OK() bool {
	return r.Error == nil
}

// Verifier checks tutorial revisions against the GitHub API.
type Verifier struct {
	gh          *gh.Client
	concurrency int
}

// NewVerifier creates a Verifier. apiBaseURL may be empty for api.github.com.
func NewVerifier(client *http.Client, apiBaseURL string, concurrency int) (*Verifier, error) {
	c := gh.NewClient(client)
	if apiBaseURL != "" {
		u, err := url.Parse(strings.TrimSuffix(apiBaseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("parsing api base url: %w", err)
		}
		c.BaseURL = u
	}
	if concurrency < 1 {
		concurrency = 1
	}
	return &Verifier{gh: c, concurrency: concurrency}, nil
}

type check struct {
	tutorial *models.TutorialDefinition
	revision string
}

// Verify checks every (tutorial, revision) pair. Missing revisions and API
// failures are reported in the results; only a cancelled context returns an
// error. Results are sorted by tutorial id, then revision.
func (v *Verifier) Verify(ctx context.Context, tutorials []*models.TutorialDefinition) ([]Result, error) {
	var checks []check
	var results []Result
	for _, t := range tutorials {
		if !t.ValidGitHub() {
			results = append(results, failed(t.ID, "", models.ErrRepositoryInvalid,
				fmt.Sprintf("invalid github repository %q", t.GitHub)))
			continue
		}
		for _, rev := range t.Revisions() {
			checks = append(checks, check{tutorial: t, revision: rev})
		}
	}

	slog.Debug("verifying tutorial revisions",
		"tutorials", len(tutorials),
		"revisions", len(checks))

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(v.concurrency)
	for _, c := range checks {
		g.Go(func() error {
			res, err := v.verifyRevision(ctx, c.tutorial, c.revision)
			if err != nil {
				return err
			}
			mu.Lock()
			results = append(results, res)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].TutorialID != results[j].TutorialID {
			return results[i].TutorialID < results[j].TutorialID
		}
		return results[i].Revision < results[j].Revision
	})
	return results, nil
}

func (v *Verifier) verifyRevision(ctx context.Context, t *models.TutorialDefinition, revision string) (Result, error) {
	sha, resp, err := v.gh.Repositories.GetCommitSHA1(ctx, t.Owner(), t.Repo(), revision, "")
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Result{}, ctxErr
		}
		var errResp *gh.ErrorResponse
		notFound := resp != nil && (resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusUnprocessableEntity)
		if notFound || (errors.As(err, &errResp) && errResp.Response != nil && errResp.Response.StatusCode == http.StatusNotFound) {
			slog.Debug("revision not found", "tutorial", t.ID, "revision", revision)
			return failed(t.ID, revision, models.ErrRevisionNotFound,
				fmt.Sprintf("%s has no revision %q", t.GitHub, revision)), nil
		}
		slog.Debug("revision check failed", "tutorial", t.ID, "revision", revision, "error", err)
		return failed(t.ID, revision, models.ErrGitHubRequestFailed, err.Error()), nil
	}

	slog.Debug("revision found", "tutorial", t.ID, "revision", revision, "sha", sha)
	return Result{TutorialID: t.ID, Revision: revision, CommitSHA: sha}, nil
}

func failed(id, revision string, errType models.ErrorType, msg string) Result {
	return Result{
		TutorialID: id,
		Revision:   revision,
		Error:      &errType,
		Message:    msg,
	}
}
