package verify

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/spachava753/tutorials/internal/improvecode"
	"github.com/spachava753/tutorials/internal/models"
	"github.com/spachava753/tutorials/internal/tutorials/whatsappionic"
)

// TestVerifyIntegration checks the whatsapp tutorial revisions against the
// real GitHub API. Skipped with -short since it requires network access.
func TestVerifyIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	def, err := whatsappionic.Definition(improvecode.Resolve)
	if err != nil {
		t.Fatalf("Definition: %v", err)
	}

	v, err := NewVerifier(&http.Client{Timeout: 30 * time.Second}, "", 2)
	if err != nil {
		t.Fatalf("NewVerifier: %v", err)
	}

	results, err := v.Verify(context.Background(), []*models.TutorialDefinition{def})
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}

	if len(results) != len(def.Versions) {
		t.Errorf("expected %d results, got %d", len(def.Versions), len(results))
	}

	for _, r := range results {
		switch {
		case r.OK():
			t.Logf("revision %s => %s", r.Revision, r.CommitSHA)
		case *r.Error == models.ErrGitHubRequestFailed:
			// Unauthenticated requests are easily rate limited
			t.Logf("revision %s not checked: %s", r.Revision, r.Message)
		default:
			t.Errorf("revision %s: %s: %s", r.Revision, *r.Error, r.Message)
		}
	}
}
