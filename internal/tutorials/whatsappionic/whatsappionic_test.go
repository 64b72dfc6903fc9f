package whatsappionic

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spachava753/tutorials/internal/models"
)

type call struct {
	base     string
	tutorial *models.TutorialDefinition
	patch    models.Patch
	filename string
	step     string
	revision string
	client   *http.Client
}

func recording(calls *[]call) func(context.Context, string, *models.TutorialDefinition, models.Patch, string, string, string, *http.Client) (string, error) {
	return func(_ context.Context, base string, tutorial *models.TutorialDefinition, patch models.Patch, filename, step, revision string, client *http.Client) (string, error) {
		*calls = append(*calls, call{base, tutorial, patch, filename, step, revision, client})
		return base + filename, nil
	}
}

func TestDefinitionIdentity(t *testing.T) {
	var calls []call
	def, err := Definition(recording(&calls))
	require.NoError(t, err)

	assert.Equal(t, "whatsapp2-ionic-tutorial", def.ID)
	assert.Equal(t, "WhatsApp Clone with Meteor and Ionic 2 CLI", def.Name)
	assert.Equal(t, "Urigo/Ionic2CLI-Meteor-WhatsApp", def.GitHub)
	assert.Equal(t, "ionic", def.BaseRoute)
	assert.NotNil(t, def.ImproveCodeURLResolve)
}

func TestDefinitionNilDelegate(t *testing.T) {
	_, err := Definition(nil)
	assert.Error(t, err)
}

func TestDefinitionVersions(t *testing.T) {
	var calls []call
	def, err := Definition(recording(&calls))
	require.NoError(t, err)

	require.Len(t, def.Versions, 3)

	want := map[string]string{
		"master": "3.0.0",
		"legacy": "1.0.0",
		"00975428ffa239ce4229b29a60ddcb934d2735f3": "2.0.0",
	}
	seen := make(map[models.Version]bool)
	for rev, number := range want {
		v, ok := def.Versions[rev]
		require.True(t, ok, "missing revision %s", rev)
		require.NotNil(t, v)
		assert.Equal(t, number, v.Number())
		assert.False(t, seen[v], "version object for %s is shared", rev)
		seen[v] = true
	}

	master := def.Versions["master"].(*models.Manual)
	assert.NotEmpty(t, master.Steps)
}

func TestResolveImproveCodeURL_BasePath(t *testing.T) {
	tests := []struct {
		revision string
		wantBase string
	}{
		{"master", "/.tortilla/manuals/"},
		{"master-history", "/.tortilla/manuals/"},
		{"legacy", "/manuals/"},
		{"00975428ffa239ce4229b29a60ddcb934d2735f3", "/manuals/"},
		{"", "/manuals/"},
		{"some-branch", "/manuals/"},
	}

	for _, tt := range tests {
		t.Run(tt.revision, func(t *testing.T) {
			var calls []call
			def, err := Definition(recording(&calls))
			require.NoError(t, err)

			_, err = def.ResolveImproveCodeURL(context.Background(), nil, "README.md", "1", tt.revision, nil)
			require.NoError(t, err)
			require.Len(t, calls, 1)
			assert.Equal(t, tt.wantBase, calls[0].base)
		})
	}
}

func TestResolveImproveCodeURL_LegacyReadme(t *testing.T) {
	var calls []call
	def, err := Definition(recording(&calls))
	require.NoError(t, err)

	patch := models.ParsedPatch{SHA: "1234abcd", Subject: "Step 3: Realtime Meteor server"}
	client := &http.Client{}

	got, err := def.ImproveCodeURLResolve(context.Background(), def, patch, "README.md", "3", "legacy", client)
	require.NoError(t, err)
	assert.Equal(t, "/manuals/README.md", got)

	require.Len(t, calls, 1)
	c := calls[0]
	assert.Equal(t, "/manuals/", c.base)
	assert.Same(t, def, c.tutorial)
	assert.Equal(t, patch, c.patch)
	assert.Equal(t, "README.md", c.filename)
	assert.Equal(t, "3", c.step)
	assert.Equal(t, "legacy", c.revision)
	assert.Same(t, client, c.client)
}

func TestResolveImproveCodeURL_Idempotent(t *testing.T) {
	var calls []call
	def, err := Definition(recording(&calls))
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err := def.ResolveImproveCodeURL(context.Background(), nil, "src/app/app.component.ts", "2", "master", nil)
		require.NoError(t, err)
	}

	require.Len(t, calls, 2)
	assert.Equal(t, calls[0], calls[1])
}
