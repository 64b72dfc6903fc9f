// Package whatsappionic registers the "WhatsApp Clone with Meteor and Ionic 2
// CLI" tutorial.
package whatsappionic

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/spachava753/tutorials/internal/config"
	"github.com/spachava753/tutorials/internal/improvecode"
	"github.com/spachava753/tutorials/internal/models"
)

const (
	ID        = "whatsapp2-ionic-tutorial"
	Name      = "WhatsApp Clone with Meteor and Ionic 2 CLI"
	GitHub    = "Urigo/Ionic2CLI-Meteor-WhatsApp"
	BaseRoute = "ionic"

	// LegacyRevision is the branch carrying the 1.0.0 tutorial.
	LegacyRevision = "legacy"
	// V2Revision is the last commit of the 2.0.0 tutorial.
	V2Revision = "00975428ffa239ce4229b29a60ddcb934d2735f3"
)

//go:embed versions/*.toml
var manifests embed.FS

// revisions maps git revision => version manifest.
var revisions = map[string]string{
	models.MasterRevision: "3.0.0.toml",
	LegacyRevision:        "1.0.0.toml",
	V2Revision:            "2.0.0.toml",
}

// Definition builds the tutorial entry. Links resolve through delegate, which
// receives the generated manuals path for master and master-history and the
// static manuals path for every other revision.
func Definition(delegate improvecode.Func) (*models.TutorialDefinition, error) {
	if delegate == nil {
		return nil, errors.New("improve-code delegate is nil")
	}

	fsys, err := fs.Sub(manifests, "versions")
	if err != nil {
		return nil, fmt.Errorf("opening version manifests: %w", err)
	}

	versions := make(map[string]models.Version, len(revisions))
	for rev, name := range revisions {
		m, err := config.LoadVersionManifest(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("loading %s version: %w", rev, err)
		}
		versions[rev] = m
	}

	return &models.TutorialDefinition{
		ID:                    ID,
		Name:                  Name,
		GitHub:                GitHub,
		BaseRoute:             BaseRoute,
		ImproveCodeURLResolve: improvecode.TortillaURLResolver(delegate),
		Versions:              versions,
	}, nil
}
