// Package tutorials builds the catalog of built-in tutorials.
package tutorials

import (
	"fmt"

	"github.com/spachava753/tutorials/internal/catalog"
	"github.com/spachava753/tutorials/internal/improvecode"
	"github.com/spachava753/tutorials/internal/models"
	"github.com/spachava753/tutorials/internal/tutorials/whatsappionic"
)

// builtins lists every built-in tutorial in registration order.
var builtins = []func(improvecode.Func) (*models.TutorialDefinition, error){
	whatsappionic.Definition,
}

// NewCatalog returns a catalog holding every built-in tutorial, resolving
// improve-this-code links through delegate.
func NewCatalog(delegate improvecode.Func) (*catalog.Catalog, error) {
	c := catalog.New()
	for _, build := range builtins {
		def, err := build(delegate)
		if err != nil {
			return nil, fmt.Errorf("building tutorial: %w", err)
		}
		if err := c.Register(def); err != nil {
			return nil, err
		}
	}
	return c, nil
}
