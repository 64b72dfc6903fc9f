package tutorials

import (
	"testing"

	"github.com/spachava753/tutorials/internal/improvecode"
	"github.com/spachava753/tutorials/internal/tutorials/whatsappionic"
)

func TestNewCatalog(t *testing.T) {
	c, err := NewCatalog(improvecode.Resolve)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	if c.Len() != len(builtins) {
		t.Errorf("expected %d tutorials, got %d", len(builtins), c.Len())
	}

	def, err := c.Get(whatsappionic.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if def.GitHub != whatsappionic.GitHub {
		t.Errorf("unexpected github %q", def.GitHub)
	}

	byRoute, err := c.FindByRoute("ionic")
	if err != nil {
		t.Fatalf("FindByRoute: %v", err)
	}
	if byRoute != def {
		t.Error("route lookup returned a different definition")
	}
}
