package catalog

import (
	"errors"
	"fmt"
	"sync"

	"github.com/spachava753/tutorials/internal/models"
)

var (
	ErrEmptyID     = errors.New("tutorial id is empty")
	ErrDuplicateID = errors.New("tutorial id already registered")
	ErrNotFound    = errors.New("tutorial not found")
)

// Catalog indexes tutorial definitions by id, keeping registration order.
// Definitions are registered at startup and looked up concurrently afterwards.
type Catalog struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]*models.TutorialDefinition
}

// New returns an empty Catalog.
func New() *Catalog {
	return &Catalog{
		byID: make(map[string]*models.TutorialDefinition),
	}
}

// Register adds a definition under its id.
func (c *Catalog) Register(def *models.TutorialDefinition) error {
	if def == nil || def.ID == "" {
		return ErrEmptyID
	}
	if def.ImproveCodeURLResolve == nil {
		return fmt.Errorf("tutorial %q: no improve-code resolver", def.ID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.byID[def.ID]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateID, def.ID)
	}
	c.byID[def.ID] = def
	c.order = append(c.order, def.ID)
	return nil
}

// Get returns the definition registered under id.
func (c *Catalog) Get(id string) (*models.TutorialDefinition, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	def, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return def, nil
}

// FindByRoute returns the first definition whose base route is route.
func (c *Catalog) FindByRoute(route string) (*models.TutorialDefinition, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, id := range c.order {
		if def := c.byID[id]; def.BaseRoute == route {
			return def, nil
		}
	}
	return nil, fmt.Errorf("%w: no tutorial routed at %q", ErrNotFound, route)
}

// List returns all definitions in registration order.
func (c *Catalog) List() []*models.TutorialDefinition {
	c.mu.RLock()
	defer c.mu.RUnlock()

	defs := make([]*models.TutorialDefinition, 0, len(c.order))
	for _, id := range c.order {
		defs = append(defs, c.byID[id])
	}
	return defs
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}
