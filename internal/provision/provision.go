package provision

import (
	"sort"

	"github.com/dechi99991/cooking-sim/internal/nutrition"
)

// Provision is a non-perishable, ready-to-eat catalog entry. Caffeine is the
// kick used by the auto-consumption fallback; most provisions have none.
type Provision struct {
	Name      string              `json:"name"`
	Price     int                 `json:"price"`
	Nutrition nutrition.Nutrition `json:"nutrition"`
	Fullness  int                 `json:"fullness"`
	Caffeine  int                 `json:"caffeine"`
}

// Catalog is the immutable provision lookup.
type Catalog struct {
	items map[string]Provision
	names []string
}

func NewCatalog(items []Provision) *Catalog {
	c := &Catalog{items: make(map[string]Provision, len(items))}
	for _, p := range items {
		if _, dup := c.items[p.Name]; dup {
			continue
		}
		c.items[p.Name] = p
		c.names = append(c.names, p.Name)
	}
	sort.Strings(c.names)
	return c
}

func (c *Catalog) Get(name string) (Provision, bool) {
	p, ok := c.items[name]
	return p, ok
}

func (c *Catalog) All() []Provision {
	out := make([]Provision, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, c.items[name])
	}
	return out
}

// DefaultCatalog returns the stock provision set.
func DefaultCatalog() *Catalog {
	n := nutrition.New
	return NewCatalog([]Provision{
		{Name: "cup noodles", Price: 150, Nutrition: n(1, 1, 1, 1, 0), Fullness: 5},
		{Name: "retort curry", Price: 300, Nutrition: n(2, 1, 1, 2, 1), Fullness: 6},
		{Name: "frozen bento", Price: 400, Nutrition: n(2, 2, 1, 2, 2), Fullness: 6},
		{Name: "rice ball", Price: 120, Nutrition: n(1, 1, 1, 2, 1), Fullness: 4},
		{Name: "protein bar", Price: 200, Nutrition: n(2, 1, 1, 1, 1), Fullness: 3},
		{Name: "green tea", Price: 120, Nutrition: n(0, 1, 1, 0, 1), Fullness: 0, Caffeine: 1},
		{Name: "canned coffee", Price: 130, Nutrition: n(0, 1, 1, 0, 0), Fullness: 0, Caffeine: 3},
		{Name: "energy drink", Price: 250, Nutrition: n(0, 0, 2, 0, 0), Fullness: 0, Caffeine: 5},
	})
}
