package provision

import (
	"sort"

	"github.com/dechi99991/cooking-sim/internal/nutrition"
)

// DishType distinguishes how a prepared dish came to exist.
type DishType string

const (
	DishBento    DishType = "bento"
	DishLeftover DishType = "leftover"
)

// PreparedDish is a cooked dish stored for later, edible until ExpiryDay.
type PreparedDish struct {
	Name      string              `json:"name"`
	Nutrition nutrition.Nutrition `json:"nutrition"`
	Fullness  int                 `json:"fullness"`
	ExpiryDay int                 `json:"expiry_day"`
	DishType  DishType            `json:"dish_type"`
}

// DeliveryType distinguishes what a pending delivery contains.
type DeliveryType string

const (
	DeliverProvision DeliveryType = "provision"
	DeliverRelic     DeliveryType = "relic"
)

// PendingDelivery is an online purchase in transit.
type PendingDelivery struct {
	ItemType    DeliveryType `json:"item_type"`
	Name        string       `json:"name"`
	Quantity    int          `json:"quantity"`
	DeliveryDay int          `json:"delivery_day"`
}

// Stock holds non-perishable provisions by quantity, prepared dishes, and
// pending deliveries.
type Stock struct {
	catalog  *Catalog
	items    map[string]int
	prepared []PreparedDish
	pending  []PendingDelivery
}

func NewStock(catalog *Catalog) *Stock {
	return &Stock{catalog: catalog, items: make(map[string]int)}
}

func (s *Stock) Add(name string, qty int) {
	if qty <= 0 {
		return
	}
	s.items[name] += qty
}

// Remove consumes qty units, fail-closed.
func (s *Stock) Remove(name string, qty int) bool {
	if qty <= 0 || s.items[name] < qty {
		return false
	}
	s.items[name] -= qty
	if s.items[name] == 0 {
		delete(s.items, name)
	}
	return true
}

func (s *Stock) Has(name string, qty int) bool {
	return s.items[name] >= qty
}

func (s *Stock) Quantity(name string) int {
	return s.items[name]
}

// All returns quantities by name, copied.
func (s *Stock) All() map[string]int {
	out := make(map[string]int, len(s.items))
	for name, qty := range s.items {
		out[name] = qty
	}
	return out
}

// Caffeinated lists owned caffeinated provisions ascending by caffeine
// content. The auto-consumption fallback drinks the mildest first.
func (s *Stock) Caffeinated() []Provision {
	var out []Provision
	for name, qty := range s.items {
		if qty <= 0 {
			continue
		}
		p, ok := s.catalog.Get(name)
		if ok && p.Caffeine > 0 {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Caffeine != out[j].Caffeine {
			return out[i].Caffeine < out[j].Caffeine
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// AddPrepared stores a cooked dish for later.
func (s *Stock) AddPrepared(d PreparedDish) {
	s.prepared = append(s.prepared, d)
}

// Prepared lists dishes still edible on currentDay.
func (s *Stock) Prepared(currentDay int) []PreparedDish {
	var out []PreparedDish
	for _, d := range s.prepared {
		if d.ExpiryDay >= currentDay {
			out = append(out, d)
		}
	}
	return out
}

// RemovePrepared takes the i-th edible dish out of storage.
func (s *Stock) RemovePrepared(currentDay, index int) (PreparedDish, bool) {
	edible := 0
	for i, d := range s.prepared {
		if d.ExpiryDay < currentDay {
			continue
		}
		if edible == index {
			s.prepared = append(s.prepared[:i], s.prepared[i+1:]...)
			return d, true
		}
		edible++
	}
	return PreparedDish{}, false
}

// PurgeExpired drops prepared dishes past their expiry and returns them.
func (s *Stock) PurgeExpired(currentDay int) []PreparedDish {
	var kept []PreparedDish
	var purged []PreparedDish
	for _, d := range s.prepared {
		if d.ExpiryDay < currentDay {
			purged = append(purged, d)
		} else {
			kept = append(kept, d)
		}
	}
	s.prepared = kept
	return purged
}

// AddPending queues an online purchase for delivery.
func (s *Stock) AddPending(d PendingDelivery) {
	s.pending = append(s.pending, d)
}

// Pending returns the in-transit deliveries, copied.
func (s *Stock) Pending() []PendingDelivery {
	return append([]PendingDelivery(nil), s.pending...)
}

// ProcessDeliveries moves matured provision deliveries into stock and returns
// every delivery that matured. Relic deliveries are returned for the caller
// to register; this package does not know about relic ownership.
func (s *Stock) ProcessDeliveries(currentDay int) []PendingDelivery {
	var delivered []PendingDelivery
	var remaining []PendingDelivery
	for _, d := range s.pending {
		if d.DeliveryDay > currentDay {
			remaining = append(remaining, d)
			continue
		}
		if d.ItemType == DeliverProvision {
			s.Add(d.Name, d.Quantity)
		}
		delivered = append(delivered, d)
	}
	s.pending = remaining
	return delivered
}
