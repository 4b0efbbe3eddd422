package stock

import (
	"sort"

	"github.com/dechi99991/cooking-sim/internal/ingredient"
)

// ExtendFunc resolves the freshness extension (in days) that applies to a
// unit bought on purchaseDay. Relic-sourced extension only counts relics
// acquired on or before that day, so stale food is never retroactively
// healed.
type ExtendFunc func(purchaseDay int) int

// NoExtend is the zero extension resolver.
func NoExtend(int) int { return 0 }

// Stock tracks perishable ingredient batches. Each unit is one purchase-day
// entry; entries stay sorted ascending so consumption is always oldest-first,
// even when near-expiry purchases insert backdated days.
type Stock struct {
	catalog *ingredient.Catalog
	items   map[string][]int
}

func New(catalog *ingredient.Catalog) *Stock {
	return &Stock{catalog: catalog, items: make(map[string][]int)}
}

// Add appends qty units bought on purchaseDay, keeping the batch sorted.
func (s *Stock) Add(name string, qty, purchaseDay int) {
	if qty <= 0 {
		return
	}
	days := s.items[name]
	for i := 0; i < qty; i++ {
		days = append(days, purchaseDay)
	}
	sort.Ints(days)
	s.items[name] = days
}

// Remove consumes the qty oldest units and returns their purchase days.
// Insufficient stock is a no-op returning nil.
func (s *Stock) Remove(name string, qty int) []int {
	days := s.items[name]
	if qty <= 0 || len(days) < qty {
		return nil
	}
	consumed := append([]int(nil), days[:qty]...)
	rest := days[qty:]
	if len(rest) == 0 {
		delete(s.items, name)
	} else {
		s.items[name] = rest
	}
	return consumed
}

// Discard drops up to qty oldest units and returns how many were dropped.
func (s *Stock) Discard(name string, qty int) int {
	days := s.items[name]
	n := qty
	if n > len(days) {
		n = len(days)
	}
	if n <= 0 {
		return 0
	}
	rest := days[n:]
	if len(rest) == 0 {
		delete(s.items, name)
	} else {
		s.items[name] = rest
	}
	return n
}

func (s *Stock) Has(name string, qty int) bool {
	return len(s.items[name]) >= qty
}

func (s *Stock) Quantity(name string) int {
	return len(s.items[name])
}

func (s *Stock) IsEmpty() bool {
	return len(s.items) == 0
}

// Available returns the names with at least one unit, sorted.
func (s *Stock) Available() []string {
	out := make([]string, 0, len(s.items))
	for name := range s.items {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Batches returns a copy of all purchase-day batches.
func (s *Stock) Batches() map[string][]int {
	out := make(map[string][]int, len(s.items))
	for name, days := range s.items {
		out[name] = append([]int(nil), days...)
	}
	return out
}

// OldestDay returns the earliest purchase day for name.
func (s *Stock) OldestDay(name string) (int, bool) {
	days := s.items[name]
	if len(days) == 0 {
		return 0, false
	}
	return days[0], true
}

// FreshnessModifier computes the nutrition scalar for a batch of name on
// currentDay. The modifier comes from the oldest unit and applies uniformly
// to the whole consumed batch: a batch is as fresh as its oldest member.
// Within the (possibly extended) shelf life the modifier is 1.0; past it, it
// decays by the catalog rate per day, floored at 0.1.
func (s *Stock) FreshnessModifier(name string, currentDay int, extend ExtendFunc) float64 {
	oldest, ok := s.OldestDay(name)
	if !ok {
		return 1.0
	}
	ing, ok := s.catalog.Get(name)
	if !ok {
		return 1.0
	}
	if extend == nil {
		extend = NoExtend
	}

	effectiveLimit := ing.FreshnessDays + extend(oldest)
	elapsed := currentDay - oldest
	if elapsed <= effectiveLimit {
		return 1.0
	}

	excess := elapsed - effectiveLimit
	modifier := 1.0 - float64(excess)*ing.DecayRate
	if modifier < 0.1 {
		modifier = 0.1
	}
	return modifier
}

// HasExpired reports whether any batch has started decaying.
func (s *Stock) HasExpired(currentDay int, extend ExtendFunc) bool {
	for name := range s.items {
		if s.FreshnessModifier(name, currentDay, extend) < 1.0 {
			return true
		}
	}
	return false
}
