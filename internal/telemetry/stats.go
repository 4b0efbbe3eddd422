package telemetry

import (
	"encoding/json"
	"time"
)

// Stats summarizes how a run was played: the post-game result screen and
// balance tuning both read from this.
type Stats struct {
	Period         string            `json:"period"`
	EventCounts    map[EventType]int `json:"event_counts"`
	DaysPlayed     int               `json:"days_played"`
	Cooks          int               `json:"cooks"`
	CooksPerDay    float64           `json:"cooks_per_day"`
	MealsOut       int               `json:"meals_out"`
	MoneySpent     int               `json:"money_spent"`
	AutoCaffeines  int               `json:"auto_caffeines"`
	InsomniaNights int               `json:"insomnia_nights"`
	BossOutcomes   map[string]int    `json:"boss_outcomes"`
	RandomEvents   map[string]int    `json:"random_events"`
}

// CalculateStats computes run stats from recorded events
func CalculateStats(events []Event, since time.Time) (Stats, error) {
	stats := Stats{
		Period:       since.Format("2006-01-02"),
		EventCounts:  make(map[EventType]int),
		BossOutcomes: make(map[string]int),
		RandomEvents: make(map[string]int),
	}

	for _, event := range events {
		stats.EventCounts[event.Type]++

		var metadata EventMetadata
		if err := json.Unmarshal([]byte(event.Metadata), &metadata); err != nil {
			continue
		}

		switch event.Type {
		case EventDayStarted:
			stats.DaysPlayed++
		case EventCooked:
			stats.Cooks++
		case EventAte:
			if what, ok := metadata["what"].(string); ok && (what == "restaurant" || what == "cafeteria") {
				stats.MealsOut++
			}
		case EventPurchase:
			if spent, ok := metadata["spent"].(float64); ok {
				stats.MoneySpent += int(spent)
			}
		case EventAutoCaffeine:
			stats.AutoCaffeines++
		case EventSlept:
			if insomnia, ok := metadata["insomnia"].(bool); ok && insomnia {
				stats.InsomniaNights++
			}
		case EventBossResolved:
			if outcome, ok := metadata["outcome"].(string); ok {
				stats.BossOutcomes[outcome]++
			}
		case EventRandomEvent:
			if id, ok := metadata["event"].(string); ok {
				stats.RandomEvents[id]++
			}
		}
	}

	if stats.DaysPlayed > 0 {
		stats.CooksPerDay = float64(stats.Cooks) / float64(stats.DaysPlayed)
	}

	return stats, nil
}
