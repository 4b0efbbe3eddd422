package telemetry

import "time"

type EventType string

const (
	EventSessionStarted      EventType = "session_started"
	EventDayStarted          EventType = "day_started"
	EventSlept               EventType = "slept"
	EventCooked              EventType = "cooked"
	EventAte                 EventType = "ate"
	EventPurchase            EventType = "purchase"
	EventAutoCaffeine        EventType = "auto_caffeine"
	EventRandomEvent         EventType = "random_event"
	EventBossResolved        EventType = "boss_resolved"
	EventTemperamentRevealed EventType = "temperament_revealed"
	EventPayday              EventType = "payday"
	EventFreeTime            EventType = "free_time"
)

type Event struct {
	ID        int       `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Metadata  string    `json:"metadata"`
}

type EventMetadata map[string]interface{}
