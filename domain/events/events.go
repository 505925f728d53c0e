package events

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeSetsGenerated    EventType = "sets_generated"
	EventTypeHistoryCleared   EventType = "history_cleared"
	EventTypeSuggestionFailed EventType = "suggestion_failed"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// GeneratedSet is the event payload for one set
type GeneratedSet struct {
	ID          string `json:"id"`
	Reds        []int  `json:"reds"`
	Blue        int    `json:"blue"`
	Source      string `json:"source"`
	AIReasoning string `json:"ai_reasoning,omitempty"`
	Timestamp   int64  `json:"timestamp"`
}

// SetsGeneratedEvent represents a batch of sets added to the history
type SetsGeneratedEvent struct {
	Source      string         `json:"source"`
	Sets        []GeneratedSet `json:"sets"`
	HistorySize int            `json:"history_size"`
}

func (e SetsGeneratedEvent) Type() EventType {
	return EventTypeSetsGenerated
}

// HistoryClearedEvent represents the history being emptied
type HistoryClearedEvent struct {
	RemovedCount int `json:"removed_count"`
}

func (e HistoryClearedEvent) Type() EventType {
	return EventTypeHistoryCleared
}

// SuggestionFailedEvent represents an AI suggestion that could not be produced
type SuggestionFailedEvent struct {
	Reason string `json:"reason"`
}

func (e SuggestionFailedEvent) Type() EventType {
	return EventTypeSuggestionFailed
}
