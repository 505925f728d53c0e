package infrastructure

import (
	"fmt"

	"unionlotto/domain/events"
)

// LottoEventStream is the JetStream stream that stores every lotto event
const LottoEventStream = "lotto_events"

const (
	SubjectSetsGenerated    = "lotto.sets.generated"
	SubjectHistoryCleared   = "lotto.history.cleared"
	SubjectSuggestionFailed = "lotto.suggestions.failed"
)

// EventSubjectMapper handles mapping between domain events and NATS subjects
type EventSubjectMapper struct{}

// NewEventSubjectMapper creates a new event subject mapper
func NewEventSubjectMapper() *EventSubjectMapper {
	return &EventSubjectMapper{}
}

// MapEventToSubject converts a domain event to its corresponding NATS subject
func (m *EventSubjectMapper) MapEventToSubject(event events.Event) string {
	switch event.Type() {
	case events.EventTypeSetsGenerated:
		return SubjectSetsGenerated
	case events.EventTypeHistoryCleared:
		return SubjectHistoryCleared
	case events.EventTypeSuggestionFailed:
		return SubjectSuggestionFailed
	default:
		// Fallback for unknown event types
		return fmt.Sprintf("lotto.unknown.%s", event.Type())
	}
}

// MapSubjectToEventType converts a NATS subject back to an event type
func (m *EventSubjectMapper) MapSubjectToEventType(subject string) events.EventType {
	switch subject {
	case SubjectSetsGenerated:
		return events.EventTypeSetsGenerated
	case SubjectHistoryCleared:
		return events.EventTypeHistoryCleared
	case SubjectSuggestionFailed:
		return events.EventTypeSuggestionFailed
	default:
		return events.EventType(subject)
	}
}

// GetAllSubjects returns all subjects that this service publishes to
func (m *EventSubjectMapper) GetAllSubjects() []string {
	return []string{
		SubjectSetsGenerated,
		SubjectHistoryCleared,
		SubjectSuggestionFailed,
	}
}
