package infrastructure

import (
	"unionlotto/domain/events"
	"unionlotto/domain/interfaces"
	"unionlotto/infrastructure/observability"

	log "github.com/sirupsen/logrus"
)

// MeteredEventPublisher records metrics for every domain event, then hands it to the real publisher
type MeteredEventPublisher struct {
	realPublisher interfaces.EventPublisher
	metrics       *observability.MetricsProvider
}

// NewMeteredEventPublisher wraps a publisher. A nil metrics provider records nothing.
func NewMeteredEventPublisher(realPublisher interfaces.EventPublisher, metrics *observability.MetricsProvider) *MeteredEventPublisher {
	return &MeteredEventPublisher{
		realPublisher: realPublisher,
		metrics:       metrics,
	}
}

// Publish records the event and forwards it
func (p *MeteredEventPublisher) Publish(event events.Event) error {
	switch e := event.(type) {
	case events.SetsGeneratedEvent:
		p.metrics.RecordSetsGenerated(e.Source, len(e.Sets))
	case events.HistoryClearedEvent:
		p.metrics.RecordHistoryCleared()
	case events.SuggestionFailedEvent:
		log.WithField("reason", e.Reason).Debug("AI suggestion failure event")
	}

	if err := p.realPublisher.Publish(event); err != nil {
		return err
	}

	p.metrics.RecordEventPublished(string(event.Type()))
	return nil
}
