package observability

// Metric name prefixes
const (
	MetricPrefix = "unionlotto"
)

// Metric names
const (
	// Discord metrics
	InteractionsTotal = MetricPrefix + ".discord.interactions_total"

	// Generation metrics
	SetsGeneratedTotal = MetricPrefix + ".sets.generated_total"
	HistoryClearsTotal = MetricPrefix + ".history.clears_total"

	// AI metrics
	AISuggestionsTotal   = MetricPrefix + ".ai.suggestions_total"
	AISuggestionDuration = MetricPrefix + ".ai.suggestion_duration"

	// NATS metrics
	NATSMessagesPublishedTotal = MetricPrefix + ".nats.messages_published_total"
)

// Label keys
const (
	LabelType      = "type"
	LabelSource    = "source"
	LabelOutcome   = "outcome"
	LabelEventType = "event_type"
)

// Interaction types for Discord
const (
	InteractionTypeCommand = "command"
	InteractionTypeButton  = "button"
	InteractionTypeModal   = "modal"
)

// AI suggestion outcomes besides the failure reasons
const (
	OutcomeSuccess = "success"
)
