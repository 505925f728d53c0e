package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Union Lotto number domains
const (
	RedCount = 6
	RedMin   = 1
	RedMax   = 33
	BlueMin  = 1
	BlueMax  = 16
)

// SetSource tags how a lottery set was produced
type SetSource string

const (
	SetSourceRandom SetSource = "random"
	SetSourceAI     SetSource = "ai"
)

// LotterySet represents one generated ticket: six red numbers and one blue number
type LotterySet struct {
	ID          string    `json:"id"`
	Reds        []int     `json:"reds"`
	Blue        int       `json:"blue"`
	Timestamp   time.Time `json:"-"`
	Source      SetSource `json:"source"`
	AIReasoning string    `json:"ai_reasoning,omitempty"`
}

// NewLotterySet creates a set with a fresh ID. The reds slice is copied.
func NewLotterySet(reds []int, blue int, source SetSource, reasoning string, now time.Time) *LotterySet {
	ownReds := make([]int, len(reds))
	copy(ownReds, reds)

	set := &LotterySet{
		ID:        uuid.New().String(),
		Reds:      ownReds,
		Blue:      blue,
		Timestamp: now,
		Source:    source,
	}
	if source == SetSourceAI {
		set.AIReasoning = reasoning
	}
	return set
}

// TimestampMillis returns the creation instant as unix milliseconds
func (s *LotterySet) TimestampMillis() int64 {
	return s.Timestamp.UnixMilli()
}

// IsAI returns true if the set was suggested by the AI provider
func (s *LotterySet) IsAI() bool {
	return s.Source == SetSourceAI
}

// Validate checks every LotterySet invariant
func (s *LotterySet) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("set has no id")
	}
	if len(s.Reds) != RedCount {
		return fmt.Errorf("expected %d red numbers, got %d", RedCount, len(s.Reds))
	}
	for i, red := range s.Reds {
		if red < RedMin || red > RedMax {
			return fmt.Errorf("red number %d out of range [%d,%d]", red, RedMin, RedMax)
		}
		// Strictly ascending also guarantees distinctness
		if i > 0 && red <= s.Reds[i-1] {
			return fmt.Errorf("red numbers must be distinct and ascending: %v", s.Reds)
		}
	}
	if s.Blue < BlueMin || s.Blue > BlueMax {
		return fmt.Errorf("blue number %d out of range [%d,%d]", s.Blue, BlueMin, BlueMax)
	}
	switch s.Source {
	case SetSourceRandom:
		if s.AIReasoning != "" {
			return fmt.Errorf("random set must not carry AI reasoning")
		}
	case SetSourceAI:
	default:
		return fmt.Errorf("unknown set source %q", s.Source)
	}
	return nil
}

// CopyText formats the set as plain text for sharing, e.g. "Red: 01, 05, 12, 19, 27, 33 | Blue: 07"
func (s *LotterySet) CopyText() string {
	reds := make([]string, len(s.Reds))
	for i, red := range s.Reds {
		reds[i] = FormatNumber(red)
	}
	return fmt.Sprintf("Red: %s | Blue: %s", strings.Join(reds, ", "), FormatNumber(s.Blue))
}

// FormatNumber pads a ball number to two digits
func FormatNumber(n int) string {
	return fmt.Sprintf("%02d", n)
}
