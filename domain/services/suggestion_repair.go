package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"unionlotto/domain/entities"

	"github.com/tidwall/gjson"
)

// FallbackReasoning replaces a missing or empty reasoning from the provider
const FallbackReasoning = "Lucky numbers generated just for you!"

// defaultReds is used when the provider does not return an array for reds
var defaultReds = []int{1, 2, 3, 4, 5, 6}

// Suggestion is a repaired provider answer that satisfies every set invariant
type Suggestion struct {
	Reds      []int
	Blue      int
	Reasoning string
}

// StripCodeFence removes markdown code fences wrapped around a JSON payload
func StripCodeFence(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		// Drop the language tag on the opening fence line, e.g. ```json
		if idx := strings.IndexAny(content, "\n{["); idx >= 0 {
			tag := strings.TrimSpace(content[:idx])
			if !strings.ContainsAny(tag, "{}[]\":,") {
				content = content[idx:]
			}
		}
	}
	content = strings.TrimSpace(content)
	content = strings.TrimSuffix(content, "```")

	return strings.TrimSpace(content)
}

// RepairSuggestion parses untrusted provider output and repairs it into a valid suggestion.
// The only failure is content that is not a JSON object.
func RepairSuggestion(content string, sampler *NumberSampler) (*Suggestion, error) {
	content = StripCodeFence(content)
	if content == "" || !gjson.Valid(content) {
		return nil, fmt.Errorf("%w: content is not valid JSON", ErrMalformedResponse)
	}

	data := gjson.Parse(content)
	if !data.IsObject() {
		return nil, fmt.Errorf("%w: expected a JSON object, got %s", ErrMalformedResponse, data.Type)
	}

	return &Suggestion{
		Reds:      repairReds(data.Get("reds"), sampler),
		Blue:      repairBlue(data.Get("blue"), sampler),
		Reasoning: repairReasoning(data.Get("reasoning")),
	}, nil
}

func repairReds(value gjson.Result, sampler *NumberSampler) []int {
	if !value.IsArray() {
		reds := make([]int, len(defaultReds))
		copy(reds, defaultReds)
		return reds
	}

	elements := value.Array()
	if len(elements) > entities.RedCount {
		elements = elements[:entities.RedCount]
	}

	seen := make(map[int]bool, entities.RedCount)
	reds := make([]int, 0, entities.RedCount)
	for _, element := range elements {
		n, ok := coerceNumber(element)
		var red int
		if ok {
			red = clampToInt(n, entities.RedMin, entities.RedMax)
		} else {
			red = sampler.RandomRed()
		}
		if !seen[red] {
			seen[red] = true
			reds = append(reds, red)
		}
	}

	return sampler.fillReds(seen, reds)
}

func repairBlue(value gjson.Result, sampler *NumberSampler) int {
	n, ok := coerceNumber(value)
	// Zero counts as missing, matching a falsy check on the raw value
	if !ok || n == 0 {
		return sampler.RandomBlue()
	}
	return clampToInt(n, entities.BlueMin, entities.BlueMax)
}

func repairReasoning(value gjson.Result) string {
	if value.Type == gjson.String && value.Str != "" {
		return value.Str
	}
	return FallbackReasoning
}

// coerceNumber converts a JSON value to a number the way a lenient numeric cast would.
// Objects, arrays, unparsable strings and NaN fail.
func coerceNumber(value gjson.Result) (float64, bool) {
	if !value.Exists() {
		return 0, false
	}

	var n float64
	switch value.Type {
	case gjson.Number:
		n = value.Num
	case gjson.True:
		n = 1
	case gjson.False, gjson.Null:
		n = 0
	case gjson.String:
		s := strings.TrimSpace(value.Str)
		if s == "" {
			return 0, true
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		n = parsed
	default:
		return 0, false
	}

	if math.IsNaN(n) {
		return 0, false
	}
	return n, true
}

// clampToInt clamps into [lo,hi] and truncates the fraction
func clampToInt(n float64, lo, hi int) int {
	n = math.Max(float64(lo), math.Min(float64(hi), n))
	return int(math.Trunc(n))
}
