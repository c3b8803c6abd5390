package summary

import (
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

// Budget bounds assembled signal to a model context window. When the
// tokenizer for the configured model is unavailable the budget falls back
// to a bytes/4 approximation, which overestimates rarely enough to stay
// safe.
type Budget struct {
	maxTokens int
	encoder   *tiktoken.Tiktoken
}

// NewBudget builds a budget for model. maxTokens <= 0 disables bounding.
func NewBudget(model string, maxTokens int) *Budget {
	encoder, err := tiktoken.EncodingForModel(model)
	if err != nil {
		encoder = nil
	}
	return &Budget{
		maxTokens: maxTokens,
		encoder:   encoder,
	}
}

func (b *Budget) count(text string) int {
	if b.encoder != nil {
		return len(b.encoder.Encode(text, nil, nil))
	}
	return (len(text) + 3) / 4
}

// BoundLines drops the oldest lines until the set fits the budget. The most
// recent story content carries the most weight for a rolling summary, so
// trimming starts at the front.
func (b *Budget) BoundLines(lines []string) []string {
	if b.maxTokens <= 0 || len(lines) == 0 {
		return lines
	}

	total := 0
	counts := make([]int, len(lines))
	for i, line := range lines {
		counts[i] = b.count(line)
		total += counts[i]
	}

	start := 0
	for start < len(lines)-1 && total > b.maxTokens {
		total -= counts[start]
		start++
	}
	return lines[start:]
}

// BoundText keeps the trailing portion of text that fits the budget,
// cutting on a line boundary where possible.
func (b *Budget) BoundText(text string) string {
	if b.maxTokens <= 0 || b.count(text) <= b.maxTokens {
		return text
	}

	lines := strings.Split(text, "\n")
	bounded := b.BoundLines(lines)
	if len(bounded) < len(lines) {
		return strings.Join(bounded, "\n")
	}

	// Single oversized line: hard-cut by runes from the front.
	runes := []rune(text)
	for len(runes) > 0 && b.count(string(runes)) > b.maxTokens {
		drop := len(runes) / 4
		if drop == 0 {
			drop = 1
		}
		runes = runes[drop:]
	}
	return string(runes)
}
