package summary

import (
	"reflect"
	"strings"
	"testing"
)

// "no-such-model" has no tokenizer, forcing the bytes/4 fallback so the
// counts below are deterministic.

func TestBoundLinesDropsOldestFirst(t *testing.T) {
	b := NewBudget("no-such-model", 2)

	// 8 bytes each, 2 tokens each under the fallback.
	lines := []string{"aaaaaaaa", "bbbbbbbb", "cccccccc"}
	got := b.BoundLines(lines)

	want := []string{"cccccccc"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BoundLines = %v, want %v", got, want)
	}
}

func TestBoundLinesKeepsLastLineEvenWhenOverBudget(t *testing.T) {
	b := NewBudget("no-such-model", 1)

	lines := []string{"aaaaaaaa", "bbbbbbbb"}
	got := b.BoundLines(lines)

	if len(got) != 1 || got[0] != "bbbbbbbb" {
		t.Errorf("BoundLines = %v, want the final line kept", got)
	}
}

func TestBoundLinesDisabledBudget(t *testing.T) {
	b := NewBudget("no-such-model", 0)

	lines := []string{"a", "b", "c"}
	if got := b.BoundLines(lines); !reflect.DeepEqual(got, lines) {
		t.Errorf("BoundLines = %v, want input unchanged", got)
	}
}

func TestBoundTextCutsOnLineBoundary(t *testing.T) {
	b := NewBudget("no-such-model", 3)

	text := "aaaaaaaa\nbbbbbbbb\ncccccccc"
	got := b.BoundText(text)

	if got != "cccccccc" {
		t.Errorf("BoundText = %q, want %q", got, "cccccccc")
	}
}

func TestBoundTextSingleOversizedLine(t *testing.T) {
	b := NewBudget("no-such-model", 2)

	text := strings.Repeat("x", 100)
	got := b.BoundText(text)

	if got == text {
		t.Fatal("oversized line was not cut")
	}
	if len(got) == 0 || len(got) > 8 {
		t.Errorf("BoundText length = %d, want a tail within budget", len(got))
	}
	if !strings.HasSuffix(text, got) {
		t.Errorf("BoundText = %q, want a suffix of the input", got)
	}
}
