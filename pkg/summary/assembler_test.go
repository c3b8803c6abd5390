package summary

import (
	"strings"
	"testing"
)

func unboundedAssembler() *Assembler {
	return NewAssembler(NewBudget("test-model", 0))
}

func TestCharacterPromptOmitsEmptySections(t *testing.T) {
	a := unboundedAssembler()

	prompt := a.CharacterPrompt(CharacterInput{Name: "Mira"}, FreshRevision())

	if prompt.Instruction != characterFreshInstruction {
		t.Errorf("instruction = %q, want fresh character instruction", prompt.Instruction)
	}
	if prompt.Content != "Character name: Mira" {
		t.Errorf("content = %q, want only the name line", prompt.Content)
	}
}

func TestCharacterPromptAssemblesAllSections(t *testing.T) {
	a := unboundedAssembler()

	prompt := a.CharacterPrompt(CharacterInput{
		Name:       "Mira",
		Properties: `{"age": 23, "affiliation": "guild"}`,
		Memo:       "secretly left-handed",
		Relations: []RelationFact{
			{FromName: "Mira", RelationName: "rival", ToName: "Bob"},
		},
		Signal: &CharacterSignal{
			Dialogues: []DialogueLine{
				{Text: "We leave at dawn."},
				{Text: "No one follows."},
			},
		},
	}, FreshRevision())

	want := strings.Join([]string{
		"Character name: Mira",
		"Traits: affiliation: guild, age: 23",
		"Memo: secretly left-handed",
		"Relations:\nMira → rival → Bob",
		"Dialogue:\n- We leave at dawn.\n- No one follows.",
	}, "\n\n")
	if prompt.Content != want {
		t.Errorf("content =\n%q\nwant\n%q", prompt.Content, want)
	}
}

func TestRefinementCarriesPriorVerbatim(t *testing.T) {
	a := unboundedAssembler()
	prior := "Mira is a guild courier with a rival named Bob."

	prompt := a.CharacterPrompt(CharacterInput{Name: "Mira"}, Refine(prior))

	if prompt.Instruction != characterRefineInstruction {
		t.Errorf("instruction = %q, want refine character instruction", prompt.Instruction)
	}
	wantPrefix := "Previous summary:\n" + prior + "\n\n"
	if !strings.HasPrefix(prompt.Content, wantPrefix) {
		t.Errorf("content = %q, want prefix %q", prompt.Content, wantPrefix)
	}
}

func TestBlankPriorDegradesToFresh(t *testing.T) {
	rev := Refine("   \n ")
	if rev.IsRefinement() {
		t.Error("blank prior must yield a fresh revision")
	}

	a := unboundedAssembler()
	prompt := a.ChapterPrompt("Scene A", "some text", rev)
	if prompt.Instruction != chapterFreshInstruction {
		t.Errorf("instruction = %q, want fresh chapter instruction", prompt.Instruction)
	}
}

func TestWorkPromptLabelsSummariesByTitle(t *testing.T) {
	a := unboundedAssembler()

	prompt := a.WorkPrompt([]TitledSummary{
		{Title: "Scene A", Summary: "mira leaves"},
		{Title: "Scene B", Summary: "bob follows"},
	}, FreshRevision())

	want := "[Scene A]\nmira leaves\n\n[Scene B]\nbob follows"
	if prompt.Content != want {
		t.Errorf("content = %q, want %q", prompt.Content, want)
	}
	if prompt.Instruction != workFreshInstruction {
		t.Errorf("instruction = %q, want fresh work instruction", prompt.Instruction)
	}
}

func TestFlattenProperties(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "sorted keys", raw: `{"b": 1, "a": "x"}`, want: "a: x, b: 1"},
		{name: "empty object", raw: "{}", want: ""},
		{name: "blank", raw: "  ", want: ""},
		{name: "invalid json", raw: "{not json", want: ""},
		{name: "null", raw: "null", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := flattenProperties(tt.raw); got != tt.want {
				t.Errorf("flattenProperties(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
