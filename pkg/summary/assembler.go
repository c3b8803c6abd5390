package summary

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Prompt is a ready-to-send instruction/content pair for the
// text-generation backend.
type Prompt struct {
	Instruction string
	Content     string
}

// Revision says whether a request builds a summary from scratch or refines
// a previous one. It is an explicit value rather than an optional string so
// the branch is visible at every call site.
type Revision struct {
	refine bool
	prior  string
}

// FreshRevision requests a from-scratch summary.
func FreshRevision() Revision {
	return Revision{}
}

// Refine requests an incremental update of prior. A prior that trims to ""
// degrades to a fresh revision.
func Refine(prior string) Revision {
	prior = strings.TrimSpace(prior)
	if prior == "" {
		return Revision{}
	}
	return Revision{refine: true, prior: prior}
}

func (r Revision) IsRefinement() bool {
	return r.refine
}

// CharacterInput carries everything the character prompt is assembled from.
// All fields are pre-resolved; the assembler performs no I/O.
type CharacterInput struct {
	Name       string
	Properties string // raw JSON object string; ignored when unparsable
	Memo       string
	Relations  []RelationFact
	Signal     *CharacterSignal
}

// Assembler turns aggregated signal and metadata into bounded prompts.
type Assembler struct {
	budget *Budget
}

func NewAssembler(budget *Budget) *Assembler {
	return &Assembler{budget: budget}
}

// CharacterPrompt builds the character summarization prompt. Sections with
// no data are omitted entirely; the parts present are joined by blank lines.
func (a *Assembler) CharacterPrompt(in CharacterInput, rev Revision) Prompt {
	parts := []string{fmt.Sprintf("%s: %s", labelCharacterName, in.Name)}

	if traits := flattenProperties(in.Properties); traits != "" {
		parts = append(parts, fmt.Sprintf("%s: %s", labelProperties, traits))
	}
	if memo := strings.TrimSpace(in.Memo); memo != "" {
		parts = append(parts, fmt.Sprintf("%s: %s", labelMemo, memo))
	}
	if len(in.Relations) > 0 {
		lines := make([]string, len(in.Relations))
		for i, rel := range in.Relations {
			lines[i] = fmt.Sprintf("%s → %s → %s", rel.FromName, rel.RelationName, rel.ToName)
		}
		parts = append(parts, labelRelations+":\n"+strings.Join(lines, "\n"))
	}

	if in.Signal != nil {
		if len(in.Signal.Dialogues) > 0 {
			lines := make([]string, len(in.Signal.Dialogues))
			for i, d := range in.Signal.Dialogues {
				lines[i] = d.Text
			}
			parts = append(parts, labelDialogues+":\n"+bulleted(a.budget.BoundLines(lines)))
		}
		if len(in.Signal.ChapterTexts) > 0 {
			lines := make([]string, len(in.Signal.ChapterTexts))
			for i, ch := range in.Signal.ChapterTexts {
				lines[i] = ch.Text
			}
			parts = append(parts, labelChapters+":\n"+bulleted(a.budget.BoundLines(lines)))
		}
	}

	return a.finish(characterFreshInstruction, characterRefineInstruction, parts, rev)
}

// WorkPrompt builds the work-level prompt from already-cached lower-tier
// summaries, each labeled by its title.
func (a *Assembler) WorkPrompt(summaries []TitledSummary, rev Revision) Prompt {
	parts := make([]string, len(summaries))
	for i, s := range summaries {
		parts[i] = fmt.Sprintf("[%s]\n%s", s.Title, s.Summary)
	}
	return a.finish(workFreshInstruction, workRefineInstruction, parts, rev)
}

// ChapterPrompt builds the chapter/plot-level prompt from the unit's plain
// text.
func (a *Assembler) ChapterPrompt(title, text string, rev Revision) Prompt {
	text = a.budget.BoundText(strings.TrimSpace(text))
	parts := []string{fmt.Sprintf("[%s]\n%s", title, text)}
	return a.finish(chapterFreshInstruction, chapterRefineInstruction, parts, rev)
}

func (a *Assembler) finish(freshInstruction, refineInstruction string, parts []string, rev Revision) Prompt {
	if rev.IsRefinement() {
		prior := fmt.Sprintf("%s:\n%s", labelPreviousSummary, rev.prior)
		return Prompt{
			Instruction: refineInstruction,
			Content:     strings.Join(append([]string{prior}, parts...), "\n\n"),
		}
	}
	return Prompt{
		Instruction: freshInstruction,
		Content:     strings.Join(parts, "\n\n"),
	}
}

// flattenProperties renders a JSON object string as "key: value, key:
// value" with stable key order. Anything unparsable or empty yields "".
func flattenProperties(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	var props map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &props); err != nil || len(props) == 0 {
		return ""
	}

	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = fmt.Sprintf("%s: %v", k, props[k])
	}
	return strings.Join(pairs, ", ")
}

func bulleted(lines []string) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = "- " + line
	}
	return strings.Join(out, "\n")
}
