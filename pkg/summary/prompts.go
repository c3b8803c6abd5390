package summary

// Instruction templates handed to the text-generation backend as the system
// message. "Fresh" templates build a summary from scratch; "refine"
// templates fold new material into a previous summary without discarding
// its narrative.
const (
	characterFreshInstruction = "Based on the provided context, briefly summarize this character's " +
		"personality, their relationships with other characters, and their journey so far."

	characterRefineInstruction = "A previous summary of this character is included. Incorporate the new " +
		"information into it, preserving the existing narrative, and produce an updated summary of the " +
		"character's personality, relationships, and journey."

	workFreshInstruction = "The following are per-chapter summaries of a story, in order. Compose a " +
		"concise summary of the overall story so far."

	workRefineInstruction = "A previous summary of the overall story is included, followed by the current " +
		"per-chapter summaries. Incorporate any new developments into the previous summary, preserving its " +
		"narrative, and produce an updated overall summary."

	chapterFreshInstruction = "Summarize the following chapter text concisely, keeping the key events and " +
		"character moments."

	chapterRefineInstruction = "A previous summary of this chapter is included, followed by its current " +
		"full text. Update the summary to reflect the text as it now stands, preserving phrasing from the " +
		"previous summary where it is still accurate."
)

// Labels for the assembled context blocks.
const (
	labelCharacterName   = "Character name"
	labelProperties      = "Traits"
	labelMemo            = "Memo"
	labelRelations       = "Relations"
	labelDialogues       = "Dialogue"
	labelChapters        = "Chapters"
	labelPreviousSummary = "Previous summary"
)
