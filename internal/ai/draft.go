package ai

import (
	"fmt"
	"strings"

	"quizhub/internal/models"
)

// subjectVocabulary is the fixed set of subjects recognized when inferring a
// category from the instruction text.
var subjectVocabulary = []string{
	"science", "math", "history", "english",
	"geography", "physics", "chemistry", "biology",
}

const (
	fallbackCategory   = "General"
	fallbackDifficulty = models.DifficultyEasy
)

// InferSubject does a best-effort keyword match of the instruction against the
// subject vocabulary and returns the title-cased subject, or "".
func InferSubject(instruction string) string {
	lower := strings.ToLower(instruction)
	for _, subj := range subjectVocabulary {
		if strings.Contains(lower, subj) {
			return strings.ToUpper(subj[:1]) + subj[1:]
		}
	}
	return ""
}

// InferDifficulty looks for a canonical difficulty label in the instruction.
func InferDifficulty(instruction string) string {
	lower := strings.ToLower(instruction)
	for _, diff := range []string{models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard} {
		if strings.Contains(lower, diff) {
			return diff
		}
	}
	return ""
}

// ReviewedDraft is a draft with defaults applied and review flags attached.
// Flagged drafts must be fixed by hand before they are saved; they are never
// silently patched with placeholder content.
type ReviewedDraft struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer *int     `json:"correctAnswer"`
	Category      string   `json:"category"`
	Difficulty    string   `json:"difficulty"`
	NeedsReview   bool     `json:"needsReview"`
	ReviewNotes   []string `json:"reviewNotes,omitempty"`
}

// Review applies ingestion defaulting to a draft. Missing category and
// difficulty fall back to values inferred from the instruction, then to
// "General"/"easy". Structural problems (wrong option count, missing question,
// out-of-range answer) mark the draft for manual review.
func Review(d Draft, instruction string) ReviewedDraft {
	out := ReviewedDraft{
		Question:      strings.TrimSpace(d.Question),
		Options:       d.Options,
		CorrectAnswer: d.CorrectAnswer,
		Category:      strings.TrimSpace(d.Category),
		Difficulty:    d.Difficulty,
	}

	if out.Category == "" {
		if inferred := InferSubject(instruction); inferred != "" {
			out.Category = inferred
		} else {
			out.Category = fallbackCategory
		}
	}

	if normalized, ok := models.NormalizeDifficulty(out.Difficulty); ok {
		out.Difficulty = normalized
	} else if inferred := InferDifficulty(instruction); inferred != "" {
		out.Difficulty = inferred
	} else {
		out.Difficulty = fallbackDifficulty
	}

	flag := func(note string) {
		out.NeedsReview = true
		out.ReviewNotes = append(out.ReviewNotes, note)
	}
	if out.Question == "" {
		flag("question text is missing")
	}
	if len(out.Options) != 4 {
		flag(fmt.Sprintf("expected 4 options, got %d", len(out.Options)))
	}
	for i, opt := range out.Options {
		if strings.TrimSpace(opt) == "" {
			flag(fmt.Sprintf("option %d is empty", i))
		}
	}
	if out.CorrectAnswer == nil {
		flag("correctAnswer is missing")
	} else if *out.CorrectAnswer < 0 || *out.CorrectAnswer >= len(out.Options) {
		flag(fmt.Sprintf("correctAnswer %d is out of range", *out.CorrectAnswer))
	}
	return out
}

// ReviewAll applies Review to every draft of one generation run.
func ReviewAll(drafts []Draft, instruction string) []ReviewedDraft {
	reviewed := make([]ReviewedDraft, len(drafts))
	for i, d := range drafts {
		reviewed[i] = Review(d, instruction)
	}
	return reviewed
}
