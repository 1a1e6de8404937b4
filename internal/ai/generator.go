package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"quizhub/internal/models"
)

// TextCompleter is the slice of the client the generator needs.
type TextCompleter interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type Generator struct {
	Completer TextCompleter
}

func NewGenerator(completer TextCompleter) *Generator {
	return &Generator{Completer: completer}
}

const defaultQuestionCount = 5

// GenerateRequest carries either a free-form Prompt or a subject/difficulty
// pair used to build the templated instruction.
type GenerateRequest struct {
	Subject      string `json:"subject"`
	Difficulty   string `json:"difficulty"`
	NumQuestions int    `json:"numQuestions"`
	Prompt       string `json:"prompt"`
}

// Draft is an unpersisted candidate question as parsed from model output.
// Every field may be absent or malformed; review happens before persistence.
type Draft struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer *int     `json:"correctAnswer"`
	Category      string   `json:"category"`
	Difficulty    string   `json:"difficulty"`
}

func (r *GenerateRequest) validate() error {
	if strings.TrimSpace(r.Prompt) == "" && (r.Subject == "" || r.Difficulty == "") {
		return &models.ValidationError{
			Field: "prompt",
			Msg:   "provide either a custom prompt or both subject and difficulty",
		}
	}
	return nil
}

// Instruction returns the text sent to the model. A custom prompt is prefixed
// with the JSON-array directive; otherwise the templated instruction is built
// from subject, difficulty and count.
func (r *GenerateRequest) Instruction() string {
	if p := strings.TrimSpace(r.Prompt); p != "" {
		return "Return ONLY a JSON array as response. " + p
	}
	count := r.NumQuestions
	if count <= 0 {
		count = defaultQuestionCount
	}
	return fmt.Sprintf(`Generate %d multiple choice questions about %q with difficulty %q. `+
		`Each should have 4 options and mark the correct answer. Return ONLY a JSON array of objects like: `+
		`[{"question": "...", "options": ["..."], "correctAnswer": 2 }]. Do NOT include any explanation or markdown.`,
		count, r.Subject, r.Difficulty)
}

var (
	leadingFence  = regexp.MustCompile("^```[^\n]*\n?")
	trailingFence = regexp.MustCompile("```$")
)

// StripCodeFence removes a leading ```lang line and a trailing fence. Models
// routinely wrap their answer this way despite being told not to.
func StripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	text = leadingFence.ReplaceAllString(text, "")
	text = trailingFence.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// Generate runs the instruction through the text service and parses the reply
// into drafts. A reply that cannot be parsed is returned as *UnparseableError
// carrying the raw text; an unreachable or failing service is *UpstreamError.
func (g *Generator) Generate(ctx context.Context, req *GenerateRequest) ([]Draft, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	text, err := g.Completer.Complete(ctx, req.Instruction())
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}

	cleaned := StripCodeFence(text)
	var drafts []Draft
	if err := json.Unmarshal([]byte(cleaned), &drafts); err != nil {
		return nil, &UnparseableError{Raw: cleaned}
	}
	return drafts, nil
}
