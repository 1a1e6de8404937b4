package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"quizhub/internal/models"
)

type stubCompleter struct {
	reply string
	err   error
}

func (s *stubCompleter) Complete(_ context.Context, _ string) (string, error) {
	return s.reply, s.err
}

const draftArray = `[{"question": "What is H2O?", "options": ["Water", "Salt", "Sugar", "Air"], "correctAnswer": 0}]`

func TestStripCodeFence(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"bare fence", "```\n" + draftArray + "\n```"},
		{"json fence", "```json\n" + draftArray + "\n```"},
		{"no fence", draftArray},
		{"surrounding whitespace", "  \n```json\n" + draftArray + "\n```  "},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StripCodeFence(tc.input); got != draftArray {
				t.Errorf("StripCodeFence = %q, want %q", got, draftArray)
			}
		})
	}
}

func TestGenerateParsesFencedArray(t *testing.T) {
	g := NewGenerator(&stubCompleter{reply: "```json\n" + draftArray + "\n```"})
	drafts, err := g.Generate(context.Background(), &GenerateRequest{Subject: "Science", Difficulty: "easy"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(drafts) != 1 {
		t.Fatalf("Expected 1 draft, got %d", len(drafts))
	}
	if drafts[0].Question != "What is H2O?" {
		t.Errorf("Unexpected question: %q", drafts[0].Question)
	}
	if drafts[0].CorrectAnswer == nil || *drafts[0].CorrectAnswer != 0 {
		t.Errorf("Expected correctAnswer 0, got %v", drafts[0].CorrectAnswer)
	}
}

func TestGenerateProseIsUnparseable(t *testing.T) {
	prose := "Here are some great questions about science for you!"
	g := NewGenerator(&stubCompleter{reply: prose})
	_, err := g.Generate(context.Background(), &GenerateRequest{Subject: "Science", Difficulty: "easy"})
	var uerr *UnparseableError
	if !errors.As(err, &uerr) {
		t.Fatalf("Expected *UnparseableError, got %v", err)
	}
	if uerr.Raw != prose {
		t.Errorf("Raw text not preserved: %q", uerr.Raw)
	}
}

func TestGenerateUpstreamFailure(t *testing.T) {
	g := NewGenerator(&stubCompleter{err: errors.New("connection refused")})
	_, err := g.Generate(context.Background(), &GenerateRequest{Subject: "Math", Difficulty: "hard"})
	var uerr *UpstreamError
	if !errors.As(err, &uerr) {
		t.Fatalf("Expected *UpstreamError, got %v", err)
	}
}

func TestGenerateRequiresInput(t *testing.T) {
	g := NewGenerator(&stubCompleter{reply: draftArray})
	testCases := []struct {
		name string
		req  GenerateRequest
		ok   bool
	}{
		{"prompt only", GenerateRequest{Prompt: "5 easy math questions"}, true},
		{"subject and difficulty", GenerateRequest{Subject: "Math", Difficulty: "easy"}, true},
		{"subject only", GenerateRequest{Subject: "Math"}, false},
		{"difficulty only", GenerateRequest{Difficulty: "easy"}, false},
		{"blank prompt only", GenerateRequest{Prompt: "   "}, false},
		{"nothing", GenerateRequest{}, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := g.Generate(context.Background(), &tc.req)
			if tc.ok && err != nil {
				t.Errorf("Expected success, got %v", err)
			}
			if !tc.ok {
				var verr *models.ValidationError
				if !errors.As(err, &verr) {
					t.Errorf("Expected *ValidationError, got %v", err)
				}
			}
		})
	}
}

func TestInstructionTemplate(t *testing.T) {
	req := &GenerateRequest{Subject: "Physics", Difficulty: "medium", NumQuestions: 3}
	instr := req.Instruction()
	for _, want := range []string{"3 multiple choice questions", `"Physics"`, `"medium"`, "JSON array"} {
		if !strings.Contains(instr, want) {
			t.Errorf("Instruction missing %q: %s", want, instr)
		}
	}

	req = &GenerateRequest{Subject: "Physics", Difficulty: "medium"}
	if !strings.Contains(req.Instruction(), "5 multiple choice questions") {
		t.Errorf("Expected default count of 5, got: %s", req.Instruction())
	}

	req = &GenerateRequest{Prompt: "Quiz me on rivers"}
	instr = req.Instruction()
	if !strings.HasPrefix(instr, "Return ONLY a JSON array as response. ") {
		t.Errorf("Custom prompt missing JSON directive prefix: %s", instr)
	}
	if !strings.Contains(instr, "Quiz me on rivers") {
		t.Errorf("Custom prompt text dropped: %s", instr)
	}
}
