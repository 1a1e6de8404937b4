package models

import (
	"errors"
	"testing"
)

func intPtr(i int) *int { return &i }

func TestNormalizeDifficulty(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"easy", "easy", true},
		{"Easy", "easy", true},
		{"MEDIUM", "medium", true},
		{" hard ", "hard", true},
		{"Hard", "hard", true},
		{"impossible", "", false},
		{"", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := NormalizeDifficulty(tc.input)
			if ok != tc.ok {
				t.Fatalf("NormalizeDifficulty(%q) ok = %v, want %v", tc.input, ok, tc.ok)
			}
			if got != tc.expected {
				t.Errorf("NormalizeDifficulty(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestQuestionInputValidate(t *testing.T) {
	valid := func() QuestionInput {
		return QuestionInput{
			Question:      "What is 2+2?",
			Options:       []string{"3", "4", "5", "6"},
			CorrectAnswer: intPtr(1),
			Category:      "Math",
			Difficulty:    "Easy",
		}
	}

	t.Run("valid input normalizes difficulty", func(t *testing.T) {
		in := valid()
		q, err := in.Validate()
		if err != nil {
			t.Fatalf("Validate returned error: %v", err)
		}
		if q.Difficulty != "easy" {
			t.Errorf("Expected difficulty to be normalized to easy, got %q", q.Difficulty)
		}
		if q.CorrectAnswer != 1 {
			t.Errorf("Expected correctAnswer 1, got %d", q.CorrectAnswer)
		}
	})

	testCases := []struct {
		name   string
		mutate func(*QuestionInput)
		field  string
	}{
		{"missing question", func(in *QuestionInput) { in.Question = "  " }, "question"},
		{"missing category", func(in *QuestionInput) { in.Category = "" }, "category"},
		{"too few options", func(in *QuestionInput) { in.Options = []string{"only"} }, "options"},
		{"empty option", func(in *QuestionInput) { in.Options[2] = "" }, "options"},
		{"missing correctAnswer", func(in *QuestionInput) { in.CorrectAnswer = nil }, "correctAnswer"},
		{"correctAnswer too large", func(in *QuestionInput) { in.CorrectAnswer = intPtr(4) }, "correctAnswer"},
		{"correctAnswer negative", func(in *QuestionInput) { in.CorrectAnswer = intPtr(-1) }, "correctAnswer"},
		{"unknown difficulty", func(in *QuestionInput) { in.Difficulty = "Impossible" }, "difficulty"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			in := valid()
			tc.mutate(&in)
			_, err := in.Validate()
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Expected *ValidationError, got %T", err)
			}
			if verr.Field != tc.field {
				t.Errorf("Expected error on field %q, got %q", tc.field, verr.Field)
			}
		})
	}
}

func TestValidateBoundsHoldAfterAccept(t *testing.T) {
	// Any accepted record must satisfy 0 <= correctAnswer < len(options).
	for answer := 0; answer < 4; answer++ {
		in := QuestionInput{
			Question:      "q",
			Options:       []string{"a", "b", "c", "d"},
			CorrectAnswer: intPtr(answer),
			Category:      "GK",
			Difficulty:    "medium",
		}
		q, err := in.Validate()
		if err != nil {
			t.Fatalf("Validate(%d) returned error: %v", answer, err)
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			t.Errorf("Accepted record violates bounds: %d not in [0,%d)", q.CorrectAnswer, len(q.Options))
		}
	}
}
