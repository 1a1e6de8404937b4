package models

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Difficulty labels are stored lowercase. Input arriving with other casing is
// coerced before it reaches the collection.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

type Question struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Question      string             `bson:"question" json:"question"`
	Options       []string           `bson:"options" json:"options"`
	CorrectAnswer int                `bson:"correct_answer" json:"correctAnswer"`
	Category      string             `bson:"category" json:"category"`
	Difficulty    string             `bson:"difficulty" json:"difficulty"`
}

// QuestionInput is the write shape for create and bulk-create requests. The
// CorrectAnswer pointer distinguishes "absent" from a legitimate index 0.
type QuestionInput struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer *int     `json:"correctAnswer"`
	Category      string   `json:"category"`
	Difficulty    string   `json:"difficulty"`
}

// NormalizeDifficulty lowercases a difficulty label and reports whether it is
// one of the canonical values.
func NormalizeDifficulty(s string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case DifficultyEasy:
		return DifficultyEasy, true
	case DifficultyMedium:
		return DifficultyMedium, true
	case DifficultyHard:
		return DifficultyHard, true
	}
	return "", false
}

// Validate checks the input and returns the persistable record. Difficulty is
// normalized here so the collection only ever holds canonical labels.
func (in *QuestionInput) Validate() (*Question, error) {
	if strings.TrimSpace(in.Question) == "" {
		return nil, &ValidationError{Field: "question", Msg: "question text is required"}
	}
	if strings.TrimSpace(in.Category) == "" {
		return nil, &ValidationError{Field: "category", Msg: "category is required"}
	}
	if len(in.Options) < 2 {
		return nil, &ValidationError{Field: "options", Msg: "at least two options are required"}
	}
	for i, opt := range in.Options {
		if strings.TrimSpace(opt) == "" {
			return nil, &ValidationError{Field: "options", Msg: fmt.Sprintf("option %d is empty", i)}
		}
	}
	if in.CorrectAnswer == nil {
		return nil, &ValidationError{Field: "correctAnswer", Msg: "correctAnswer is required"}
	}
	if *in.CorrectAnswer < 0 || *in.CorrectAnswer >= len(in.Options) {
		return nil, &ValidationError{
			Field: "correctAnswer",
			Msg:   fmt.Sprintf("correctAnswer %d is out of range for %d options", *in.CorrectAnswer, len(in.Options)),
		}
	}
	difficulty, ok := NormalizeDifficulty(in.Difficulty)
	if !ok {
		return nil, &ValidationError{
			Field: "difficulty",
			Msg:   fmt.Sprintf("difficulty %q is not one of easy, medium, hard", in.Difficulty),
		}
	}
	return &Question{
		Question:      strings.TrimSpace(in.Question),
		Options:       in.Options,
		CorrectAnswer: *in.CorrectAnswer,
		Category:      strings.TrimSpace(in.Category),
		Difficulty:    difficulty,
	}, nil
}
