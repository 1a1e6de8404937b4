package service

import (
	"context"
	"fmt"

	"quizhub/internal/models"
	"quizhub/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuestionStore is the slice of the repository the service depends on.
type QuestionStore interface {
	FindAll(ctx context.Context, filter repository.QuestionFilter) ([]models.Question, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Question, error)
	Insert(ctx context.Context, question *models.Question) error
	Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Question, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DistinctCategories(ctx context.Context) ([]string, error)
}

type QuestionService struct {
	Store QuestionStore
}

func NewQuestionService(store QuestionStore) *QuestionService {
	return &QuestionService{Store: store}
}

// QuestionPatch carries the fields of a partial update. Nil means "leave
// unchanged"; the patch is validated against the merged record so a partial
// write can never break the correctAnswer/options invariant.
type QuestionPatch struct {
	Question      *string   `json:"question"`
	Options       *[]string `json:"options"`
	CorrectAnswer *int      `json:"correctAnswer"`
	Category      *string   `json:"category"`
	Difficulty    *string   `json:"difficulty"`
}

func (p *QuestionPatch) empty() bool {
	return p.Question == nil && p.Options == nil && p.CorrectAnswer == nil &&
		p.Category == nil && p.Difficulty == nil
}

func (s *QuestionService) ListQuestions(ctx context.Context, filter repository.QuestionFilter) ([]models.Question, error) {
	return s.Store.FindAll(ctx, filter)
}

func (s *QuestionService) GetQuestion(ctx context.Context, id string) (*models.Question, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrNotFound
	}
	return s.Store.FindByID(ctx, oid)
}

func (s *QuestionService) CreateQuestion(ctx context.Context, in *models.QuestionInput) (*models.Question, error) {
	question, err := in.Validate()
	if err != nil {
		return nil, err
	}
	if err := s.Store.Insert(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *QuestionService) UpdateQuestion(ctx context.Context, id string, patch *QuestionPatch) (*models.Question, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrNotFound
	}
	if patch.empty() {
		return nil, &models.ValidationError{Field: "body", Msg: "no fields to update"}
	}

	existing, err := s.Store.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	merged := models.QuestionInput{
		Question:      existing.Question,
		Options:       existing.Options,
		CorrectAnswer: &existing.CorrectAnswer,
		Category:      existing.Category,
		Difficulty:    existing.Difficulty,
	}
	if patch.Question != nil {
		merged.Question = *patch.Question
	}
	if patch.Options != nil {
		merged.Options = *patch.Options
	}
	if patch.CorrectAnswer != nil {
		merged.CorrectAnswer = patch.CorrectAnswer
	}
	if patch.Category != nil {
		merged.Category = *patch.Category
	}
	if patch.Difficulty != nil {
		merged.Difficulty = *patch.Difficulty
	}
	validated, err := merged.Validate()
	if err != nil {
		return nil, err
	}

	update := bson.M{}
	if patch.Question != nil {
		update["question"] = validated.Question
	}
	if patch.Options != nil {
		update["options"] = validated.Options
	}
	if patch.CorrectAnswer != nil {
		update["correct_answer"] = validated.CorrectAnswer
	}
	if patch.Category != nil {
		update["category"] = validated.Category
	}
	if patch.Difficulty != nil {
		update["difficulty"] = validated.Difficulty
	}
	return s.Store.Update(ctx, oid, update)
}

// DeleteQuestion removes a question. An unknown or malformed id is treated as
// already deleted rather than an error.
func (s *QuestionService) DeleteQuestion(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	return s.Store.Delete(ctx, oid)
}

func (s *QuestionService) ListCategories(ctx context.Context) ([]string, error) {
	return s.Store.DistinctCategories(ctx)
}

// BulkFailure names the position of a draft that could not be saved so the
// reviewer can fix that item instead of guessing.
type BulkFailure struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}

type BulkResult struct {
	Saved  []models.Question `json:"saved"`
	Failed []BulkFailure     `json:"failed"`
}

// BulkCreate validates every draft first, then writes the valid ones. Writes
// are independent, so a storage failure on one item does not roll back the
// rest; the result reports the outcome per index.
func (s *QuestionService) BulkCreate(ctx context.Context, inputs []models.QuestionInput) (*BulkResult, error) {
	if len(inputs) == 0 {
		return nil, &models.ValidationError{Field: "questions", Msg: "no questions to save"}
	}

	result := &BulkResult{Saved: []models.Question{}, Failed: []BulkFailure{}}
	validated := make(map[int]*models.Question, len(inputs))
	for i := range inputs {
		q, err := inputs[i].Validate()
		if err != nil {
			result.Failed = append(result.Failed, BulkFailure{Index: i, Error: err.Error()})
			continue
		}
		validated[i] = q
	}

	for i := range inputs {
		q, ok := validated[i]
		if !ok {
			continue
		}
		if err := s.Store.Insert(ctx, q); err != nil {
			result.Failed = append(result.Failed, BulkFailure{Index: i, Error: fmt.Sprintf("save failed: %v", err)})
			continue
		}
		result.Saved = append(result.Saved, *q)
	}
	return result, nil
}
