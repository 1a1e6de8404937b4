package repository

import (
	"context"
	"errors"

	"quizhub/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type QuestionRepository struct {
	Col *mongo.Collection
}

func NewQuestionRepository(db *mongo.Database) *QuestionRepository {
	return &QuestionRepository{Col: db.Collection("questions")}
}

// QuestionFilter narrows a listing to exact category/difficulty matches.
// Empty fields leave that dimension unconstrained.
type QuestionFilter struct {
	Category   string
	Difficulty string
}

func (f QuestionFilter) toBSON() bson.M {
	filter := bson.M{}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.Difficulty != "" {
		filter["difficulty"] = f.Difficulty
	}
	return filter
}

func (r *QuestionRepository) FindAll(ctx context.Context, filter QuestionFilter) ([]models.Question, error) {
	cur, err := r.Col.Find(ctx, filter.toBSON())
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	questions := []models.Question{}
	if err := cur.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *QuestionRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Question, error) {
	var question models.Question
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&question)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *QuestionRepository) Insert(ctx context.Context, question *models.Question) error {
	res, err := r.Col.InsertOne(ctx, question)
	if err != nil {
		return err
	}
	question.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// Update applies a partial $set and returns the document as it stands after
// the write. A missing id surfaces as models.ErrNotFound.
func (r *QuestionRepository) Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Question, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Question
	err := r.Col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": update}, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the document. Deleting an id that is already gone is not an
// error; the operation is idempotent from the caller's point of view.
func (r *QuestionRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *QuestionRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	values, err := r.Col.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, err
	}
	categories := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			categories = append(categories, s)
		}
	}
	return categories, nil
}
