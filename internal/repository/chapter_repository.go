package repository

import (
	"context"

	"elearning-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ChapterRepository struct {
	Col *mongo.Collection
}

func NewChapterRepository(db *mongo.Database) *ChapterRepository {
	return &ChapterRepository{Col: db.Collection("chapters")}
}

func (r *ChapterRepository) FindByID(ctx context.Context, id string) (*models.Chapter, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments // invalid id format
	}
	var chapter models.Chapter
	if err := r.Col.FindOne(ctx, bson.M{"_id": objID}).Decode(&chapter); err != nil {
		return nil, err
	}
	return &chapter, nil
}

func (r *ChapterRepository) Create(ctx context.Context, chapter *models.Chapter) error {
	res, err := r.Col.InsertOne(ctx, chapter)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		chapter.ID = oid.Hex()
	}
	return nil
}
