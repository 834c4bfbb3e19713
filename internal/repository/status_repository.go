package repository

import (
	"context"

	"elearning-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type StatusRepository struct {
	Col *mongo.Collection
}

func NewStatusRepository(db *mongo.Database) *StatusRepository {
	return &StatusRepository{Col: db.Collection("status_checks")}
}

func (r *StatusRepository) Create(ctx context.Context, check *models.StatusCheck) error {
	res, err := r.Col.InsertOne(ctx, check)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		check.ID = oid.Hex()
	}
	return nil
}

func (r *StatusRepository) FindAll(ctx context.Context) ([]models.StatusCheck, error) {
	cur, err := r.Col.Find(ctx, bson.M{}, options.Find().SetLimit(1000))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var checks []models.StatusCheck
	for cur.Next(ctx) {
		var c models.StatusCheck
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		checks = append(checks, c)
	}
	return checks, cur.Err()
}
