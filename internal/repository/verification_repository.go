package repository

import (
	"context"

	"elearning-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type VerificationRepository struct {
	Col *mongo.Collection
}

func NewVerificationRepository(db *mongo.Database) *VerificationRepository {
	return &VerificationRepository{Col: db.Collection("email_verifications")}
}

func (r *VerificationRepository) Create(ctx context.Context, rec *models.VerificationRecord) error {
	_, err := r.Col.InsertOne(ctx, rec)
	return err
}

// FindByEmailAndCode matches exactly; expired or consumed codes simply
// never match because consumed records are deleted.
func (r *VerificationRepository) FindByEmailAndCode(ctx context.Context, email, code string) (*models.VerificationRecord, error) {
	var rec models.VerificationRecord
	if err := r.Col.FindOne(ctx, bson.M{"email": email, "code": code}).Decode(&rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// DeleteAllForEmail removes every outstanding code for the address,
// not just the matched one.
func (r *VerificationRepository) DeleteAllForEmail(ctx context.Context, email string) error {
	_, err := r.Col.DeleteMany(ctx, bson.M{"email": email})
	return err
}
