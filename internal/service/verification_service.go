package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"elearning-service/internal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	codeLength           = 6
	verificationSubject  = "Kode Verifikasi E-Learning AR"
	verificationTemplate = "Kode verifikasi e-learning AR Anda adalah: %s\n\nJangan berikan kode ini kepada orang lain."
)

type verificationStore interface {
	Create(ctx context.Context, rec *models.VerificationRecord) error
	FindByEmailAndCode(ctx context.Context, email, code string) (*models.VerificationRecord, error)
	DeleteAllForEmail(ctx context.Context, email string) error
}

type codeSender interface {
	Configured() bool
	Send(to, subject, body string) error
}

type VerificationService struct {
	store  verificationStore
	sender codeSender
}

func NewVerificationService(store verificationStore, sender codeSender) *VerificationService {
	return &VerificationService{store: store, sender: sender}
}

// GenerateCode draws each digit independently, so leading zeros are valid
// and the code is always a fixed-width string.
func GenerateCode() string {
	var b strings.Builder
	for i := 0; i < codeLength; i++ {
		b.WriteByte(byte('0' + rand.Intn(10)))
	}
	return b.String()
}

// RequestVerification creates a fresh code for the address and mails it.
// A prior unconsumed code for the same address is left in place; both stay
// valid until one of them is verified. The record is persisted before the
// send, so a delivery failure can leave a code that was never emailed.
func (s *VerificationService) RequestVerification(ctx context.Context, email string) error {
	if !s.sender.Configured() {
		return ErrMailNotConfigured
	}

	code := GenerateCode()
	rec := &models.VerificationRecord{
		Email:     email,
		Code:      code,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Create(ctx, rec); err != nil {
		return err
	}

	body := fmt.Sprintf(verificationTemplate, code)
	if err := s.sender.Send(email, verificationSubject, body); err != nil {
		return fmt.Errorf("%w: %v", ErrMailDelivery, err)
	}
	return nil
}

// VerifyCode matches the pair exactly and, on success, consumes every
// outstanding code for the address.
func (s *VerificationService) VerifyCode(ctx context.Context, email, code string) error {
	_, err := s.store.FindByEmailAndCode(ctx, email, code)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrInvalidCode
		}
		return err
	}
	return s.store.DeleteAllForEmail(ctx, email)
}
