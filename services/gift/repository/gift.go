package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"patientgift/domain"

	"gorm.io/gorm"
)

type giftRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGiftRepository(database *gorm.DB) domain.GiftRepo {
	return &giftRepository{
		db:  database,
		now: time.Now,
	}
}

func (gr *giftRepository) Create(ctx context.Context, slug, patientName, note, clinician string) (*domain.Gift, error) {
	gift := domain.Gift{
		Slug:        slug,
		PatientName: strings.TrimSpace(patientName),
		Note:        strings.TrimSpace(note),
		Clinician:   strings.TrimSpace(clinician),
		CreatedAt:   gr.now().UTC().Format(time.RFC3339Nano),
	}

	err := gr.db.WithContext(ctx).Create(&gift).Error
	if err != nil {
		if isDuplicateKey(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateSlug, slug)
		}
		return nil, fmt.Errorf("failed to create gift: %w", err)
	}

	return &gift, nil
}

func (gr *giftRepository) GetBySlug(ctx context.Context, slug string) (*domain.Gift, error) {
	var gift domain.Gift
	err := gr.db.WithContext(ctx).Where("slug = ?", slug).First(&gift).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching gift %s: %w", slug, err)
	}

	return &gift, nil
}

func (gr *giftRepository) ListRecent(ctx context.Context, limit int) ([]domain.Gift, error) {
	gifts := []domain.Gift{}
	if limit <= 0 {
		return gifts, nil
	}

	err := gr.db.WithContext(ctx).Order("id DESC").Limit(limit).Find(&gifts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list gifts: %w", err)
	}

	return gifts, nil
}

// isDuplicateKey matches the translated gorm error first and falls back to the
// driver text for dialects without an error translator.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint") ||
		strings.Contains(s, "sqlstate 23505")
}
