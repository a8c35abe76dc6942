package domain

import (
	"context"
	"errors"
	"time"
)

// MaxSlugAttempts bounds how many fresh slugs CreateGift tries before giving up.
const MaxSlugAttempts = 5

var (
	// ErrDuplicateSlug is returned by GiftRepo.Create when the slug is already taken.
	ErrDuplicateSlug = errors.New("duplicate slug")
	// ErrSlugExhausted means every attempt collided with an existing slug.
	ErrSlugExhausted = errors.New("could not allocate a unique slug")
)

// Gift is a patient gift record. Rows are append-only.
type Gift struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug        string `gorm:"type:varchar(32);not null;uniqueIndex" json:"slug"`
	PatientName string `gorm:"type:text;not null" json:"patient_name"`
	Note        string `gorm:"type:text;not null;default:''" json:"note"`
	Clinician   string `gorm:"type:text;not null;default:''" json:"clinician"`
	CreatedAt   string `gorm:"type:text;not null" json:"created_at"`
}

func (Gift) TableName() string {
	return "gifts"
}

// CreatedTime parses CreatedAt. The zero time is returned for malformed values.
func (g Gift) CreatedTime() time.Time {
	t, err := time.Parse(time.RFC3339Nano, g.CreatedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}

type CreateGiftRequest struct {
	PatientName string `json:"patient_name" form:"patient_name" valid:"required~patient_name is required,minstringlength(2)~patient_name is too short"`
	Note        string `json:"note" form:"note" valid:"optional"`
	Clinician   string `json:"clinician" form:"clinician" valid:"optional"`
}

// ValidationError carries a reason that is safe to show to the requester.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

type GiftRepo interface {
	Create(ctx context.Context, slug, patientName, note, clinician string) (*Gift, error)
	// GetBySlug returns (nil, nil) when no row matches.
	GetBySlug(ctx context.Context, slug string) (*Gift, error)
	ListRecent(ctx context.Context, limit int) ([]Gift, error)
}

type GiftUseCase interface {
	CreateGift(ctx context.Context, req *CreateGiftRequest) (*Gift, error)
	GetGiftBySlug(ctx context.Context, slug string) (*Gift, error)
	ListRecentGifts(ctx context.Context, limit int) ([]Gift, error)
}
