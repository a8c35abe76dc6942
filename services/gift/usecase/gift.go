package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"patientgift/domain"

	"github.com/asaskevich/govalidator"
)

type giftUseCase struct {
	repo    domain.GiftRepo
	TimeOut time.Duration
	newSlug func() (string, error)
}

func NewGiftUseCase(repo domain.GiftRepo, to time.Duration) domain.GiftUseCase {
	return &giftUseCase{
		repo:    repo,
		TimeOut: to,
		newSlug: NewSlug,
	}
}

func (guc *giftUseCase) CreateGift(ctx context.Context, req *domain.CreateGiftRequest) (*domain.Gift, error) {
	payload := domain.CreateGiftRequest{
		PatientName: strings.TrimSpace(req.PatientName),
		Note:        strings.TrimSpace(req.Note),
		Clinician:   strings.TrimSpace(req.Clinician),
	}
	if _, err := govalidator.ValidateStruct(payload); err != nil {
		return nil, &domain.ValidationError{Reason: validationReason(err)}
	}

	ctx, cancel := context.WithTimeout(ctx, guc.TimeOut)
	defer cancel()

	var lastErr error
	for attempt := 0; attempt < domain.MaxSlugAttempts; attempt++ {
		slug, err := guc.newSlug()
		if err != nil {
			return nil, err
		}

		gift, err := guc.repo.Create(ctx, slug, payload.PatientName, payload.Note, payload.Clinician)
		if err == nil {
			return gift, nil
		}
		if !errors.Is(err, domain.ErrDuplicateSlug) {
			return nil, err
		}
		lastErr = err
	}

	return nil, fmt.Errorf("%w after %d attempts: %w", domain.ErrSlugExhausted, domain.MaxSlugAttempts, lastErr)
}

func (guc *giftUseCase) GetGiftBySlug(ctx context.Context, slug string) (*domain.Gift, error) {
	ctx, cancel := context.WithTimeout(ctx, guc.TimeOut)
	defer cancel()

	v, err := guc.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (guc *giftUseCase) ListRecentGifts(ctx context.Context, limit int) ([]domain.Gift, error) {
	ctx, cancel := context.WithTimeout(ctx, guc.TimeOut)
	defer cancel()

	v, err := guc.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// validationReason keeps the custom messages from the struct tags and drops
// govalidator's field prefixes.
func validationReason(err error) string {
	var errs govalidator.Errors
	if errors.As(err, &errs) {
		msgs := make([]string, 0, len(errs.Errors()))
		for _, e := range errs.Errors() {
			msgs = append(msgs, e.Error())
		}
		return strings.Join(msgs, "; ")
	}
	return err.Error()
}
