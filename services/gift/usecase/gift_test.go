package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"patientgift/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ domain.GiftRepo = (*MockGiftRepository)(nil)

// MockGiftRepository is a function-field mock of domain.GiftRepo.
type MockGiftRepository struct {
	CreateFunc     func(ctx context.Context, slug, patientName, note, clinician string) (*domain.Gift, error)
	GetBySlugFunc  func(ctx context.Context, slug string) (*domain.Gift, error)
	ListRecentFunc func(ctx context.Context, limit int) ([]domain.Gift, error)

	CreateFuncCallCount int32
}

func (m *MockGiftRepository) Create(ctx context.Context, slug, patientName, note, clinician string) (*domain.Gift, error) {
	atomic.AddInt32(&m.CreateFuncCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, slug, patientName, note, clinician)
	}
	return &domain.Gift{ID: 1, Slug: slug, PatientName: patientName, Note: note, Clinician: clinician}, nil
}

func (m *MockGiftRepository) GetBySlug(ctx context.Context, slug string) (*domain.Gift, error) {
	if m.GetBySlugFunc != nil {
		return m.GetBySlugFunc(ctx, slug)
	}
	return nil, errors.New("GetBySlugFunc not implemented in mock")
}

func (m *MockGiftRepository) ListRecent(ctx context.Context, limit int) ([]domain.Gift, error) {
	if m.ListRecentFunc != nil {
		return m.ListRecentFunc(ctx, limit)
	}
	return nil, nil
}

func newTestUseCase(repo domain.GiftRepo) *giftUseCase {
	return NewGiftUseCase(repo, time.Second).(*giftUseCase)
}

func TestNewSlug(t *testing.T) {
	urlSafe := regexp.MustCompile(`^[A-Za-z0-9_-]{8}$`)
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		s, err := NewSlug()
		require.NoError(t, err)
		assert.Regexp(t, urlSafe, s)
		seen[s] = true
	}
	assert.Greater(t, len(seen), 90, "slugs should come from a random source")
}

func TestCreateGift_TrimsAndPersists(t *testing.T) {
	repo := &MockGiftRepository{}
	uc := newTestUseCase(repo)

	g, err := uc.CreateGift(context.Background(), &domain.CreateGiftRequest{
		PatientName: "  Alex O'Brien  ",
		Note:        " hi ",
		Clinician:   "Dr. Lee",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alex O'Brien", g.PatientName)
	assert.Equal(t, "hi", g.Note)
	assert.Equal(t, "Dr. Lee", g.Clinician)
	assert.NotEmpty(t, g.Slug)
	assert.EqualValues(t, 1, repo.CreateFuncCallCount)
}

func TestCreateGift_RejectsShortNames(t *testing.T) {
	names := []string{"", " ", "A", "  b  ", "\t\n", "Ж "}
	for _, name := range names {
		t.Run(fmt.Sprintf("%q", name), func(t *testing.T) {
			repo := &MockGiftRepository{}
			uc := newTestUseCase(repo)

			g, err := uc.CreateGift(context.Background(), &domain.CreateGiftRequest{PatientName: name})
			assert.Nil(t, g)

			var vErr *domain.ValidationError
			require.True(t, errors.As(err, &vErr), "got %v", err)
			assert.Contains(t, vErr.Reason, "patient_name")
			assert.EqualValues(t, 0, repo.CreateFuncCallCount, "nothing may be persisted")
		})
	}
}

func TestCreateGift_AcceptsTwoRuneNames(t *testing.T) {
	uc := newTestUseCase(&MockGiftRepository{})

	g, err := uc.CreateGift(context.Background(), &domain.CreateGiftRequest{PatientName: " Ян "})
	require.NoError(t, err)
	assert.Equal(t, "Ян", g.PatientName)
}

func TestCreateGift_RetriesOnDuplicateSlug(t *testing.T) {
	var slugs []string
	repo := &MockGiftRepository{
		CreateFunc: func(ctx context.Context, slug, patientName, note, clinician string) (*domain.Gift, error) {
			slugs = append(slugs, slug)
			if len(slugs) < 3 {
				return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateSlug, slug)
			}
			return &domain.Gift{ID: 7, Slug: slug, PatientName: patientName}, nil
		},
	}
	uc := newTestUseCase(repo)
	n := 0
	uc.newSlug = func() (string, error) {
		n++
		return fmt.Sprintf("slug%d", n), nil
	}

	g, err := uc.CreateGift(context.Background(), &domain.CreateGiftRequest{PatientName: "Alex"})
	require.NoError(t, err)
	assert.Equal(t, "slug3", g.Slug)
	assert.Equal(t, []string{"slug1", "slug2", "slug3"}, slugs)
}

func TestCreateGift_GivesUpAfterMaxAttempts(t *testing.T) {
	cause := fmt.Errorf("%w: taken", domain.ErrDuplicateSlug)
	repo := &MockGiftRepository{
		CreateFunc: func(ctx context.Context, slug, patientName, note, clinician string) (*domain.Gift, error) {
			return nil, cause
		},
	}
	uc := newTestUseCase(repo)
	uc.newSlug = func() (string, error) { return "always", nil }

	g, err := uc.CreateGift(context.Background(), &domain.CreateGiftRequest{PatientName: "Alex"})
	assert.Nil(t, g)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlugExhausted)
	assert.ErrorIs(t, err, domain.ErrDuplicateSlug)
	assert.True(t, strings.Contains(err.Error(), "taken"), "last cause should be carried: %v", err)
	assert.EqualValues(t, domain.MaxSlugAttempts, repo.CreateFuncCallCount)
}

func TestCreateGift_OtherStoreErrorsAreNotRetried(t *testing.T) {
	boom := errors.New("disk full")
	repo := &MockGiftRepository{
		CreateFunc: func(ctx context.Context, slug, patientName, note, clinician string) (*domain.Gift, error) {
			return nil, boom
		},
	}
	uc := newTestUseCase(repo)

	_, err := uc.CreateGift(context.Background(), &domain.CreateGiftRequest{PatientName: "Alex"})
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrSlugExhausted)
	assert.EqualValues(t, 1, repo.CreateFuncCallCount)
}

func TestCreateGift_SlugSourceFailure(t *testing.T) {
	repo := &MockGiftRepository{}
	uc := newTestUseCase(repo)
	uc.newSlug = func() (string, error) { return "", errors.New("no entropy") }

	_, err := uc.CreateGift(context.Background(), &domain.CreateGiftRequest{PatientName: "Alex"})
	assert.EqualError(t, err, "no entropy")
	assert.EqualValues(t, 0, repo.CreateFuncCallCount)
}

func TestGetGiftBySlug(t *testing.T) {
	repo := &MockGiftRepository{
		GetBySlugFunc: func(ctx context.Context, slug string) (*domain.Gift, error) {
			if slug == "known" {
				return &domain.Gift{ID: 1, Slug: slug}, nil
			}
			return nil, nil
		},
	}
	uc := newTestUseCase(repo)

	g, err := uc.GetGiftBySlug(context.Background(), "known")
	require.NoError(t, err)
	assert.Equal(t, "known", g.Slug)

	g, err = uc.GetGiftBySlug(context.Background(), "unknown")
	assert.NoError(t, err)
	assert.Nil(t, g)
}

func TestListRecentGifts_PassesLimit(t *testing.T) {
	var got int
	repo := &MockGiftRepository{
		ListRecentFunc: func(ctx context.Context, limit int) ([]domain.Gift, error) {
			got = limit
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			return []domain.Gift{{ID: 2}, {ID: 1}}, nil
		},
	}
	uc := newTestUseCase(repo)

	gifts, err := uc.ListRecentGifts(context.Background(), 50)
	require.NoError(t, err)
	assert.Equal(t, 50, got)
	assert.Len(t, gifts, 2)
}
