package study

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/avoronov/certprep-backend/internal/config"
	"github.com/avoronov/certprep-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type flashcardRepo interface {
	Exists(ctx context.Context, flashcardID uuid.UUID) (bool, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.FlashcardFilter, now time.Time) ([]domain.StudyCard, int, error)
	Count(ctx context.Context) (int, error)
	CountDue(ctx context.Context, userID uuid.UUID, now time.Time) (int, error)
}

type progressRepo interface {
	Get(ctx context.Context, userID, flashcardID uuid.UUID) (*domain.CardProgress, error)
	Upsert(ctx context.Context, progress *domain.CardProgress) (*domain.CardProgress, error)
	CountByStatus(ctx context.Context, userID uuid.UUID) (map[domain.CardStatus]int, error)
}

type reviewLogRepo interface {
	Create(ctx context.Context, log *domain.ReviewLog) error
	CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
	ListByFlashcard(ctx context.Context, userID, flashcardID uuid.UUID, limit int) ([]domain.ReviewLog, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the study business logic: applying ratings to cards via
// the SM-2 scheduler and answering "which cards are due" queries.
type Service struct {
	flashcards flashcardRepo
	progress   progressRepo
	reviews    reviewLogRepo
	tx         txManager
	cfg        config.StudyConfig
	log        *slog.Logger

	// now is injected so tests can pin timestamps.
	now func() time.Time
}

// NewService creates the study service.
func NewService(
	log *slog.Logger,
	flashcards flashcardRepo,
	progress progressRepo,
	reviews reviewLogRepo,
	tx txManager,
	cfg config.StudyConfig,
) *Service {
	return &Service{
		flashcards: flashcards,
		progress:   progress,
		reviews:    reviews,
		tx:         tx,
		cfg:        cfg,
		log:        log.With("service", "study"),
		now:        time.Now,
	}
}

// listLimits resolves the configured listing limits, falling back to the
// package defaults when the config section is zero-valued (direct struct
// construction in tests).
func (s *Service) listLimits() (def, max int) {
	def, max = defaultListLimit, maxListLimit
	if s.cfg.DefaultListLimit > 0 {
		def = s.cfg.DefaultListLimit
	}
	if s.cfg.MaxListLimit > 0 {
		max = s.cfg.MaxListLimit
	}
	return def, max
}
