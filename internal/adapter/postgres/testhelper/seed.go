package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avoronov/certprep-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a student user. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		PasswordHash: "$2a$10$test-hash-" + suffix,
		Name:         "Test User " + suffix,
		Role:         domain.UserRoleStudent,
		CreatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, name, role, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.PasswordHash, user.Name, string(user.Role), user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// ExamTree is the seeded content hierarchy: one exam with one domain,
// one category under it, and one skill under that.
type ExamTree struct {
	Exam     domain.Exam
	Domain   domain.ExamDomain
	Category domain.Category
	Skill    domain.Skill
}

// SeedExamTree creates an exam → domain → category → skill chain.
func SeedExamTree(t *testing.T, pool *pgxpool.Pool) ExamTree {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)

	tree := ExamTree{
		Exam: domain.Exam{
			ID:        uuid.New(),
			Code:      "EXAM-" + suffix,
			Name:      "Test Exam " + suffix,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	tree.Domain = domain.ExamDomain{
		ID:        uuid.New(),
		ExamID:    tree.Exam.ID,
		Name:      "Domain " + suffix,
		CreatedAt: now,
		UpdatedAt: now,
	}
	tree.Category = domain.Category{
		ID:        uuid.New(),
		DomainID:  tree.Domain.ID,
		Name:      "Category " + suffix,
		CreatedAt: now,
		UpdatedAt: now,
	}
	tree.Skill = domain.Skill{
		ID:         uuid.New(),
		CategoryID: tree.Category.ID,
		Name:       "Skill " + suffix,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := pool.Exec(ctx,
		`INSERT INTO exams (id, code, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		tree.Exam.ID, tree.Exam.Code, tree.Exam.Name, now, now,
	); err != nil {
		t.Fatalf("testhelper: SeedExamTree insert exam: %v", err)
	}

	if _, err := pool.Exec(ctx,
		`INSERT INTO exam_domains (id, exam_id, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		tree.Domain.ID, tree.Domain.ExamID, tree.Domain.Name, now, now,
	); err != nil {
		t.Fatalf("testhelper: SeedExamTree insert exam_domain: %v", err)
	}

	if _, err := pool.Exec(ctx,
		`INSERT INTO categories (id, domain_id, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		tree.Category.ID, tree.Category.DomainID, tree.Category.Name, now, now,
	); err != nil {
		t.Fatalf("testhelper: SeedExamTree insert category: %v", err)
	}

	if _, err := pool.Exec(ctx,
		`INSERT INTO skills (id, category_id, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		tree.Skill.ID, tree.Skill.CategoryID, tree.Skill.Name, now, now,
	); err != nil {
		t.Fatalf("testhelper: SeedExamTree insert skill: %v", err)
	}

	return tree
}

// SeedFlashcard creates a flashcard under the given domain. Category and
// skill are optional; pass uuid.Nil to leave them unset.
func SeedFlashcard(t *testing.T, pool *pgxpool.Pool, domainID, categoryID, skillID uuid.UUID, displayOrder int) domain.Flashcard {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)

	card := domain.Flashcard{
		ID:           uuid.New(),
		DomainID:     domainID,
		Question:     "What is concept " + suffix + "?",
		Answer:       "Answer " + suffix,
		DisplayOrder: displayOrder,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if categoryID != uuid.Nil {
		card.CategoryID = &categoryID
	}
	if skillID != uuid.Nil {
		card.SkillID = &skillID
	}

	if _, err := pool.Exec(ctx,
		`INSERT INTO flashcards (id, domain_id, category_id, skill_id, question, answer, display_order, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		card.ID, card.DomainID, card.CategoryID, card.SkillID,
		card.Question, card.Answer, card.DisplayOrder, now, now,
	); err != nil {
		t.Fatalf("testhelper: SeedFlashcard insert: %v", err)
	}

	return card
}

// SeedProgress creates a card_progress row with the given scheduling state.
// Status is derived from repetitions the same way the study service does it.
func SeedProgress(t *testing.T, pool *pgxpool.Pool, userID, flashcardID uuid.UUID, ease float64, intervalDays, repetitions int, nextReviewAt *time.Time) domain.CardProgress {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	progress := domain.CardProgress{
		UserID:       userID,
		FlashcardID:  flashcardID,
		EaseFactor:   ease,
		IntervalDays: intervalDays,
		Repetitions:  repetitions,
		Status:       domain.StatusForRepetitions(repetitions),
		NextReviewAt: nextReviewAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if nextReviewAt != nil {
		reviewedAt := now
		progress.LastReviewedAt = &reviewedAt
	}

	if _, err := pool.Exec(ctx,
		`INSERT INTO card_progress (user_id, flashcard_id, ease_factor, interval_days, repetitions, status, next_review_at, last_reviewed_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		progress.UserID, progress.FlashcardID, progress.EaseFactor, progress.IntervalDays,
		progress.Repetitions, string(progress.Status), progress.NextReviewAt, progress.LastReviewedAt,
		progress.CreatedAt, progress.UpdatedAt,
	); err != nil {
		t.Fatalf("testhelper: SeedProgress insert: %v", err)
	}

	return progress
}

// SeedReviewLog creates a review log entry for (user, card) at the given time.
func SeedReviewLog(t *testing.T, pool *pgxpool.Pool, userID, flashcardID uuid.UUID, rating domain.Rating, quality int, reviewedAt time.Time) domain.ReviewLog {
	t.Helper()
	ctx := context.Background()

	log := domain.ReviewLog{
		ID:             uuid.New(),
		UserID:         userID,
		FlashcardID:    flashcardID,
		Rating:         rating,
		Quality:        quality,
		PrevEaseFactor: domain.DefaultEaseFactor,
		ReviewedAt:     reviewedAt.UTC().Truncate(time.Microsecond),
	}

	if _, err := pool.Exec(ctx,
		`INSERT INTO review_logs (id, user_id, flashcard_id, rating, quality, prev_ease_factor, prev_interval_days, prev_repetitions, reviewed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		log.ID, log.UserID, log.FlashcardID, string(log.Rating), log.Quality,
		log.PrevEaseFactor, log.PrevIntervalDay, log.PrevRepetitions, log.ReviewedAt,
	); err != nil {
		t.Fatalf("testhelper: SeedReviewLog insert: %v", err)
	}

	return log
}
