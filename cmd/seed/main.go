// Command seed provisions a local development database: a demo student
// account, one exam with a small content hierarchy, and a deck of
// flashcards. It also prints a ready-to-use bearer token for the demo user.
//
// Intended for development only.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/avoronov/certprep-backend/internal/adapter/postgres"
	"github.com/avoronov/certprep-backend/internal/app"
	"github.com/avoronov/certprep-backend/internal/auth"
	"github.com/avoronov/certprep-backend/internal/config"
	"github.com/avoronov/certprep-backend/internal/domain"
)

const (
	demoEmail    = "student@example.com"
	demoPassword = "password123"
)

func main() {
	cardCount := flag.Int("cards", 30, "number of flashcards to seed")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	userID, err := seedDemoUser(ctx, pool)
	if err != nil {
		logger.Error("seed demo user", slog.String("error", err.Error()))
		os.Exit(1)
	}

	domainID, err := seedContent(ctx, pool, *cardCount)
	if err != nil {
		logger.Error("seed content", slog.String("error", err.Error()))
		os.Exit(1)
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	token, err := jwtManager.GenerateAccessToken(userID, string(domain.UserRoleStudent))
	if err != nil {
		logger.Error("generate token", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seed complete",
		slog.String("user_id", userID.String()),
		slog.String("domain_id", domainID.String()),
		slog.Int("cards", *cardCount),
	)
	fmt.Printf("demo user: %s / %s\n", demoEmail, demoPassword)
	fmt.Printf("bearer token (valid %s):\n%s\n", cfg.Auth.AccessTokenTTL, token)
}

func seedDemoUser(ctx context.Context, pool *pgxpool.Pool) (uuid.UUID, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return uuid.Nil, fmt.Errorf("hash password: %w", err)
	}

	var userID uuid.UUID
	err = pool.QueryRow(ctx,
		`INSERT INTO users (email, password_hash, name, role)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (email) DO UPDATE SET password_hash = EXCLUDED.password_hash
		 RETURNING id`,
		demoEmail, string(hash), "Demo Student", string(domain.UserRoleStudent),
	).Scan(&userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert user: %w", err)
	}

	return userID, nil
}

// seedContent creates one exam with two domains, a category and skill chain
// under the first domain, and count flashcards spread across both domains.
// Re-running refreshes nothing: existing rows are kept via ON CONFLICT.
func seedContent(ctx context.Context, pool *pgxpool.Pool, count int) (uuid.UUID, error) {
	var examID uuid.UUID
	err := pool.QueryRow(ctx,
		`INSERT INTO exams (code, name, description, display_order)
		 VALUES ('DEMO-100', 'Demo Certification', 'Seeded demo exam', 0)
		 ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name
		 RETURNING id`,
	).Scan(&examID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert exam: %w", err)
	}

	domainIDs := make([]uuid.UUID, 0, 2)
	for i, name := range []string{"Core Concepts", "Operations"} {
		var domainID uuid.UUID
		err := pool.QueryRow(ctx,
			`INSERT INTO exam_domains (exam_id, name, display_order)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (exam_id, name) DO UPDATE SET display_order = EXCLUDED.display_order
			 RETURNING id`,
			examID, name, i,
		).Scan(&domainID)
		if err != nil {
			return uuid.Nil, fmt.Errorf("insert domain %q: %w", name, err)
		}
		domainIDs = append(domainIDs, domainID)
	}

	var categoryID uuid.UUID
	err = pool.QueryRow(ctx,
		`INSERT INTO categories (domain_id, name, display_order)
		 VALUES ($1, 'Fundamentals', 0)
		 ON CONFLICT (domain_id, name) DO UPDATE SET display_order = EXCLUDED.display_order
		 RETURNING id`,
		domainIDs[0],
	).Scan(&categoryID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert category: %w", err)
	}

	var skillID uuid.UUID
	err = pool.QueryRow(ctx,
		`INSERT INTO skills (category_id, name, display_order)
		 VALUES ($1, 'Terminology', 0)
		 ON CONFLICT (category_id, name) DO UPDATE SET display_order = EXCLUDED.display_order
		 RETURNING id`,
		categoryID,
	).Scan(&skillID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert skill: %w", err)
	}

	for i := 0; i < count; i++ {
		domainID := domainIDs[i%len(domainIDs)]
		var catID, sklID *uuid.UUID
		if domainID == domainIDs[0] {
			catID, sklID = &categoryID, &skillID
		}

		_, err := pool.Exec(ctx,
			`INSERT INTO flashcards (domain_id, category_id, skill_id, question, answer, explanation, display_order)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			domainID, catID, sklID,
			fmt.Sprintf("Demo question %d: what does concept %d cover?", i+1, i+1),
			fmt.Sprintf("Demo answer %d.", i+1),
			fmt.Sprintf("Explanation for concept %d.", i+1),
			i,
		)
		if err != nil {
			return uuid.Nil, fmt.Errorf("insert flashcard %d: %w", i+1, err)
		}
	}

	return domainIDs[0], nil
}
