package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/cyclecare-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a unique email and no cycle length.
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
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.PasswordHash, user.Name, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedPeriod inserts a period for userID spanning [start, end].
func SeedPeriod(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, start, end string) domain.Period {
	t.Helper()
	ctx := context.Background()

	s, err := domain.ParseDate(start)
	if err != nil {
		t.Fatalf("testhelper: SeedPeriod: %v", err)
	}
	e, err := domain.ParseDate(end)
	if err != nil {
		t.Fatalf("testhelper: SeedPeriod: %v", err)
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.Period{
		ID:        uuid.New(),
		UserID:    userID,
		StartDate: s,
		EndDate:   e,
		Length:    domain.PeriodLength(s, e),
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO periods (id, user_id, start_date, end_date, length, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.UserID, p.StartDate, p.EndDate, p.Length, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPeriod insert: %v", err)
	}

	return p
}
