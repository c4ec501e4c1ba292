package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/femwell/femwell-backend/internal/logger"
	"github.com/femwell/femwell-backend/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	const query = `
		SELECT id, first_name, last_name, email, password, date_of_birth, created_at
		FROM users
		WHERE id = ?
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, r.db.Rebind(query), id)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	const query = `
		SELECT id, first_name, last_name, email, password, date_of_birth, created_at
		FROM users
		WHERE email = ?
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, r.db.Rebind(query), email)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns the stored record with its assigned id
// and creation timestamp. Ids are assigned by the database and never reused.
func (r *UserWriteRepository) Save(ctx context.Context, user models.User) (*models.User, error) {
	const query = `
		INSERT INTO users (first_name, last_name, email, password, date_of_birth, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id
	`

	user.CreatedAt = time.Now()
	args := []any{user.FirstName, user.LastName, user.Email, user.Password, user.DateOfBirth, user.CreatedAt}

	err := r.db.QueryRowxContext(ctx, r.db.Rebind(query), args...).Scan(&user.ID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{user.FirstName, user.LastName, user.Email, user.DateOfBirth},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}
