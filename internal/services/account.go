package services

import (
	"context"
	"errors"

	"github.com/femwell/femwell-backend/internal/logger"
	"github.com/femwell/femwell-backend/internal/models"
)

// Error variables
var (
	ErrEmailAlreadyExists = errors.New("user with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user models.User) (*models.User, error)
}

// AccountService handles signup and user lookup.
type AccountService struct {
	reader UserReader
	writer UserWriter
}

// NewAccountService creates a new AccountService instance.
func NewAccountService(reader UserReader, writer UserWriter) *AccountService {
	return &AccountService{
		reader: reader,
		writer: writer,
	}
}

// Register creates a user after checking email uniqueness. The UNIQUE
// constraint on users.email backs up this check at the storage layer, so two
// concurrent signups with the same address cannot both succeed.
func (svc *AccountService) Register(ctx context.Context, user models.User) (*models.User, error) {
	existing, err := svc.reader.GetByEmail(ctx, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Errorw("user already exists", "email", user.Email)
		return nil, ErrEmailAlreadyExists
	}

	created, err := svc.writer.Save(ctx, user)
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return created, nil
}

// GetUser looks up a user by id.
func (svc *AccountService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "id", id, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return user, nil
}
