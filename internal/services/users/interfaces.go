package users

import (
	"context"

	"github.com/podshelf/catalog-api/internal/models"
)

// UserRepository defines the data access interface for accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uint, relations ...string) (*models.User, error)
	// GetUserByEmail returns the account including its password digest, for
	// login only.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUser(ctx context.Context, id uint, updates map[string]any) error
	// DeleteUser removes the account and cascades hosted podcasts and
	// authored reviews in one transaction.
	DeleteUser(ctx context.Context, id uint) error
}

// TokenIssuer signs an access token for an authenticated account.
type TokenIssuer interface {
	Sign(userID uint, role models.UserRole) (string, error)
}

// UserService defines the business logic interface for accounts.
type UserService interface {
	CheckEmail(ctx context.Context, email string) (bool, error)
	CreateAccount(ctx context.Context, input CreateAccountInput) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
	EditProfile(ctx context.Context, userID uint, patch models.UserPatch) error
	Subscriptions(ctx context.Context, listenerID uint) ([]models.Podcast, error)
	DeleteAccount(ctx context.Context, userID uint) error
}

// CreateAccountInput carries the sign-up fields.
type CreateAccountInput struct {
	Email        string          `json:"email" binding:"required,email"`
	Password     string          `json:"password" binding:"required"`
	Role         models.UserRole `json:"role" binding:"required"`
	ProfileImage string          `json:"profile_image"`
}
