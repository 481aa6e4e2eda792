package users

import (
	"context"

	"github.com/podshelf/catalog-api/internal/models"
	"github.com/podshelf/catalog-api/internal/security"
	catalogerrors "github.com/podshelf/catalog-api/pkg/errors"
)

type Service struct {
	repository UserRepository
	tokens     TokenIssuer
}

func NewService(repository UserRepository, tokens TokenIssuer) UserService {
	return &Service{
		repository: repository,
		tokens:     tokens,
	}
}

// CheckEmail reports whether the email is still free to register.
func (s *Service) CheckEmail(ctx context.Context, email string) (bool, error) {
	_, err := s.repository.GetUserByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if catalogerrors.IsKind(err, catalogerrors.KindNotFound) {
		return true, nil
	}
	return false, catalogerrors.Ensure(err, "Fail to check email.")
}

// CreateAccount registers a new host or listener and returns an access
// token. The password is stored only as its one-way digest.
func (s *Service) CreateAccount(ctx context.Context, input CreateAccountInput) (string, error) {
	isNew, err := s.CheckEmail(ctx, input.Email)
	if err != nil {
		return "", err
	}
	if !isNew {
		return "", catalogerrors.Newf(catalogerrors.KindConflict,
			"User email: %s already exists.", input.Email)
	}
	if input.Role != models.RoleHost && input.Role != models.RoleListener {
		return "", catalogerrors.Newf(catalogerrors.KindValidation,
			"Role must be %s or %s.", models.RoleHost, models.RoleListener)
	}

	digest, err := security.HashPassword(input.Password)
	if err != nil {
		return "", catalogerrors.Ensure(err, "Fail to create account.")
	}

	user := &models.User{
		Email:        input.Email,
		PasswordHash: digest,
		Role:         input.Role,
		ProfileImage: input.ProfileImage,
	}
	if err := s.repository.CreateUser(ctx, user); err != nil {
		return "", catalogerrors.Ensure(err, "Fail to create account.")
	}

	token, err := s.tokens.Sign(user.ID, user.Role)
	if err != nil {
		return "", catalogerrors.Ensure(err, "Fail to create account.")
	}
	return token, nil
}

// Login verifies the credentials and returns an access token.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repository.GetUserByEmail(ctx, email)
	if err != nil {
		return "", catalogerrors.Ensure(err, "Fail to login.")
	}
	if !security.CheckPassword(user.PasswordHash, password) {
		return "", catalogerrors.New(catalogerrors.KindUnauthorized, "Received wrong password.")
	}

	token, err := s.tokens.Sign(user.ID, user.Role)
	if err != nil {
		return "", catalogerrors.Ensure(err, "Fail to login.")
	}
	return token, nil
}

// FindByID returns the account profile.
func (s *Service) FindByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.repository.GetUserByID(ctx, id)
	if err != nil {
		return nil, catalogerrors.Ensure(err, "Fail to find user.")
	}
	return user, nil
}

// EditProfile applies a partial profile update. A new password passes
// through the one-way hash before persistence.
func (s *Service) EditProfile(ctx context.Context, userID uint, patch models.UserPatch) error {
	if _, err := s.FindByID(ctx, userID); err != nil {
		return err
	}

	updates := patch.Updates()
	if patch.Password != nil {
		digest, err := security.HashPassword(*patch.Password)
		if err != nil {
			return catalogerrors.Ensure(err, "Fail to update profile.")
		}
		updates["password_hash"] = digest
	}

	if err := s.repository.UpdateUser(ctx, userID, updates); err != nil {
		return catalogerrors.Ensure(err, "Fail to update profile.")
	}
	return nil
}

// Subscriptions returns the podcasts a listener is subscribed to.
func (s *Service) Subscriptions(ctx context.Context, listenerID uint) ([]models.Podcast, error) {
	user, err := s.repository.GetUserByID(ctx, listenerID, models.RelationSubscriptions)
	if err != nil {
		return nil, catalogerrors.Ensure(err, "Fail to load subscriptions.")
	}
	if user.Subscriptions == nil {
		return []models.Podcast{}, nil
	}
	return user.Subscriptions, nil
}

// DeleteAccount removes the account; hosted podcasts and authored reviews
// cascade with it.
func (s *Service) DeleteAccount(ctx context.Context, userID uint) error {
	if _, err := s.FindByID(ctx, userID); err != nil {
		return err
	}
	if err := s.repository.DeleteUser(ctx, userID); err != nil {
		return catalogerrors.Ensure(err, "Fail to delete account.")
	}
	return nil
}
