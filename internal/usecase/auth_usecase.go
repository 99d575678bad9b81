package usecase

import (
	"context"
	"time"

	"influmarket/internal/domain/entity"
	"influmarket/internal/domain/repository"
	"influmarket/pkg/errors"
	"influmarket/pkg/logger"
)

type AuthUseCase struct {
	authClient     FirebaseAuthClient
	userRepo       repository.UserRepository
	influencerRepo repository.InfluencerRepository
	brandRepo      repository.BrandRepository
}

func NewAuthUseCase(
	authClient FirebaseAuthClient,
	userRepo repository.UserRepository,
	influencerRepo repository.InfluencerRepository,
	brandRepo repository.BrandRepository,
) *AuthUseCase {
	return &AuthUseCase{
		authClient:     authClient,
		userRepo:       userRepo,
		influencerRepo: influencerRepo,
		brandRepo:      brandRepo,
	}
}

type RegisterInfluencerInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Username string `json:"username" validate:"required,min=3"`
	Bio      string `json:"bio"`
	Niche    string `json:"niche"`
}

type RegisterBrandInput struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	Username     string `json:"username" validate:"required,min=3"`
	Name         string `json:"name" validate:"required"`
	Website      string `json:"website"`
	ContactEmail string `json:"contact_email"`
	Industry     string `json:"industry"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResult struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

func (uc *AuthUseCase) RegisterInfluencer(ctx context.Context, input RegisterInfluencerInput) (*entity.User, error) {
	if _, err := uc.userRepo.GetByEmail(ctx, input.Email); err == nil {
		return nil, errors.Conflict("Email already registered")
	}

	uid, err := uc.authClient.CreateUser(ctx, input.Email, input.Password, input.Username)
	if err != nil {
		return nil, errors.Internal("Failed to create auth account", err)
	}

	user := &entity.User{
		ID:       uid,
		Email:    input.Email,
		Username: input.Username,
		Type:     entity.UserTypeInfluencer,
		Active:   true,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	influencer := &entity.Influencer{
		UserID: uid,
		Bio:    input.Bio,
		Niche:  input.Niche,
	}
	if err := uc.influencerRepo.Create(ctx, influencer); err != nil {
		return nil, err
	}

	logger.Info("Registered influencer %s", uid)
	return user, nil
}

func (uc *AuthUseCase) RegisterBrand(ctx context.Context, input RegisterBrandInput) (*entity.User, error) {
	if _, err := uc.userRepo.GetByEmail(ctx, input.Email); err == nil {
		return nil, errors.Conflict("Email already registered")
	}

	uid, err := uc.authClient.CreateUser(ctx, input.Email, input.Password, input.Username)
	if err != nil {
		return nil, errors.Internal("Failed to create auth account", err)
	}

	user := &entity.User{
		ID:       uid,
		Email:    input.Email,
		Username: input.Username,
		Type:     entity.UserTypeBrand,
		Active:   true,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	brand := &entity.Brand{
		UserID:       uid,
		Name:         input.Name,
		Website:      input.Website,
		ContactEmail: input.ContactEmail,
		Industry:     input.Industry,
	}
	if err := uc.brandRepo.Create(ctx, brand); err != nil {
		return nil, err
	}

	logger.Info("Registered brand %s", uid)
	return user, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	user, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, errors.Unauthorized("Invalid email or password", err)
	}
	if !user.Active {
		return nil, errors.Forbidden("Account is deactivated", nil)
	}

	token, err := uc.authClient.SignInWithEmailPassword(ctx, input.Email, input.Password)
	if err != nil {
		return nil, errors.Unauthorized("Invalid email or password", err)
	}

	user.LastActivity = time.Now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		logger.Warn("Failed to record last activity for %s: %v", user.ID, err)
	}

	return &AuthResult{Token: token, User: user}, nil
}

func (uc *AuthUseCase) UpdatePassword(ctx context.Context, userID, newPassword string) error {
	if len(newPassword) < 8 {
		return errors.BadRequest("Password must be at least 8 characters", nil)
	}
	if err := uc.authClient.UpdateUserPassword(ctx, userID, newPassword); err != nil {
		return errors.Internal("Failed to update password", err)
	}
	return nil
}
