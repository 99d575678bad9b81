package usecase

import (
	"context"
	"io"
	"time"

	"influmarket/internal/domain/entity"
	"influmarket/internal/domain/repository"
	"influmarket/internal/domain/service"
	"influmarket/pkg/errors"
)

type UserUseCase struct {
	userRepo       repository.UserRepository
	influencerRepo repository.InfluencerRepository
	brandRepo      repository.BrandRepository
	fileService    service.FileUploadService
}

func NewUserUseCase(
	userRepo repository.UserRepository,
	influencerRepo repository.InfluencerRepository,
	brandRepo repository.BrandRepository,
	fileService service.FileUploadService,
) *UserUseCase {
	return &UserUseCase{
		userRepo:       userRepo,
		influencerRepo: influencerRepo,
		brandRepo:      brandRepo,
		fileService:    fileService,
	}
}

type UpdateInfluencerInput struct {
	Bio           string    `json:"bio"`
	Niche         string    `json:"niche"`
	Followers     int       `json:"followers" validate:"gte=0"`
	DateOfBirth   time.Time `json:"date_of_birth"`
	FacebookLink  string    `json:"facebook_link"`
	InstagramLink string    `json:"instagram_link"`
	TwitterLink   string    `json:"twitter_link"`
	YoutubeLink   string    `json:"youtube_link"`
}

type UpdateBrandInput struct {
	Name               string `json:"name"`
	Website            string `json:"website"`
	ContactEmail       string `json:"contact_email"`
	CompanyDescription string `json:"company_description"`
	Industry           string `json:"industry"`
}

func (uc *UserUseCase) GetProfile(ctx context.Context, userID string) (interface{}, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	switch user.Type {
	case entity.UserTypeInfluencer:
		influencer, err := uc.influencerRepo.GetByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"user": user, "influencer": influencer}, nil
	case entity.UserTypeBrand:
		brand, err := uc.brandRepo.GetByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"user": user, "brand": brand}, nil
	}
	return map[string]interface{}{"user": user}, nil
}

func (uc *UserUseCase) UpdateInfluencerProfile(ctx context.Context, userID string, input UpdateInfluencerInput) (*entity.Influencer, error) {
	influencer, err := uc.influencerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Bio != "" {
		influencer.Bio = input.Bio
	}
	if input.Niche != "" {
		influencer.Niche = input.Niche
	}
	if input.Followers > 0 {
		influencer.Followers = input.Followers
	}
	if !input.DateOfBirth.IsZero() {
		influencer.DateOfBirth = input.DateOfBirth
	}
	if input.FacebookLink != "" {
		influencer.FacebookLink = input.FacebookLink
	}
	if input.InstagramLink != "" {
		influencer.InstagramLink = input.InstagramLink
	}
	if input.TwitterLink != "" {
		influencer.TwitterLink = input.TwitterLink
	}
	if input.YoutubeLink != "" {
		influencer.YoutubeLink = input.YoutubeLink
	}

	if err := uc.influencerRepo.Update(ctx, influencer); err != nil {
		return nil, err
	}
	return influencer, nil
}

func (uc *UserUseCase) UpdateBrandProfile(ctx context.Context, userID string, input UpdateBrandInput) (*entity.Brand, error) {
	brand, err := uc.brandRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		brand.Name = input.Name
	}
	if input.Website != "" {
		brand.Website = input.Website
	}
	if input.ContactEmail != "" {
		brand.ContactEmail = input.ContactEmail
	}
	if input.CompanyDescription != "" {
		brand.CompanyDescription = input.CompanyDescription
	}
	if input.Industry != "" {
		brand.Industry = input.Industry
	}

	if err := uc.brandRepo.Update(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

// UploadProfileImage stores the image and points the caller's profile at it.
func (uc *UserUseCase) UploadProfileImage(ctx context.Context, userID string, file io.Reader, filename string, size int64) (*service.UploadResult, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	result, err := uc.fileService.UploadProfileImage(ctx, file, filename, size)
	if err != nil {
		return nil, err
	}

	switch user.Type {
	case entity.UserTypeInfluencer:
		influencer, err := uc.influencerRepo.GetByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		influencer.ProfileImage = result.URL
		if err := uc.influencerRepo.Update(ctx, influencer); err != nil {
			return nil, err
		}
	case entity.UserTypeBrand:
		brand, err := uc.brandRepo.GetByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		brand.ProfileImage = result.URL
		if err := uc.brandRepo.Update(ctx, brand); err != nil {
			return nil, err
		}
	default:
		return nil, errors.BadRequest("Account has no profile to attach an image to", nil)
	}

	return result, nil
}

func (uc *UserUseCase) ListInfluencers(ctx context.Context, niche string, limit, offset int) ([]*entity.Influencer, int64, error) {
	return uc.influencerRepo.List(ctx, niche, limit, offset)
}

func (uc *UserUseCase) GetInfluencer(ctx context.Context, id string) (*entity.Influencer, error) {
	return uc.influencerRepo.GetByID(ctx, id)
}

func (uc *UserUseCase) GetBrand(ctx context.Context, id string) (*entity.Brand, error) {
	return uc.brandRepo.GetByID(ctx, id)
}
