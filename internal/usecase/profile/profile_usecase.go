// Package profile covers profile lifecycle, privacy settings and the
// privacy-filtered projection served to other users.
package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/venturelink/venturelink-backend/internal/domain"
	"github.com/venturelink/venturelink-backend/internal/repository"
)

type UseCase struct {
	profileRepo repository.ProfileRepository
	privacyRepo repository.PrivacyRepository
	connRepo    repository.ConnectionRepository
}

func NewUseCase(
	profileRepo repository.ProfileRepository,
	privacyRepo repository.PrivacyRepository,
	connRepo repository.ConnectionRepository,
) *UseCase {
	return &UseCase{
		profileRepo: profileRepo,
		privacyRepo: privacyRepo,
		connRepo:    connRepo,
	}
}

type CreateProfileInput struct {
	IsStartup     bool       `json:"isStartup"`
	Name          string     `json:"name" binding:"required,min=1,max=120"`
	Email         string     `json:"email" binding:"required,email"`
	Industry      string     `json:"industry" binding:"required"`
	PhoneNumber   *string    `json:"phoneNumber"`
	Country       *string    `json:"country"`
	City          *string    `json:"city"`
	LinkedInURL   *string    `json:"linkedInURL" binding:"omitempty,url"`
	Slogan        *string    `json:"slogan"`
	WebsiteLink   *string    `json:"websiteLink" binding:"omitempty,url"`
	Avatar        *string    `json:"avatar"`
	Description   *string    `json:"description"`
	Gender        *string    `json:"gender"`
	HobbyInterest *string    `json:"hobbyInterest"`
	Education     *string    `json:"education"`
	DateOfBirth   *time.Time `json:"dateOfBirth"`
	CurrentStage  *string    `json:"currentStage"`
	Statement     *string    `json:"statement"`
	AboutUs       *string    `json:"aboutUs"`
	Tags          []string   `json:"tags"`

	Privacy *PrivacyInput `json:"privacy"`
}

type PrivacyInput struct {
	GenderPrivacy        domain.PrivacyTier `json:"genderPrivacy" binding:"required,privacytier"`
	IndustryPrivacy      domain.PrivacyTier `json:"industryPrivacy" binding:"required,privacytier"`
	EmailPrivacy         domain.PrivacyTier `json:"emailPrivacy" binding:"required,privacytier"`
	PhoneNumberPrivacy   domain.PrivacyTier `json:"phoneNumberPrivacy" binding:"required,privacytier"`
	CountryPrivacy       domain.PrivacyTier `json:"countryPrivacy" binding:"required,privacytier"`
	CityPrivacy          domain.PrivacyTier `json:"cityPrivacy" binding:"required,privacytier"`
	LinkedInURLPrivacy   domain.PrivacyTier `json:"linkedInURLPrivacy" binding:"required,privacytier"`
	SloganPrivacy        domain.PrivacyTier `json:"sloganPrivacy" binding:"required,privacytier"`
	HobbyInterestPrivacy domain.PrivacyTier `json:"hobbyInterestPrivacy" binding:"required,privacytier"`
	EducationPrivacy     domain.PrivacyTier `json:"educationPrivacy" binding:"required,privacytier"`
	DateOfBirthPrivacy   domain.PrivacyTier `json:"dateOfBirthPrivacy" binding:"required,privacytier"`
	AchievementPrivacy   domain.PrivacyTier `json:"achievementPrivacy" binding:"required,privacytier"`
}

func (in *PrivacyInput) toSettings(profileID int) *domain.PrivacySettings {
	return &domain.PrivacySettings{
		ProfileID:            profileID,
		GenderPrivacy:        in.GenderPrivacy,
		IndustryPrivacy:      in.IndustryPrivacy,
		EmailPrivacy:         in.EmailPrivacy,
		PhoneNumberPrivacy:   in.PhoneNumberPrivacy,
		CountryPrivacy:       in.CountryPrivacy,
		CityPrivacy:          in.CityPrivacy,
		LinkedInURLPrivacy:   in.LinkedInURLPrivacy,
		SloganPrivacy:        in.SloganPrivacy,
		HobbyInterestPrivacy: in.HobbyInterestPrivacy,
		EducationPrivacy:     in.EducationPrivacy,
		DateOfBirthPrivacy:   in.DateOfBirthPrivacy,
		AchievementPrivacy:   in.AchievementPrivacy,
	}
}

// CreateProfile stores a new profile for userID. When the request carries no
// privacy block every field defaults to public.
func (uc *UseCase) CreateProfile(ctx context.Context, userID int, input *CreateProfileInput) (*domain.Profile, error) {
	p := &domain.Profile{
		UserID:        userID,
		IsStartup:     input.IsStartup,
		Name:          input.Name,
		Email:         input.Email,
		Industry:      input.Industry,
		PhoneNumber:   input.PhoneNumber,
		Country:       input.Country,
		City:          input.City,
		LinkedInURL:   input.LinkedInURL,
		Slogan:        input.Slogan,
		WebsiteLink:   input.WebsiteLink,
		Avatar:        input.Avatar,
		Description:   input.Description,
		Gender:        input.Gender,
		HobbyInterest: input.HobbyInterest,
		Education:     input.Education,
		DateOfBirth:   input.DateOfBirth,
		CurrentStage:  input.CurrentStage,
		Statement:     input.Statement,
		AboutUs:       input.AboutUs,
		Tags:          input.Tags,
	}

	if err := uc.profileRepo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	settings := domain.DefaultPrivacySettings(p.ID)
	if input.Privacy != nil {
		settings = input.Privacy.toSettings(p.ID)
	}
	if err := uc.privacyRepo.Create(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to create privacy settings: %w", err)
	}

	return p, nil
}

// ListMyProfiles returns every profile owned by userID.
func (uc *UseCase) ListMyProfiles(ctx context.Context, userID int) ([]*domain.Profile, error) {
	return uc.profileRepo.ListByOwner(ctx, userID)
}

// GetMyProfile returns the caller's own profile with related collections.
func (uc *UseCase) GetMyProfile(ctx context.Context, userID, profileID int) (*domain.Profile, error) {
	p, err := uc.profileRepo.GetWithRelated(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if p.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return p, nil
}

type UpdateProfileInput struct {
	Name          *string    `json:"name" binding:"omitempty,min=1,max=120"`
	Email         *string    `json:"email" binding:"omitempty,email"`
	Industry      *string    `json:"industry"`
	PhoneNumber   *string    `json:"phoneNumber"`
	Country       *string    `json:"country"`
	City          *string    `json:"city"`
	LinkedInURL   *string    `json:"linkedInURL" binding:"omitempty,url"`
	Slogan        *string    `json:"slogan"`
	WebsiteLink   *string    `json:"websiteLink" binding:"omitempty,url"`
	Avatar        *string    `json:"avatar"`
	Description   *string    `json:"description"`
	Gender        *string    `json:"gender"`
	HobbyInterest *string    `json:"hobbyInterest"`
	Education     *string    `json:"education"`
	DateOfBirth   *time.Time `json:"dateOfBirth"`
	CurrentStage  *string    `json:"currentStage"`
	Statement     *string    `json:"statement"`
	AboutUs       *string    `json:"aboutUs"`
	Tags          []string   `json:"tags"`
}

// UpdateProfile applies the non-nil fields of input to the caller's profile.
// IsStartup is fixed at creation and cannot change.
func (uc *UseCase) UpdateProfile(ctx context.Context, userID, profileID int, input *UpdateProfileInput) (*domain.Profile, error) {
	p, err := uc.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if p.UserID != userID {
		return nil, domain.ErrForbidden
	}

	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.Email != nil {
		p.Email = *input.Email
	}
	if input.Industry != nil {
		p.Industry = *input.Industry
	}
	if input.PhoneNumber != nil {
		p.PhoneNumber = input.PhoneNumber
	}
	if input.Country != nil {
		p.Country = input.Country
	}
	if input.City != nil {
		p.City = input.City
	}
	if input.LinkedInURL != nil {
		p.LinkedInURL = input.LinkedInURL
	}
	if input.Slogan != nil {
		p.Slogan = input.Slogan
	}
	if input.WebsiteLink != nil {
		p.WebsiteLink = input.WebsiteLink
	}
	if input.Avatar != nil {
		p.Avatar = input.Avatar
	}
	if input.Description != nil {
		p.Description = input.Description
	}
	if input.Gender != nil {
		p.Gender = input.Gender
	}
	if input.HobbyInterest != nil {
		p.HobbyInterest = input.HobbyInterest
	}
	if input.Education != nil {
		p.Education = input.Education
	}
	if input.DateOfBirth != nil {
		p.DateOfBirth = input.DateOfBirth
	}
	if input.CurrentStage != nil {
		p.CurrentStage = input.CurrentStage
	}
	if input.Statement != nil {
		p.Statement = input.Statement
	}
	if input.AboutUs != nil {
		p.AboutUs = input.AboutUs
	}
	if input.Tags != nil {
		p.Tags = input.Tags
	}

	if err := uc.profileRepo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return p, nil
}

// GetProfileByID serves a profile to any authenticated user. The owner gets
// the full record; everyone else gets the privacy-filtered projection, with
// connection-gated fields resolved against the viewer's own profiles. A
// viewer without any profile of their own cannot view others.
func (uc *UseCase) GetProfileByID(ctx context.Context, callerUserID, profileID int) (map[string]any, error) {
	target, err := uc.profileRepo.GetWithRelated(ctx, profileID)
	if err != nil {
		return nil, err
	}

	settings, err := uc.privacyRepo.GetByProfileID(ctx, profileID)
	if errors.Is(err, domain.ErrPrivacyNotFound) {
		settings = domain.DefaultPrivacySettings(profileID)
	} else if err != nil {
		return nil, err
	}

	if target.UserID == callerUserID {
		return ProjectProfile(target, settings, true, false), nil
	}

	connected, err := uc.viewerIsConnected(ctx, callerUserID, target.ID)
	if err != nil {
		return nil, err
	}
	return ProjectProfile(target, settings, false, connected), nil
}

func (uc *UseCase) viewerIsConnected(ctx context.Context, callerUserID, targetProfileID int) (bool, error) {
	owned, err := uc.profileRepo.ListByOwner(ctx, callerUserID)
	if err != nil {
		return false, err
	}
	if len(owned) == 0 {
		return false, domain.ErrProfileNotFound
	}
	for _, p := range owned {
		matched, err := uc.connRepo.IsMatchedBetween(ctx, p.ID, targetProfileID)
		if err != nil {
			return false, fmt.Errorf("failed to check match state: %w", err)
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}

// GetPrivacySettings returns the caller's settings for one profile.
func (uc *UseCase) GetPrivacySettings(ctx context.Context, userID, profileID int) (*domain.PrivacySettings, error) {
	p, err := uc.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if p.UserID != userID {
		return nil, domain.ErrForbidden
	}
	settings, err := uc.privacyRepo.GetByProfileID(ctx, profileID)
	if errors.Is(err, domain.ErrPrivacyNotFound) {
		return domain.DefaultPrivacySettings(profileID), nil
	}
	return settings, err
}

// UpdatePrivacySettings replaces the full tier record for one profile.
func (uc *UseCase) UpdatePrivacySettings(ctx context.Context, userID, profileID int, input *PrivacyInput) (*domain.PrivacySettings, error) {
	p, err := uc.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if p.UserID != userID {
		return nil, domain.ErrForbidden
	}

	settings := input.toSettings(profileID)
	if err := uc.privacyRepo.Update(ctx, settings); err != nil {
		if errors.Is(err, domain.ErrPrivacyNotFound) {
			if err := uc.privacyRepo.Create(ctx, settings); err != nil {
				return nil, fmt.Errorf("failed to create privacy settings: %w", err)
			}
			return settings, nil
		}
		return nil, fmt.Errorf("failed to update privacy settings: %w", err)
	}
	return settings, nil
}
