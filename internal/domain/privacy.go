package domain

// PrivacyTier is the per-field visibility classification.
type PrivacyTier string

const (
	TierPublic      PrivacyTier = "public"
	TierPrivate     PrivacyTier = "private"
	TierConnections PrivacyTier = "connections"
)

func (t PrivacyTier) Valid() bool {
	switch t {
	case TierPublic, TierPrivate, TierConnections:
		return true
	}
	return false
}

// VisibleTo resolves a tier against the viewer context. Owners see
// everything; private fields are never disclosed to a non-owner.
func (t PrivacyTier) VisibleTo(isOwner, isConnected bool) bool {
	if isOwner {
		return true
	}
	switch t {
	case TierPublic:
		return true
	case TierConnections:
		return isConnected
	default:
		return false
	}
}

// PrivacySettings holds the tier of each privacy-controlled profile field.
// Exactly one record exists per profile.
type PrivacySettings struct {
	ProfileID            int         `json:"profileID" db:"profile_id"`
	GenderPrivacy        PrivacyTier `json:"genderPrivacy" db:"gender_privacy"`
	IndustryPrivacy      PrivacyTier `json:"industryPrivacy" db:"industry_privacy"`
	EmailPrivacy         PrivacyTier `json:"emailPrivacy" db:"email_privacy"`
	PhoneNumberPrivacy   PrivacyTier `json:"phoneNumberPrivacy" db:"phone_number_privacy"`
	CountryPrivacy       PrivacyTier `json:"countryPrivacy" db:"country_privacy"`
	CityPrivacy          PrivacyTier `json:"cityPrivacy" db:"city_privacy"`
	LinkedInURLPrivacy   PrivacyTier `json:"linkedInURLPrivacy" db:"linkedin_url_privacy"`
	SloganPrivacy        PrivacyTier `json:"sloganPrivacy" db:"slogan_privacy"`
	HobbyInterestPrivacy PrivacyTier `json:"hobbyInterestPrivacy" db:"hobby_interest_privacy"`
	EducationPrivacy     PrivacyTier `json:"educationPrivacy" db:"education_privacy"`
	DateOfBirthPrivacy   PrivacyTier `json:"dateOfBirthPrivacy" db:"date_of_birth_privacy"`
	AchievementPrivacy   PrivacyTier `json:"achievementPrivacy" db:"achievement_privacy"`
}

// DefaultPrivacySettings returns the record written at profile creation when
// the caller supplies none: every field public.
func DefaultPrivacySettings(profileID int) *PrivacySettings {
	return &PrivacySettings{
		ProfileID:            profileID,
		GenderPrivacy:        TierPublic,
		IndustryPrivacy:      TierPublic,
		EmailPrivacy:         TierPublic,
		PhoneNumberPrivacy:   TierPublic,
		CountryPrivacy:       TierPublic,
		CityPrivacy:          TierPublic,
		LinkedInURLPrivacy:   TierPublic,
		SloganPrivacy:        TierPublic,
		HobbyInterestPrivacy: TierPublic,
		EducationPrivacy:     TierPublic,
		DateOfBirthPrivacy:   TierPublic,
		AchievementPrivacy:   TierPublic,
	}
}
