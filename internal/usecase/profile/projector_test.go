package profile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venturelink/venturelink-backend/internal/domain"
	"github.com/venturelink/venturelink-backend/internal/usecase/profile"
)

func strptr(s string) *string { return &s }

func candidateProfile() *domain.Profile {
	return &domain.Profile{
		ID:            7,
		UserID:        2,
		IsStartup:     false,
		Name:          "Dana",
		Email:         "dana@example.com",
		Industry:      "fintech",
		PhoneNumber:   strptr("+1555123"),
		Country:       strptr("NL"),
		Avatar:        strptr("avatar.png"),
		Description:   strptr("about dana"),
		WebsiteLink:   strptr("https://dana.dev"),
		Gender:        strptr("female"),
		HobbyInterest: strptr("chess"),
		Tags:          []string{"go", "sql"},
		Achievements:  []domain.Achievement{{ID: 1, Name: "prize"}},
	}
}

func TestProjectProfile_OwnerSeesEverything(t *testing.T) {
	p := candidateProfile()
	settings := domain.DefaultPrivacySettings(p.ID)
	settings.EmailPrivacy = domain.TierPrivate
	settings.PhoneNumberPrivacy = domain.TierPrivate

	out := profile.ProjectProfile(p, settings, true, false)

	assert.Equal(t, "dana@example.com", out["email"])
	assert.Equal(t, p.PhoneNumber, out["phoneNumber"])
}

func TestProjectProfile_PrivateNeverDisclosed(t *testing.T) {
	p := candidateProfile()
	settings := domain.DefaultPrivacySettings(p.ID)
	settings.EmailPrivacy = domain.TierPrivate

	for _, connected := range []bool{false, true} {
		out := profile.ProjectProfile(p, settings, false, connected)
		require.Contains(t, out, "email")
		assert.Nil(t, out["email"], "connected=%v", connected)
	}
}

func TestProjectProfile_ConnectionsTier(t *testing.T) {
	p := candidateProfile()
	settings := domain.DefaultPrivacySettings(p.ID)
	settings.PhoneNumberPrivacy = domain.TierConnections

	out := profile.ProjectProfile(p, settings, false, false)
	assert.Nil(t, out["phoneNumber"])

	out = profile.ProjectProfile(p, settings, false, true)
	assert.Equal(t, p.PhoneNumber, out["phoneNumber"])
}

func TestProjectProfile_PublicAlwaysAppears(t *testing.T) {
	p := candidateProfile()
	settings := domain.DefaultPrivacySettings(p.ID)

	out := profile.ProjectProfile(p, settings, false, false)
	assert.Equal(t, "dana@example.com", out["email"])
	assert.Equal(t, "fintech", out["industry"])
}

func TestProjectProfile_AlwaysVisibleFieldsIgnoreTiers(t *testing.T) {
	p := candidateProfile()
	// Every controllable field locked down.
	settings := &domain.PrivacySettings{
		ProfileID:            p.ID,
		GenderPrivacy:        domain.TierPrivate,
		IndustryPrivacy:      domain.TierPrivate,
		EmailPrivacy:         domain.TierPrivate,
		PhoneNumberPrivacy:   domain.TierPrivate,
		CountryPrivacy:       domain.TierPrivate,
		CityPrivacy:          domain.TierPrivate,
		LinkedInURLPrivacy:   domain.TierPrivate,
		SloganPrivacy:        domain.TierPrivate,
		HobbyInterestPrivacy: domain.TierPrivate,
		EducationPrivacy:     domain.TierPrivate,
		DateOfBirthPrivacy:   domain.TierPrivate,
		AchievementPrivacy:   domain.TierPrivate,
	}

	out := profile.ProjectProfile(p, settings, false, false)
	assert.Equal(t, "Dana", out["name"])
	assert.Equal(t, p.Avatar, out["avatar"])
	assert.Equal(t, p.Description, out["description"])
	assert.Equal(t, p.WebsiteLink, out["websiteLink"])
	assert.Equal(t, p.Tags, out["tags"])
}

func TestProjectProfile_CollectionsGatedAsGroup(t *testing.T) {
	p := candidateProfile()
	settings := domain.DefaultPrivacySettings(p.ID)
	settings.AchievementPrivacy = domain.TierConnections

	// Hidden collections are absent, not nulled.
	out := profile.ProjectProfile(p, settings, false, false)
	assert.NotContains(t, out, "achievements")
	assert.NotContains(t, out, "experiences")
	assert.NotContains(t, out, "certificates")

	out = profile.ProjectProfile(p, settings, false, true)
	assert.Equal(t, p.Achievements, out["achievements"])
	assert.Contains(t, out, "experiences")
	assert.Contains(t, out, "certificates")
}

func TestProjectProfile_RoleScopedFields(t *testing.T) {
	candidate := candidateProfile()
	settings := domain.DefaultPrivacySettings(candidate.ID)

	out := profile.ProjectProfile(candidate, settings, false, false)
	assert.Contains(t, out, "gender")
	assert.Contains(t, out, "hobbyInterest")
	assert.NotContains(t, out, "currentStage")
	assert.NotContains(t, out, "statement")
	assert.NotContains(t, out, "aboutUs")
	assert.NotContains(t, out, "jobPositions")

	startup := &domain.Profile{
		ID:           11,
		IsStartup:    true,
		Name:         "Rocketly",
		Industry:     "saas",
		CurrentStage: strptr("seed"),
		Statement:    strptr("we build rockets"),
		JobPositions: []domain.JobPosition{{ID: 1, JobTitle: "engineer"}},
	}
	out = profile.ProjectProfile(startup, domain.DefaultPrivacySettings(startup.ID), false, false)
	assert.NotContains(t, out, "gender")
	assert.NotContains(t, out, "dateOfBirth")
	assert.Equal(t, startup.CurrentStage, out["currentStage"])
	assert.Equal(t, startup.JobPositions, out["jobPositions"])
}

func TestPrivacyTierVisibleTo(t *testing.T) {
	cases := []struct {
		tier        domain.PrivacyTier
		isOwner     bool
		isConnected bool
		want        bool
	}{
		{domain.TierPublic, false, false, true},
		{domain.TierConnections, false, false, false},
		{domain.TierConnections, false, true, true},
		{domain.TierPrivate, false, true, false},
		{domain.TierPrivate, true, false, true},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.tier.VisibleTo(c.isOwner, c.isConnected),
			"tier=%s owner=%v connected=%v", c.tier, c.isOwner, c.isConnected)
	}
}
