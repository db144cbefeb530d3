package profile

import (
	"github.com/venturelink/venturelink-backend/internal/domain"
)

// roleScope restricts a projected field to one side of the platform.
type roleScope int

const (
	anyRole roleScope = iota
	candidateOnly
	startupOnly
)

// fieldRule describes one projected field: how to read its value, which
// privacy tier governs it, and which target role carries it. Fields with
// always=true have no privacy control and are disclosed to every viewer.
type fieldRule struct {
	name   string
	value  func(p *domain.Profile) any
	tier   func(s *domain.PrivacySettings) domain.PrivacyTier
	always bool
	scope  roleScope
	// omitHidden drops the key entirely when the tier hides it instead of
	// keeping an explicit null. Used for the nested collections.
	omitHidden bool
}

var fieldRules = []fieldRule{
	{name: "name", always: true,
		value: func(p *domain.Profile) any { return p.Name }},
	{name: "avatar", always: true,
		value: func(p *domain.Profile) any { return p.Avatar }},
	{name: "description", always: true,
		value: func(p *domain.Profile) any { return p.Description }},
	{name: "websiteLink", always: true,
		value: func(p *domain.Profile) any { return p.WebsiteLink }},
	{name: "tags", always: true,
		value: func(p *domain.Profile) any { return p.Tags }},

	{name: "email",
		value: func(p *domain.Profile) any { return p.Email },
		tier:  func(s *domain.PrivacySettings) domain.PrivacyTier { return s.EmailPrivacy }},
	{name: "industry",
		value: func(p *domain.Profile) any { return p.Industry },
		tier:  func(s *domain.PrivacySettings) domain.PrivacyTier { return s.IndustryPrivacy }},
	{name: "phoneNumber",
		value: func(p *domain.Profile) any { return p.PhoneNumber },
		tier:  func(s *domain.PrivacySettings) domain.PrivacyTier { return s.PhoneNumberPrivacy }},
	{name: "country",
		value: func(p *domain.Profile) any { return p.Country },
		tier:  func(s *domain.PrivacySettings) domain.PrivacyTier { return s.CountryPrivacy }},
	{name: "city",
		value: func(p *domain.Profile) any { return p.City },
		tier:  func(s *domain.PrivacySettings) domain.PrivacyTier { return s.CityPrivacy }},
	{name: "linkedInURL",
		value: func(p *domain.Profile) any { return p.LinkedInURL },
		tier:  func(s *domain.PrivacySettings) domain.PrivacyTier { return s.LinkedInURLPrivacy }},
	{name: "slogan",
		value: func(p *domain.Profile) any { return p.Slogan },
		tier:  func(s *domain.PrivacySettings) domain.PrivacyTier { return s.SloganPrivacy }},

	{name: "gender", scope: candidateOnly,
		value: func(p *domain.Profile) any { return p.Gender },
		tier:  func(s *domain.PrivacySettings) domain.PrivacyTier { return s.GenderPrivacy }},
	{name: "hobbyInterest", scope: candidateOnly,
		value: func(p *domain.Profile) any { return p.HobbyInterest },
		tier:  func(s *domain.PrivacySettings) domain.PrivacyTier { return s.HobbyInterestPrivacy }},
	{name: "education", scope: candidateOnly,
		value: func(p *domain.Profile) any { return p.Education },
		tier:  func(s *domain.PrivacySettings) domain.PrivacyTier { return s.EducationPrivacy }},
	{name: "dateOfBirth", scope: candidateOnly,
		value: func(p *domain.Profile) any { return p.DateOfBirth },
		tier:  func(s *domain.PrivacySettings) domain.PrivacyTier { return s.DateOfBirthPrivacy }},

	{name: "currentStage", scope: startupOnly, always: true,
		value: func(p *domain.Profile) any { return p.CurrentStage }},
	{name: "statement", scope: startupOnly, always: true,
		value: func(p *domain.Profile) any { return p.Statement }},
	{name: "aboutUs", scope: startupOnly, always: true,
		value: func(p *domain.Profile) any { return p.AboutUs }},

	// Achievements, experiences and certificates share one tier and hide or
	// show together. Hidden collections drop out of the response entirely.
	{name: "achievements", omitHidden: true,
		value: func(p *domain.Profile) any { return p.Achievements },
		tier:  func(s *domain.PrivacySettings) domain.PrivacyTier { return s.AchievementPrivacy }},
	{name: "experiences", omitHidden: true,
		value: func(p *domain.Profile) any { return p.Experiences },
		tier:  func(s *domain.PrivacySettings) domain.PrivacyTier { return s.AchievementPrivacy }},
	{name: "certificates", omitHidden: true,
		value: func(p *domain.Profile) any { return p.Certificates },
		tier:  func(s *domain.PrivacySettings) domain.PrivacyTier { return s.AchievementPrivacy }},

	{name: "jobPositions", scope: startupOnly, always: true,
		value: func(p *domain.Profile) any { return p.JobPositions }},
}

// ProjectProfile shapes a profile for a viewer. Fields whose role scope does
// not apply to the target are omitted; scalar fields hidden by their tier are
// kept as explicit nulls so the response shape stays stable per role, while
// hidden collections are omitted.
func ProjectProfile(p *domain.Profile, settings *domain.PrivacySettings, isOwner, isConnected bool) map[string]any {
	out := map[string]any{
		"profileID": p.ID,
		"isStartup": p.IsStartup,
		"createdAt": p.CreatedAt,
	}
	for _, rule := range fieldRules {
		switch rule.scope {
		case candidateOnly:
			if p.IsStartup {
				continue
			}
		case startupOnly:
			if !p.IsStartup {
				continue
			}
		}
		if rule.always || rule.tier(settings).VisibleTo(isOwner, isConnected) {
			out[rule.name] = rule.value(p)
		} else if !rule.omitHidden {
			out[rule.name] = nil
		}
	}
	return out
}
