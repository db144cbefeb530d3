// Package discovery computes the feed of profiles a requester can still
// encounter, and the listing of profiles it is already matched with.
package discovery

import (
	"context"
	"fmt"

	"github.com/venturelink/venturelink-backend/internal/domain"
	"github.com/venturelink/venturelink-backend/internal/repository"
)

const (
	DefaultPerPage = 20
	// ConnectionsPerPage is the default page size for connection listings,
	// which paginate in smaller steps than the discovery feed.
	ConnectionsPerPage = 5
	maxPerPage         = 100
)

type UseCase struct {
	profileRepo repository.ProfileRepository
	connRepo    repository.ConnectionRepository
}

func NewUseCase(
	profileRepo repository.ProfileRepository,
	connRepo repository.ConnectionRepository,
) *UseCase {
	return &UseCase{
		profileRepo: profileRepo,
		connRepo:    connRepo,
	}
}

// Page is the common paginated response envelope.
type Page struct {
	Total   int  `json:"total"`
	Page    int  `json:"page"`
	PerPage int  `json:"perPage"`
	HasNext bool `json:"hasNext"`
	HasPrev bool `json:"hasPrev"`
	Results any  `json:"results"`
}

// PreviewCard is the compact profile shape used in connection listings.
type PreviewCard struct {
	ProfileID int      `json:"profileID"`
	IsStartup bool     `json:"isStartup"`
	Name      string   `json:"name"`
	Industry  string   `json:"industry"`
	Avatar    *string  `json:"avatar"`
	Tags      []string `json:"tags"`
}

// Discover returns the page of profiles still visible to requestingProfileID:
// everything except the caller's own profiles, profiles already matched with
// the requester, and profiles the pair record marks rejected. Profiles with a
// pending request in either direction stay discoverable.
func (uc *UseCase) Discover(ctx context.Context, callerUserID, requestingProfileID, page, perPage int) (*Page, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	requesting, err := uc.profileRepo.GetByID(ctx, requestingProfileID)
	if err != nil {
		return nil, err
	}
	if requesting.UserID != callerUserID {
		return nil, domain.ErrForbidden
	}

	excluded, err := uc.exclusionSet(ctx, callerUserID, requesting)
	if err != nil {
		return nil, err
	}

	offset := (page - 1) * perPage
	profiles, total, err := uc.profileRepo.DiscoverPage(ctx, excluded, perPage, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query discoverable profiles: %w", err)
	}

	return &Page{
		Total:   total,
		Page:    page,
		PerPage: perPage,
		HasNext: offset+perPage < total,
		HasPrev: page > 1,
		Results: profiles,
	}, nil
}

func (uc *UseCase) exclusionSet(ctx context.Context, callerUserID int, requesting *domain.Profile) ([]int, error) {
	matched, err := uc.connRepo.MatchedProfileIDs(ctx, requesting.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to collect matched profiles: %w", err)
	}
	rejected, err := uc.connRepo.RejectedProfileIDs(ctx, requesting.ID, requesting.IsStartup)
	if err != nil {
		return nil, fmt.Errorf("failed to collect rejected profiles: %w", err)
	}
	owned, err := uc.profileRepo.ListByOwner(ctx, callerUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list caller profiles: %w", err)
	}

	seen := make(map[int]bool)
	excluded := make([]int, 0, len(matched)+len(rejected)+len(owned)+1)
	add := func(id int) {
		if !seen[id] {
			seen[id] = true
			excluded = append(excluded, id)
		}
	}
	add(requesting.ID)
	for _, id := range matched {
		add(id)
	}
	for _, id := range rejected {
		add(id)
	}
	for _, p := range owned {
		add(p.ID)
	}
	return excluded, nil
}

// GetConnections lists the profiles matched with profileID, most recent
// match first, as preview cards.
func (uc *UseCase) GetConnections(ctx context.Context, callerUserID, profileID, page, perPage int) (*Page, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = ConnectionsPerPage
	}

	profile, err := uc.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile.UserID != callerUserID {
		return nil, domain.ErrForbidden
	}

	ids, err := uc.connRepo.MatchedProfileIDs(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to collect matched profiles: %w", err)
	}

	total := len(ids)
	start := (page - 1) * perPage
	end := start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	profiles, err := uc.profileRepo.GetByIDs(ctx, ids[start:end])
	if err != nil {
		return nil, fmt.Errorf("failed to load connected profiles: %w", err)
	}

	cards := make([]PreviewCard, 0, len(profiles))
	for _, p := range profiles {
		cards = append(cards, PreviewCard{
			ProfileID: p.ID,
			IsStartup: p.IsStartup,
			Name:      p.Name,
			Industry:  p.Industry,
			Avatar:    p.Avatar,
			Tags:      p.Tags,
		})
	}

	return &Page{
		Total:   total,
		Page:    page,
		PerPage: perPage,
		HasNext: end < total,
		HasPrev: page > 1,
		Results: cards,
	}, nil
}
