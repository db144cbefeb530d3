// Package activity records who viewed, saved and skipped whom, and serves
// the revisit listings built from those events.
package activity

import (
	"context"
	"fmt"

	"github.com/venturelink/venturelink-backend/internal/domain"
	"github.com/venturelink/venturelink-backend/internal/repository"
)

// RevisitPageSize is fixed for viewed/saved/skipped listings.
const RevisitPageSize = 5

type UseCase struct {
	activityRepo repository.ActivityRepository
	profileRepo  repository.ProfileRepository
}

func NewUseCase(
	activityRepo repository.ActivityRepository,
	profileRepo repository.ProfileRepository,
) *UseCase {
	return &UseCase{
		activityRepo: activityRepo,
		profileRepo:  profileRepo,
	}
}

type Page struct {
	Total   int  `json:"total"`
	Page    int  `json:"page"`
	PerPage int  `json:"perPage"`
	HasNext bool `json:"hasNext"`
	HasPrev bool `json:"hasPrev"`
	Results any  `json:"results"`
}

// RevisitCard is the preview shape for revisit listings. Industry is exposed
// under the occupation label here.
type RevisitCard struct {
	ProfileID  int      `json:"profileID"`
	IsStartup  bool     `json:"isStartup"`
	Name       string   `json:"name"`
	Occupation string   `json:"occupation"`
	Avatar     *string  `json:"avatar"`
	Tags       []string `json:"tags"`
}

// RecordView appends a view event. Repeated views are all kept.
func (uc *UseCase) RecordView(ctx context.Context, callerUserID, fromProfileID, toProfileID int) error {
	if err := uc.checkPair(ctx, callerUserID, fromProfileID, toProfileID); err != nil {
		return err
	}
	if err := uc.activityRepo.CreateView(ctx, fromProfileID, toProfileID); err != nil {
		return fmt.Errorf("failed to record view: %w", err)
	}
	return nil
}

// RecordSave appends a save event.
func (uc *UseCase) RecordSave(ctx context.Context, callerUserID, fromProfileID, toProfileID int) error {
	if err := uc.checkPair(ctx, callerUserID, fromProfileID, toProfileID); err != nil {
		return err
	}
	if err := uc.activityRepo.CreateSave(ctx, fromProfileID, toProfileID); err != nil {
		return fmt.Errorf("failed to record save: %w", err)
	}
	return nil
}

// RecordSkip appends a skip event.
func (uc *UseCase) RecordSkip(ctx context.Context, callerUserID, fromProfileID, toProfileID int) error {
	if err := uc.checkPair(ctx, callerUserID, fromProfileID, toProfileID); err != nil {
		return err
	}
	if err := uc.activityRepo.CreateSkip(ctx, fromProfileID, toProfileID); err != nil {
		return fmt.Errorf("failed to record skip: %w", err)
	}
	return nil
}

func (uc *UseCase) checkPair(ctx context.Context, callerUserID, fromProfileID, toProfileID int) error {
	if fromProfileID <= 0 || toProfileID <= 0 {
		return domain.ErrInvalidInput
	}
	from, err := uc.profileRepo.GetByID(ctx, fromProfileID)
	if err != nil {
		return err
	}
	if from.UserID != callerUserID {
		return domain.ErrForbidden
	}
	if _, err := uc.profileRepo.GetByID(ctx, toProfileID); err != nil {
		return err
	}
	return nil
}

// ListViewed pages over the profiles that viewed profileID, most recent first.
func (uc *UseCase) ListViewed(ctx context.Context, callerUserID, profileID, page int) (*Page, error) {
	if err := uc.checkOwner(ctx, callerUserID, profileID); err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * RevisitPageSize
	views, total, err := uc.activityRepo.ListViewers(ctx, profileID, RevisitPageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list viewers: %w", err)
	}
	ids := make([]int, 0, len(views))
	for _, v := range views {
		ids = append(ids, v.FromProfileID)
	}
	return uc.cardPage(ctx, ids, total, page)
}

// ListSaved pages over the profiles profileID saved, most recent first.
func (uc *UseCase) ListSaved(ctx context.Context, callerUserID, profileID, page int) (*Page, error) {
	if err := uc.checkOwner(ctx, callerUserID, profileID); err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * RevisitPageSize
	saves, total, err := uc.activityRepo.ListSaved(ctx, profileID, RevisitPageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved profiles: %w", err)
	}
	ids := make([]int, 0, len(saves))
	for _, s := range saves {
		ids = append(ids, s.ToProfileID)
	}
	return uc.cardPage(ctx, ids, total, page)
}

// ListSkipped pages over the profiles profileID skipped, most recent first.
func (uc *UseCase) ListSkipped(ctx context.Context, callerUserID, profileID, page int) (*Page, error) {
	if err := uc.checkOwner(ctx, callerUserID, profileID); err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * RevisitPageSize
	skips, total, err := uc.activityRepo.ListSkipped(ctx, profileID, RevisitPageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list skipped profiles: %w", err)
	}
	ids := make([]int, 0, len(skips))
	for _, s := range skips {
		ids = append(ids, s.ToProfileID)
	}
	return uc.cardPage(ctx, ids, total, page)
}

func (uc *UseCase) checkOwner(ctx context.Context, callerUserID, profileID int) error {
	p, err := uc.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return err
	}
	if p.UserID != callerUserID {
		return domain.ErrForbidden
	}
	return nil
}

func (uc *UseCase) cardPage(ctx context.Context, ids []int, total, page int) (*Page, error) {
	profiles, err := uc.profileRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}

	cards := make([]RevisitCard, 0, len(profiles))
	for _, p := range profiles {
		cards = append(cards, RevisitCard{
			ProfileID:  p.ID,
			IsStartup:  p.IsStartup,
			Name:       p.Name,
			Occupation: p.Industry,
			Avatar:     p.Avatar,
			Tags:       p.Tags,
		})
	}

	offset := (page - 1) * RevisitPageSize
	return &Page{
		Total:   total,
		Page:    page,
		PerPage: RevisitPageSize,
		HasNext: offset+RevisitPageSize < total,
		HasPrev: page > 1,
		Results: cards,
	}, nil
}
