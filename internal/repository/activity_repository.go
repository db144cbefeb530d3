package repository

import (
	"context"
	"time"

	"github.com/venturelink/venturelink-backend/internal/domain"
)

type ActivityRepository interface {
	CreateView(ctx context.Context, fromProfileID, toProfileID int) error
	CreateSave(ctx context.Context, fromProfileID, toProfileID int) error
	CreateSkip(ctx context.Context, fromProfileID, toProfileID int) error
	// ListViewers pages over views received by profileID, most recent first.
	ListViewers(ctx context.Context, profileID int, limit, offset int) ([]*domain.ProfileView, int, error)
	// ListSaved pages over saves made by profileID, most recent first.
	ListSaved(ctx context.Context, profileID int, limit, offset int) ([]*domain.SavedProfile, int, error)
	ListSkipped(ctx context.Context, profileID int, limit, offset int) ([]*domain.SkippedProfile, int, error)
	CountViews(ctx context.Context, profileID int) (int, error)
	// ViewHistory aggregates views received per day since the given time,
	// most recent day first.
	ViewHistory(ctx context.Context, profileID int, since time.Time) ([]domain.ViewBucket, error)
	// RecentViewerIDs returns the distinct profiles that most recently viewed
	// profileID, capped at limit.
	RecentViewerIDs(ctx context.Context, profileID int, limit int) ([]int, error)
}
