// Package dashboard aggregates per-profile activity into the summary shown
// on the profile owner's home screen.
package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/venturelink/venturelink-backend/internal/domain"
	"github.com/venturelink/venturelink-backend/internal/repository"
)

const (
	cacheTTL          = 60 * time.Second
	historyWindow     = 30 * 24 * time.Hour
	recentViewerLimit = 4
)

type UseCase struct {
	activityRepo repository.ActivityRepository
	connRepo     repository.ConnectionRepository
	profileRepo  repository.ProfileRepository
	cache        *redis.Client
	logger       *slog.Logger
}

// NewUseCase builds the dashboard aggregator. cache may be nil, in which
// case every request recomputes the summary.
func NewUseCase(
	activityRepo repository.ActivityRepository,
	connRepo repository.ConnectionRepository,
	profileRepo repository.ProfileRepository,
	cache *redis.Client,
	logger *slog.Logger,
) *UseCase {
	return &UseCase{
		activityRepo: activityRepo,
		connRepo:     connRepo,
		profileRepo:  profileRepo,
		cache:        cache,
		logger:       logger,
	}
}

// ViewerCard previews one recent viewer. Industry is exposed under the
// occupation label, matching the revisit listings.
type ViewerCard struct {
	ProfileID  int      `json:"profileID"`
	IsStartup  bool     `json:"isStartup"`
	Name       string   `json:"name"`
	Occupation string   `json:"occupation"`
	Avatar     *string  `json:"avatar"`
	Tags       []string `json:"tags"`
}

type Summary struct {
	ViewedCount          int                 `json:"viewedCount"`
	ViewedHistory        []domain.ViewBucket `json:"viewedHistory"`
	ConnectRequestCount  int                 `json:"connectRequestCount"`
	MatchedProfilesCount int                 `json:"matchedProfilesCount"`
	RecentViewers        []ViewerCard        `json:"recentViewers"`
}

// GetSummary returns the dashboard for one of the caller's profiles. The
// result is cached briefly, so counts may lag the store by up to the TTL.
func (uc *UseCase) GetSummary(ctx context.Context, callerUserID, profileID int) (*Summary, error) {
	p, err := uc.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if p.UserID != callerUserID {
		return nil, domain.ErrForbidden
	}

	key := fmt.Sprintf("dashboard:%d", profileID)
	if cached := uc.fromCache(ctx, key); cached != nil {
		return cached, nil
	}

	summary, err := uc.compute(ctx, profileID)
	if err != nil {
		return nil, err
	}
	uc.toCache(ctx, key, summary)
	return summary, nil
}

func (uc *UseCase) compute(ctx context.Context, profileID int) (*Summary, error) {
	viewedCount, err := uc.activityRepo.CountViews(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to count views: %w", err)
	}
	history, err := uc.activityRepo.ViewHistory(ctx, profileID, time.Now().Add(-historyWindow))
	if err != nil {
		return nil, fmt.Errorf("failed to load view history: %w", err)
	}
	pending, err := uc.connRepo.CountPending(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending requests: %w", err)
	}
	matched, err := uc.connRepo.CountMatched(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to count matches: %w", err)
	}

	viewerIDs, err := uc.activityRepo.RecentViewerIDs(ctx, profileID, recentViewerLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent viewers: %w", err)
	}
	viewers, err := uc.profileRepo.GetByIDs(ctx, viewerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load viewer profiles: %w", err)
	}

	cards := make([]ViewerCard, 0, len(viewers))
	for _, v := range viewers {
		cards = append(cards, ViewerCard{
			ProfileID:  v.ID,
			IsStartup:  v.IsStartup,
			Name:       v.Name,
			Occupation: v.Industry,
			Avatar:     v.Avatar,
			Tags:       v.Tags,
		})
	}

	if history == nil {
		history = []domain.ViewBucket{}
	}
	return &Summary{
		ViewedCount:          viewedCount,
		ViewedHistory:        history,
		ConnectRequestCount:  pending,
		MatchedProfilesCount: matched,
		RecentViewers:        cards,
	}, nil
}

func (uc *UseCase) fromCache(ctx context.Context, key string) *Summary {
	if uc.cache == nil {
		return nil
	}
	raw, err := uc.cache.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			uc.logger.Warn("dashboard cache read failed", "key", key, "error", err)
		}
		return nil
	}
	var summary Summary
	if err := json.Unmarshal(raw, &summary); err != nil {
		uc.logger.Warn("dashboard cache entry corrupt", "key", key, "error", err)
		return nil
	}
	return &summary
}

func (uc *UseCase) toCache(ctx context.Context, key string, summary *Summary) {
	if uc.cache == nil {
		return
	}
	raw, err := json.Marshal(summary)
	if err != nil {
		return
	}
	if err := uc.cache.Set(ctx, key, raw, cacheTTL).Err(); err != nil {
		uc.logger.Warn("dashboard cache write failed", "key", key, "error", err)
	}
}
