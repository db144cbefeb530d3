package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/venturelink/venturelink-backend/internal/domain"
	"github.com/venturelink/venturelink-backend/internal/repository"
)

type activityRepository struct {
	db *sqlx.DB
}

func NewActivityRepository(db *sqlx.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) CreateView(ctx context.Context, fromProfileID, toProfileID int) error {
	query := `INSERT INTO profile_views (from_profile_id, to_profile_id) VALUES ($1, $2)`
	_, err := r.db.ExecContext(ctx, query, fromProfileID, toProfileID)
	return err
}

func (r *activityRepository) CreateSave(ctx context.Context, fromProfileID, toProfileID int) error {
	query := `INSERT INTO saved_profiles (from_profile_id, to_profile_id) VALUES ($1, $2)`
	_, err := r.db.ExecContext(ctx, query, fromProfileID, toProfileID)
	return err
}

func (r *activityRepository) CreateSkip(ctx context.Context, fromProfileID, toProfileID int) error {
	query := `INSERT INTO skipped_profiles (from_profile_id, to_profile_id) VALUES ($1, $2)`
	_, err := r.db.ExecContext(ctx, query, fromProfileID, toProfileID)
	return err
}

func (r *activityRepository) ListViewers(ctx context.Context, profileID int, limit, offset int) ([]*domain.ProfileView, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM profile_views WHERE to_profile_id = $1`, profileID); err != nil {
		return nil, 0, err
	}
	var views []*domain.ProfileView
	query := `
		SELECT * FROM profile_views
		WHERE to_profile_id = $1
		ORDER BY viewed_at DESC
		LIMIT $2 OFFSET $3
	`
	err := r.db.SelectContext(ctx, &views, query, profileID, limit, offset)
	return views, total, err
}

func (r *activityRepository) ListSaved(ctx context.Context, profileID int, limit, offset int) ([]*domain.SavedProfile, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM saved_profiles WHERE from_profile_id = $1`, profileID); err != nil {
		return nil, 0, err
	}
	var saves []*domain.SavedProfile
	query := `
		SELECT * FROM saved_profiles
		WHERE from_profile_id = $1
		ORDER BY saved_at DESC
		LIMIT $2 OFFSET $3
	`
	err := r.db.SelectContext(ctx, &saves, query, profileID, limit, offset)
	return saves, total, err
}

func (r *activityRepository) ListSkipped(ctx context.Context, profileID int, limit, offset int) ([]*domain.SkippedProfile, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM skipped_profiles WHERE from_profile_id = $1`, profileID); err != nil {
		return nil, 0, err
	}
	var skips []*domain.SkippedProfile
	query := `
		SELECT * FROM skipped_profiles
		WHERE from_profile_id = $1
		ORDER BY skipped_at DESC
		LIMIT $2 OFFSET $3
	`
	err := r.db.SelectContext(ctx, &skips, query, profileID, limit, offset)
	return skips, total, err
}

func (r *activityRepository) CountViews(ctx context.Context, profileID int) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM profile_views WHERE to_profile_id = $1`, profileID)
	return count, err
}

func (r *activityRepository) ViewHistory(ctx context.Context, profileID int, since time.Time) ([]domain.ViewBucket, error) {
	var buckets []domain.ViewBucket
	query := `
		SELECT to_char(viewed_at::date, 'YYYY-MM-DD') AS day, COUNT(*) AS count
		FROM profile_views
		WHERE to_profile_id = $1 AND viewed_at >= $2
		GROUP BY viewed_at::date
		ORDER BY viewed_at::date DESC
	`
	err := r.db.SelectContext(ctx, &buckets, query, profileID, since)
	return buckets, err
}

func (r *activityRepository) RecentViewerIDs(ctx context.Context, profileID int, limit int) ([]int, error) {
	var ids []int
	query := `
		SELECT from_profile_id FROM (
			SELECT DISTINCT ON (from_profile_id) from_profile_id, viewed_at
			FROM profile_views
			WHERE to_profile_id = $1
			ORDER BY from_profile_id, viewed_at DESC
		) recent
		ORDER BY viewed_at DESC
		LIMIT $2
	`
	err := r.db.SelectContext(ctx, &ids, query, profileID, limit)
	return ids, err
}
