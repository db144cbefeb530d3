package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/venturelink/venturelink-backend/internal/domain"
	"github.com/venturelink/venturelink-backend/internal/repository"
)

const uniqueViolation = "23505"

type connectionRepository struct {
	db *sqlx.DB
}

func NewConnectionRepository(db *sqlx.DB) repository.ConnectionRepository {
	return &connectionRepository{db: db}
}

func (r *connectionRepository) Create(ctx context.Context, conn *domain.Connection) error {
	query := `
		INSERT INTO connections (
			candidate_profile_id, startup_profile_id,
			candidate_status, startup_status, is_matched, matched_at,
			candidate_notifications, startup_notifications
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		conn.CandidateProfileID, conn.StartupProfileID,
		conn.CandidateStatus, conn.StartupStatus, conn.IsMatched, conn.MatchedAt,
		conn.CandidateNotifications, conn.StartupNotifications,
	).Scan(&conn.ID, &conn.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

func (r *connectionRepository) GetByPair(ctx context.Context, candidateProfileID, startupProfileID int) (*domain.Connection, error) {
	var conn domain.Connection
	query := `
		SELECT * FROM connections
		WHERE candidate_profile_id = $1 AND startup_profile_id = $2
	`
	err := r.db.GetContext(ctx, &conn, query, candidateProfileID, startupProfileID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrConnectionNotFound
		}
		return nil, err
	}
	return &conn, nil
}

func (r *connectionRepository) UpdateStatuses(ctx context.Context, id int,
	expectCandidate, expectStartup domain.ConnectionStatus,
	newCandidate, newStartup domain.ConnectionStatus,
	isMatched bool, matchedAt *time.Time,
) error {
	query := `
		UPDATE connections
		SET candidate_status = $1, startup_status = $2, is_matched = $3,
		    matched_at = COALESCE($4, matched_at)
		WHERE id = $5 AND candidate_status = $6 AND startup_status = $7
	`
	result, err := r.db.ExecContext(ctx, query,
		newCandidate, newStartup, isMatched, matchedAt,
		id, expectCandidate, expectStartup,
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrConflict
	}
	return nil
}

func (r *connectionRepository) IncrementNotifications(ctx context.Context, id int, startupSide bool) error {
	query := `UPDATE connections SET candidate_notifications = candidate_notifications + 1 WHERE id = $1`
	if startupSide {
		query = `UPDATE connections SET startup_notifications = startup_notifications + 1 WHERE id = $1`
	}
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrConnectionNotFound
	}
	return nil
}

func (r *connectionRepository) MatchedProfileIDs(ctx context.Context, profileID int) ([]int, error) {
	var ids []int
	query := `
		SELECT CASE WHEN candidate_profile_id = $1 THEN startup_profile_id ELSE candidate_profile_id END
		FROM connections
		WHERE (candidate_profile_id = $1 OR startup_profile_id = $1) AND is_matched = true
		ORDER BY matched_at DESC
	`
	err := r.db.SelectContext(ctx, &ids, query, profileID)
	return ids, err
}

func (r *connectionRepository) RejectedProfileIDs(ctx context.Context, profileID int, isStartup bool) ([]int, error) {
	var ids []int
	query := `
		SELECT startup_profile_id FROM connections
		WHERE candidate_profile_id = $1 AND startup_status = 'rejected'
	`
	if isStartup {
		query = `
			SELECT candidate_profile_id FROM connections
			WHERE startup_profile_id = $1 AND candidate_status = 'rejected'
		`
	}
	err := r.db.SelectContext(ctx, &ids, query, profileID)
	return ids, err
}

func (r *connectionRepository) IsMatchedBetween(ctx context.Context, profileID, otherProfileID int) (bool, error) {
	var matched bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM connections
			WHERE ((candidate_profile_id = $1 AND startup_profile_id = $2)
			    OR (candidate_profile_id = $2 AND startup_profile_id = $1))
			  AND is_matched = true
		)
	`
	err := r.db.GetContext(ctx, &matched, query, profileID, otherProfileID)
	return matched, err
}

func (r *connectionRepository) CountPending(ctx context.Context, profileID int) (int, error) {
	var count int
	query := `
		SELECT COUNT(*) FROM connections
		WHERE (candidate_profile_id = $1 OR startup_profile_id = $1)
		  AND (candidate_status = 'pending' OR startup_status = 'pending')
	`
	err := r.db.GetContext(ctx, &count, query, profileID)
	return count, err
}

func (r *connectionRepository) CountMatched(ctx context.Context, profileID int) (int, error) {
	var count int
	query := `
		SELECT COUNT(*) FROM connections
		WHERE (candidate_profile_id = $1 OR startup_profile_id = $1) AND is_matched = true
	`
	err := r.db.GetContext(ctx, &count, query, profileID)
	return count, err
}
