// Package memory holds in-memory repository implementations used by unit
// tests and local development without Postgres.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/venturelink/venturelink-backend/internal/domain"
	"github.com/venturelink/venturelink-backend/internal/repository"
)

type ConnectionRepository struct {
	mu     sync.Mutex
	nextID int
	conns  map[int]*domain.Connection
}

func NewConnectionRepository() *ConnectionRepository {
	return &ConnectionRepository{nextID: 1, conns: make(map[int]*domain.Connection)}
}

var _ repository.ConnectionRepository = (*ConnectionRepository)(nil)

func (r *ConnectionRepository) Create(_ context.Context, conn *domain.Connection) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.conns {
		if existing.CandidateProfileID == conn.CandidateProfileID &&
			existing.StartupProfileID == conn.StartupProfileID {
			return domain.ErrConflict
		}
	}
	conn.ID = r.nextID
	r.nextID++
	conn.CreatedAt = time.Now()
	clone := *conn
	r.conns[conn.ID] = &clone
	return nil
}

func (r *ConnectionRepository) GetByPair(_ context.Context, candidateProfileID, startupProfileID int) (*domain.Connection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, conn := range r.conns {
		if conn.CandidateProfileID == candidateProfileID && conn.StartupProfileID == startupProfileID {
			clone := *conn
			return &clone, nil
		}
	}
	return nil, domain.ErrConnectionNotFound
}

func (r *ConnectionRepository) UpdateStatuses(_ context.Context, id int,
	expectCandidate, expectStartup domain.ConnectionStatus,
	newCandidate, newStartup domain.ConnectionStatus,
	isMatched bool, matchedAt *time.Time,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	conn, ok := r.conns[id]
	if !ok || conn.CandidateStatus != expectCandidate || conn.StartupStatus != expectStartup {
		return domain.ErrConflict
	}
	conn.CandidateStatus = newCandidate
	conn.StartupStatus = newStartup
	conn.IsMatched = isMatched
	if matchedAt != nil {
		conn.MatchedAt = matchedAt
	}
	return nil
}

func (r *ConnectionRepository) IncrementNotifications(_ context.Context, id int, startupSide bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	conn, ok := r.conns[id]
	if !ok {
		return domain.ErrConnectionNotFound
	}
	if startupSide {
		conn.StartupNotifications++
	} else {
		conn.CandidateNotifications++
	}
	return nil
}

func (r *ConnectionRepository) MatchedProfileIDs(_ context.Context, profileID int) ([]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*domain.Connection
	for _, conn := range r.conns {
		if conn.IsMatched && conn.HasProfile(profileID) {
			matched = append(matched, conn)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		ti, tj := matched[i].MatchedAt, matched[j].MatchedAt
		if ti == nil || tj == nil {
			return matched[i].ID > matched[j].ID
		}
		return ti.After(*tj)
	})
	ids := make([]int, 0, len(matched))
	for _, conn := range matched {
		other, _ := conn.OtherProfileID(profileID)
		ids = append(ids, other)
	}
	return ids, nil
}

func (r *ConnectionRepository) RejectedProfileIDs(_ context.Context, profileID int, isStartup bool) ([]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []int
	for _, conn := range r.conns {
		if isStartup {
			if conn.StartupProfileID == profileID && conn.CandidateStatus == domain.StatusRejected {
				ids = append(ids, conn.CandidateProfileID)
			}
		} else {
			if conn.CandidateProfileID == profileID && conn.StartupStatus == domain.StatusRejected {
				ids = append(ids, conn.StartupProfileID)
			}
		}
	}
	return ids, nil
}

func (r *ConnectionRepository) IsMatchedBetween(_ context.Context, profileID, otherProfileID int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, conn := range r.conns {
		if conn.IsMatched && conn.HasProfile(profileID) && conn.HasProfile(otherProfileID) {
			return true, nil
		}
	}
	return false, nil
}

func (r *ConnectionRepository) CountPending(_ context.Context, profileID int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, conn := range r.conns {
		if conn.HasProfile(profileID) &&
			(conn.CandidateStatus == domain.StatusPending || conn.StartupStatus == domain.StatusPending) {
			count++
		}
	}
	return count, nil
}

func (r *ConnectionRepository) CountMatched(_ context.Context, profileID int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, conn := range r.conns {
		if conn.IsMatched && conn.HasProfile(profileID) {
			count++
		}
	}
	return count, nil
}
