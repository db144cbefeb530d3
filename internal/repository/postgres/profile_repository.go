package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/venturelink/venturelink-backend/internal/domain"
	"github.com/venturelink/venturelink-backend/internal/repository"
)

const profileColumns = `
	profile_id, user_id, is_startup, name, email, industry, phone_number,
	country, city, linkedin_url, slogan, website_link, avatar, description,
	gender, hobby_interest, education, date_of_birth,
	current_stage, statement, about_us, tags, created_at
`

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func scanProfile(row sqlx.ColScanner) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(
		&p.ID, &p.UserID, &p.IsStartup, &p.Name, &p.Email, &p.Industry, &p.PhoneNumber,
		&p.Country, &p.City, &p.LinkedInURL, &p.Slogan, &p.WebsiteLink, &p.Avatar, &p.Description,
		&p.Gender, &p.HobbyInterest, &p.Education, &p.DateOfBirth,
		&p.CurrentStage, &p.Statement, &p.AboutUs, pq.Array(&p.Tags), &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *profileRepository) scanProfiles(rows *sqlx.Rows) ([]*domain.Profile, error) {
	defer rows.Close()
	var profiles []*domain.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (
			user_id, is_startup, name, email, industry, phone_number,
			country, city, linkedin_url, slogan, website_link, avatar, description,
			gender, hobby_interest, education, date_of_birth,
			current_stage, statement, about_us, tags
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
		        $14, $15, $16, $17, $18, $19, $20, $21)
		RETURNING profile_id, created_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		profile.UserID, profile.IsStartup, profile.Name, profile.Email, profile.Industry, profile.PhoneNumber,
		profile.Country, profile.City, profile.LinkedInURL, profile.Slogan, profile.WebsiteLink, profile.Avatar, profile.Description,
		profile.Gender, profile.HobbyInterest, profile.Education, profile.DateOfBirth,
		profile.CurrentStage, profile.Statement, profile.AboutUs, pq.Array(profile.Tags),
	).Scan(&profile.ID, &profile.CreatedAt)
}

func (r *profileRepository) GetByID(ctx context.Context, id int) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE profile_id = $1`
	row := r.db.QueryRowxContext(ctx, query, id)
	profile, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (r *profileRepository) GetWithRelated(ctx context.Context, id int) (*domain.Profile, error) {
	profile, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.loadRelated(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (r *profileRepository) loadRelated(ctx context.Context, profile *domain.Profile) error {
	if err := r.db.SelectContext(ctx, &profile.Experiences,
		`SELECT * FROM experiences WHERE profile_id = $1 ORDER BY experience_id`, profile.ID); err != nil {
		return err
	}
	if err := r.db.SelectContext(ctx, &profile.Certificates,
		`SELECT * FROM certificates WHERE profile_id = $1 ORDER BY certificate_id`, profile.ID); err != nil {
		return err
	}
	if err := r.db.SelectContext(ctx, &profile.Achievements,
		`SELECT * FROM achievements WHERE profile_id = $1 ORDER BY achievement_id`, profile.ID); err != nil {
		return err
	}
	return r.db.SelectContext(ctx, &profile.JobPositions,
		`SELECT * FROM job_positions WHERE profile_id = $1 ORDER BY job_position_id`, profile.ID)
}

func (r *profileRepository) GetByIDs(ctx context.Context, ids []int) ([]*domain.Profile, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE profile_id = ANY($1)`
	rows, err := r.db.QueryxContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	profiles, err := r.scanProfiles(rows)
	if err != nil {
		return nil, err
	}

	// Reorder to match the requested id order; missing ids are skipped.
	byID := make(map[int]*domain.Profile, len(profiles))
	for _, p := range profiles {
		byID[p.ID] = p
	}
	out := make([]*domain.Profile, 0, len(profiles))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *profileRepository) ListByOwner(ctx context.Context, userID int) ([]*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1 ORDER BY profile_id`
	rows, err := r.db.QueryxContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return r.scanProfiles(rows)
}

func (r *profileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	query := `
		UPDATE profiles
		SET name = $1, email = $2, industry = $3, phone_number = $4,
		    country = $5, city = $6, linkedin_url = $7, slogan = $8,
		    website_link = $9, avatar = $10, description = $11,
		    gender = $12, hobby_interest = $13, education = $14, date_of_birth = $15,
		    current_stage = $16, statement = $17, about_us = $18, tags = $19
		WHERE profile_id = $20
	`
	result, err := r.db.ExecContext(ctx, query,
		profile.Name, profile.Email, profile.Industry, profile.PhoneNumber,
		profile.Country, profile.City, profile.LinkedInURL, profile.Slogan,
		profile.WebsiteLink, profile.Avatar, profile.Description,
		profile.Gender, profile.HobbyInterest, profile.Education, profile.DateOfBirth,
		profile.CurrentStage, profile.Statement, profile.AboutUs, pq.Array(profile.Tags),
		profile.ID,
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (r *profileRepository) DiscoverPage(ctx context.Context, excludedIDs []int, limit, offset int) ([]*domain.Profile, int, error) {
	if excludedIDs == nil {
		excludedIDs = []int{}
	}
	var total int
	countQuery := `SELECT COUNT(*) FROM profiles WHERE NOT (profile_id = ANY($1))`
	if err := r.db.GetContext(ctx, &total, countQuery, pq.Array(excludedIDs)); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + profileColumns + `
		FROM profiles
		WHERE NOT (profile_id = ANY($1))
		ORDER BY profile_id ASC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryxContext(ctx, query, pq.Array(excludedIDs), limit, offset)
	if err != nil {
		return nil, 0, err
	}
	profiles, err := r.scanProfiles(rows)
	if err != nil {
		return nil, 0, err
	}
	return profiles, total, nil
}
