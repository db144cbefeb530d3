package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/venturelink/venturelink-backend/internal/domain"
	"github.com/venturelink/venturelink-backend/internal/repository"
)

type privacyRepository struct {
	db *sqlx.DB
}

func NewPrivacyRepository(db *sqlx.DB) repository.PrivacyRepository {
	return &privacyRepository{db: db}
}

func (r *privacyRepository) Create(ctx context.Context, settings *domain.PrivacySettings) error {
	query := `
		INSERT INTO privacy_settings (
			profile_id, gender_privacy, industry_privacy, email_privacy,
			phone_number_privacy, country_privacy, city_privacy,
			linkedin_url_privacy, slogan_privacy, hobby_interest_privacy,
			education_privacy, date_of_birth_privacy, achievement_privacy
		)
		VALUES (:profile_id, :gender_privacy, :industry_privacy, :email_privacy,
		        :phone_number_privacy, :country_privacy, :city_privacy,
		        :linkedin_url_privacy, :slogan_privacy, :hobby_interest_privacy,
		        :education_privacy, :date_of_birth_privacy, :achievement_privacy)
	`
	_, err := r.db.NamedExecContext(ctx, query, settings)
	return err
}

func (r *privacyRepository) GetByProfileID(ctx context.Context, profileID int) (*domain.PrivacySettings, error) {
	var settings domain.PrivacySettings
	query := `SELECT * FROM privacy_settings WHERE profile_id = $1`
	err := r.db.GetContext(ctx, &settings, query, profileID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPrivacyNotFound
		}
		return nil, err
	}
	return &settings, nil
}

func (r *privacyRepository) Update(ctx context.Context, settings *domain.PrivacySettings) error {
	query := `
		UPDATE privacy_settings
		SET gender_privacy = :gender_privacy, industry_privacy = :industry_privacy,
		    email_privacy = :email_privacy, phone_number_privacy = :phone_number_privacy,
		    country_privacy = :country_privacy, city_privacy = :city_privacy,
		    linkedin_url_privacy = :linkedin_url_privacy, slogan_privacy = :slogan_privacy,
		    hobby_interest_privacy = :hobby_interest_privacy, education_privacy = :education_privacy,
		    date_of_birth_privacy = :date_of_birth_privacy, achievement_privacy = :achievement_privacy
		WHERE profile_id = :profile_id
	`
	result, err := r.db.NamedExecContext(ctx, query, settings)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrPrivacyNotFound
	}
	return nil
}
