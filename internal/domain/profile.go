package domain

import "time"

// Profile is one discoverable identity. A user account may own several.
// IsStartup is immutable and decides which side of every connection the
// profile plays.
type Profile struct {
	ID            int        `json:"profileID" db:"profile_id"`
	UserID        int        `json:"userID" db:"user_id"`
	IsStartup     bool       `json:"isStartup" db:"is_startup"`
	Name          string     `json:"name" db:"name"`
	Email         string     `json:"email" db:"email"`
	Industry      string     `json:"industry" db:"industry"`
	PhoneNumber   *string    `json:"phoneNumber" db:"phone_number"`
	Country       *string    `json:"country" db:"country"`
	City          *string    `json:"city" db:"city"`
	LinkedInURL   *string    `json:"linkedInURL" db:"linkedin_url"`
	Slogan        *string    `json:"slogan" db:"slogan"`
	WebsiteLink   *string    `json:"websiteLink" db:"website_link"`
	Avatar        *string    `json:"avatar" db:"avatar"`
	Description   *string    `json:"description" db:"description"`
	Gender        *string    `json:"gender,omitempty" db:"gender"`
	HobbyInterest *string    `json:"hobbyInterest,omitempty" db:"hobby_interest"`
	Education     *string    `json:"education,omitempty" db:"education"`
	DateOfBirth   *time.Time `json:"dateOfBirth,omitempty" db:"date_of_birth"`
	CurrentStage  *string    `json:"currentStage,omitempty" db:"current_stage"`
	Statement     *string    `json:"statement,omitempty" db:"statement"`
	AboutUs       *string    `json:"aboutUs,omitempty" db:"about_us"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`

	Tags         []string      `json:"tags" db:"-"`
	Experiences  []Experience  `json:"experiences,omitempty" db:"-"`
	Certificates []Certificate `json:"certificates,omitempty" db:"-"`
	Achievements []Achievement `json:"achievements,omitempty" db:"-"`
	JobPositions []JobPosition `json:"jobPositions,omitempty" db:"-"`
}

type Experience struct {
	ID          int        `json:"experienceID" db:"experience_id"`
	ProfileID   int        `json:"-" db:"profile_id"`
	CompanyName string     `json:"companyName" db:"company_name"`
	Role        *string    `json:"role" db:"role"`
	Location    *string    `json:"location" db:"location"`
	Description *string    `json:"description" db:"description"`
	StartDate   *time.Time `json:"startDate" db:"start_date"`
	EndDate     *time.Time `json:"endDate" db:"end_date"`
}

type Certificate struct {
	ID          int        `json:"certificateID" db:"certificate_id"`
	ProfileID   int        `json:"-" db:"profile_id"`
	Name        string     `json:"name" db:"name"`
	Skill       *string    `json:"skill" db:"skill"`
	Description *string    `json:"description" db:"description"`
	GPA         *float64   `json:"gpa" db:"gpa"`
	StartDate   *time.Time `json:"startDate" db:"start_date"`
	EndDate     *time.Time `json:"endDate" db:"end_date"`
}

type Achievement struct {
	ID          int        `json:"achievementID" db:"achievement_id"`
	ProfileID   int        `json:"-" db:"profile_id"`
	Name        string     `json:"name" db:"name"`
	Description *string    `json:"description" db:"description"`
	Date        *time.Time `json:"date" db:"date"`
}

type JobPosition struct {
	ID          int        `json:"jobPositionID" db:"job_position_id"`
	ProfileID   int        `json:"-" db:"profile_id"`
	JobTitle    string     `json:"jobTitle" db:"job_title"`
	IsOpening   bool       `json:"isOpening" db:"is_opening"`
	Country     string     `json:"country" db:"country"`
	City        *string    `json:"city" db:"city"`
	StartDate   *time.Time `json:"startDate" db:"start_date"`
	Description *string    `json:"description" db:"description"`
}
