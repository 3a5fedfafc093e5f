package models

import (
	"time"
)

type Role string

const (
	RoleBusiness  Role = "business"
	RoleApplicant Role = "applicant"
	RoleAdmin     Role = "admin"
)

// Valid reports whether r is one of the recognized roles.
func (r Role) Valid() bool {
	switch r {
	case RoleBusiness, RoleApplicant, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         Role   `gorm:"type:varchar(20);not null" json:"role"`

	// 'omitempty' prevents infinite loops when fetching a User -> Jobs -> Owner -> ...
	Jobs         []Job         `gorm:"foreignKey:OwnerID" json:"jobs,omitempty"`
	Applications []Application `gorm:"foreignKey:UserID" json:"applications,omitempty"`
}

type Job struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Foreign Key: the posting business user
	OwnerID uint `gorm:"index;not null" json:"owner_id"`
	Owner   User `json:"-"`

	Status JobStatus `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`

	Title              string `gorm:"not null" json:"title"`
	CompanyName        string `gorm:"not null" json:"company_name"`
	CompanyAddress     string `json:"company_address"`
	CompanyDescription string `gorm:"type:text" json:"company_description"`

	// Comma-joined lists, e.g. "part-time,remote"
	JobType string `json:"job_type"`
	Tags    string `json:"tags"`

	LocationStreet string `json:"location_street"`
	LocationCity   string `json:"location_city"`
	LocationState  string `json:"location_state"`
	LocationZip    string `json:"location_zip"`

	Description string `gorm:"type:text" json:"description"`

	// JSON-encoded string lists
	Responsibilities string `gorm:"type:text" json:"responsibilities"`
	Requirements     string `gorm:"type:text" json:"requirements"`
	Offerings        string `gorm:"type:text" json:"offerings"`

	Applicants int `gorm:"default:0" json:"applicants"`

	Applications []Application `json:"applications,omitempty"`
}

type Application struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AppliedAt time.Time `gorm:"autoCreateTime" json:"applied_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// An applicant may apply to a given job at most once; the composite
	// unique index is what closes the race between concurrent applies.
	UserID uint `gorm:"not null;uniqueIndex:idx_applications_user_job" json:"user_id"`
	JobID  uint `gorm:"not null;uniqueIndex:idx_applications_user_job" json:"job_id"`
	User   User `json:"-"`
	Job    Job  `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	Status Status `gorm:"type:varchar(20);not null;default:'applied'" json:"status"`

	CoverLetter string `gorm:"type:text" json:"cover_letter"`
	ResumePath  string `json:"resume_path"`

	Experience   string `gorm:"type:text" json:"experience"`
	Education    string `gorm:"type:text" json:"education"`
	Availability string `json:"availability"`
	References   string `gorm:"type:text" json:"references"`

	TermsAccepted     bool `gorm:"not null" json:"terms_accepted"`
	ContactPermission bool `json:"contact_permission"`
}
