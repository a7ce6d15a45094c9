package models

import "time"

// User roles. A user is either an applicant or a company account;
// the role decides which profile row (Applicant or Company) exists for it.
const (
	RoleApplicant = "applicant"
	RoleCompany   = "company"
)

// Application statuses. Pending is the initial state; Accepted and
// Rejected are terminal.
const (
	StatusPending  = "Pending"
	StatusAccepted = "Accepted"
	StatusRejected = "Rejected"
)

// ValidRole reports whether role is one of the recognized user roles.
func ValidRole(role string) bool {
	return role == RoleApplicant || role == RoleCompany
}

// ValidStatus reports whether s is one of the recognized application statuses.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusAccepted || s == StatusRejected
}

// TerminalStatus reports whether s permits no further transitions.
func TerminalStatus(s string) bool {
	return s == StatusAccepted || s == StatusRejected
}

type User struct {
	ID        uint      `gorm:"primaryKey" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `gorm:"not null" json:"role"`
}

type Company struct {
	ID        uint      `gorm:"primaryKey" json:"company_id"`
	CreatedAt time.Time `json:"created_at"`

	// One company account per user.
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `json:"-"`

	CompanyName string `gorm:"not null" json:"company_name"`

	// 'omitempty' prevents infinite loops when fetching a Job -> Company -> Jobs -> ...
	Jobs []Job `json:"jobs,omitempty"`
}

type Applicant struct {
	ID        uint      `gorm:"primaryKey" json:"applicant_id"`
	CreatedAt time.Time `json:"created_at"`

	// One applicant profile per user.
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `json:"-"`

	FullName string `json:"full_name"`
	Skills   string `json:"skills"`
}

type Job struct {
	ID        uint      `gorm:"primaryKey" json:"job_id"`
	CreatedAt time.Time `json:"created_at"`

	// Foreign Key
	CompanyID uint `gorm:"not null;index" json:"company_id"`
	// Association: GORM needs Preload() to fill this
	Company Company `json:"-"`

	JobTitle       string `gorm:"not null" json:"job_title"`
	RequiredSkills string `json:"required_skills"`
	Location       string `json:"location"`

	Applications []Application `json:"applications,omitempty"`
}

type Application struct {
	ID        uint      `gorm:"primaryKey" json:"application_id"`
	CreatedAt time.Time `json:"created_at"`

	// An applicant may apply to a given job at most once.
	JobID       uint      `gorm:"not null;uniqueIndex:idx_job_applicant" json:"job_id"`
	Job         Job       `json:"-"`
	ApplicantID uint      `gorm:"not null;uniqueIndex:idx_job_applicant" json:"applicant_id"`
	Applicant   Applicant `json:"-"`

	Status string `gorm:"not null;default:'Pending'" json:"status"`
}
