package dtos

import "time"

type ApplyRequest struct {
	JobID  uint `json:"job_id" binding:"required"`
	UserID uint `json:"user_id" binding:"required"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
	// Identifies the caller; the update is refused unless this user's
	// company owns the job the application belongs to.
	UserID uint `json:"user_id" binding:"required"`
}

// ApplicationListItem is one row of an applicant's application history,
// joined with the job and its company.
type ApplicationListItem struct {
	ApplicationID uint      `json:"application_id"`
	JobID         uint      `json:"job_id"`
	JobTitle      string    `json:"job_title"`
	CompanyName   string    `json:"company_name"`
	Location      string    `json:"location"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// ApplicantListItem is one row of the applicant directory, joined with the
// account email.
type ApplicantListItem struct {
	ApplicantID uint   `json:"applicant_id"`
	UserID      uint   `json:"user_id"`
	FullName    string `json:"full_name"`
	Skills      string `json:"skills"`
	Email       string `json:"email"`
}
