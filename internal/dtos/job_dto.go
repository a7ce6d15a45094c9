package dtos

import "time"

type JobPostRequest struct {
	UserID         uint   `json:"user_id" binding:"required"`
	JobTitle       string `json:"job_title" binding:"required"`
	RequiredSkills string `json:"required_skills"`
	Location       string `json:"location"`
}

// JobListItem is a catalog row: a job joined with its company's display name.
type JobListItem struct {
	JobID          uint      `json:"job_id"`
	CompanyID      uint      `json:"company_id"`
	JobTitle       string    `json:"job_title"`
	RequiredSkills string    `json:"required_skills"`
	Location       string    `json:"location"`
	CompanyName    string    `json:"company_name"`
	CreatedAt      time.Time `json:"created_at"`
}

// DashboardJob is one job on the company dashboard with its applications
// nested. Applications is always a JSON array, [] when nobody applied.
type DashboardJob struct {
	JobID          uint                   `json:"job_id"`
	JobTitle       string                 `json:"job_title"`
	RequiredSkills string                 `json:"required_skills"`
	Location       string                 `json:"location"`
	CreatedAt      time.Time              `json:"created_at"`
	Applications   []DashboardApplication `json:"applications"`
}

type DashboardApplication struct {
	ApplicationID uint   `json:"application_id"`
	FullName      string `json:"full_name"`
	Skills        string `json:"skills"`
	Status        string `json:"status"`
}
