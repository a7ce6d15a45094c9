package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/careerbridge/jobboard/internal/apperr"
	"github.com/careerbridge/jobboard/internal/dtos"
	"github.com/careerbridge/jobboard/internal/models"
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

// List returns the full catalog, each job joined with its company's display
// name, ordered by job id so the endpoint is deterministic.
func (s *JobService) List(ctx context.Context) ([]dtos.JobListItem, error) {
	var items []dtos.JobListItem
	err := s.DB.WithContext(ctx).
		Model(&models.Job{}).
		Select("jobs.id AS job_id, jobs.company_id, jobs.job_title, jobs.required_skills, jobs.location, jobs.created_at, companies.company_name").
		Joins("JOIN companies ON companies.id = jobs.company_id").
		Order("jobs.id").
		Scan(&items).Error
	if err != nil {
		return nil, wrapStore(err)
	}
	if items == nil {
		items = []dtos.JobListItem{}
	}
	return items, nil
}

// Post resolves the caller's company and inserts the job inside one
// transaction, so the company row cannot vanish between the two steps.
func (s *JobService) Post(ctx context.Context, req *dtos.JobPostRequest) (uint, error) {
	var job models.Job
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var company models.Company
		if err := tx.Where("user_id = ?", req.UserID).First(&company).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("Company not found")
			}
			return wrapStore(err)
		}

		job = models.Job{
			CompanyID:      company.ID,
			JobTitle:       req.JobTitle,
			RequiredSkills: req.RequiredSkills,
			Location:       req.Location,
		}
		if err := tx.Create(&job).Error; err != nil {
			return wrapStore(err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return job.ID, nil
}

// Dashboard returns every job owned by the company behind userID, each with
// its applications nested. Jobs with no applications keep an empty list.
// A user without a company simply owns no jobs, matching the catalog's
// outer-join behavior.
func (s *JobService) Dashboard(ctx context.Context, userID uint) ([]dtos.DashboardJob, error) {
	var company models.Company
	err := s.DB.WithContext(ctx).Where("user_id = ?", userID).First(&company).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []dtos.DashboardJob{}, nil
		}
		return nil, wrapStore(err)
	}

	var jobs []models.Job
	err = s.DB.WithContext(ctx).
		Preload("Applications.Applicant").
		Where("company_id = ?", company.ID).
		Order("id").
		Find(&jobs).Error
	if err != nil {
		return nil, wrapStore(err)
	}

	out := make([]dtos.DashboardJob, 0, len(jobs))
	for _, job := range jobs {
		apps := make([]dtos.DashboardApplication, 0, len(job.Applications))
		for _, app := range job.Applications {
			apps = append(apps, dtos.DashboardApplication{
				ApplicationID: app.ID,
				FullName:      app.Applicant.FullName,
				Skills:        app.Applicant.Skills,
				Status:        app.Status,
			})
		}
		out = append(out, dtos.DashboardJob{
			JobID:          job.ID,
			JobTitle:       job.JobTitle,
			RequiredSkills: job.RequiredSkills,
			Location:       job.Location,
			CreatedAt:      job.CreatedAt,
			Applications:   apps,
		})
	}
	return out, nil
}
