package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/careerbridge/jobboard/internal/apperr"
	"github.com/careerbridge/jobboard/internal/dtos"
	"github.com/careerbridge/jobboard/internal/models"
)

type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{DB: db}
}

// Apply resolves the caller's applicant identity and inserts the Pending
// application inside one transaction. Resolution failure aborts before any
// write is attempted.
func (s *ApplicationService) Apply(ctx context.Context, req *dtos.ApplyRequest) (uint, error) {
	var application models.Application
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var applicant models.Applicant
		if err := tx.Where("user_id = ?", req.UserID).First(&applicant).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("Applicant not found")
			}
			return wrapStore(err)
		}

		var job models.Job
		if err := tx.Select("id").First(&job, req.JobID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("Job not found")
			}
			return wrapStore(err)
		}

		application = models.Application{
			JobID:       job.ID,
			ApplicantID: applicant.ID,
			Status:      models.StatusPending,
		}
		if err := tx.Create(&application).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperr.Conflict("already applied to this job")
			}
			return wrapStore(err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return application.ID, nil
}

// ListByUser returns the application history of the applicant behind
// userID, each row joined with its job and company. A user without an
// applicant profile has no history.
func (s *ApplicationService) ListByUser(ctx context.Context, userID uint) ([]dtos.ApplicationListItem, error) {
	var items []dtos.ApplicationListItem
	err := s.DB.WithContext(ctx).
		Model(&models.Application{}).
		Select("applications.id AS application_id, applications.job_id, applications.status, applications.created_at, jobs.job_title, jobs.location, companies.company_name").
		Joins("JOIN applicants ON applicants.id = applications.applicant_id").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Joins("JOIN companies ON companies.id = jobs.company_id").
		Where("applicants.user_id = ?", userID).
		Order("applications.id").
		Scan(&items).Error
	if err != nil {
		return nil, wrapStore(err)
	}
	if items == nil {
		items = []dtos.ApplicationListItem{}
	}
	return items, nil
}

// UpdateStatus moves an application through its lifecycle:
// Pending -> Accepted | Rejected, both terminal. The caller must own the
// job the application belongs to.
func (s *ApplicationService) UpdateStatus(ctx context.Context, applicationID uint, req *dtos.StatusUpdateRequest) error {
	if !models.ValidStatus(req.Status) {
		return apperr.Validation(fmt.Sprintf("status must be one of %s, %s, %s",
			models.StatusPending, models.StatusAccepted, models.StatusRejected))
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var application models.Application
		if err := tx.First(&application, applicationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("Application not found")
			}
			return wrapStore(err)
		}

		var job models.Job
		if err := tx.Select("id", "company_id").First(&job, application.JobID).Error; err != nil {
			return wrapStore(err)
		}

		var company models.Company
		if err := tx.Where("user_id = ?", req.UserID).First(&company).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.Unauthorized("not authorized to update this application")
			}
			return wrapStore(err)
		}
		if company.ID != job.CompanyID {
			return apperr.Unauthorized("not authorized to update this application")
		}

		if application.Status == req.Status {
			return nil
		}
		if models.TerminalStatus(application.Status) {
			return apperr.Validation("application status is final")
		}

		if err := tx.Model(&application).Update("status", req.Status).Error; err != nil {
			return wrapStore(err)
		}
		return nil
	})
}
