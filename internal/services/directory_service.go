package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/careerbridge/jobboard/internal/dtos"
	"github.com/careerbridge/jobboard/internal/models"
)

// DirectoryService serves the flat company and applicant listings.
type DirectoryService struct {
	DB *gorm.DB
}

func NewDirectoryService(db *gorm.DB) *DirectoryService {
	return &DirectoryService{DB: db}
}

func (s *DirectoryService) Companies(ctx context.Context) ([]models.Company, error) {
	var companies []models.Company
	err := s.DB.WithContext(ctx).Order("id").Find(&companies).Error
	if err != nil {
		return nil, wrapStore(err)
	}
	if companies == nil {
		companies = []models.Company{}
	}
	return companies, nil
}

func (s *DirectoryService) Applicants(ctx context.Context) ([]dtos.ApplicantListItem, error) {
	var items []dtos.ApplicantListItem
	err := s.DB.WithContext(ctx).
		Model(&models.Applicant{}).
		Select("applicants.id AS applicant_id, applicants.user_id, applicants.full_name, applicants.skills, users.email").
		Joins("JOIN users ON users.id = applicants.user_id").
		Order("applicants.id").
		Scan(&items).Error
	if err != nil {
		return nil, wrapStore(err)
	}
	if items == nil {
		items = []dtos.ApplicantListItem{}
	}
	return items, nil
}
