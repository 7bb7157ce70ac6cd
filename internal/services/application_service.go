package services

import (
	"errors"
	"time"

	"github.com/dhruvkp2310/resume-pilot/internal/dtos"
	"github.com/dhruvkp2310/resume-pilot/internal/models"
	"gorm.io/gorm"
)

type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{DB: db}
}

func (s *ApplicationService) ListByUser(userID uint) ([]models.Application, error) {
	var apps []models.Application
	err := s.DB.Where("user_id = ?", userID).
		Preload("Job").
		Preload("Resume").
		Order("applied_date DESC").
		Find(&apps).Error
	return apps, err
}

func (s *ApplicationService) GetOwned(id, userID uint) (*models.Application, error) {
	var app models.Application
	err := s.DB.Preload("Job").Preload("Resume").First(&app, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if app.UserID != userID {
		return nil, ErrNotAuthorized
	}
	return &app, nil
}

// Create validates the referenced job and resume, then inserts. The unique
// (user_id, job_id) index turns a concurrent duplicate apply into
// ErrDuplicate instead of a second row.
func (s *ApplicationService) Create(userID, jobID uint, resumeID *uint, coverLetter, notes string) (*models.Application, error) {
	var job models.Job
	if err := s.DB.First(&job, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	if resumeID != nil {
		var resume models.Resume
		if err := s.DB.First(&resume, *resumeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrResumeNotFound
			}
			return nil, err
		}
		if resume.UserID != userID {
			return nil, ErrNotAuthorized
		}
	}

	app := &models.Application{
		UserID:      userID,
		JobID:       jobID,
		ResumeID:    resumeID,
		Status:      models.StatusApplied,
		CoverLetter: coverLetter,
		Notes:       notes,
	}
	if err := s.DB.Create(app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return app, nil
}

// Update sets status and/or notes and stamps lastUpdated.
func (s *ApplicationService) Update(id, userID uint, req *dtos.UpdateApplicationRequest) (*models.Application, error) {
	app, err := s.GetOwned(id, userID)
	if err != nil {
		return nil, err
	}
	if req.Status != "" {
		if !models.ValidStatus(req.Status) {
			return nil, ErrInvalidStatus
		}
		app.Status = req.Status
	}
	if req.Notes != "" {
		app.Notes = req.Notes
	}
	app.LastUpdated = time.Now()
	if err := s.DB.Save(app).Error; err != nil {
		return nil, err
	}
	return app, nil
}

func (s *ApplicationService) Delete(id, userID uint) error {
	app, err := s.GetOwned(id, userID)
	if err != nil {
		return err
	}
	return s.DB.Delete(app).Error
}

// Stats groups the user's applications by status into the fixed response
// shape, defaulting missing statuses to zero.
func (s *ApplicationService) Stats(userID uint) (*dtos.ApplicationStats, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	err := s.DB.Model(&models.Application{}).
		Select("status, COUNT(*) as count").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := &dtos.ApplicationStats{}
	for _, r := range rows {
		stats.Total += r.Count
		switch r.Status {
		case models.StatusApplied:
			stats.Applied = r.Count
		case models.StatusViewed:
			stats.Viewed = r.Count
		case models.StatusInterview:
			stats.Interview = r.Count
		case models.StatusOffer:
			stats.Offer = r.Count
		case models.StatusRejected:
			stats.Rejected = r.Count
		case models.StatusWithdrawn:
			stats.Withdrawn = r.Count
		}
	}
	return stats, nil
}
