package services

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/dhruvkp2310/resume-pilot/internal/dtos"
	"github.com/dhruvkp2310/resume-pilot/internal/models"
	"gorm.io/gorm"
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

// List returns active jobs matching the query, newest first, with
// skip/limit pagination and a total count for the client's pager.
func (s *JobService) List(q dtos.JobListQuery) (*dtos.JobListResponse, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 20
	}

	db := s.DB.Model(&models.Job{}).Where("is_active = ?", true)
	if q.Search != "" {
		like := "%" + strings.ToLower(q.Search) + "%"
		db = db.Where("LOWER(title) LIKE ? OR LOWER(company) LIKE ? OR LOWER(description) LIKE ?", like, like, like)
	}
	if q.Location != "" {
		db = db.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(q.Location)+"%")
	}
	if q.JobType != "" {
		db = db.Where("job_type = ?", q.JobType)
	}
	if q.ExperienceLevel != "" {
		db = db.Where("experience_level = ?", q.ExperienceLevel)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, err
	}

	var jobs []models.Job
	err := db.Order("posted_date DESC").
		Offset((q.Page - 1) * q.Limit).
		Limit(q.Limit).
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}

	return &dtos.JobListResponse{
		Jobs: jobs,
		Pagination: dtos.Pagination{
			Total: total,
			Page:  q.Page,
			Limit: q.Limit,
			Pages: int(math.Ceil(float64(total) / float64(q.Limit))),
		},
	}, nil
}

// ActiveJobs returns up to limit active jobs, the pool matching runs over.
func (s *JobService) ActiveJobs(limit int) ([]models.Job, error) {
	var jobs []models.Job
	err := s.DB.Where("is_active = ?", true).Limit(limit).Find(&jobs).Error
	return jobs, err
}

func (s *JobService) Get(id uint) (*models.Job, error) {
	var job models.Job
	if err := s.DB.First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (s *JobService) Create(req *dtos.JobRequest) (*models.Job, error) {
	job := &models.Job{
		Title:           req.Title,
		Company:         req.Company,
		Location:        req.Location,
		Description:     req.Description,
		Requirements:    req.Requirements,
		Skills:          req.Skills,
		Salary:          req.Salary,
		JobType:         req.JobType,
		Industry:        req.Industry,
		ExperienceLevel: req.ExperienceLevel,
		EducationLevel:  req.EducationLevel,
		ApplicationURL:  req.ApplicationURL,
	}
	if req.ExpiryDate != "" {
		if t, err := time.Parse(time.RFC3339, req.ExpiryDate); err == nil {
			job.ExpiryDate = &t
		}
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// Update patches only the fields present in the request. Any authenticated
// user may update any job; the catalog is shared.
func (s *JobService) Update(id uint, req *dtos.JobRequest) (*models.Job, error) {
	job, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if req.Title != "" {
		job.Title = req.Title
	}
	if req.Company != "" {
		job.Company = req.Company
	}
	if req.Location != "" {
		job.Location = req.Location
	}
	if req.Description != "" {
		job.Description = req.Description
	}
	if req.Requirements != "" {
		job.Requirements = req.Requirements
	}
	if req.Skills != nil {
		job.Skills = req.Skills
	}
	if req.Salary != "" {
		job.Salary = req.Salary
	}
	if req.JobType != "" {
		job.JobType = req.JobType
	}
	if req.Industry != "" {
		job.Industry = req.Industry
	}
	if req.ExperienceLevel != "" {
		job.ExperienceLevel = req.ExperienceLevel
	}
	if req.EducationLevel != "" {
		job.EducationLevel = req.EducationLevel
	}
	if req.ApplicationURL != "" {
		job.ApplicationURL = req.ApplicationURL
	}
	if req.ExpiryDate != "" {
		if t, err := time.Parse(time.RFC3339, req.ExpiryDate); err == nil {
			job.ExpiryDate = &t
		}
	}
	if req.IsActive != nil {
		job.IsActive = *req.IsActive
	}
	if err := s.DB.Save(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobService) Delete(id uint) error {
	job, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(job).Error
}

// Import stores a job fetched from an external board, guarding on the
// (source, sourceId) pair so re-imports are rejected.
func (s *JobService) Import(req *dtos.ImportJobRequest) (*models.Job, error) {
	var count int64
	err := s.DB.Model(&models.Job{}).
		Where("source = ? AND source_id = ?", req.Source, req.ExternalID).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicate
	}

	requirements := req.JobData.Requirements
	if requirements == "" {
		requirements = "Not specified"
	}
	job := &models.Job{
		Title:          req.JobData.Title,
		Company:        req.JobData.Company,
		Location:       req.JobData.Location,
		Description:    req.JobData.Description,
		Requirements:   requirements,
		ApplicationURL: req.JobData.URL,
		Source:         req.Source,
		SourceID:       req.ExternalID,
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// ExternalSearch is a placeholder for a future job-board integration; it
// returns static data shaped like the eventual API response.
func (s *JobService) ExternalSearch(query, location string, limit int) []dtos.ExternalJob {
	return []dtos.ExternalJob{
		{
			ID:          "ext-1",
			Title:       "Software Engineer",
			Company:     "Tech Company",
			Location:    "Remote",
			Description: "Job description here...",
			URL:         "https://example.com/job/1",
			Source:      "External API",
		},
		{
			ID:          "ext-2",
			Title:       "Product Manager",
			Company:     "Product Company",
			Location:    "New York, NY",
			Description: "Job description here...",
			URL:         "https://example.com/job/2",
			Source:      "External API",
		},
	}
}
