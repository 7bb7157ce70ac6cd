package services

import (
	"errors"
	"strings"

	"github.com/dhruvkp2310/resume-pilot/internal/dtos"
	"github.com/dhruvkp2310/resume-pilot/internal/models"
	"gorm.io/gorm"
)

type ResumeService struct {
	DB *gorm.DB
}

func NewResumeService(db *gorm.DB) *ResumeService {
	return &ResumeService{DB: db}
}

func (s *ResumeService) ListByUser(userID uint) ([]models.Resume, error) {
	var resumes []models.Resume
	err := s.DB.Where("user_id = ?", userID).Order("updated_at DESC").Find(&resumes).Error
	return resumes, err
}

// GetOwned loads a resume and enforces ownership: ErrNotFound when absent,
// ErrNotAuthorized when it belongs to another user.
func (s *ResumeService) GetOwned(id, userID uint) (*models.Resume, error) {
	var resume models.Resume
	if err := s.DB.First(&resume, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if resume.UserID != userID {
		return nil, ErrNotAuthorized
	}
	return &resume, nil
}

func (s *ResumeService) Create(userID uint, req *dtos.ResumeRequest) (*models.Resume, error) {
	resume := &models.Resume{
		UserID:          userID,
		Template:        req.Template,
		WorkExperience:  orEmptyExperience(req.WorkExperience),
		Education:       orEmptyEducation(req.Education),
		Skills:          orEmptySkills(req.Skills),
		SuggestedSkills: orEmptyStrings(req.SuggestedSkills),
		JobKeywords:     []string{},
	}
	if req.PersonalInfo != nil {
		resume.PersonalInfo = *req.PersonalInfo
	}
	if err := s.DB.Create(resume).Error; err != nil {
		return nil, err
	}
	return resume, nil
}

func (s *ResumeService) Update(id, userID uint, req *dtos.ResumeRequest) (*models.Resume, error) {
	resume, err := s.GetOwned(id, userID)
	if err != nil {
		return nil, err
	}
	if req.Template != "" {
		resume.Template = req.Template
	}
	if req.PersonalInfo != nil {
		resume.PersonalInfo = *req.PersonalInfo
	}
	if req.WorkExperience != nil {
		resume.WorkExperience = req.WorkExperience
	}
	if req.Education != nil {
		resume.Education = req.Education
	}
	if req.Skills != nil {
		resume.Skills = req.Skills
	}
	if req.SuggestedSkills != nil {
		resume.SuggestedSkills = req.SuggestedSkills
	}
	if err := s.DB.Save(resume).Error; err != nil {
		return nil, err
	}
	return resume, nil
}

func (s *ResumeService) Delete(id, userID uint) error {
	resume, err := s.GetOwned(id, userID)
	if err != nil {
		return err
	}
	return s.DB.Delete(resume).Error
}

// ApplyOptimization merges a previously generated optimization payload into
// the stored resume:
//   - summary replaces personalInfo.summary
//   - suggested skills are case-insensitively deduplicated against existing
//     skill names and set-unioned into suggestedSkills
//   - experience/education overrides apply by index, only when that index
//     exists
//   - keywords replace jobKeywords wholesale
func (s *ResumeService) ApplyOptimization(id, userID uint, data *dtos.OptimizationData) (*models.Resume, error) {
	resume, err := s.GetOwned(id, userID)
	if err != nil {
		return nil, err
	}

	if data.Summary != "" {
		resume.PersonalInfo.Summary = data.Summary
	}

	if len(data.Skills) > 0 {
		existing := make(map[string]bool, len(resume.Skills)+len(resume.SuggestedSkills))
		for _, skill := range resume.Skills {
			existing[strings.ToLower(skill.Name)] = true
		}
		for _, name := range resume.SuggestedSkills {
			existing[strings.ToLower(name)] = true
		}
		for _, name := range data.Skills {
			if !existing[strings.ToLower(name)] {
				resume.SuggestedSkills = append(resume.SuggestedSkills, name)
				existing[strings.ToLower(name)] = true
			}
		}
	}

	for _, exp := range data.Experience {
		if exp.Index == nil || exp.Description == "" {
			continue
		}
		if i := *exp.Index; i >= 0 && i < len(resume.WorkExperience) {
			resume.WorkExperience[i].OptimizedDescription = exp.Description
		}
	}

	for _, edu := range data.Education {
		if edu.Index == nil || edu.Description == "" {
			continue
		}
		if i := *edu.Index; i >= 0 && i < len(resume.Education) {
			resume.Education[i].Description = edu.Description
		}
	}

	if len(data.Keywords) > 0 {
		resume.JobKeywords = data.Keywords
	}

	if err := s.DB.Save(resume).Error; err != nil {
		return nil, err
	}
	return resume, nil
}

func orEmptyExperience(v []models.WorkExperience) []models.WorkExperience {
	if v == nil {
		return []models.WorkExperience{}
	}
	return v
}

func orEmptyEducation(v []models.Education) []models.Education {
	if v == nil {
		return []models.Education{}
	}
	return v
}

func orEmptySkills(v []models.Skill) []models.Skill {
	if v == nil {
		return []models.Skill{}
	}
	return v
}

func orEmptyStrings(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
