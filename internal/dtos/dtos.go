package dtos

import (
	"github.com/dhruvkp2310/resume-pilot/internal/models"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type ResumeRequest struct {
	Template        string                  `json:"template"`
	PersonalInfo    *models.PersonalInfo    `json:"personalInfo"`
	WorkExperience  []models.WorkExperience `json:"workExperience"`
	Education       []models.Education      `json:"education"`
	Skills          []models.Skill          `json:"skills"`
	SuggestedSkills []string                `json:"suggestedSkills"`
}

// IndexedDescription targets one entry of a resume list section by position.
type IndexedDescription struct {
	Index       *int   `json:"index"`
	Description string `json:"description"`
}

// OptimizationData is the payload a previous optimize-resume call produced,
// sent back to be merged into the stored resume.
type OptimizationData struct {
	Summary    string               `json:"summary"`
	Skills     []string             `json:"skills"`
	Experience []IndexedDescription `json:"experience"`
	Education  []IndexedDescription `json:"education"`
	Keywords   []string             `json:"keywords"`
}

type ApplyOptimizationRequest struct {
	OptimizationData *OptimizationData `json:"optimizationData"`
}

type JobRequest struct {
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	Location        string   `json:"location"`
	Description     string   `json:"description"`
	Requirements    string   `json:"requirements"`
	Skills          []string `json:"skills"`
	Salary          string   `json:"salary"`
	JobType         string   `json:"jobType"`
	Industry        string   `json:"industry"`
	ExperienceLevel string   `json:"experienceLevel"`
	EducationLevel  string   `json:"educationLevel"`
	ApplicationURL  string   `json:"applicationUrl"`
	ExpiryDate      string   `json:"expiryDate"`
	IsActive        *bool    `json:"isActive"`
}

type JobListQuery struct {
	Search          string
	Location        string
	JobType         string
	ExperienceLevel string
	Page            int
	Limit           int
}

type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

type JobListResponse struct {
	Jobs       []models.Job `json:"jobs"`
	Pagination Pagination   `json:"pagination"`
}

type ApplyJobRequest struct {
	ResumeID    *uint  `json:"resumeId"`
	CoverLetter string `json:"coverLetter"`
	Notes       string `json:"notes"`
}

type ImportJobRequest struct {
	ExternalID string          `json:"externalId"`
	Source     string          `json:"source"`
	JobData    ImportedJobData `json:"jobData"`
}

type ImportedJobData struct {
	Title        string `json:"title"`
	Company      string `json:"company"`
	Location     string `json:"location"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
	URL          string `json:"url"`
}

type ExternalJob struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Source      string `json:"source"`
}

type CreateApplicationRequest struct {
	Job         uint   `json:"job"`
	Resume      uint   `json:"resume"`
	CoverLetter string `json:"coverLetter"`
	Notes       string `json:"notes"`
}

type UpdateApplicationRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// ApplicationStats is the fixed-shape count response; statuses the user has
// never hit stay zero.
type ApplicationStats struct {
	Total     int64 `json:"total"`
	Applied   int64 `json:"applied"`
	Viewed    int64 `json:"viewed"`
	Interview int64 `json:"interview"`
	Offer     int64 `json:"offer"`
	Rejected  int64 `json:"rejected"`
	Withdrawn int64 `json:"withdrawn"`
}

type OptimizeExperienceRequest struct {
	JobTitle    string `json:"jobTitle"`
	CompanyName string `json:"companyName"`
	Description string `json:"description"`
	JobIndustry string `json:"jobIndustry"`
}

type SuggestSkillsRequest struct {
	JobTitle      string `json:"jobTitle"`
	ResumeContent string `json:"resumeContent"`
	Industry      string `json:"industry"`
}

type ResumeToJobsRequest struct {
	ResumeID uint `json:"resumeId"`
	Limit    int  `json:"limit"`
}

type JobToResumesRequest struct {
	JobID uint `json:"jobId"`
}

type OptimizeResumeRequest struct {
	ResumeID uint `json:"resumeId"`
	JobID    uint `json:"jobId"`
}

type AnalyzePortfolioRequest struct {
	PortfolioURLs []string `json:"portfolioUrls"`
	JobID         uint     `json:"jobId"`
}

// MatchResult is one entry of a provider-produced match list. Either JobID
// or ResumeID is set, depending on the matching direction.
type MatchResult struct {
	JobID         string   `json:"jobId,omitempty"`
	ResumeID      string   `json:"resumeId,omitempty"`
	MatchScore    float64  `json:"matchScore"`
	Reasons       []string `json:"reasons"`
	MissingSkills []string `json:"missingSkills"`
}

type OptimizationResult struct {
	Summary     string   `json:"summary"`
	Skills      []string `json:"skills"`
	Experience  []string `json:"experience"`
	Education   []string `json:"education"`
	Keywords    []string `json:"keywords"`
	GeneralTips []string `json:"generalTips"`
}

type Insight struct {
	Content  string `json:"content"`
	Category string `json:"category"`
}

type PortfolioAnalysis struct {
	Analysis       string `json:"analysis"`
	PortfolioCount int    `json:"portfolioCount"`
}

type TrackJobMatchRequest struct {
	JobID           *uint    `json:"jobId"`
	MatchPercentage *float64 `json:"matchPercentage"`
}

type TrackResponseRequest struct {
	ApplicationID *uint    `json:"applicationId"`
	Status        string   `json:"status"`
	ResponseTime  *float64 `json:"responseTime"`
}
