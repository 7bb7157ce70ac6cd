package models

import (
	"time"
)

// Application status values. Status is always one of these.
const (
	StatusApplied   = "Applied"
	StatusViewed    = "Viewed"
	StatusInterview = "Interview"
	StatusOffer     = "Offer"
	StatusRejected  = "Rejected"
	StatusWithdrawn = "Withdrawn"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusApplied, StatusViewed, StatusInterview, StatusOffer, StatusRejected, StatusWithdrawn:
		return true
	}
	return false
}

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"default:'user'" json:"role"`
}

type Job struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title           string     `gorm:"not null" json:"title"`
	Company         string     `gorm:"not null" json:"company"`
	Location        string     `json:"location"`
	Description     string     `gorm:"type:text;not null" json:"description"`
	Requirements    string     `gorm:"type:text;not null" json:"requirements"`
	Skills          []string   `gorm:"serializer:json" json:"skills"`
	Salary          string     `json:"salary"`
	JobType         string     `gorm:"default:'Full-time'" json:"jobType"`
	Industry        string     `json:"industry"`
	ExperienceLevel string     `gorm:"default:'Mid-level'" json:"experienceLevel"`
	EducationLevel  string     `gorm:"default:'Bachelor'" json:"educationLevel"`
	ApplicationURL  string     `json:"applicationUrl"`
	Source          string     `gorm:"default:'Manual';index:idx_jobs_source,priority:1" json:"source"`
	SourceID        string     `gorm:"index:idx_jobs_source,priority:2" json:"sourceId"`
	PostedDate      time.Time  `gorm:"autoCreateTime" json:"postedDate"`
	ExpiryDate      *time.Time `json:"expiryDate"`
	IsActive        bool       `gorm:"default:true" json:"isActive"`
}

type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
	Summary  string `json:"summary,omitempty"`
}

type WorkExperience struct {
	Company              string     `json:"company"`
	Position             string     `json:"position"`
	Location             string     `json:"location,omitempty"`
	StartDate            time.Time  `json:"startDate"`
	EndDate              *time.Time `json:"endDate,omitempty"`
	Current              bool       `json:"current"`
	Description          string     `json:"description,omitempty"`
	Achievements         []string   `json:"achievements,omitempty"`
	OptimizedDescription string     `json:"optimizedDescription,omitempty"`
}

type Education struct {
	Institution  string     `json:"institution"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldOfStudy,omitempty"`
	Location     string     `json:"location,omitempty"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `json:"description,omitempty"`
}

type Skill struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

// Resume keeps its list sections as JSON columns so the stored shape stays
// the same document the client edits, index-addressed merges included.
type Resume struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID          uint             `gorm:"index;not null" json:"user"`
	Template        string           `gorm:"not null" json:"template"`
	PersonalInfo    PersonalInfo     `gorm:"serializer:json" json:"personalInfo"`
	WorkExperience  []WorkExperience `gorm:"serializer:json" json:"workExperience"`
	Education       []Education      `gorm:"serializer:json" json:"education"`
	Skills          []Skill          `gorm:"serializer:json" json:"skills"`
	SuggestedSkills []string         `gorm:"serializer:json" json:"suggestedSkills"`
	JobKeywords     []string         `gorm:"serializer:json" json:"jobKeywords"`
}

// Application carries a unique (user_id, job_id) index so a duplicate apply
// fails at the database instead of relying on a read-then-write check.
type Application struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"uniqueIndex:idx_applications_user_job,priority:1;not null" json:"user"`
	JobID       uint      `gorm:"uniqueIndex:idx_applications_user_job,priority:2;not null" json:"job_id"`
	ResumeID    *uint     `json:"resume_id"`
	Status      string    `gorm:"default:'Applied'" json:"status"`
	CoverLetter string    `gorm:"type:text" json:"coverLetter"`
	Notes       string    `gorm:"type:text" json:"notes"`
	AppliedDate time.Time `gorm:"autoCreateTime" json:"appliedDate"`
	LastUpdated time.Time `gorm:"autoCreateTime" json:"lastUpdated"`

	Job    *Job    `json:"job,omitempty"`
	Resume *Resume `json:"resume,omitempty"`
}

type ApplicationStats struct {
	TotalApplications int `json:"totalApplications"`
	Pending           int `json:"pending"`
	Interviews        int `json:"interviews"`
	Offers            int `json:"offers"`
	Rejections        int `json:"rejections"`
	Withdrawn         int `json:"withdrawn"`
}

type JobMatchRecord struct {
	JobID           uint      `json:"job"`
	MatchPercentage float64   `json:"matchPercentage"`
	Date            time.Time `json:"date"`
}

type ResponseTimeRecord struct {
	ApplicationID uint      `json:"application"`
	ResponseTime  float64   `json:"responseTime"` // days
	Status        string    `json:"status"`
	Date          time.Time `json:"date"`
}

type Suggestion struct {
	ID       string    `json:"id"`
	Content  string    `json:"content"`
	Category string    `json:"category"`
	IsRead   bool      `json:"isRead"`
	Date     time.Time `json:"date"`
}

type PeriodSummary struct {
	Period                time.Time `json:"period"`
	ApplicationsSubmitted int       `json:"applicationsSubmitted"`
	Interviews            int       `json:"interviews"`
	Offers                int       `json:"offers"`
	Rejections            int       `json:"rejections"`
	AverageMatchRate      float64   `json:"averageMatchRate"`
}

// UserAnalytics holds one aggregated document per user, created lazily on
// first analytics access. Weekly/monthly summaries never exceed 12 entries.
type UserAnalytics struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID           uint                 `gorm:"uniqueIndex;not null" json:"user"`
	ResumeViews      int                  `gorm:"default:0" json:"resumeViews"`
	ApplicationStats ApplicationStats     `gorm:"embedded;embeddedPrefix:stats_" json:"applicationStats"`
	JobMatchData     []JobMatchRecord     `gorm:"serializer:json" json:"jobMatchData"`
	ResponseTimeData []ResponseTimeRecord `gorm:"serializer:json" json:"responseTimeData"`
	Suggestions      []Suggestion         `gorm:"serializer:json" json:"suggestions"`
	WeeklySummaries  []PeriodSummary      `gorm:"serializer:json" json:"weeklySummaries"`
	MonthlySummaries []PeriodSummary      `gorm:"serializer:json" json:"monthlySummaries"`
}
