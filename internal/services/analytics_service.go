package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/dhruvkp2310/resume-pilot/internal/dtos"
	"github.com/dhruvkp2310/resume-pilot/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxSummaries = 12

// DefaultInsights is returned when insight generation fails for any reason;
// the route never surfaces a provider error to the client.
var DefaultInsights = []dtos.Insight{
	{
		Content:  "Consider adding more technical skills to your resume to improve match rates.",
		Category: "Skills",
	},
	{
		Content:  "Your application success rate is higher for mid-level positions. Consider focusing on these roles.",
		Category: "JobCategory",
	},
	{
		Content:  "Customize your resume for each application to highlight relevant experience.",
		Category: "ResumeOptimization",
	},
}

var ErrNoApplications = errors.New("no applications found")

type AnalyticsService struct {
	DB *gorm.DB
	AI *AIService
}

func NewAnalyticsService(db *gorm.DB, ai *AIService) *AnalyticsService {
	return &AnalyticsService{DB: db, AI: ai}
}

// getOrCreate loads the user's analytics document, creating it on first
// access. Users never get one at registration.
func (s *AnalyticsService) getOrCreate(userID uint) (*models.UserAnalytics, error) {
	var ua models.UserAnalytics
	err := s.DB.Where(models.UserAnalytics{UserID: userID}).FirstOrCreate(&ua).Error
	if err != nil {
		return nil, err
	}
	return &ua, nil
}

// get returns ErrNotFound when the document was never created.
func (s *AnalyticsService) get(userID uint) (*models.UserAnalytics, error) {
	var ua models.UserAnalytics
	if err := s.DB.Where("user_id = ?", userID).First(&ua).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ua, nil
}

// Dashboard recomputes applicationStats from the live application table and
// persists the snapshot onto the analytics document before returning it.
func (s *AnalyticsService) Dashboard(userID uint) (*models.UserAnalytics, error) {
	ua, err := s.getOrCreate(userID)
	if err != nil {
		return nil, err
	}

	var apps []models.Application
	if err := s.DB.Where("user_id = ?", userID).Find(&apps).Error; err != nil {
		return nil, err
	}

	counts := countByStatus(apps)
	ua.ApplicationStats = models.ApplicationStats{
		TotalApplications: len(apps),
		Pending:           counts[models.StatusApplied] + counts[models.StatusViewed],
		Interviews:        counts[models.StatusInterview],
		Offers:            counts[models.StatusOffer],
		Rejections:        counts[models.StatusRejected],
		Withdrawn:         counts[models.StatusWithdrawn],
	}
	if err := s.DB.Save(ua).Error; err != nil {
		return nil, err
	}
	return ua, nil
}

// Summaries returns the stored weekly or monthly rollups, newest first.
func (s *AnalyticsService) Summaries(userID uint, period string) ([]models.PeriodSummary, error) {
	ua, err := s.get(userID)
	if err != nil {
		return nil, err
	}
	summaries := ua.WeeklySummaries
	if period == "monthly" {
		summaries = ua.MonthlySummaries
	}
	sorted := make([]models.PeriodSummary, len(summaries))
	copy(sorted, summaries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Period.After(sorted[j].Period) })
	return sorted, nil
}

// UpdateSummary recomputes the trailing weekly or monthly rollup, appends
// it, and truncates the list to the 12 most recent entries.
func (s *AnalyticsService) UpdateSummary(userID uint, period string) (*models.PeriodSummary, error) {
	since := time.Now().AddDate(0, 0, -7)
	if period == "monthly" {
		since = time.Now().AddDate(0, -1, 0)
	}

	var apps []models.Application
	err := s.DB.Where("user_id = ? AND applied_date >= ?", userID, since).Find(&apps).Error
	if err != nil {
		return nil, err
	}

	ua, err := s.getOrCreate(userID)
	if err != nil {
		return nil, err
	}

	var matchSum float64
	var matchCount int
	for _, m := range ua.JobMatchData {
		if !m.Date.Before(since) {
			matchSum += m.MatchPercentage
			matchCount++
		}
	}
	averageMatchRate := 0.0
	if matchCount > 0 {
		averageMatchRate = matchSum / float64(matchCount)
	}

	counts := countByStatus(apps)
	summary := models.PeriodSummary{
		Period:                time.Now(),
		ApplicationsSubmitted: len(apps),
		Interviews:            counts[models.StatusInterview],
		Offers:                counts[models.StatusOffer],
		Rejections:            counts[models.StatusRejected],
		AverageMatchRate:      averageMatchRate,
	}

	if period == "monthly" {
		ua.MonthlySummaries = appendCapped(ua.MonthlySummaries, summary)
	} else {
		ua.WeeklySummaries = appendCapped(ua.WeeklySummaries, summary)
	}

	if err := s.DB.Save(ua).Error; err != nil {
		return nil, err
	}
	return &summary, nil
}

// appendCapped evicts the oldest entries once the list passes 12.
func appendCapped(list []models.PeriodSummary, entry models.PeriodSummary) []models.PeriodSummary {
	list = append(list, entry)
	if len(list) > maxSummaries {
		list = list[len(list)-maxSummaries:]
	}
	return list
}

func (s *AnalyticsService) UnreadSuggestions(userID uint) ([]models.Suggestion, error) {
	ua, err := s.get(userID)
	if err != nil {
		return nil, err
	}
	unread := []models.Suggestion{}
	for _, sg := range ua.Suggestions {
		if !sg.IsRead {
			unread = append(unread, sg)
		}
	}
	return unread, nil
}

// MarkSuggestionRead flips isRead on the suggestion with the given id and
// returns the full suggestion list.
func (s *AnalyticsService) MarkSuggestionRead(userID uint, suggestionID string) ([]models.Suggestion, error) {
	ua, err := s.get(userID)
	if err != nil {
		return nil, err
	}
	found := false
	for i := range ua.Suggestions {
		if ua.Suggestions[i].ID == suggestionID {
			ua.Suggestions[i].IsRead = true
			found = true
			break
		}
	}
	if !found {
		return nil, ErrNotFound
	}
	if err := s.DB.Save(ua).Error; err != nil {
		return nil, err
	}
	return ua.Suggestions, nil
}

// GenerateInsights summarizes the user's application history through the
// provider and stores the results in the suggestion inbox. Provider or
// parse failures fall back to the canned defaults instead of erroring.
func (s *AnalyticsService) GenerateInsights(ctx context.Context, userID uint) ([]dtos.Insight, error) {
	var apps []models.Application
	err := s.DB.Where("user_id = ?", userID).Preload("Job").Preload("Resume").Find(&apps).Error
	if err != nil {
		return nil, err
	}
	if len(apps) == 0 {
		return nil, ErrNoApplications
	}

	type appDatum struct {
		JobTitle     string         `json:"jobTitle"`
		Company      string         `json:"company"`
		Status       string         `json:"status"`
		JobSkills    []string       `json:"jobSkills"`
		ResumeSkills []models.Skill `json:"resumeSkills"`
		Industry     string         `json:"industry"`
	}
	data := make([]appDatum, 0, len(apps))
	for _, app := range apps {
		d := appDatum{Status: app.Status}
		if app.Job != nil {
			d.JobTitle = app.Job.Title
			d.Company = app.Job.Company
			d.JobSkills = app.Job.Skills
			d.Industry = app.Job.Industry
		}
		if app.Resume != nil {
			d.ResumeSkills = app.Resume.Skills
		}
		data = append(data, d)
	}

	insights, err := s.AI.GenerateInsights(ctx, data)
	if err != nil {
		insights = DefaultInsights
	}

	ua, err := s.getOrCreate(userID)
	if err != nil {
		return nil, err
	}
	for _, ins := range insights {
		ua.Suggestions = append(ua.Suggestions, models.Suggestion{
			ID:       uuid.NewString(),
			Content:  ins.Content,
			Category: ins.Category,
			Date:     time.Now(),
		})
	}
	if err := s.DB.Save(ua).Error; err != nil {
		return nil, err
	}
	return insights, nil
}

func (s *AnalyticsService) TrackResumeView(userID uint) (int, error) {
	ua, err := s.getOrCreate(userID)
	if err != nil {
		return 0, err
	}
	ua.ResumeViews++
	if err := s.DB.Save(ua).Error; err != nil {
		return 0, err
	}
	return ua.ResumeViews, nil
}

func (s *AnalyticsService) TrackJobMatch(userID, jobID uint, matchPercentage float64) ([]models.JobMatchRecord, error) {
	ua, err := s.getOrCreate(userID)
	if err != nil {
		return nil, err
	}
	ua.JobMatchData = append(ua.JobMatchData, models.JobMatchRecord{
		JobID:           jobID,
		MatchPercentage: matchPercentage,
		Date:            time.Now(),
	})
	if err := s.DB.Save(ua).Error; err != nil {
		return nil, err
	}
	return ua.JobMatchData, nil
}

// TrackResponse records how long an application took to get a response.
// Status must be one of the response-bearing statuses.
func (s *AnalyticsService) TrackResponse(userID, applicationID uint, status string, responseTime float64) ([]models.ResponseTimeRecord, error) {
	switch status {
	case models.StatusViewed, models.StatusInterview, models.StatusOffer, models.StatusRejected:
	default:
		return nil, ErrInvalidStatus
	}

	ua, err := s.getOrCreate(userID)
	if err != nil {
		return nil, err
	}
	ua.ResponseTimeData = append(ua.ResponseTimeData, models.ResponseTimeRecord{
		ApplicationID: applicationID,
		ResponseTime:  responseTime,
		Status:        status,
		Date:          time.Now(),
	})
	if err := s.DB.Save(ua).Error; err != nil {
		return nil, err
	}
	return ua.ResponseTimeData, nil
}

func (s *AnalyticsService) ResponseTimeData(userID uint) ([]models.ResponseTimeRecord, error) {
	ua, err := s.get(userID)
	if err != nil {
		return nil, err
	}
	if ua.ResponseTimeData == nil {
		return []models.ResponseTimeRecord{}, nil
	}
	return ua.ResponseTimeData, nil
}

func (s *AnalyticsService) JobMatchData(userID uint) ([]models.JobMatchRecord, error) {
	ua, err := s.get(userID)
	if err != nil {
		return nil, err
	}
	if ua.JobMatchData == nil {
		return []models.JobMatchRecord{}, nil
	}
	return ua.JobMatchData, nil
}

func countByStatus(apps []models.Application) map[string]int {
	counts := make(map[string]int)
	for _, app := range apps {
		counts[app.Status]++
	}
	return counts
}
