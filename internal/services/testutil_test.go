package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/dhruvkp2310/resume-pilot/internal/database"
	"github.com/dhruvkp2310/resume-pilot/internal/models"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory database with the production
// migrations applied. cache=shared keeps every pooled connection on the
// same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{Name: "Test User", Email: email, Password: "hash", Role: "user"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedJob(t *testing.T, db *gorm.DB, title, company string) *models.Job {
	t.Helper()
	job := &models.Job{
		Title:        title,
		Company:      company,
		Description:  "Build things",
		Requirements: "Go experience",
		IsActive:     true,
	}
	require.NoError(t, db.Create(job).Error)
	return job
}

func seedResume(t *testing.T, db *gorm.DB, userID uint) *models.Resume {
	t.Helper()
	resume := &models.Resume{
		UserID:   userID,
		Template: "modern",
		PersonalInfo: models.PersonalInfo{
			Name:  "Test User",
			Email: "test@example.com",
		},
		WorkExperience:  []models.WorkExperience{},
		Education:       []models.Education{},
		Skills:          []models.Skill{},
		SuggestedSkills: []string{},
		JobKeywords:     []string{},
	}
	require.NoError(t, db.Create(resume).Error)
	return resume
}

// fakeModel is an llms.Model returning a fixed response or error.
type fakeModel struct {
	response string
	err      error
	calls    int
}

func (f *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: f.response}},
	}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}
