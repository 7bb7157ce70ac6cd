package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dhruvkp2310/resume-pilot/internal/database"
	"github.com/dhruvkp2310/resume-pilot/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

// fakeModel stands in for a provider client in router tests.
type fakeModel struct {
	response string
	err      error
}

func (f *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: f.response}}}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

type testApp struct {
	router *gin.Engine
	db     *gorm.DB
	users  *services.UserService
}

// newTestApp wires the whole route table over an in-memory database, with
// the provider replaced by model (nil model disables providers entirely).
func newTestApp(t *testing.T, model llms.Model) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:handlers_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	userSvc := services.NewUserService(db)
	resumeSvc := services.NewResumeService(db)
	jobSvc := services.NewJobService(db)
	appSvc := services.NewApplicationService(db)
	aiSvc := services.NewAIServiceWithModels(model, nil, model)
	if model == nil {
		aiSvc = services.NewAIServiceWithModels(nil, nil, nil)
	}
	analyticsSvc := services.NewAnalyticsService(db, aiSvc)

	r := gin.New()
	Handlers{
		Auth:         NewAuthHandler(userSvc, testSecret),
		Resumes:      NewResumeHandler(resumeSvc),
		Jobs:         NewJobHandler(jobSvc, appSvc),
		Applications: NewApplicationHandler(appSvc),
		Analytics:    NewAnalyticsHandler(analyticsSvc),
		Matching:     NewMatchingHandler(resumeSvc, jobSvc, aiSvc),
		AI:           NewAIHandler(aiSvc),
		Admin:        NewAdminHandler(db),
		JWTSecret:    testSecret,
	}.Register(r)

	return &testApp{router: r, db: db, users: userSvc}
}

// do performs a request with an optional JSON body and auth token.
func (a *testApp) do(t *testing.T, method, path, tok string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok != "" {
		req.Header.Set("x-auth-token", tok)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// registerUser creates an account through the API and returns its token.
func (a *testApp) registerUser(t *testing.T, name, email string) string {
	t.Helper()
	w := a.do(t, http.MethodPost, "/api/users", "", gin.H{
		"name": name, "email": email, "password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return tokenFrom(t, w)
}

func tokenFrom(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}
