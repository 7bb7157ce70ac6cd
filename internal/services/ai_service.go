package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/dhruvkp2310/resume-pilot/internal/config"
	"github.com/dhruvkp2310/resume-pilot/internal/dtos"
	"github.com/dhruvkp2310/resume-pilot/internal/models"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/openai"
)

const maxPortfolioImages = 10

const optimizeExperiencePrompt = `Optimize the following work experience description for a resume.
Make it ATS-friendly, use strong action verbs, quantify achievements where possible,
and keep it concise but impactful. Ensure it's relevant for a %s position at %s
in the %s industry.

Original description: %s`

const suggestSkillsPrompt = `Based on the job title "%s" in the %s industry,
suggest 10-15 relevant technical and soft skills that would make a resume stand out to recruiters and pass ATS systems.
Return the skills as a numbered list.%s`

const resumeToJobsPrompt = `I have a resume and a list of jobs. Please analyze the resume and match it with the most suitable jobs.
Return a JSON array of objects with the following properties:
- jobId: the ID of the job
- matchScore: a number between 0 and 100 indicating how well the resume matches the job
- reasons: an array of strings explaining why the resume matches or doesn't match the job
- missingSkills: an array of strings listing skills mentioned in the job that are missing from the resume

Only include the top %d matches with the highest match scores.

Resume:
%s

Jobs:
%s`

const jobToResumesPrompt = `I have a job description and a list of resumes. Please analyze the job and match it with the most suitable resumes.
Return a JSON array of objects with the following properties:
- resumeId: the ID of the resume
- matchScore: a number between 0 and 100 indicating how well the job matches the resume
- reasons: an array of strings explaining why the job matches or doesn't match the resume
- missingSkills: an array of strings listing skills mentioned in the job that are missing from the resume

Job:
%s

Resumes:
%s`

const optimizeResumePrompt = `I have a resume and a job description. Please optimize the resume to better match the job requirements.
Return a JSON object with the following properties:
- summary: a string with an optimized professional summary
- skills: an array of strings with recommended skills to highlight
- experience: an array of strings with recommended improvements to work experience descriptions
- education: an array of strings with recommended improvements to education section
- keywords: an array of strings with important keywords from the job description to include
- generalTips: an array of strings with general tips for improving the resume

Resume:
%s

Job Description:
%s`

const insightsPrompt = `Based on the following job application data, provide 3 actionable insights to improve job application success rate:
%s

Format each insight as a JSON object with the following structure:
{
  "content": "The specific suggestion or insight",
  "category": "One of: Skills, JobCategory, ResumeOptimization, ApplicationStrategy"
}

Return only a valid JSON array of these objects.`

// AIService holds the two provider clients. Every text operation runs the
// primary first and falls through to the secondary on any error; portfolio
// analysis always uses the vision-capable provider.
type AIService struct {
	primary  llms.Model
	fallback llms.Model
	vision   llms.Model
	client   *http.Client
}

// NewAIService builds the provider clients from the configured API keys.
// A missing key disables that provider; calls then rely on the other one.
func NewAIService(cfg config.Config) *AIService {
	s := &AIService{
		client: &http.Client{Timeout: 30 * time.Second},
	}

	if cfg.OpenAIKey != "" {
		llm, err := openai.New(
			openai.WithToken(cfg.OpenAIKey),
			openai.WithModel(cfg.OpenAIModel),
		)
		if err != nil {
			log.Println("Failed to create OpenAI client:", err)
		} else {
			s.primary = llm
		}
	} else {
		log.Println("OPENAI_API_KEY is empty, primary provider disabled")
	}

	if cfg.GeminiKey != "" {
		ctx := context.Background()
		llm, err := googleai.New(ctx,
			googleai.WithAPIKey(cfg.GeminiKey),
			googleai.WithDefaultModel(cfg.GeminiModel),
		)
		if err != nil {
			log.Println("Failed to create Gemini client:", err)
		} else {
			s.fallback = llm
			s.vision = llm
		}
		if cfg.VisionModel != cfg.GeminiModel {
			vision, err := googleai.New(ctx,
				googleai.WithAPIKey(cfg.GeminiKey),
				googleai.WithDefaultModel(cfg.VisionModel),
			)
			if err != nil {
				log.Println("Failed to create Gemini vision client:", err)
			} else {
				s.vision = vision
			}
		}
	} else {
		log.Println("GEMINI_API_KEY is empty, fallback provider disabled")
	}

	return s
}

// NewAIServiceWithModels wires explicit models; used by tests.
func NewAIServiceWithModels(primary, fallback, vision llms.Model) *AIService {
	return &AIService{
		primary:  primary,
		fallback: fallback,
		vision:   vision,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *AIService) generate(ctx context.Context, prompt string, opts ...llms.CallOption) (string, error) {
	if s.primary != nil {
		out, err := llms.GenerateFromSinglePrompt(ctx, s.primary, prompt, opts...)
		if err == nil {
			return strings.TrimSpace(out), nil
		}
		log.Println("Primary provider error:", err)
	}
	if s.fallback != nil {
		out, err := llms.GenerateFromSinglePrompt(ctx, s.fallback, prompt, opts...)
		if err == nil {
			return strings.TrimSpace(out), nil
		}
		log.Println("Fallback provider error:", err)
	}
	return "", ErrProvidersFailed
}

// OptimizeExperience rewrites one work experience description.
func (s *AIService) OptimizeExperience(ctx context.Context, jobTitle, companyName, description, industry string) (string, error) {
	if industry == "" {
		industry = "technology"
	}
	prompt := fmt.Sprintf(optimizeExperiencePrompt, jobTitle, companyName, industry, description)
	return s.generate(ctx, prompt, llms.WithMaxTokens(500), llms.WithTemperature(0.7))
}

// SuggestSkills returns a flat skill list for a job title.
func (s *AIService) SuggestSkills(ctx context.Context, jobTitle, resumeContent, industry string) ([]string, error) {
	if industry == "" {
		industry = "technology"
	}
	extra := ""
	if resumeContent != "" {
		extra = "\nHere's the current resume content to consider: " + resumeContent
	}
	prompt := fmt.Sprintf(suggestSkillsPrompt, jobTitle, industry, extra)
	content, err := s.generate(ctx, prompt, llms.WithMaxTokens(500), llms.WithTemperature(0.7))
	if err != nil {
		return nil, err
	}
	return ParseSkillList(content), nil
}

// MatchResumeToJobs asks the provider to rank the given jobs against a
// resume and returns the parsed match list.
func (s *AIService) MatchResumeToJobs(ctx context.Context, resumeContent string, jobs []models.Job, limit int) ([]dtos.MatchResult, error) {
	type jobSummary struct {
		ID           string `json:"id"`
		Title        string `json:"title"`
		Company      string `json:"company"`
		Description  string `json:"description"`
		Requirements string `json:"requirements"`
		Skills       string `json:"skills"`
	}
	summaries := make([]jobSummary, 0, len(jobs))
	for _, job := range jobs {
		summaries = append(summaries, jobSummary{
			ID:           fmt.Sprint(job.ID),
			Title:        job.Title,
			Company:      job.Company,
			Description:  job.Description,
			Requirements: job.Requirements,
			Skills:       strings.Join(job.Skills, ", "),
		})
	}
	encoded, err := json.Marshal(summaries)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(resumeToJobsPrompt, limit, resumeContent, encoded)
	content, err := s.generate(ctx, prompt, llms.WithMaxTokens(2000), llms.WithTemperature(0.5))
	if err != nil {
		return nil, err
	}
	return DecodeMatches(content)
}

// MatchJobToResumes ranks the user's resumes against one job.
func (s *AIService) MatchJobToResumes(ctx context.Context, jobContent string, resumes []models.Resume) ([]dtos.MatchResult, error) {
	type resumeSummary struct {
		ID      string `json:"id"`
		Content string `json:"content"`
	}
	summaries := make([]resumeSummary, 0, len(resumes))
	for i := range resumes {
		summaries = append(summaries, resumeSummary{
			ID:      fmt.Sprint(resumes[i].ID),
			Content: ResumeContent(&resumes[i]),
		})
	}
	encoded, err := json.Marshal(summaries)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(jobToResumesPrompt, jobContent, encoded)
	content, err := s.generate(ctx, prompt, llms.WithMaxTokens(2000), llms.WithTemperature(0.5))
	if err != nil {
		return nil, err
	}
	return DecodeMatches(content)
}

// OptimizeResume returns the structured optimization payload for a
// resume/job pair.
func (s *AIService) OptimizeResume(ctx context.Context, resumeContent, jobContent string) (*dtos.OptimizationResult, error) {
	prompt := fmt.Sprintf(optimizeResumePrompt, resumeContent, jobContent)
	content, err := s.generate(ctx, prompt, llms.WithMaxTokens(2000), llms.WithTemperature(0.5))
	if err != nil {
		return nil, err
	}
	return DecodeOptimization(content)
}

// GenerateInsights turns recent application data into suggestion entries.
// The caller supplies the fallback behavior on error.
func (s *AIService) GenerateInsights(ctx context.Context, applicationData interface{}) ([]dtos.Insight, error) {
	encoded, err := json.Marshal(applicationData)
	if err != nil {
		return nil, err
	}
	prompt := fmt.Sprintf(insightsPrompt, encoded)
	content, err := s.generate(ctx, prompt, llms.WithMaxTokens(500), llms.WithTemperature(0.7))
	if err != nil {
		return nil, err
	}
	return DecodeInsights(content)
}

// AnalyzePortfolio fetches up to ten images and submits them with the
// prompt as multimodal content to the vision provider. Images that fail to
// download are skipped, matching the tolerant behavior of the client flow.
func (s *AIService) AnalyzePortfolio(ctx context.Context, urls []string, jobContent string) (*dtos.PortfolioAnalysis, error) {
	if s.vision == nil {
		return nil, ErrProvidersFailed
	}

	promptText := "Analyze the following portfolio images and provide feedback."
	if jobContent != "" {
		promptText += " Also evaluate how well they match the following job description:\n" + jobContent
	}
	parts := []llms.ContentPart{llms.TextPart(promptText)}

	if len(urls) > maxPortfolioImages {
		urls = urls[:maxPortfolioImages]
	}
	count := 0
	for _, url := range urls {
		data, mime, err := s.fetchImage(ctx, url)
		if err != nil {
			log.Printf("Error fetching image from %s: %v", url, err)
			continue
		}
		parts = append(parts, llms.BinaryPart(mime, data))
		count++
	}

	resp, err := s.vision.GenerateContent(ctx, []llms.MessageContent{
		{Role: llms.ChatMessageTypeHuman, Parts: parts},
	})
	if err != nil {
		log.Println("Error analyzing portfolio:", err)
		return nil, ErrProvidersFailed
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty vision response", ErrMalformedResponse)
	}

	return &dtos.PortfolioAnalysis{
		Analysis:       resp.Choices[0].Content,
		PortfolioCount: count,
	}, nil
}

func (s *AIService) fetchImage(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	mime := resp.Header.Get("Content-Type")
	if mime == "" {
		mime = "image/jpeg"
	}
	return data, mime, nil
}

// ResumeContent serializes a resume into the plain-text form the prompts
// embed.
func ResumeContent(resume *models.Resume) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\nEmail: %s\n", resume.PersonalInfo.Name, resume.PersonalInfo.Email)
	if resume.PersonalInfo.Summary != "" {
		fmt.Fprintf(&b, "Summary: %s\n", resume.PersonalInfo.Summary)
	}

	b.WriteString("\nWork Experience:\n")
	for _, exp := range resume.WorkExperience {
		fmt.Fprintf(&b, "- %s at %s", exp.Position, exp.Company)
		if exp.Location != "" {
			fmt.Fprintf(&b, ", %s", exp.Location)
		}
		b.WriteString("\n")
		if exp.Description != "" {
			fmt.Fprintf(&b, "  Description: %s\n", exp.Description)
		}
		if len(exp.Achievements) > 0 {
			b.WriteString("  Achievements:\n")
			for _, a := range exp.Achievements {
				fmt.Fprintf(&b, "  - %s\n", a)
			}
		}
	}

	b.WriteString("\nEducation:\n")
	for _, edu := range resume.Education {
		field := edu.FieldOfStudy
		if field == "" {
			field = "N/A"
		}
		fmt.Fprintf(&b, "- %s in %s from %s", edu.Degree, field, edu.Institution)
		if edu.Location != "" {
			fmt.Fprintf(&b, ", %s", edu.Location)
		}
		b.WriteString("\n")
	}

	b.WriteString("\nSkills:\n")
	for _, skill := range resume.Skills {
		fmt.Fprintf(&b, "- %s (%s)\n", skill.Name, skill.Level)
	}
	return b.String()
}

// JobContent serializes a job into the plain-text form the prompts embed.
func JobContent(job *models.Job) string {
	return fmt.Sprintf(`Title: %s
Company: %s
Description: %s
Requirements: %s
Skills: %s
Industry: %s
Experience Level: %s
Education Level: %s`,
		job.Title, job.Company, job.Description, job.Requirements,
		strings.Join(job.Skills, ", "), job.Industry, job.ExperienceLevel, job.EducationLevel)
}
