package handlers

import (
	"net/http"

	"github.com/dhruvkp2310/resume-pilot/internal/dtos"
	"github.com/dhruvkp2310/resume-pilot/internal/services"
	"github.com/gin-gonic/gin"
)

type AIHandler struct {
	AI *services.AIService
}

func NewAIHandler(ai *services.AIService) *AIHandler {
	return &AIHandler{AI: ai}
}

// OptimizeExperience handles POST /api/ai/optimize-experience.
func (h *AIHandler) OptimizeExperience(c *gin.Context) {
	var req dtos.OptimizeExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, "Invalid request body")
		return
	}
	if req.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Description is required"})
		return
	}

	optimized, err := h.AI.OptimizeExperience(c.Request.Context(), req.JobTitle, req.CompanyName, req.Description, req.JobIndustry)
	if err != nil {
		serviceError(c, err, "Not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"optimizedContent": optimized})
}

// SuggestSkills handles POST /api/ai/suggest-skills.
func (h *AIHandler) SuggestSkills(c *gin.Context) {
	var req dtos.SuggestSkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, "Invalid request body")
		return
	}
	if req.JobTitle == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Job title is required"})
		return
	}

	skills, err := h.AI.SuggestSkills(c.Request.Context(), req.JobTitle, req.ResumeContent, req.Industry)
	if err != nil {
		serviceError(c, err, "Not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestedSkills": skills})
}
