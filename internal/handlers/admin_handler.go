package handlers

import (
	"net/http"

	"github.com/dhruvkp2310/resume-pilot/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminHandler exposes platform-wide listings. Deleting a user leaves that
// user's resumes and applications in place.
type AdminHandler struct {
	DB *gorm.DB
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{DB: db}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	var users []models.User
	if err := h.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		serviceError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"msg": "User not found"})
		return
	}
	var user models.User
	if err := h.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "User not found"})
		return
	}
	if err := h.DB.Delete(&user).Error; err != nil {
		serviceError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "User removed"})
}

func (h *AdminHandler) ListResumes(c *gin.Context) {
	var resumes []models.Resume
	if err := h.DB.Order("created_at DESC").Find(&resumes).Error; err != nil {
		serviceError(c, err, "Resume not found")
		return
	}
	c.JSON(http.StatusOK, resumes)
}

func (h *AdminHandler) ListApplications(c *gin.Context) {
	var apps []models.Application
	if err := h.DB.Order("applied_date DESC").Find(&apps).Error; err != nil {
		serviceError(c, err, "Application not found")
		return
	}
	c.JSON(http.StatusOK, apps)
}

func (h *AdminHandler) ListJobs(c *gin.Context) {
	var jobs []models.Job
	if err := h.DB.Order("posted_date DESC").Find(&jobs).Error; err != nil {
		serviceError(c, err, "Job not found")
		return
	}
	c.JSON(http.StatusOK, jobs)
}
