package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/dhruvkp2310/resume-pilot/internal/dtos"
	"github.com/dhruvkp2310/resume-pilot/internal/middleware"
	"github.com/dhruvkp2310/resume-pilot/internal/services"
	"github.com/dhruvkp2310/resume-pilot/internal/token"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	Users     *services.UserService
	JWTSecret string
}

func NewAuthHandler(users *services.UserService, jwtSecret string) *AuthHandler {
	return &AuthHandler{Users: users, JWTSecret: jwtSecret}
}

// Register handles POST /api/users and POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, "Invalid request body")
		return
	}

	var msgs []string
	if req.Name == "" {
		msgs = append(msgs, "Name is required")
	}
	if !validEmail(req.Email) {
		msgs = append(msgs, "Please include a valid email")
	}
	if len(req.Password) < 6 {
		msgs = append(msgs, "Please enter a password with 6 or more characters")
	}
	if len(msgs) > 0 {
		validationFailed(c, msgs...)
		return
	}

	user, err := h.Users.Register(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrDuplicate) {
			validationFailed(c, "User already exists")
			return
		}
		serviceError(c, err, "User not found")
		return
	}

	h.issueToken(c, user.ID, user.Role, token.UserTTL)
}

// Login handles POST /api/auth. The same generic message covers a missing
// user and a wrong password.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, "Invalid request body")
		return
	}

	var msgs []string
	if !validEmail(req.Email) {
		msgs = append(msgs, "Please include a valid email")
	}
	if req.Password == "" {
		msgs = append(msgs, "Password is required")
	}
	if len(msgs) > 0 {
		validationFailed(c, msgs...)
		return
	}

	user, err := h.Users.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			validationFailed(c, "Invalid Credentials")
			return
		}
		serviceError(c, err, "User not found")
		return
	}

	h.issueToken(c, user.ID, user.Role, token.UserTTL)
}

// AdminLogin handles POST /api/admin/login with the shorter admin expiry.
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, "Invalid request body")
		return
	}

	var msgs []string
	if !validEmail(req.Email) {
		msgs = append(msgs, "Please include a valid email")
	}
	if req.Password == "" {
		msgs = append(msgs, "Password is required")
	}
	if len(msgs) > 0 {
		validationFailed(c, msgs...)
		return
	}

	user, err := h.Users.AuthenticateAdmin(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid credentials"})
			return
		}
		serviceError(c, err, "User not found")
		return
	}

	h.issueToken(c, user.ID, user.Role, token.AdminTTL)
}

// Me handles GET /api/auth: the stored profile minus the password hash.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.Users.Get(middleware.UserIDFromContext(c))
	if err != nil {
		serviceError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) issueToken(c *gin.Context, userID uint, role string, ttl time.Duration) {
	if h.JWTSecret == "" {
		log.Println("JWT_SECRET is not defined in environment variables")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server configuration error"})
		return
	}
	tok, err := token.Sign(h.JWTSecret, userID, role, ttl)
	if err != nil {
		log.Println("JWT sign error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Error generating token"})
		return
	}
	c.JSON(http.StatusOK, dtos.TokenResponse{Token: tok})
}
