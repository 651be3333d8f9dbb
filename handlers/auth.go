package handlers

import (
	"net/http"
	"time"

	orgRepo "slotwise/database/repository/org"
	"slotwise/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler serves dashboard login.
type AuthHandler struct {
	Repo orgRepo.OrgRepository
}

func NewAuthHandler(repo orgRepo.OrgRepository) *AuthHandler {
	return &AuthHandler{Repo: repo}
}

const tokenLifetime = 24 * time.Hour

// Login handles POST /api/auth/login for org admins.
func (h *AuthHandler) Login(c *gin.Context) {
	logger := getLogger(c)

	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	admin, err := h.Repo.GetAdminByEmail(c.Request.Context(), input.Email)
	if err != nil {
		// Same response as a wrong password: no account enumeration.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(admin.ID, admin.OrgID, admin.Email, tokenLifetime)
	if err != nil {
		logger.Error("failed to sign token", zap.String("adminId", admin.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"orgId": admin.OrgID,
	})
}
