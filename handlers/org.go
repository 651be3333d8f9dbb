package handlers

import (
	"net/http"
	"time"

	orgRepo "slotwise/database/repository/org"
	"slotwise/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// OrgHandler serves org signup and dashboard provisioning.
type OrgHandler struct {
	Repo orgRepo.OrgRepository
}

func NewOrgHandler(repo orgRepo.OrgRepository) *OrgHandler {
	return &OrgHandler{Repo: repo}
}

// Signup handles POST /api/auth/signup: creates an organisation together
// with its first dashboard admin.
func (h *OrgHandler) Signup(c *gin.Context) {
	logger := getLogger(c)

	var input struct {
		OrgName  string `json:"orgName" binding:"required"`
		Timezone string `json:"timezone" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	// The timezone is resolved on every slot query, so a bad one must
	// never reach the database.
	if _, err := time.LoadLocation(input.Timezone); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown timezone", "details": input.Timezone})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("failed to hash password", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create account"})
		return
	}

	org := &models.Organisation{
		ID:        uuid.NewString(),
		Name:      input.OrgName,
		Timezone:  input.Timezone,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.Repo.CreateOrganisation(c.Request.Context(), org); err != nil {
		logger.Error("failed to create organisation", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create organisation"})
		return
	}

	admin := &models.OrgAdmin{
		ID:           uuid.NewString(),
		OrgID:        org.ID,
		Email:        input.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := h.Repo.CreateAdmin(c.Request.Context(), admin); err != nil {
		logger.Error("failed to create admin", zap.String("orgId", org.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create admin"})
		return
	}

	logger.Info("organisation created", zap.String("orgId", org.ID))
	c.JSON(http.StatusCreated, gin.H{"orgId": org.ID})
}

// CreateProvider handles POST /api/dashboard/providers.
func (h *OrgHandler) CreateProvider(c *gin.Context) {
	logger := getLogger(c)
	orgID := c.GetString("orgID")

	var input struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	p := &models.Provider{
		ID:    uuid.NewString(),
		OrgID: orgID,
		Name:  input.Name,
		Email: input.Email,
	}
	if err := h.Repo.CreateProvider(c.Request.Context(), p); err != nil {
		logger.Error("failed to create provider", zap.String("orgId", orgID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create provider"})
		return
	}
	c.JSON(http.StatusCreated, p)
}

// CreateBookingType handles POST /api/dashboard/booking-types.
func (h *OrgHandler) CreateBookingType(c *gin.Context) {
	logger := getLogger(c)
	orgID := c.GetString("orgID")

	var input struct {
		ProviderID     string  `json:"providerId" binding:"required"`
		Name           string  `json:"name" binding:"required"`
		DurationMins   int     `json:"durationMins" binding:"required,min=1"`
		BufferMins     int     `json:"bufferMins" binding:"min=0"`
		MinNoticeMins  int     `json:"minNoticeMins" binding:"min=0"`
		Price          float64 `json:"price" binding:"min=0"`
		Currency       string  `json:"currency"`
		InvoiceEnabled bool    `json:"invoiceEnabled"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if _, err := h.Repo.GetProvider(c.Request.Context(), orgID, input.ProviderID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "provider not found"})
		return
	}

	bt := &models.BookingType{
		ID:             uuid.NewString(),
		OrgID:          orgID,
		ProviderID:     input.ProviderID,
		Name:           input.Name,
		DurationMins:   input.DurationMins,
		BufferMins:     input.BufferMins,
		MinNoticeMins:  input.MinNoticeMins,
		Price:          input.Price,
		Currency:       input.Currency,
		InvoiceEnabled: input.InvoiceEnabled,
	}
	if err := h.Repo.CreateBookingType(c.Request.Context(), bt); err != nil {
		logger.Error("failed to create booking type", zap.String("orgId", orgID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking type"})
		return
	}
	c.JSON(http.StatusCreated, bt)
}

// ListBookingTypes handles GET /api/dashboard/booking-types.
func (h *OrgHandler) ListBookingTypes(c *gin.Context) {
	orgID := c.GetString("orgID")
	types, err := h.Repo.ListBookingTypes(c.Request.Context(), orgID)
	if err != nil {
		getLogger(c).Error("failed to list booking types", zap.String("orgId", orgID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list booking types"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookingTypes": types})
}
