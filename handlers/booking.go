package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"fixora/middleware"
	"fixora/models"
	"fixora/services/booking"
)

// snapshotTTL bounds how long the assignment workflow has to pick up a
// validated request.
const snapshotTTL = 10 * time.Minute

// EligibilityHandler serves the booking-eligibility endpoints.
type EligibilityHandler struct {
	Service booking.EligibilityService
	Cache   *redis.Client
}

// NewEligibilityHandler creates a new eligibility handler.
func NewEligibilityHandler(svc booking.EligibilityService, cache *redis.Client) *EligibilityHandler {
	return &EligibilityHandler{Service: svc, Cache: cache}
}

// eligibilitySnapshot is the validated request payload cached for the
// downstream booking-assignment workflow.
type eligibilitySnapshot struct {
	RequestToken string                  `json:"requestToken"`
	CreatedAt    time.Time               `json:"createdAt"`
	Data         *models.EligibilityData `json:"data"`
}

// CheckEligibility runs full request validation and vendor eligibility
// resolution. A valid request is cached under a fresh token so the assignment
// workflow can consume it without re-validating.
func (h *EligibilityHandler) CheckEligibility(c *gin.Context) {
	logger := getLogger(c)

	var req models.BookingEligibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result := h.Service.ValidateBookingRequest(req)
	if !result.IsValid {
		middleware.EligibilityChecksTotal.WithLabelValues("rejected").Inc()
		c.JSON(http.StatusUnprocessableEntity, result)
		return
	}
	middleware.EligibilityChecksTotal.WithLabelValues("eligible").Inc()

	snapshot := eligibilitySnapshot{
		RequestToken: uuid.New().String(),
		CreatedAt:    time.Now(),
		Data:         result.Data,
	}
	payload, err := json.Marshal(snapshot)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to marshal eligibility snapshot", "details": err.Error()})
		return
	}
	ctx := context.Background()
	if err := h.Cache.Set(ctx, snapshotKey(snapshot.RequestToken), payload, snapshotTTL).Err(); err != nil {
		// The verdict is still useful without the snapshot.
		logger.Warn("failed to cache eligibility snapshot", zap.Error(err))
		c.JSON(http.StatusOK, result)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"isValid":      true,
		"errors":       result.Errors,
		"data":         result.Data,
		"requestToken": snapshot.RequestToken,
	})
}

// GetEligibilitySnapshot returns a previously cached snapshot.
func (h *EligibilityHandler) GetEligibilitySnapshot(c *gin.Context) {
	token := c.Param("token")
	ctx := context.Background()
	raw, err := h.Cache.Get(ctx, snapshotKey(token)).Result()
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "eligibility snapshot not found or expired"})
		return
	}

	var snapshot eligibilitySnapshot
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to parse eligibility snapshot", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

func snapshotKey(token string) string { return "eligibility:" + token }
