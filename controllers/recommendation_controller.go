package controllers

import (
	"errors"
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RecommendationController struct {
	Svc       *services.RecommendationService
	Users     *services.UserService
	Analytics *services.AnalyticsService
}

func NewRecommendationController(svc *services.RecommendationService, users *services.UserService, analytics *services.AnalyticsService) *RecommendationController {
	return &RecommendationController{Svc: svc, Users: users, Analytics: analytics}
}

// Get generates meal suggestions. This endpoint always answers 200 with
// a usable list: generation or parse failures degrade to the static
// fallback inside the service.
func (h *RecommendationController) Get(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	user, err := h.Users.FindByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Last 7 days of intake feeds the prompt; an empty window is fine.
	to := time.Now().UTC()
	from := to.AddDate(0, 0, -7)
	var current services.MacroTotals
	if summary, err := h.Analytics.Summary(c.Request.Context(), userID, from, to); err == nil {
		current = summary.Stats.PerDayAvg
	}

	items := h.Svc.GetRecommendations(c.Request.Context(), user, current)
	c.JSON(http.StatusOK, gin.H{"recommendations": items})
}

// CacheLast persists a suggestion list verbatim for later re-display.
func (h *RecommendationController) CacheLast(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input struct {
		GoalType string                        `json:"goal_type" binding:"required,oneof=weight_loss weight_gain maintain"`
		Items    []services.RecommendationItem `json:"items" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Svc.Cache(c.Request.Context(), userID, input.GoalType, input.Items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "recommendations cached"})
}

func (h *RecommendationController) GetCached(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	items, err := h.Svc.LastCached(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no cached recommendations"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": items})
}
