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

	"clinicflow/config"
	"clinicflow/models"
	"clinicflow/services/scheduling"
)

// ScheduleHandler serves the scheduling engine over HTTP. Clients post a
// clinic snapshot once to open a session, then run slot, matrix, recurring
// and booking-rule queries against it until the session expires.
type ScheduleHandler struct {
	Engine scheduling.Engine
	Cache  *redis.Client
	Logger *zap.Logger
}

func NewScheduleHandler(engine scheduling.Engine, cache *redis.Client, logger *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{Engine: engine, Cache: cache, Logger: logger}
}

func sessionTTL() time.Duration {
	minutes := config.AppConfig.SessionTTLMinutes
	if minutes <= 0 {
		minutes = 30
	}
	return time.Duration(minutes) * time.Minute
}

// StartSession caches the posted snapshot and returns a session id for the
// follow-up queries.
func (h *ScheduleHandler) StartSession(c *gin.Context) {
	var input struct {
		Snapshot models.ScheduleSnapshot `json:"snapshot"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	sessionID := uuid.New().String()
	data, err := json.Marshal(input.Snapshot)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to marshal snapshot", "details": err.Error()})
		return
	}

	ctx := context.Background()
	ttl := sessionTTL()
	if err := h.Cache.Set(ctx, sessionID, data, ttl).Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cache snapshot session", "details": err.Error()})
		return
	}

	h.Logger.Debug("schedule session started",
		zap.String("sessionID", sessionID),
		zap.Int("rooms", len(input.Snapshot.Rooms)),
		zap.Int("therapists", len(input.Snapshot.Therapists)),
		zap.Int("bookings", len(input.Snapshot.Bookings)))

	c.JSON(http.StatusOK, gin.H{
		"sessionID":        sessionID,
		"expiresInMinutes": int(ttl.Minutes()),
	})
}

// RefreshSession replaces the snapshot of an existing session, resetting the
// TTL. Clients call this after committing bookings elsewhere so subsequent
// queries see the new state.
func (h *ScheduleHandler) RefreshSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		Snapshot models.ScheduleSnapshot `json:"snapshot"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	ctx := context.Background()
	if err := h.Cache.Get(ctx, sessionID).Err(); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "schedule session not found or expired"})
		return
	}

	data, err := json.Marshal(input.Snapshot)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to marshal snapshot", "details": err.Error()})
		return
	}
	if err := h.Cache.Set(ctx, sessionID, data, sessionTTL()).Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update snapshot session", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionID": sessionID})
}

// CancelSession drops the cached snapshot.
func (h *ScheduleHandler) CancelSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	h.Cache.Del(context.Background(), sessionID)
	c.JSON(http.StatusOK, gin.H{"sessionID": sessionID, "status": "cancelled"})
}

// loadSnapshot fetches and decodes the session snapshot, writing the error
// response itself when the session is missing or corrupt.
func (h *ScheduleHandler) loadSnapshot(c *gin.Context, sessionID string) (models.ScheduleSnapshot, bool) {
	var snap models.ScheduleSnapshot
	data, err := h.Cache.Get(context.Background(), sessionID).Result()
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "schedule session not found or expired"})
		return snap, false
	}
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to parse snapshot session", "details": err.Error()})
		return snap, false
	}
	return snap, true
}
