package handler

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Version is reported by the index endpoint.
const Version = "1.0.0"

const serviceName = "Study Planner API"

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// SystemHandler answers liveness and health probes.
type SystemHandler struct {
	db        Pinger
	startTime time.Time
	log       zerolog.Logger
}

func NewSystemHandler(db Pinger, log zerolog.Logger) *SystemHandler {
	return &SystemHandler{
		db:        db,
		startTime: time.Now(),
		log:       log.With().Str("component", "system_handler").Logger(),
	}
}

type indexResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

type healthResponse struct {
	Status     string    `json:"status"`
	Service    string    `json:"service"`
	Uptime     int64     `json:"uptime"`
	Timestamp  time.Time `json:"timestamp"`
	Database   string    `json:"database"`
	GoVersion  string    `json:"goVersion"`
	Goroutines int       `json:"goroutines"`
}

// Index godoc
// GET /
func (h *SystemHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, indexResponse{
		Status:    "OK",
		Message:   serviceName + " is running",
		Timestamp: time.Now().UTC(),
		Version:   Version,
	})
}

// Health godoc
// GET /health
// Uptime is in seconds. A failed database ping turns the answer into 503.
func (h *SystemHandler) Health(c *gin.Context) {
	resp := healthResponse{
		Status:     "Healthy",
		Service:    serviceName,
		Uptime:     int64(time.Since(h.startTime).Seconds()),
		Timestamp:  time.Now().UTC(),
		Database:   "up",
		GoVersion:  runtime.Version(),
		Goroutines: runtime.NumGoroutine(),
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := h.db.Ping(ctx); err != nil {
		h.log.Warn().Err(err).Msg("database ping failed")
		resp.Status = "Unhealthy"
		resp.Database = "down"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}
