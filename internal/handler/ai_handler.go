package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/studyplanner-backend/internal/model"
	"github.com/stemsi/studyplanner-backend/internal/response"
	"github.com/stemsi/studyplanner-backend/internal/service"
)

// AIHandler exposes the generation use cases.
type AIHandler struct {
	plannerService *service.PlannerService
	log            zerolog.Logger
}

func NewAIHandler(plannerService *service.PlannerService, log zerolog.Logger) *AIHandler {
	return &AIHandler{
		plannerService: plannerService,
		log:            log.With().Str("component", "ai_handler").Logger(),
	}
}

// GenerateCourseDescription godoc
// POST /GenerateCourseDescription
func (h *AIHandler) GenerateCourseDescription(c *gin.Context) {
	var req model.CourseDescriptionRequest
	if !bind(c, &req) {
		return
	}

	resp, err := h.plannerService.GenerateCourseDescription(c.Request.Context(), &req)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

// AnalyzeCourse godoc
// POST /AnalyzeCourse/:id
func (h *AIHandler) AnalyzeCourse(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	resp, err := h.plannerService.AnalyzeCourse(c.Request.Context(), id)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

// PoeticCourse godoc
// POST /PoeticCourse/:id
func (h *AIHandler) PoeticCourse(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	resp, err := h.plannerService.PoeticCourse(c.Request.Context(), id)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

// SuggestStudyPlan godoc
// POST /SuggestStudyPlan
func (h *AIHandler) SuggestStudyPlan(c *gin.Context) {
	var req model.StudyPlanRequest
	if !bind(c, &req) {
		return
	}

	resp, err := h.plannerService.SuggestStudyPlan(c.Request.Context(), &req)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

// GenerateTimePlanner godoc
// POST /GenerateTimePlanner
func (h *AIHandler) GenerateTimePlanner(c *gin.Context) {
	var req model.TimePlannerRequest
	if !bind(c, &req) {
		return
	}

	resp, err := h.plannerService.GenerateTimePlanner(c.Request.Context(), &req)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

// Chat godoc
// POST /Chat
func (h *AIHandler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if !bind(c, &req) {
		return
	}

	resp, err := h.plannerService.Chat(c.Request.Context(), &req)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

// Status godoc
// GET /Status
// Unlike the other endpoints a failure keeps the status-shaped body.
func (h *AIHandler) Status(c *gin.Context) {
	resp, err := h.plannerService.Status(c.Request.Context())
	if err != nil {
		info := h.plannerService.ProviderInfo()
		c.JSON(http.StatusInternalServerError, model.StatusErrorResponse{
			Status:  "Error",
			Message: "Failed to connect to " + info.Vendor,
			Error:   err.Error(),
		})
		return
	}
	response.Success(c, http.StatusOK, resp)
}
