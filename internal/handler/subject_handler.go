package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/studyplanner-backend/internal/model"
	"github.com/stemsi/studyplanner-backend/internal/response"
	"github.com/stemsi/studyplanner-backend/internal/service"
)

type SubjectHandler struct {
	subjectService *service.SubjectService
	log            zerolog.Logger
}

func NewSubjectHandler(subjectService *service.SubjectService, log zerolog.Logger) *SubjectHandler {
	return &SubjectHandler{
		subjectService: subjectService,
		log:            log.With().Str("component", "subject_handler").Logger(),
	}
}

// GetAll godoc
// GET /api/subjects
func (h *SubjectHandler) GetAll(c *gin.Context) {
	subjects, err := h.subjectService.GetAll(c.Request.Context())
	if err != nil {
		fail(c, h.log, err)
		return
	}

	if subjects == nil {
		subjects = []model.Subject{}
	}

	response.Success(c, http.StatusOK, subjects)
}

// Get godoc
// GET /api/subjects/:id
func (h *SubjectHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	sub, err := h.subjectService.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, sub)
}

// Create godoc
// POST /api/subjects
func (h *SubjectHandler) Create(c *gin.Context) {
	var req model.SubjectRequest
	if !bind(c, &req) {
		return
	}

	sub := subjectFromRequest(0, &req)
	if err := h.subjectService.Create(c.Request.Context(), sub); err != nil {
		fail(c, h.log, err)
		return
	}
	response.Success(c, http.StatusCreated, sub)
}

// Update godoc
// PUT /api/subjects/:id
func (h *SubjectHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req model.SubjectRequest
	if !bind(c, &req) {
		return
	}

	if err := h.subjectService.Update(c.Request.Context(), subjectFromRequest(id, &req)); err != nil {
		fail(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete godoc
// DELETE /api/subjects/:id
func (h *SubjectHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.subjectService.Delete(c.Request.Context(), id); err != nil {
		fail(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func subjectFromRequest(id int, req *model.SubjectRequest) *model.Subject {
	sub := &model.Subject{ID: id, Name: req.Name, Description: req.Description}
	if req.AverageTimeInMinutes != nil {
		sub.AverageTimeInMinutes = *req.AverageTimeInMinutes
	}
	return sub
}
