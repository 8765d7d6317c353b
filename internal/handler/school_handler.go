package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/studyplanner-backend/internal/model"
	"github.com/stemsi/studyplanner-backend/internal/response"
	"github.com/stemsi/studyplanner-backend/internal/service"
)

type SchoolHandler struct {
	schoolService *service.SchoolService
	log           zerolog.Logger
}

func NewSchoolHandler(schoolService *service.SchoolService, log zerolog.Logger) *SchoolHandler {
	return &SchoolHandler{
		schoolService: schoolService,
		log:           log.With().Str("component", "school_handler").Logger(),
	}
}

// List godoc
// GET /api/schools
func (h *SchoolHandler) List(c *gin.Context) {
	schools, err := h.schoolService.List(c.Request.Context())
	if err != nil {
		fail(c, h.log, err)
		return
	}
	if schools == nil {
		schools = []model.School{}
	}
	response.Success(c, http.StatusOK, schools)
}

// Get godoc
// GET /api/schools/:id
func (h *SchoolHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	school, err := h.schoolService.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, school)
}

// Create godoc
// POST /api/schools
func (h *SchoolHandler) Create(c *gin.Context) {
	var req model.SchoolRequest
	if !bind(c, &req) {
		return
	}
	school := &model.School{Name: req.Name, Address: req.Address}
	if err := h.schoolService.Create(c.Request.Context(), school); err != nil {
		fail(c, h.log, err)
		return
	}
	response.Success(c, http.StatusCreated, school)
}

// Update godoc
// PUT /api/schools/:id
func (h *SchoolHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req model.SchoolRequest
	if !bind(c, &req) {
		return
	}
	if err := h.schoolService.Update(c.Request.Context(), &model.School{ID: id, Name: req.Name, Address: req.Address}); err != nil {
		fail(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete godoc
// DELETE /api/schools/:id
func (h *SchoolHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.schoolService.Delete(c.Request.Context(), id); err != nil {
		fail(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
