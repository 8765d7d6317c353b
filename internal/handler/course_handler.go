package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/studyplanner-backend/internal/model"
	"github.com/stemsi/studyplanner-backend/internal/response"
	"github.com/stemsi/studyplanner-backend/internal/service"
)

// CourseHandler serves the course catalog.
type CourseHandler struct {
	courseService *service.CourseService
	log           zerolog.Logger
}

func NewCourseHandler(courseService *service.CourseService, log zerolog.Logger) *CourseHandler {
	return &CourseHandler{
		courseService: courseService,
		log:           log.With().Str("component", "course_handler").Logger(),
	}
}

// List godoc
// GET /api/courses
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.courseService.List(c.Request.Context())
	if err != nil {
		fail(c, h.log, err)
		return
	}
	if courses == nil {
		courses = []model.Course{}
	}
	response.Success(c, http.StatusOK, courses)
}

// Get godoc
// GET /api/courses/:id
func (h *CourseHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	course, err := h.courseService.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, course)
}

// Create godoc
// POST /api/courses
func (h *CourseHandler) Create(c *gin.Context) {
	var req model.CourseRequest
	if !bind(c, &req) {
		return
	}

	course := courseFromRequest(0, &req)
	if err := h.courseService.Create(c.Request.Context(), course); err != nil {
		fail(c, h.log, err)
		return
	}
	response.Success(c, http.StatusCreated, course)
}

// Update godoc
// PUT /api/courses/:id
func (h *CourseHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req model.CourseRequest
	if !bind(c, &req) {
		return
	}

	if err := h.courseService.Update(c.Request.Context(), courseFromRequest(id, &req)); err != nil {
		fail(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete godoc
// DELETE /api/courses/:id
func (h *CourseHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.courseService.Delete(c.Request.Context(), id); err != nil {
		fail(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func courseFromRequest(id int, req *model.CourseRequest) *model.Course {
	return &model.Course{
		ID:          id,
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		Semester:    req.Semester,
		CreditHours: req.CreditHours,
	}
}
