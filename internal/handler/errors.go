package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/studyplanner-backend/internal/llm"
	"github.com/stemsi/studyplanner-backend/internal/response"
	"github.com/stemsi/studyplanner-backend/internal/service"
	"github.com/stemsi/studyplanner-backend/internal/validator"
)

// fail maps a service or provider error onto the HTTP error contract.
func fail(c *gin.Context, log zerolog.Logger, err error) {
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		switch {
		case errors.Is(err, service.ErrValidation):
			response.FailWithMessage(c, http.StatusBadRequest, response.ErrValidation, svcErr.Message)
			return
		case errors.Is(err, service.ErrNotFound):
			response.FailWithMessage(c, http.StatusNotFound, response.ErrNotFound, svcErr.Message)
			return
		}
	}

	var provErr *llm.Error
	if errors.As(err, &provErr) {
		code := response.ErrProviderUnavailable
		if errors.Is(err, llm.ErrProviderRejected) {
			code = response.ErrProviderRejected
		}
		response.FailWithDetail(c, http.StatusInternalServerError, code, provErr.Message)
		return
	}

	log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
}

// bind decodes the JSON body into dst, answering 400 on failure.
func bind(c *gin.Context, dst interface{}) bool {
	if fields := validator.Bind(c, dst); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, validator.Summary(fields), fields)
		return false
	}
	return true
}

// pathID parses the :id route parameter, answering 400 when it is not an integer.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return 0, false
	}
	return id, true
}
