package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	traceID := c.GetString("trace_id")

	var validationErr *ValidationError
	var synthesisErr *SynthesisError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: validationErr.Error(),
			TraceID: traceID,
			Data:    gin.H{"field": validationErr.Field},
		})
	case errors.As(err, &synthesisErr):
		log.Printf("Synthesis error (%s): %s", synthesisErr.Kind, synthesisErr.Message)
		c.JSON(http.StatusInternalServerError, APIResponse{
			Status:  "error",
			Code:    http.StatusInternalServerError,
			Message: "Error processing AI response",
			TraceID: traceID,
			Data: gin.H{
				"kind":         synthesisErr.Kind,
				"details":      synthesisErr.Message,
				"raw_response": synthesisErr.RawOutput,
			},
		})
	case errors.Is(err, ErrTripTemplateNotFound):
		c.JSON(http.StatusNotFound, APIResponse{
			Status:  "error",
			Code:    http.StatusNotFound,
			Message: "Trip not found",
			TraceID: traceID,
		})
	case errors.Is(err, ErrInvalidStartDate):
		c.JSON(http.StatusBadRequest, APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: "Invalid start date format",
			TraceID: traceID,
		})
	case errors.Is(err, ErrStartDateInPast):
		c.JSON(http.StatusBadRequest, APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: "Start date cannot be in the past",
			TraceID: traceID,
		})
	case errors.Is(err, ErrQueryTooShort):
		c.JSON(http.StatusBadRequest, APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: "Query must be at least 2 characters long",
			TraceID: traceID,
		})
	case errors.Is(err, ErrAIServiceUnavailable):
		log.Printf("Generation service error: %v", err)
		c.JSON(http.StatusInternalServerError, APIResponse{
			Status:  "error",
			Code:    http.StatusInternalServerError,
			Message: "Failed to generate itinerary",
			TraceID: traceID,
		})
	case errors.Is(err, ErrPlacesServiceUnavailable):
		log.Printf("Places service error: %v", err)
		c.JSON(http.StatusInternalServerError, APIResponse{
			Status:  "error",
			Code:    http.StatusInternalServerError,
			Message: "Failed to search places",
			TraceID: traceID,
		})
	default:
		log.Printf("Unknown error: %v", err)
		c.JSON(http.StatusInternalServerError, APIResponse{
			Status:  "error",
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
			TraceID: traceID,
		})
	}
}
