package utils

import (
	"errors"
	"github.com/gin-gonic/gin"
	"log"
	"net/http"
)

// APIResponse is the wire envelope. Error responses carry
// {status:false, error:<message>} as required by the gateway-facing clients.
type APIResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  true,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

// RespondNotCompleted reports a gateway non-success outcome. It is not an
// error: the payment simply has not gone through (yet).
func RespondNotCompleted(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  false,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  false,
		Error:   message,
		TraceID: c.GetString("trace_id"),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrPlanNotFound):
		RespondError(c, http.StatusNotFound, "Plan document does not exist")
	case errors.Is(err, ErrUserNotFound):
		RespondError(c, http.StatusNotFound, "User document does not exist")
	case errors.Is(err, ErrPaymentNotFound):
		RespondError(c, http.StatusNotFound, "Payment document does not exist")
	case errors.Is(err, ErrGatewayFailure):
		log.Printf("Gateway error: %v", err)
		RespondError(c, http.StatusInternalServerError, "An error occurred while processing the request")
	case errors.Is(err, ErrStoreWrite), errors.Is(err, ErrDatabaseError):
		log.Printf("Store error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
