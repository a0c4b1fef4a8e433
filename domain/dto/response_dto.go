package dto

import "net/http"

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ErrorResponse is the error envelope used by the extension facing API.
type ErrorResponse struct {
	Message interface{} `json:"message"`
	Code    int         `json:"code"`
	Status  string      `json:"status"`
}

// StatusResponse acknowledges a write.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func NewErrorResponse(code int, message interface{}) ErrorResponse {
	if message == nil {
		message = http.StatusText(code)
	}
	return ErrorResponse{Message: message, Code: code, Status: StatusError}
}
