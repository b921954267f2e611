package dto

import "time"

// ErrorResponse is the JSON envelope returned for every failed request.
type ErrorResponse struct {
	Message      string    `json:"message" example:"collection not found"`
	ErrorDetails string    `json:"error_details,omitempty" example:"unknown collection \"foo\""`
	Timestamp    time.Time `json:"timestamp" example:"2025-01-01T12:00:00Z"`
}

func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse stamped with the current time.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{Message: message, Timestamp: time.Now().UTC()}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
