package dto

import "time"

type SuccessResponse struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data"`
	Timestamp string      `json:"timestamp"`
}

type ErrorResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
	Timestamp  string `json:"timestamp"`
}

func NewSuccess(message string, data interface{}) SuccessResponse {
	return SuccessResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: now(),
	}
}

func NewError(status int, message string) ErrorResponse {
	return ErrorResponse{
		Success:    false,
		Message:    message,
		StatusCode: status,
		Timestamp:  now(),
	}
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
