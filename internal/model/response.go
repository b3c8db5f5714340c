package model

// SuccessResponse is the standard success envelope.
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// NewSuccessResponse builds a success envelope
func NewSuccessResponse(message string, data interface{}) SuccessResponse {
	return SuccessResponse{Message: message, Data: data}
}

// NewErrorResponse builds an error envelope
func NewErrorResponse(message, detail string) ErrorResponse {
	return ErrorResponse{Error: message, Detail: detail}
}
