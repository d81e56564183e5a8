package dto

// ResponseDTO is the envelope every successful call is wrapped in.
type ResponseDTO struct {
	StatusCode int    `json:"statusCode" example:"200"`
	Data       any    `json:"data"`
	Message    string `json:"message" example:"Fetched blog successfully"`
	Success    bool   `json:"success" example:"true"`
}

// ErrorResponseDTO is the envelope for failed calls.
type ErrorResponseDTO struct {
	StatusCode int      `json:"statusCode" example:"404"`
	Message    string   `json:"message" example:"Blog not found"`
	Success    bool     `json:"success" example:"false"`
	Errors     []string `json:"errors"`
}

// NewResponse builds a success envelope. success is derived from the code
// the same way for every route.
func NewResponse(statusCode int, data any, message string) ResponseDTO {
	return ResponseDTO{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    statusCode < 400,
	}
}

// NewErrorResponse builds a failure envelope. errors is never null on the wire.
func NewErrorResponse(statusCode int, message string, errors []string) ErrorResponseDTO {
	if errors == nil {
		errors = []string{}
	}
	return ErrorResponseDTO{
		StatusCode: statusCode,
		Message:    message,
		Success:    false,
		Errors:     errors,
	}
}
