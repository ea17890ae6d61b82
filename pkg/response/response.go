package response

// ErrorBody carries a machine-readable code and a human-readable message.
// Messages are deliberately terse: credential failures share one generic
// message and token failures never echo the submitted token.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the error envelope returned by every failing endpoint
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// MessageResponse is the body for operations that only acknowledge success
type MessageResponse struct {
	Message string `json:"message"`
}

// Error builds an error response with the given code and message
func Error(code, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorBody{Code: code, Message: message}}
}

// BadRequest builds a 400 error body
func BadRequest(message string) ErrorResponse {
	return Error("BAD_REQUEST", message)
}

// Unauthorized builds a 401 error body
func Unauthorized(message string) ErrorResponse {
	return Error("UNAUTHORIZED", message)
}

// Forbidden builds a 403 error body
func Forbidden(message string) ErrorResponse {
	return Error("FORBIDDEN", message)
}

// NotFound builds a 404 error body
func NotFound(message string) ErrorResponse {
	return Error("NOT_FOUND", message)
}

// Conflict builds a 409 error body
func Conflict(message string) ErrorResponse {
	return Error("CONFLICT", message)
}

// InternalError builds a 500 error body. Internal detail stays out of the
// response; it belongs in the server log.
func InternalError(message string) ErrorResponse {
	return Error("INTERNAL_ERROR", message)
}

// Message builds an acknowledgement body
func Message(message string) MessageResponse {
	return MessageResponse{Message: message}
}
