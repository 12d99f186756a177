package rest

// ResponseError represent the response error struct
type ResponseError struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func responseError(message string) ResponseError {
	return ResponseError{Success: false, Message: message}
}
