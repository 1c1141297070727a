package dto

// Фиксированные сообщения для кодов ошибок. Клиент показывает их как есть,
// поэтому формулировки менять нельзя.
var statusMessages = map[int]string{
	400: "bad request",
	404: "resource not found",
	405: "method not allowed",
	422: "unprocessable",
	500: "internal server error",
}

// ErrorResponse - единый конверт ошибки для всех эндпоинтов
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// NewErrorResponse создает конверт ошибки для HTTP-статуса
func NewErrorResponse(status int) *ErrorResponse {
	message, ok := statusMessages[status]
	if !ok {
		message = statusMessages[500]
	}
	return &ErrorResponse{
		Success: false,
		Error:   status,
		Message: message,
	}
}
