package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Murty133/trivia/internal/handler/dto"
	apperrors "github.com/Murty133/trivia/internal/pkg/errors"
)

// RespondError отправляет единый конверт ошибки для HTTP-статуса
func RespondError(c *gin.Context, status int) {
	c.JSON(status, dto.NewErrorResponse(status))
}

// handleServiceError переводит доменные ошибки сервисов в HTTP-ответы.
// Любая неожиданная ошибка логируется и отдается как 500 без деталей.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		RespondError(c, http.StatusNotFound)
	case errors.Is(err, apperrors.ErrValidation):
		RespondError(c, http.StatusUnprocessableEntity)
	case errors.Is(err, apperrors.ErrBadRequest):
		RespondError(c, http.StatusBadRequest)
	default:
		log.Printf("[Handler] Внутренняя ошибка: %v", err)
		RespondError(c, http.StatusInternalServerError)
	}
}
