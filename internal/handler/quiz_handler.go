package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Murty133/trivia/internal/handler/dto"
	"github.com/Murty133/trivia/internal/service"
)

// QuizHandler обрабатывает розыгрыш вопросов викторины
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler создает новый обработчик викторины
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// PlayQuizRequest представляет запрос следующего вопроса раунда.
// quiz_category.id == 0 означает "все категории". previous_questions
// накапливается на клиенте и пересылается целиком каждый раунд.
type PlayQuizRequest struct {
	PreviousQuestions []uint `json:"previous_questions"`
	QuizCategory      struct {
		ID uint `json:"id"`
	} `json:"quiz_category"`
}

// PlayQuiz возвращает случайный еще не заданный вопрос
// POST /quizzes
func (h *QuizHandler) PlayQuiz(c *gin.Context) {
	var req PlayQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusUnprocessableEntity)
		return
	}

	question, err := h.quizService.NextQuestion(req.QuizCategory.ID, req.PreviousQuestions)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	// Пул исчерпан: успешный пустой исход, клиент завершает раунд
	if question == nil {
		c.JSON(http.StatusOK, gin.H{
			"success":  false,
			"question": nil,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"question": dto.NewQuestionResponse(question),
	})
}
