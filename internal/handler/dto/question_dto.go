package dto

import (
	"github.com/Murty133/trivia/internal/domain/entity"
)

// QuestionResponse представляет вопрос в формате для ответа клиенту
type QuestionResponse struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   uint   `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// NewQuestionResponse создает DTO для вопроса
func NewQuestionResponse(question *entity.Question) *QuestionResponse {
	return &QuestionResponse{
		ID:         question.ID,
		Question:   question.Question,
		Answer:     question.Answer,
		Category:   question.Category,
		Difficulty: question.Difficulty,
	}
}

// NewQuestionListResponse создает список DTO вопросов.
// Возвращает пустой слайс, а не nil, чтобы JSON содержал [], а не null.
func NewQuestionListResponse(questions []entity.Question) []QuestionResponse {
	response := make([]QuestionResponse, 0, len(questions))
	for i := range questions {
		response = append(response, *NewQuestionResponse(&questions[i]))
	}
	return response
}
