package repository

import (
	"github.com/Murty133/trivia/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами
type QuestionRepository interface {
	// GetAll возвращает все вопросы, упорядоченные по ID
	GetAll() ([]entity.Question, error)
	// GetByID возвращает вопрос по ID
	GetByID(id uint) (*entity.Question, error)
	// GetByCategory возвращает вопросы категории, упорядоченные по ID
	GetByCategory(categoryID uint) ([]entity.Question, error)
	// Search возвращает вопросы, текст которых содержит подстроку term
	// без учета регистра. Пустой term соответствует всем вопросам.
	Search(term string) ([]entity.Question, error)
	Create(question *entity.Question) error
	Delete(id uint) error
}
