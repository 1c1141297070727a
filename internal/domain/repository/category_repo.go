package repository

import (
	"github.com/Murty133/trivia/internal/domain/entity"
)

// CategoryRepository определяет методы для чтения категорий
type CategoryRepository interface {
	// GetAll возвращает все категории, упорядоченные по ID
	GetAll() ([]entity.Category, error)
	// GetByID возвращает категорию по ID
	GetByID(id uint) (*entity.Category, error)
}
