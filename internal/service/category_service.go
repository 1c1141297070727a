package service

import (
	"github.com/Murty133/trivia/internal/domain/repository"
)

// CategoryService предоставляет операции чтения категорий
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService создает новый сервис категорий
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// ListCategories возвращает отображение id -> название категории.
// Пустое хранилище дает пустое отображение, не ошибку.
func (s *CategoryService) ListCategories() (map[uint]string, error) {
	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, err
	}

	formatted := make(map[uint]string, len(categories))
	for _, category := range categories {
		formatted[category.ID] = category.Type
	}
	return formatted, nil
}
