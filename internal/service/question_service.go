package service

import (
	"errors"
	"log"

	"github.com/Murty133/trivia/internal/domain/entity"
	"github.com/Murty133/trivia/internal/domain/repository"
	apperrors "github.com/Murty133/trivia/internal/pkg/errors"
)

// QuestionService предоставляет операции чтения и изменения вопросов
type QuestionService struct {
	questionRepo repository.QuestionRepository
	categoryRepo repository.CategoryRepository
}

// NewQuestionService создает новый сервис вопросов
func NewQuestionService(questionRepo repository.QuestionRepository, categoryRepo repository.CategoryRepository) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
	}
}

// ListQuestions возвращает страницу вопросов, общее количество и отображение категорий.
// Пустое хранилище категорий и пустая запрошенная страница дают один и тот же
// исход ErrNotFound: клиентский код исторически различает только "есть данные /
// нет данных" для этого списка.
func (s *QuestionService) ListQuestions(page int) ([]entity.Question, int64, map[uint]string, error) {
	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, 0, nil, err
	}

	formattedCategories := make(map[uint]string, len(categories))
	for _, category := range categories {
		formattedCategories[category.ID] = category.Type
	}

	questions, err := s.questionRepo.GetAll()
	if err != nil {
		return nil, 0, nil, err
	}

	currentQuestions := Paginate(questions, page, QuestionsPerPage)
	if len(formattedCategories) == 0 || len(currentQuestions) == 0 {
		return nil, 0, nil, apperrors.ErrNotFound
	}

	return currentQuestions, int64(len(questions)), formattedCategories, nil
}

// SearchQuestions возвращает вопросы, содержащие подстроку term без учета регистра.
// Ноль совпадений дает ErrNotFound. Пустой term соответствует всем вопросам.
func (s *QuestionService) SearchQuestions(term string) ([]entity.Question, int64, error) {
	questions, err := s.questionRepo.Search(term)
	if err != nil {
		return nil, 0, err
	}
	if len(questions) == 0 {
		return nil, 0, apperrors.ErrNotFound
	}
	return questions, int64(len(questions)), nil
}

// QuestionsByCategory возвращает вопросы категории и её название.
// Ноль совпадений дает ErrNotFound; существование категории отдельно не
// проверяется, поэтому несуществующая категория неотличима от существующей
// без вопросов. Если совпадения есть, категория существует по предусловию
// внешнего ключа.
func (s *QuestionService) QuestionsByCategory(categoryID uint) ([]entity.Question, int64, string, error) {
	questions, err := s.questionRepo.GetByCategory(categoryID)
	if err != nil {
		return nil, 0, "", err
	}
	if len(questions) == 0 {
		return nil, 0, "", apperrors.ErrNotFound
	}

	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		return nil, 0, "", err
	}

	return questions, int64(len(questions)), category.Type, nil
}

// CreateQuestion создает вопрос и возвращает его вместе с обновленной первой
// страницей списка и общим количеством. Любая ошибка хранилища при вставке
// маппится в ErrValidation без детализации по полям.
func (s *QuestionService) CreateQuestion(question *entity.Question) ([]entity.Question, int64, error) {
	if err := s.questionRepo.Create(question); err != nil {
		log.Printf("[QuestionService] Ошибка при создании вопроса: %v", err)
		return nil, 0, apperrors.ErrValidation
	}

	return s.refreshedPage()
}

// DeleteQuestion удаляет вопрос по ID и возвращает обновленную первую страницу
// и общее количество. Неизвестный ID дает ErrNotFound, прочие ошибки
// хранилища - ErrValidation.
func (s *QuestionService) DeleteQuestion(id uint) ([]entity.Question, int64, error) {
	if err := s.questionRepo.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, 0, apperrors.ErrNotFound
		}
		log.Printf("[QuestionService] Ошибка при удалении вопроса #%d: %v", id, err)
		return nil, 0, apperrors.ErrValidation
	}

	return s.refreshedPage()
}

// refreshedPage пересчитывает первую страницу списка после мутации.
// Позиция клиента на его исходной странице не сохраняется.
func (s *QuestionService) refreshedPage() ([]entity.Question, int64, error) {
	questions, err := s.questionRepo.GetAll()
	if err != nil {
		return nil, 0, err
	}
	return Paginate(questions, 1, QuestionsPerPage), int64(len(questions)), nil
}
