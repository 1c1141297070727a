package service

import (
	"math/rand"

	"github.com/Murty133/trivia/internal/domain/entity"
	"github.com/Murty133/trivia/internal/domain/repository"
	apperrors "github.com/Murty133/trivia/internal/pkg/errors"
)

// AllCategories - сентинельное значение области "все категории"
const AllCategories uint = 0

// IntnFunc возвращает равномерно распределенное число в [0, n).
// Источник инжектируется, чтобы выбор был детерминированно тестируемым.
type IntnFunc func(n int) int

// QuizService выбирает следующий вопрос раунда викторины
type QuizService struct {
	questionRepo repository.QuestionRepository
	intn         IntnFunc
}

// NewQuizService создает новый сервис викторины.
// Если intn == nil, используется math/rand.Intn: глобальный источник
// потокобезопасен, состояние между конкурентными запросами не разделяется
// детерминированно.
func NewQuizService(questionRepo repository.QuestionRepository, intn IntnFunc) *QuizService {
	if intn == nil {
		intn = rand.Intn
	}
	return &QuizService{
		questionRepo: questionRepo,
		intn:         intn,
	}
}

// NextQuestion возвращает случайный вопрос пула, не входящий в previousIDs.
//
// Пул - все вопросы при categoryID == AllCategories, иначе вопросы категории.
// Пустой пул дает ErrNotFound. Если previousIDs покрывает весь пул, раунд
// исчерпан: возвращается (nil, nil), это успешный пустой исход, не ошибка.
//
// Выбор - rejection sampling по индексам пула: повторная выборка дешевле
// предварительной фильтрации на типичных размерах пула, а проверка
// исчерпания гарантирует хотя бы один невиденный вопрос перед началом
// выборки. previousIDs поставляется клиентом из предыдущих розыгрышей
// того же пула.
func (s *QuizService) NextQuestion(categoryID uint, previousIDs []uint) (*entity.Question, error) {
	var (
		pool []entity.Question
		err  error
	)

	if categoryID == AllCategories {
		pool, err = s.questionRepo.GetAll()
	} else {
		pool, err = s.questionRepo.GetByCategory(categoryID)
	}
	if err != nil {
		return nil, err
	}

	if len(pool) == 0 {
		return nil, apperrors.ErrNotFound
	}

	if len(previousIDs) == len(pool) {
		return nil, nil
	}

	seen := make(map[uint]struct{}, len(previousIDs))
	for _, id := range previousIDs {
		seen[id] = struct{}{}
	}

	for {
		candidate := &pool[s.intn(len(pool))]
		if _, asked := seen[candidate.ID]; !asked {
			return candidate, nil
		}
	}
}
