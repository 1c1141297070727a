package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Murty133/trivia/internal/domain/entity"
	apperrors "github.com/Murty133/trivia/internal/pkg/errors"
)

// scriptedIntn возвращает IntnFunc, выдающий значения из script по порядку.
// Позволяет детерминированно проверять rejection sampling.
func scriptedIntn(t *testing.T, script []int) IntnFunc {
	t.Helper()
	i := 0
	return func(n int) int {
		require.Less(t, i, len(script), "Источник случайности вызван чаще, чем ожидалось")
		v := script[i]
		i++
		require.Less(t, v, n, "Значение скрипта вне диапазона [0, n)")
		return v
	}
}

// ============================================================================
// Тесты для QuizService.NextQuestion
// ============================================================================

func TestQuizService_NextQuestion_AllCategories(t *testing.T) {
	// Arrange
	mockQuestionRepo := new(MockQuestionRepository)
	pool := makeQuestions(3, 1)
	mockQuestionRepo.On("GetAll").Return(pool, nil)

	quizService := NewQuizService(mockQuestionRepo, scriptedIntn(t, []int{1}))

	// Act
	question, err := quizService.NextQuestion(AllCategories, nil)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, question)
	assert.Equal(t, uint(2), question.ID)
	mockQuestionRepo.AssertNotCalled(t, "GetByCategory")
}

func TestQuizService_NextQuestion_CategoryScope(t *testing.T) {
	mockQuestionRepo := new(MockQuestionRepository)
	pool := makeQuestions(4, 1)
	mockQuestionRepo.On("GetByCategory", uint(1)).Return(pool, nil)

	quizService := NewQuizService(mockQuestionRepo, scriptedIntn(t, []int{0}))

	question, err := quizService.NextQuestion(1, []uint{})

	require.NoError(t, err)
	require.NotNil(t, question)
	assert.Equal(t, uint(1), question.Category, "Вопрос принадлежит запрошенной категории")
	mockQuestionRepo.AssertNotCalled(t, "GetAll")
}

// Rejection sampling: попадания в уже заданные вопросы перевыбираются,
// пока не найдется невиденный
func TestQuizService_NextQuestion_NeverRepeatsPrevious(t *testing.T) {
	mockQuestionRepo := new(MockQuestionRepository)
	pool := makeQuestions(5, 1)
	mockQuestionRepo.On("GetAll").Return(pool, nil)

	previous := []uint{1, 2, 4}

	// Индексы 0, 1, 3 указывают на заданные вопросы и отбрасываются
	quizService := NewQuizService(mockQuestionRepo, scriptedIntn(t, []int{0, 1, 3, 2}))

	question, err := quizService.NextQuestion(AllCategories, previous)

	require.NoError(t, err)
	require.NotNil(t, question)
	assert.Equal(t, uint(3), question.ID)
	assert.NotContains(t, previous, question.ID)
}

// Исчерпание пула - успешный пустой исход, не ошибка; выборка не начинается
func TestQuizService_NextQuestion_Exhausted(t *testing.T) {
	mockQuestionRepo := new(MockQuestionRepository)
	pool := makeQuestions(3, 1)
	mockQuestionRepo.On("GetAll").Return(pool, nil)

	// nil-скрипт: любой вызов источника провалит тест
	quizService := NewQuizService(mockQuestionRepo, scriptedIntn(t, nil))

	question, err := quizService.NextQuestion(AllCategories, []uint{1, 2, 3})

	require.NoError(t, err)
	assert.Nil(t, question)
}

func TestQuizService_NextQuestion_EmptyPool(t *testing.T) {
	mockQuestionRepo := new(MockQuestionRepository)
	mockQuestionRepo.On("GetByCategory", uint(9999)).Return([]entity.Question{}, nil)

	quizService := NewQuizService(mockQuestionRepo, scriptedIntn(t, nil))

	question, err := quizService.NextQuestion(9999, []uint{})

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Nil(t, question)
}

// Дефолтный источник (intn == nil) пригоден для боевого использования:
// свойство "никогда не повторяет заданное" должно выполняться и с ним
func TestQuizService_NextQuestion_DefaultSourceNeverRepeats(t *testing.T) {
	mockQuestionRepo := new(MockQuestionRepository)
	pool := makeQuestions(10, 1)
	mockQuestionRepo.On("GetAll").Return(pool, nil)

	quizService := NewQuizService(mockQuestionRepo, nil)

	previous := []uint{1, 2, 3, 4, 5, 6, 7, 8, 9}

	// Единственный невиденный вопрос - #10; повторяем розыгрыш многократно
	for i := 0; i < 50; i++ {
		question, err := quizService.NextQuestion(AllCategories, previous)
		require.NoError(t, err)
		require.NotNil(t, question)
		assert.Equal(t, uint(10), question.ID)
	}
}
