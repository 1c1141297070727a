package service

// QuestionsPerPage - размер страницы по умолчанию для списков вопросов
const QuestionsPerPage = 10

// Paginate возвращает страницу items с номером page (нумерация с 1).
// Диапазон полуоткрытый [start, end); выход за границы дает пустой срез,
// а не ошибку. Функция чистая, items не модифицируется.
func Paginate[T any](items []T, page, pageSize int) []T {
	if page < 1 || pageSize < 1 {
		return []T{}
	}

	start := (page - 1) * pageSize
	end := start + pageSize

	if start >= len(items) {
		return []T{}
	}
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}
