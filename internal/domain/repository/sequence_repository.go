package repository

import "context"

// SequenceRepository - атомарный счётчик для последовательных идентификаторов
type SequenceRepository interface {
	// Next атомарно увеличивает счётчик и возвращает новое значение (первое значение - 1)
	Next(ctx context.Context, name string) (int64, error)

	// Seed поднимает счётчик до floor, если он меньше; значение никогда не уменьшается
	Seed(ctx context.Context, name string, floor int64) error
}
