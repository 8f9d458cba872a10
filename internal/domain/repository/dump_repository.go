package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// DumpRepository читает коллекции целиком для выгрузки в файл
type DumpRepository interface {
	// ReadCollection возвращает общее число документов и не более limit документов
	ReadCollection(ctx context.Context, collection string, limit int64) (int64, []bson.M, error)
}
