package repository

import "context"

// FileStorage - хранилище загруженных файлов
type FileStorage interface {
	// Save записывает файл под именем name; существующий файл перезаписывается
	Save(ctx context.Context, name string, data []byte) error
}
