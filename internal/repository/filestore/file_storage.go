package filestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/incident-intake/internal/domain/repository"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// FileStorage - файлы на afero.Fs; в сервисе это каталог UPLOAD_DIR, в тестах MemMapFs
type FileStorage struct {
	fs     afero.Fs
	logger *zap.Logger
}

var _ repository.FileStorage = (*FileStorage)(nil)

// NewFileStorage - создание хранилища поверх произвольной файловой системы
func NewFileStorage(fs afero.Fs, logger *zap.Logger) *FileStorage {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileStorage{fs: fs, logger: logger}
}

// NewDirStorage - хранилище в каталоге dir, каталог создаётся при необходимости
func NewDirStorage(dir string, logger *zap.Logger) (*FileStorage, error) {
	osFs := afero.NewOsFs()
	if err := osFs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %s: %w", dir, err)
	}
	return NewFileStorage(afero.NewBasePathFs(osFs, dir), logger), nil
}

func (s *FileStorage) Save(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// Имя генерирует сервис, но каталоги из него всё равно не принимаем
	if name == "" || filepath.Base(name) != name {
		return fmt.Errorf("invalid file name %q", name)
	}

	if err := afero.WriteFile(s.fs, name, data, os.FileMode(0o644)); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}

	s.logger.Debug("File saved",
		zap.String("name", name),
		zap.Int("size", len(data)),
	)
	return nil
}
