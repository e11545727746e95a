package infrastructure

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Avee121/xsv/internal/domain"
)

// FileSource реализует доступ к локальным файлам
type FileSource struct{}

// NewFileSource создает новый FileSource
func NewFileSource() domain.SourceOpener {
	return &FileSource{}
}

// Open проверяет путь и открывает файл для чтения.
// Несуществующий путь и путь, не являющийся обычным файлом,
// дают типизированные ошибки подготовки до первого чтения.
func (fs *FileSource) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	// Проверяем контекст
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &domain.ErrPathNotFound{Path: path}
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil, &domain.ErrNotAFile{Path: path}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return f, nil
}
