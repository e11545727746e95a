package domain

import (
	"context"
	"io"
)

// SourceOpener проверяет путь и открывает источник данных для чтения
type SourceOpener interface {
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

// StreamValidator выполняет потоковую проверку согласованности разделителей
type StreamValidator interface {
	Validate(ctx context.Context, r io.Reader, dialect Dialect) (Result, error)
}

// ReportWriter записывает отчет об ошибках в файл или стандартный вывод
type ReportWriter interface {
	Write(path string, result Result, format ReportFormat) error
}
