package infrastructure

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Avee121/xsv/internal/domain"
	"gopkg.in/yaml.v3"
)

// ReportWriter реализует запись отчета об ошибках
type ReportWriter struct {
	stdout io.Writer
}

// NewReportWriter создает новый ReportWriter
func NewReportWriter() domain.ReportWriter {
	return &ReportWriter{stdout: os.Stdout}
}

// Write сериализует отчет в выбранном формате и записывает его
// в файл по указанному пути. Пустой путь означает стандартный вывод.
func (rw *ReportWriter) Write(path string, result domain.Result, format domain.ReportFormat) error {
	data, err := rw.render(result, format)
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if path == "" {
		if _, err := rw.stdout.Write(data); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		return nil
	}

	outputDir := filepath.Dir(path)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}

	return nil
}

// render сериализует отчет в зависимости от формата
func (rw *ReportWriter) render(result domain.Result, format domain.ReportFormat) ([]byte, error) {
	switch format {
	case domain.FormatCSV:
		return []byte(renderCSV(result)), nil
	case domain.FormatJSON:
		return json.MarshalIndent(result.Errors, "", "  ")
	case domain.FormatYAML:
		return yaml.Marshal(result.Errors)
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
}

// renderCSV форматирует отчет по контракту вывода:
// строка заголовка, затем по одной записи на каждую ошибку
func renderCSV(result domain.Result) string {
	var b strings.Builder
	b.WriteString(domain.ReportHeader)
	b.WriteByte('\n')
	for _, e := range result.Errors {
		b.WriteString(e.Record())
		b.WriteByte('\n')
	}
	return b.String()
}
