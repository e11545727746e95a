package domain

import (
	"path/filepath"
	"strings"
)

// ReportFormat представляет формат отчета об ошибках
type ReportFormat string

const (
	FormatCSV  ReportFormat = "csv"
	FormatJSON ReportFormat = "json"
	FormatYAML ReportFormat = "yaml"
)

// DetectReportFormat определяет формат отчета по расширению пути.
// Пустой путь (stdout) и неизвестные расширения дают CSV.
func DetectReportFormat(path string) ReportFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatCSV // По умолчанию
	}
}
