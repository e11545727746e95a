package infrastructure

import (
	"fmt"
	"os"

	"github.com/Avee121/xsv/internal/domain"
	"gopkg.in/yaml.v3"
)

// Defaults описывает YAML-файл с настройками по умолчанию.
// Все поля необязательны; явные флаги командной строки имеют приоритет.
type Defaults struct {
	Delimiter string `yaml:"delimiter"`
	Quote     string `yaml:"quote"`
	NoQuoting bool   `yaml:"no_quoting"`
	Output    string `yaml:"output"`
	Format    string `yaml:"format"`
}

// LoadDefaults читает и проверяет файл настроек
func LoadDefaults(path string) (Defaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Defaults{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var d Defaults
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Defaults{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Разделитель и кавычка - ровно один символ
	if d.Delimiter != "" && len(d.Delimiter) != 1 {
		return Defaults{}, fmt.Errorf("config: delimiter must be a single character, got %q", d.Delimiter)
	}
	if d.Quote != "" && len(d.Quote) != 1 {
		return Defaults{}, fmt.Errorf("config: quote must be a single character, got %q", d.Quote)
	}

	switch domain.ReportFormat(d.Format) {
	case "", domain.FormatCSV, domain.FormatJSON, domain.FormatYAML:
	default:
		return Defaults{}, fmt.Errorf("config: unknown report format %q", d.Format)
	}

	return d, nil
}
