package usecase

import (
	"context"
	"fmt"

	"github.com/Avee121/xsv/internal/domain"
)

// Config содержит настройки одного запуска проверки
type Config struct {
	Dialect domain.Dialect
	// Report включает запись отчета при невалидном файле
	Report bool
	// Output - путь файла отчета; пустое значение означает стандартный вывод
	Output string
	// Format - формат отчета; пустое значение определяется по Output
	Format domain.ReportFormat
}

// ValidateUseCase реализует бизнес-логику проверки структуры файла
type ValidateUseCase struct {
	source    domain.SourceOpener
	validator domain.StreamValidator
	reporter  domain.ReportWriter
}

// NewValidateUseCase создает новый экземпляр ValidateUseCase
func NewValidateUseCase(
	source domain.SourceOpener,
	validator domain.StreamValidator,
	reporter domain.ReportWriter,
) *ValidateUseCase {
	return &ValidateUseCase{
		source:    source,
		validator: validator,
		reporter:  reporter,
	}
}

// Execute выполняет проверку файла. Ошибки подготовки и ввода-вывода
// возвращаются как error; структурные несоответствия накапливаются
// в Result и при включенном Report записываются отчетом.
func (uc *ValidateUseCase) Execute(ctx context.Context, inputPath string, config Config) (domain.Result, error) {
	// Проверяем контекст
	if ctx.Err() != nil {
		return domain.Result{}, ctx.Err()
	}

	// Открываем источник: проверка пути выполняется до первого чтения
	stream, err := uc.source.Open(ctx, inputPath)
	if err != nil {
		return domain.Result{}, err
	}
	defer stream.Close()

	result, err := uc.validator.Validate(ctx, stream, config.Dialect)
	if err != nil {
		return domain.Result{}, fmt.Errorf("failed to validate %s: %w", inputPath, err)
	}

	if config.Report && !result.Valid() {
		format := config.Format
		if format == "" {
			format = domain.DetectReportFormat(config.Output)
		}
		if err := uc.reporter.Write(config.Output, result, format); err != nil {
			return result, fmt.Errorf("failed to write report: %w", err)
		}
	}

	return result, nil
}
