package main

import (
	"github.com/Avee121/xsv/internal/infrastructure"
	"github.com/Avee121/xsv/internal/usecase"
)

// newValidator создает новый экземпляр ValidateUseCase с зависимостями
func newValidator() *usecase.ValidateUseCase {
	fileSource := infrastructure.NewFileSource()
	scanner := infrastructure.NewScanner()
	reportWriter := infrastructure.NewReportWriter()

	return usecase.NewValidateUseCase(
		fileSource,
		scanner,
		reportWriter,
	)
}
