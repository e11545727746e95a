package domain

import "fmt"

// ReportHeader - заголовок CSV-отчета об ошибках
const ReportHeader = "Line_Number,Expected_Delimiters,Actual_Delimiters,Data"

// Dialect описывает параметры разбора разделенного текста.
// Значения фиксируются один раз на запуск и не меняются.
type Dialect struct {
	Delimiter byte
	Quote     byte
	Quoting   bool
}

// DefaultDialect возвращает стандартный диалект CSV: запятая и двойные кавычки
func DefaultDialect() Dialect {
	return Dialect{
		Delimiter: ',',
		Quote:     '"',
		Quoting:   true,
	}
}

// ValidationError описывает одну строку, количество разделителей которой
// отличается от первой строки файла. LineNumber считается от единицы,
// начиная со второй физической строки (первая строка задает эталон
// и сама не проверяется).
type ValidationError struct {
	LineNumber int    `json:"line_number" yaml:"line_number"`
	Expected   int    `json:"expected_delimiters" yaml:"expected_delimiters"`
	Actual     int    `json:"actual_delimiters" yaml:"actual_delimiters"`
	Data       string `json:"data" yaml:"data"`
}

// Record форматирует запись отчета: <номер>,<ожидалось>,<фактически>,"<строка>".
// Исходная строка оборачивается в двойные кавычки без экранирования.
func (e ValidationError) Record() string {
	return fmt.Sprintf("%d,%d,%d,\"%s\"", e.LineNumber, e.Expected, e.Actual, e.Data)
}

// Result содержит итог проверки: пустой список ошибок означает валидный файл.
// Ошибки перечислены в порядке следования строк, список не усекается.
type Result struct {
	Errors []ValidationError
}

// Valid сообщает, прошел ли файл проверку
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}
