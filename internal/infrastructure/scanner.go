package infrastructure

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/Avee121/xsv/internal/domain"
)

// Scanner реализует потоковую проверку согласованности разделителей
type Scanner struct{}

// NewScanner создает новый Scanner
func NewScanner() domain.StreamValidator {
	return &Scanner{}
}

// Validate проверяет, что каждая строка содержит столько же разделителей,
// сколько первая. Эталон вычисляется ровно один раз по первой строке;
// пустой поток валиден. Поток читается за один последовательный проход,
// строка за строкой, без буферизации файла целиком; длина строки
// не ограничивается.
func (s *Scanner) Validate(ctx context.Context, r io.Reader, dialect domain.Dialect) (domain.Result, error) {
	// Проверяем контекст
	if ctx.Err() != nil {
		return domain.Result{}, ctx.Err()
	}

	br := bufio.NewReader(r)

	// Первая строка задает эталонное количество разделителей
	line, ok, err := readLine(br)
	if err != nil {
		return domain.Result{}, fmt.Errorf("failed to read first line: %w", err)
	}
	if !ok {
		// Пустой файл: проверять нечего
		return domain.Result{}, nil
	}
	expected := countDelimiters(line, dialect)

	var result domain.Result
	for lineNumber := 1; ; lineNumber++ {
		line, ok, err = readLine(br)
		if err != nil {
			return domain.Result{}, fmt.Errorf("failed to read line: %w", err)
		}
		if !ok {
			break
		}
		actual := countDelimiters(line, dialect)
		if actual != expected {
			result.Errors = append(result.Errors, domain.ValidationError{
				LineNumber: lineNumber,
				Expected:   expected,
				Actual:     actual,
				Data:       string(line),
			})
		}
	}

	return result, nil
}

// readLine читает одну строку без перевода строки. Завершающий \r
// срезается только вместе с \n. Второе возвращаемое значение - false,
// когда поток исчерпан.
func readLine(br *bufio.Reader) ([]byte, bool, error) {
	line, err := br.ReadBytes('\n')
	if err != nil && err != io.EOF {
		return nil, false, err
	}
	if len(line) == 0 {
		return nil, false, nil
	}
	if n := len(line); line[n-1] == '\n' {
		line = line[:n-1]
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
	}
	return line, true, nil
}

// countDelimiters считает разделители в строке. В режиме с кавычками
// байт кавычки переключает флаг "внутри кавычек", а разделители внутри
// кавычек не учитываются; проверка кавычки имеет приоритет, поэтому байт,
// совпадающий с обоими значениями, переключает флаг и не считается
// разделителем. Флаг не переносится между строками: незакрытая кавычка
// действует только до конца своей физической строки, поля, занимающие
// несколько строк, не поддерживаются.
func countDelimiters(line []byte, dialect domain.Dialect) int {
	count := 0
	inQuotes := false
	for _, ch := range line {
		switch {
		case dialect.Quoting && ch == dialect.Quote:
			inQuotes = !inQuotes
		case ch == dialect.Delimiter && !inQuotes:
			count++
		}
	}
	return count
}
