package infrastructure

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/Avee121/xsv/internal/domain"
)

func quotedDialect() domain.Dialect {
	return domain.Dialect{Delimiter: ',', Quote: '"', Quoting: true}
}

func unquotedDialect() domain.Dialect {
	return domain.Dialect{Delimiter: ',', Quoting: false}
}

func TestCountDelimiters(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		dialect domain.Dialect
		want    int
	}{
		{
			name:    "plain line",
			line:    "a,b,c",
			dialect: quotedDialect(),
			want:    2,
		},
		{
			name:    "delimiter inside quotes is not counted",
			line:    `a,"b,c",d`,
			dialect: quotedDialect(),
			want:    2,
		},
		{
			name:    "no quoting counts every occurrence",
			line:    `a,"b,c",d`,
			dialect: unquotedDialect(),
			want:    3,
		},
		{
			name:    "empty line",
			line:    "",
			dialect: quotedDialect(),
			want:    0,
		},
		{
			name:    "only delimiters",
			line:    ",,,",
			dialect: quotedDialect(),
			want:    3,
		},
		{
			name:    "unclosed quote suppresses the rest of the line",
			line:    `a,"b,c,d`,
			dialect: quotedDialect(),
			want:    1,
		},
		{
			name:    "custom delimiter",
			line:    "a;b;c",
			dialect: domain.Dialect{Delimiter: ';', Quote: '"', Quoting: true},
			want:    2,
		},
		{
			// Байт, совпадающий с разделителем и кавычкой одновременно,
			// переключает кавычки и не считается разделителем
			name:    "delimiter equal to quote always toggles",
			line:    `a"b"c`,
			dialect: domain.Dialect{Delimiter: '"', Quote: '"', Quoting: true},
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := countDelimiters([]byte(tt.line), tt.dialect); got != tt.want {
				t.Errorf("countDelimiters(%q) = %d, want %d", tt.line, got, tt.want)
			}
		})
	}
}

func TestScanner_Validate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		dialect domain.Dialect
		want    []domain.ValidationError
	}{
		{
			name:    "valid file",
			input:   "name,age,city\nAlice,30,NYC\nBob,25,LA\n",
			dialect: quotedDialect(),
			want:    nil,
		},
		{
			name:    "empty file",
			input:   "",
			dialect: quotedDialect(),
			want:    nil,
		},
		{
			name:    "single line file",
			input:   "name,age,city\n",
			dialect: quotedDialect(),
			want:    nil,
		},
		{
			name:    "missing field",
			input:   "name,age,city\nAlice,30,NYC\nBob,25\n",
			dialect: quotedDialect(),
			want: []domain.ValidationError{
				{LineNumber: 2, Expected: 2, Actual: 1, Data: "Bob,25"},
			},
		},
		{
			name:    "extra field",
			input:   "name,age\nAlice,30,NYC\n",
			dialect: quotedDialect(),
			want: []domain.ValidationError{
				{LineNumber: 1, Expected: 1, Actual: 2, Data: "Alice,30,NYC"},
			},
		},
		{
			name:    "errors keep line order",
			input:   "a,b,c\nx\ny,z,w\nq,r\n",
			dialect: quotedDialect(),
			want: []domain.ValidationError{
				{LineNumber: 1, Expected: 2, Actual: 0, Data: "x"},
				{LineNumber: 3, Expected: 2, Actual: 1, Data: "q,r"},
			},
		},
		{
			name:    "quoted delimiter matches plain baseline",
			input:   "a,b,c\n" + `a,"b,c",d` + "\n",
			dialect: quotedDialect(),
			want:    nil,
		},
		{
			name:    "no quoting flags quoted delimiter",
			input:   "a,b,c\n" + `a,"b,c",d` + "\n",
			dialect: unquotedDialect(),
			want: []domain.ValidationError{
				{LineNumber: 1, Expected: 2, Actual: 3, Data: `a,"b,c",d`},
			},
		},
		{
			// Незакрытая кавычка действует только до конца своей строки:
			// состояние не переносится на следующую строку
			name:    "quote state resets at line break",
			input:   "a,b\n" + `"x,y` + "\np,q\n",
			dialect: quotedDialect(),
			want: []domain.ValidationError{
				{LineNumber: 1, Expected: 1, Actual: 0, Data: `"x,y`},
			},
		},
		{
			name:    "quoted baseline line",
			input:   `"a,a",b` + "\nc,d\n",
			dialect: quotedDialect(),
			want:    nil,
		},
		{
			name:    "no trailing newline on last line",
			input:   "a,b\nc",
			dialect: quotedDialect(),
			want: []domain.ValidationError{
				{LineNumber: 1, Expected: 1, Actual: 0, Data: "c"},
			},
		},
		{
			name:    "crlf line endings",
			input:   "a,b\r\nc,d\r\ne\r\n",
			dialect: quotedDialect(),
			want: []domain.ValidationError{
				{LineNumber: 2, Expected: 1, Actual: 0, Data: "e"},
			},
		},
	}

	scanner := NewScanner()
	ctx := context.Background()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := scanner.Validate(ctx, strings.NewReader(tt.input), tt.dialect)
			if err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			if !reflect.DeepEqual(result.Errors, tt.want) {
				t.Errorf("Validate() errors = %+v, want %+v", result.Errors, tt.want)
			}
			if result.Valid() != (len(tt.want) == 0) {
				t.Errorf("Valid() = %v, want %v", result.Valid(), len(tt.want) == 0)
			}
		})
	}
}

func TestScanner_Validate_LongLine(t *testing.T) {
	// Длина строки не ограничена: строки в несколько мегабайт
	// проверяются как любые другие
	long := "a," + strings.Repeat("x", 2*1024*1024) + ",c"
	input := "a,b,c\n" + long + "\n" + long + ",d\n"

	scanner := NewScanner()
	result, err := scanner.Validate(context.Background(), strings.NewReader(input), quotedDialect())
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if len(result.Errors) != 1 {
		t.Fatalf("Validate() errors = %d, want 1", len(result.Errors))
	}

	e := result.Errors[0]
	if e.LineNumber != 2 || e.Expected != 2 || e.Actual != 3 {
		t.Errorf("Validate() error = {line %d, expected %d, actual %d}", e.LineNumber, e.Expected, e.Actual)
	}
}

func TestScanner_Validate_Idempotent(t *testing.T) {
	input := "a,b,c\nx,y\nz,w,v\n"
	scanner := NewScanner()
	ctx := context.Background()

	first, err := scanner.Validate(ctx, strings.NewReader(input), quotedDialect())
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	second, err := scanner.Validate(ctx, strings.NewReader(input), quotedDialect())
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Validate() is not idempotent: %+v vs %+v", first, second)
	}
}

// failingReader возвращает ошибку чтения после первой строки
type failingReader struct {
	data []byte
	read bool
}

func (fr *failingReader) Read(p []byte) (int, error) {
	if !fr.read {
		fr.read = true
		n := copy(p, fr.data)
		return n, nil
	}
	return 0, errors.New("disk read failed")
}

func TestScanner_Validate_ReadError(t *testing.T) {
	scanner := NewScanner()
	ctx := context.Background()

	_, err := scanner.Validate(ctx, &failingReader{data: []byte("a,b\nc,d\n")}, quotedDialect())
	if err == nil {
		t.Fatal("Validate() expected error for failing reader")
	}
	if !strings.Contains(err.Error(), "disk read failed") {
		t.Errorf("Validate() error = %v, want wrapped read error", err)
	}
}

func TestScanner_Validate_ContextCancelled(t *testing.T) {
	scanner := NewScanner()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := scanner.Validate(ctx, strings.NewReader("a,b\n"), quotedDialect())
	if err == nil {
		t.Error("Validate() expected error for cancelled context")
	}
}
