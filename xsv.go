package xsv

import (
	"context"
	"io"

	"github.com/Avee121/xsv/internal/domain"
	"github.com/Avee121/xsv/internal/infrastructure"
	"github.com/Avee121/xsv/internal/usecase"
)

// Option represents a configuration option for the validator
type Option func(*Config)

// Config holds the configuration for the validator
type Config struct {
	Delimiter byte
	Quote     byte
	Quoting   bool
}

// WithDelimiter sets the field delimiter (default ',')
func WithDelimiter(delimiter byte) Option {
	return func(c *Config) {
		c.Delimiter = delimiter
	}
}

// WithQuote sets the quote character (default '"')
func WithQuote(quote byte) Option {
	return func(c *Config) {
		c.Quote = quote
	}
}

// WithNoQuoting disables quote handling entirely: every delimiter
// occurrence is counted, even inside quoted spans
func WithNoQuoting() Option {
	return func(c *Config) {
		c.Quoting = false
	}
}

// defaultConfig returns the default configuration
func defaultConfig() *Config {
	return &Config{
		Delimiter: ',',
		Quote:     '"',
		Quoting:   true,
	}
}

// ValidationError describes one line whose delimiter count diverges from
// the first line of the input. LineNumber is 1-based over the lines after
// the first one (the first line sets the baseline and is never checked).
type ValidationError struct {
	LineNumber int
	Expected   int
	Actual     int
	Data       string
}

// Result holds the outcome of a validation run. Errors are ordered by
// line number and the list is exhaustive over all mismatching lines.
type Result struct {
	Errors []ValidationError
}

// Valid reports whether the input passed validation
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// Validator checks that every line of a delimited text file carries the
// same number of field separators as the first line. Quoted fields are
// assumed to not span multiple physical lines: the quote state resets at
// every line break.
type Validator struct {
	useCase *usecase.ValidateUseCase
	scanner domain.StreamValidator
	config  *Config
}

// New creates a new Validator instance with default configuration
func New(opts ...Option) *Validator {
	config := defaultConfig()
	for _, opt := range opts {
		opt(config)
	}

	fileSource := infrastructure.NewFileSource()
	scanner := infrastructure.NewScanner()
	reportWriter := infrastructure.NewReportWriter()

	useCase := usecase.NewValidateUseCase(
		fileSource,
		scanner,
		reportWriter,
	)

	return &Validator{
		useCase: useCase,
		scanner: scanner,
		config:  config,
	}
}

// ValidateFile validates the file at path
//
// Example:
//
//	v := xsv.New(xsv.WithDelimiter(';'))
//	result, err := v.ValidateFile(context.Background(), "data.csv")
func (v *Validator) ValidateFile(ctx context.Context, path string) (Result, error) {
	res, err := v.useCase.Execute(ctx, path, usecase.Config{Dialect: v.dialect()})
	if err != nil {
		return Result{}, err
	}
	return fromDomain(res), nil
}

// ValidateReader validates an already-open stream. The caller keeps
// ownership of the reader.
func (v *Validator) ValidateReader(ctx context.Context, r io.Reader) (Result, error) {
	res, err := v.scanner.Validate(ctx, r, v.dialect())
	if err != nil {
		return Result{}, err
	}
	return fromDomain(res), nil
}

func (v *Validator) dialect() domain.Dialect {
	return domain.Dialect{
		Delimiter: v.config.Delimiter,
		Quote:     v.config.Quote,
		Quoting:   v.config.Quoting,
	}
}

// ValidateFile is a convenience function that creates a new Validator and
// validates the file at path
//
// Example:
//
//	result, err := xsv.ValidateFile(context.Background(), "data.csv")
func ValidateFile(ctx context.Context, path string, opts ...Option) (Result, error) {
	v := New(opts...)
	return v.ValidateFile(ctx, path)
}

func fromDomain(res domain.Result) Result {
	out := Result{}
	for _, e := range res.Errors {
		out.Errors = append(out.Errors, ValidationError{
			LineNumber: e.LineNumber,
			Expected:   e.Expected,
			Actual:     e.Actual,
			Data:       e.Data,
		})
	}
	return out
}
