package main

import (
	"context"
	_ "embed"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Avee121/xsv/internal/domain"
	"github.com/Avee121/xsv/internal/infrastructure"
	"github.com/Avee121/xsv/internal/usecase"
)

//go:embed version.txt
var version string

func init() {
	version = strings.TrimSpace(version)
	if version == "" {
		version = "0.1.0" // fallback
	}
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	command := os.Args[1]

	// Обработка команд версии и помощи
	switch command {
	case "version", "-version", "-v", "--version", "--v":
		fmt.Printf("xsv version %s\n", strings.TrimSpace(version))
		os.Exit(0)

	case "help", "-help", "-h", "--help", "--h":
		printUsage()
		os.Exit(0)
	}

	// Обработка команды validate
	if command == "validate" || command == "val" {
		runValidate(os.Args[2:])
		return
	}

	// Неизвестная команда
	fmt.Fprintf(os.Stderr, "❌ Неизвестная команда: %s\n\n", command)
	printUsage()
	os.Exit(2)
}

func runValidate(args []string) {
	var (
		inputPath  string
		delimiter  string
		quote      string
		noQuoting  bool
		outputPath string
		format     string
		configPath string
		verbose    bool
	)

	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)
	validateCmd.StringVar(&inputPath, "i", "", "Путь к проверяемому файлу")
	validateCmd.StringVar(&inputPath, "input", "", "Путь к проверяемому файлу")
	validateCmd.StringVar(&delimiter, "d", ",", "Разделитель полей (ровно один символ)")
	validateCmd.StringVar(&delimiter, "delimiter", ",", "Разделитель полей (ровно один символ)")
	validateCmd.StringVar(&quote, "q", "\"", "Символ кавычки (ровно один символ)")
	validateCmd.StringVar(&quote, "quote", "\"", "Символ кавычки (ровно один символ)")
	validateCmd.BoolVar(&noQuoting, "no-quoting", false, "Полностью отключить учет кавычек")
	validateCmd.StringVar(&outputPath, "o", "", "Записать отчет в файл вместо stdout")
	validateCmd.StringVar(&outputPath, "output", "", "Записать отчет в файл вместо stdout")
	validateCmd.StringVar(&format, "format", "", "Формат отчета (csv/json/yaml), по умолчанию определяется по расширению -output")
	validateCmd.StringVar(&configPath, "config", "", "Путь к YAML-файлу с настройками по умолчанию")
	validateCmd.BoolVar(&verbose, "verbose", false, "Подробный вывод")
	validateCmd.BoolVar(&verbose, "v", false, "Подробный вывод (краткая форма)")

	if err := validateCmd.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Ошибка парсинга флагов: %v\n", err)
		os.Exit(2)
	}

	// Поддержка позиционного аргумента для входного файла:
	// xsv validate data.csv
	if inputPath == "" && len(validateCmd.Args()) > 0 {
		inputPath = validateCmd.Args()[0]
	}

	if inputPath == "" {
		fmt.Fprintf(os.Stderr, "❌ Ошибка: необходимо указать проверяемый файл\n")
		fmt.Fprintf(os.Stderr, "Использование:\n")
		fmt.Fprintf(os.Stderr, "  xsv validate -i <input> [флаги]\n")
		fmt.Fprintf(os.Stderr, "  xsv validate [флаги] <input>\n")
		os.Exit(2)
	}

	// Явно заданные флаги имеют приоритет над файлом настроек
	explicit := map[string]bool{}
	validateCmd.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	if configPath != "" {
		defaults, err := infrastructure.LoadDefaults(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ Ошибка: %v\n", err)
			os.Exit(2)
		}
		if defaults.Delimiter != "" && !explicit["d"] && !explicit["delimiter"] {
			delimiter = defaults.Delimiter
		}
		if defaults.Quote != "" && !explicit["q"] && !explicit["quote"] {
			quote = defaults.Quote
		}
		if defaults.NoQuoting && !explicit["no-quoting"] {
			noQuoting = true
		}
		if defaults.Output != "" && !explicit["o"] && !explicit["output"] {
			outputPath = defaults.Output
		}
		if defaults.Format != "" && !explicit["format"] {
			format = defaults.Format
		}
	}

	// Разделитель и кавычка - ровно один символ; проверяется
	// до запуска проверки
	if len(delimiter) != 1 {
		fmt.Fprintf(os.Stderr, "❌ Ошибка: разделитель должен быть ровно одним символом: %q\n", delimiter)
		os.Exit(2)
	}
	if len(quote) != 1 {
		fmt.Fprintf(os.Stderr, "❌ Ошибка: кавычка должна быть ровно одним символом: %q\n", quote)
		os.Exit(2)
	}

	switch domain.ReportFormat(format) {
	case "", domain.FormatCSV, domain.FormatJSON, domain.FormatYAML:
	default:
		fmt.Fprintf(os.Stderr, "❌ Ошибка: неизвестный формат отчета: %q\n", format)
		os.Exit(2)
	}

	dialect := domain.Dialect{
		Delimiter: delimiter[0],
		Quote:     quote[0],
		Quoting:   !noQuoting,
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "📄 Проверка файла: %s\n", inputPath)
		if dialect.Quoting {
			fmt.Fprintf(os.Stderr, "   Разделитель %q, кавычка %q\n", string(dialect.Delimiter), string(dialect.Quote))
		} else {
			fmt.Fprintf(os.Stderr, "   Разделитель %q, кавычки отключены\n", string(dialect.Delimiter))
		}
	}

	uc := newValidator()
	ctx := context.Background()
	config := usecase.Config{
		Dialect: dialect,
		Report:  true,
		Output:  outputPath,
		Format:  domain.ReportFormat(format),
	}

	result, err := uc.Execute(ctx, inputPath, config)
	if err != nil {
		// Ошибки подготовки и ввода-вывода: одно сообщение, без отчета
		fmt.Fprintf(os.Stderr, "❌ Ошибка: %v\n", err)
		os.Exit(2)
	}

	if result.Valid() {
		fmt.Println("File is valid")
		return
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "❌ Файл невалиден, найдено ошибок: %d\n", len(result.Errors))
	}
	os.Exit(1)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `xsv - утилита для проверки структуры CSV-подобных файлов

Каждая строка файла должна содержать столько же разделителей, сколько
первая строка. Несоответствия выводятся отчетом в формате
<номер строки>,<ожидалось>,<фактически>,"<строка>".

Использование:
  xsv <команда> [флаги]

Команды:
  validate  Проверить согласованность разделителей в файле (синоним: val)
            Используйте 'xsv validate --help' для справки по флагам
  version   Показать версию
  help      Показать эту справку

Примеры:
  xsv validate data.csv
  xsv validate -d ';' -o report.csv data.csv
  xsv validate -no-quoting data.tsv
  xsv version

`)
}
