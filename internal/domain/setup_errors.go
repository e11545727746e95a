package domain

import "fmt"

// ErrPathNotFound - ошибка подготовки: путь не существует.
// Обнаруживается до начала сканирования и не смешивается
// с ошибками валидации или ввода-вывода.
type ErrPathNotFound struct {
	Path string
}

func (e *ErrPathNotFound) Error() string {
	return fmt.Sprintf("path not found: %s", e.Path)
}

// ErrNotAFile - ошибка подготовки: путь существует, но не является обычным файлом
type ErrNotAFile struct {
	Path string
}

func (e *ErrNotAFile) Error() string {
	return fmt.Sprintf("not a regular file: %s", e.Path)
}
