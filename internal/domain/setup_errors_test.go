package domain

import "testing"

func TestErrPathNotFound_Error(t *testing.T) {
	err := &ErrPathNotFound{Path: "/nonexistent/file.csv"}
	want := "path not found: /nonexistent/file.csv"
	if got := err.Error(); got != want {
		t.Errorf("ErrPathNotFound.Error() = %v, want %v", got, want)
	}
}

func TestErrNotAFile_Error(t *testing.T) {
	err := &ErrNotAFile{Path: "/tmp"}
	want := "not a regular file: /tmp"
	if got := err.Error(); got != want {
		t.Errorf("ErrNotAFile.Error() = %v, want %v", got, want)
	}
}
