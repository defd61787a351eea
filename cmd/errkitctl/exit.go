package main

import "fmt"

const exitCodeUsage = 2

type exitError struct {
	code    int
	message string
	silent  bool
}

func (e exitError) Error() string {
	return e.message
}

func exitUsage(format string, args ...any) error {
	return exitError{code: exitCodeUsage, message: fmt.Sprintf(format, args...)}
}
