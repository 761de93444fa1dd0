package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmailExists      = errors.New("employee email already registered")
	ErrDocumentNotFound = errors.New("compliance document not found")
)
