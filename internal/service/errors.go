package service

import "fmt"

type ErrResourceNotFound struct {
	error
}

func NewErrResourceNotFound(id, resourceType string) *ErrResourceNotFound {
	return &ErrResourceNotFound{fmt.Errorf("%s %s not found", resourceType, id)}
}

func NewErrFormNotFound(id string) *ErrResourceNotFound {
	return NewErrResourceNotFound(id, "form")
}

func NewErrFSONotFound(id string) *ErrResourceNotFound {
	return NewErrResourceNotFound(id, "fso")
}
