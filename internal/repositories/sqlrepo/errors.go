package sqlrepo

import (
	"errors"
	"fmt"
)

// ErrMissingKey marks a record that lacks a natural-key field.
var ErrMissingKey = errors.New("missing natural key field")

type MissingKeyError struct {
	Table string
	Field string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("%s record missing %s", e.Table, e.Field)
}

func (e *MissingKeyError) Unwrap() error {
	return ErrMissingKey
}

// PersistenceError is a failed insert, update or lookup of a single record.
type PersistenceError struct {
	Table string
	Op    string
	Key   string
	Err   error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s %q: %v", e.Op, e.Table, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
