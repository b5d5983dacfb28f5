package service

import (
	"errors"

	"snackshop/schema"
	"snackshop/simulator"
)

// ErrEmptyCart is returned when checkout is called without line items
var ErrEmptyCart = errors.New("cart is empty")

// ErrorKind classifies failures surfaced by the catalog service
type ErrorKind string

const (
	KindSchemaValidation   ErrorKind = schema.Kind
	KindServiceUnavailable ErrorKind = "ServiceUnavailable"
	KindEmptyCart          ErrorKind = "EmptyCart"
	KindInternal           ErrorKind = "Internal"
)

// KindOf returns the kind of err, or an empty kind for a nil error
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return ""
	case schema.IsValidationError(err):
		return KindSchemaValidation
	case errors.Is(err, simulator.ErrServiceUnavailable):
		return KindServiceUnavailable
	case errors.Is(err, ErrEmptyCart):
		return KindEmptyCart
	default:
		return KindInternal
	}
}
