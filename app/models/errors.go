package models

import (
	"errors"
	"fmt"
)

// DuplicateNameError reports a catalog write that collides with an
// existing product name (comparison ignores letter case).
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("product name %q already exists", e.Name)
}

// InvalidStockValueError reports an attempt to set a product's stock to
// the reserved value 1, which the catalog does not accept.
type InvalidStockValueError struct {
	Stock int
}

func (e *InvalidStockValueError) Error() string {
	return fmt.Sprintf("stock value %d is not allowed", e.Stock)
}

// OutOfStockError reports an attempt to add a product with zero stock
// to a cart.
type OutOfStockError struct {
	Product string
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("product %q is out of stock", e.Product)
}

// InsufficientStockError reports a requested quantity exceeding the
// available stock.
type InsufficientStockError struct {
	Product   string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q: requested %d, available %d",
		e.Product, e.Requested, e.Available)
}

// InsufficientLineItemsError reports a checkout attempted with fewer
// distinct products than the minimum.
type InsufficientLineItemsError struct {
	Got int
	Min int
}

func (e *InsufficientLineItemsError) Error() string {
	return fmt.Sprintf("transaction needs at least %d distinct products, got %d", e.Min, e.Got)
}

// NotFoundError reports a lookup for an entity that does not exist.
// Key carries non-numeric identifiers (cart line ids); ID everything
// else.
type NotFoundError struct {
	Entity string
	ID     uint
	Key    string
}

func (e *NotFoundError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s %q not found", e.Entity, e.Key)
	}
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// IsNotFound reports whether err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsDomainViolation reports whether err is one of the business rule
// errors that map to an unprocessable request rather than a server
// fault.
func IsDomainViolation(err error) bool {
	var (
		dup   *DuplicateNameError
		stock *InvalidStockValueError
		oos   *OutOfStockError
		ins   *InsufficientStockError
		lines *InsufficientLineItemsError
	)
	return errors.As(err, &dup) ||
		errors.As(err, &stock) ||
		errors.As(err, &oos) ||
		errors.As(err, &ins) ||
		errors.As(err, &lines)
}
