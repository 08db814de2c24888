package services

import (
	"errors"
	"fmt"
	"strings"
)

// Order workflow failures. Every check is fail-fast: the first failing check
// aborts the whole operation and nothing is persisted.
var (
	// ErrCustomerNotFound means the requested customer id has no record.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrNoProductsFound means none of the requested product ids matched.
	ErrNoProductsFound = errors.New("no products found")
)

// ProductsNotFoundError reports requested product ids with no matching record
// when at least one other requested product does exist.
type ProductsNotFoundError struct {
	IDs []string
}

func (e *ProductsNotFoundError) Error() string {
	return fmt.Sprintf("could not find products: %s", strings.Join(e.IDs, ", "))
}

// InsufficientQuantityError reports product ids whose requested quantity
// exceeds the available stock.
type InsufficientQuantityError struct {
	IDs []string
}

func (e *InsufficientQuantityError) Error() string {
	return fmt.Sprintf("insufficient quantity for products: %s", strings.Join(e.IDs, ", "))
}
