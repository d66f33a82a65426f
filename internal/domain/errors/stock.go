package errors

import "fmt"

// OutOfStockError reports which product cannot be fulfilled and how many
// items remain. Matches ErrOutOfStock under errors.Is.
type OutOfStockError struct {
	ProductName string
	Available   int
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("%s out of stock, only %d items are left", e.ProductName, e.Available)
}

func (e *OutOfStockError) Unwrap() error {
	return ErrOutOfStock
}
