package inventory

import "errors"

var (
	ErrStockKeyRequired  = errors.New("material_no and sloc are required")
	ErrStockItemNotFound = errors.New("stock item not found")
)
