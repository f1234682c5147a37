package opname

import "errors"

var (
	ErrTitleRequired       = errors.New("session title is required")
	ErrInvalidQuantity     = errors.New("physical quantity must be a non-negative number")
	ErrInvalidStatusFilter = errors.New("status filter must be ALL, COUNTED or UNCOUNTED")
	ErrSessionNotFound     = errors.New("opname session not found")
	ErrLineNotFound        = errors.New("opname line not found")
	ErrSessionAlreadyOpen  = errors.New("an OPEN opname session already exists")
	ErrSessionNotOpen      = errors.New("opname session is not OPEN")
	ErrNothingToExport     = errors.New("nothing to export")
	ErrSessionBusy         = errors.New("session is being finalized, please try again later")
)
