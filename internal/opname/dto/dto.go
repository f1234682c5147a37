package dto

type StatusFilter string

const (
	StatusAll       StatusFilter = "ALL"
	StatusCounted   StatusFilter = "COUNTED"
	StatusUncounted StatusFilter = "UNCOUNTED"
)

func (f StatusFilter) Valid() bool {
	switch f {
	case StatusAll, StatusCounted, StatusUncounted:
		return true
	}
	return false
}

// IsCounted maps the filter onto the is_counted column; nil means any.
func (f StatusFilter) IsCounted() *bool {
	var v bool
	switch f {
	case StatusCounted:
		v = true
	case StatusUncounted:
		v = false
	default:
		return nil
	}
	return &v
}

type ItemFilters struct {
	SessionID  string
	SearchTerm string // matched against material description or material number
	Status     StatusFilter
	Page       int
	PageSize   int
}
