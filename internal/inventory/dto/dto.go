package dto

type HistoryFilters struct {
	MaterialNo string
	Sloc       string
	Action     string
	Page       int
	PageSize   int
}
