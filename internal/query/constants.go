package query

// Statement kinds, used as a metrics label
const (
	KindListing = "listing"
	KindFilter  = "filter"
	KindByID    = "by_id"
)

// Validation error details
const (
	ErrMsgSortFormat    = "order_by %q must be <column>_<ASC|DESC>"
	ErrMsgSortColumn    = "cannot sort by column %q"
	ErrMsgSortDirection = "sort direction %q must be ASC or DESC"
	ErrMsgLimit         = "limits must be a positive integer, got %d"
	ErrMsgPageRange     = "page %d is out of range for limits %d"
)
