package postgres

// Error Messages - Query Operations
const (
	ErrMsgFailedToQueryInventory = "failed to query inventory"
	ErrMsgFailedToScanInventory  = "failed to scan inventory rows"
)
