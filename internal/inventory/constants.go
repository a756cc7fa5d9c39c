package inventory

// Log messages
const (
	LogMsgListingItems   = "Listing inventory"
	LogMsgFilteringItems = "Filtering inventory"
	LogMsgGettingItem    = "Getting inventory item"
)

// Error messages
const (
	ErrMsgBuildListing  = "failed to build listing statement"
	ErrMsgListItems     = "failed to list items"
	ErrMsgFilterItems   = "failed to filter items"
	ErrMsgGetItem       = "failed to get item"
	ErrMsgInvalidItemID = "item id must be positive, got %d"
)
