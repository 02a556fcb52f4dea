package types

const (
	ModuleName = "luport"

	// MaxIdleRequestsCount bounds unconfirmed lock requests.
	MaxIdleRequestsCount = 100
)
