package types

const (
	ModuleName = "ibport"

	// MaxIdleRequestsCount bounds unconfirmed unwrap requests.
	MaxIdleRequestsCount = 1000
)
