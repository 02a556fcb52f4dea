package types

// RequestStatus is the lifecycle state of a swap id.
type RequestStatus uint8

const (
	RequestStatusNone RequestStatus = iota
	RequestStatusNew
	// RequestStatusRejected is reserved; no operation moves a swap into it.
	RequestStatusRejected
	RequestStatusSuccess
)

func (s RequestStatus) String() string {
	switch s {
	case RequestStatusNone:
		return "none"
	case RequestStatusNew:
		return "new"
	case RequestStatusRejected:
		return "rejected"
	case RequestStatusSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// Valid reports whether s is a known discriminant.
func (s RequestStatus) Valid() bool {
	return s <= RequestStatusSuccess
}
