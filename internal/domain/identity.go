package domain

// Identity is the caller identity attached to shell requests. It is a
// stand-in for real authentication: values come from client cookies
// with fixed defaults when absent.
type Identity struct {
	UserID int64
	Name   string
	FirmID int64
}

// Cookie defaults applied when the client sends no identity.
const (
	DefaultUserID   int64 = 1490
	DefaultUserName       = "Allen Joseph"
	DefaultFirmID   int64 = 5
)

// DefaultIdentity returns the fallback identity.
func DefaultIdentity() Identity {
	return Identity{
		UserID: DefaultUserID,
		Name:   DefaultUserName,
		FirmID: DefaultFirmID,
	}
}
