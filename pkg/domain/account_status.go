package domain

// AccountStatus is the lifecycle state of an account.
// Values outside the declared constants are allowed and are never treated as active.
type AccountStatus string

const (
	AccountStatusActive              AccountStatus = "ACTIVE"
	AccountStatusPendingVerification AccountStatus = "PENDING_VERIFICATION"
	AccountStatusSuspended           AccountStatus = "SUSPENDED"
	AccountStatusDeactivated         AccountStatus = "DEACTIVATED"
)

// DefaultDeniedMessage is returned for statuses without a dedicated message.
const DefaultDeniedMessage = "Account access denied"

// deniedMessages is read-only after init.
var deniedMessages = map[AccountStatus]string{
	AccountStatusPendingVerification: "Please verify your email to access this resource",
	AccountStatusSuspended:           "Your account has been suspended. Please contact support.",
	AccountStatusDeactivated:         "Your account has been deactivated",
}

// IsActive reports whether the status grants access.
func (s AccountStatus) IsActive() bool {
	return s == AccountStatusActive
}

// DeniedCode returns the error code reported when access is refused for this status.
// Unknown statuses are embedded verbatim.
func (s AccountStatus) DeniedCode() string {
	return "ACCOUNT_" + string(s)
}

// DeniedMessage returns the user-facing message for a refused status.
func (s AccountStatus) DeniedMessage() string {
	if msg, ok := deniedMessages[s]; ok {
		return msg
	}
	return DefaultDeniedMessage
}
