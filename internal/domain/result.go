package domain

// Reason classifies a failed auth operation.
type Reason string

const (
	ReasonDuplicateEmail     Reason = "duplicate_email"
	ReasonInvalidCredentials Reason = "invalid_credentials"
	ReasonNotAuthorized      Reason = "not_authorized"
	ReasonNoSession          Reason = "no_session"
)

// Result is returned by auth operations instead of an error: validation
// failures are expected outcomes, not faults.
type Result struct {
	Success bool   `json:"success"`
	Reason  Reason `json:"reason,omitempty"`
	Message string `json:"message"`
}

func Succeeded(message string) Result {
	return Result{Success: true, Message: message}
}

func Failed(reason Reason, message string) Result {
	return Result{Reason: reason, Message: message}
}
