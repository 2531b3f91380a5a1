package advisor

import "fmt"

// AuthError indicates the generative provider rejected the credential or no
// credential was configured. Callers may substitute a local fallback.
type AuthError struct {
	Cause error
}

func (e *AuthError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("advisor auth failure: %v", e.Cause)
	}
	return "advisor auth failure"
}

func (e *AuthError) Unwrap() error {
	return e.Cause
}

// UnavailableError indicates the generative provider could not be reached or
// did not answer in time.
type UnavailableError struct {
	Cause error
}

func (e *UnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("advisor unavailable: %v", e.Cause)
	}
	return "advisor unavailable"
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}

// MalformedResponseError indicates the provider answered but the payload did
// not match the expected shape.
type MalformedResponseError struct {
	Message string
	Cause   error
}

func (e *MalformedResponseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed advisor response: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("malformed advisor response: %s", e.Message)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Cause
}
