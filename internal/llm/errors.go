package llm

import "fmt"

// ConfigError reports a missing credential. No request is attempted when it is returned.
type ConfigError struct {
	Var string // environment variable that should hold the key
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s not configured. Please add it to your environment or .env file", e.Var)
}

// RequestError represents a failed call to the hosted model
type RequestError struct {
	Message string
	Cause   error
}

func (e *RequestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("request failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("request failed: %s", e.Message)
}

func (e *RequestError) Unwrap() error {
	return e.Cause
}
