package model

import "fmt"

// FetchError is returned when the repository listing cannot be retrieved or decoded
type FetchError struct {
	StatusCode int // HTTP status of the response, 0 if no response was received
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to fetch listing (HTTP %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("failed to fetch listing: %v", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
