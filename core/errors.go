package core

import (
	"errors"
	"fmt"
)

// TransportError represents a network-level failure while talking to the
// Slack API (DNS, connection, timeout).
type TransportError struct {
	Err error // The underlying transport error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to Slack API failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransportError checks if an error is a TransportError
func IsTransportError(err error) (*TransportError, bool) {
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return transportErr, true
	}
	return nil, false
}

// InvalidResponseError represents a response body that is not the
// expected envelope shape: not JSON, not an object, missing the "ok"
// flag, or missing the collection payload.
type InvalidResponseError struct {
	Reason string
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("invalid response from Slack API: %s", e.Reason)
}

// IsInvalidResponseError checks if an error is an InvalidResponseError
func IsInvalidResponseError(err error) (*InvalidResponseError, bool) {
	var invalidErr *InvalidResponseError
	if errors.As(err, &invalidErr) {
		return invalidErr, true
	}
	return nil, false
}

// RemoteError represents a well-formed envelope with ok:false. Reason
// carries the remote-supplied error string.
type RemoteError struct {
	Reason string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("Slack API returned an error: %s", e.Reason)
}

// IsRemoteError checks if an error is a RemoteError
func IsRemoteError(err error) (*RemoteError, bool) {
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr, true
	}
	return nil, false
}
