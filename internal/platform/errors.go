package platform

import "fmt"

// RequestError is a non-2xx platform response carrying the server's
// user-facing message.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string { return e.Message }

// ConnectivityError is a transport-level failure: the request never produced
// a usable response.
type ConnectivityError struct {
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("connectivity failure: %v", e.Err)
}

func (e *ConnectivityError) Unwrap() error { return e.Err }
