package core

import "context"

// Requests is a util interface for making API Requests
type Requests interface {
	// MakeAPIRequest is an utility function for making API requests
	MakeAPIRequest(ctx context.Context, httpMethod, endpoint string, body []byte, auth RequestAuth) ([]byte, error)
}

// RequestAuth carries the credentials attached to an API request.
type RequestAuth struct {
	Token    string
	Username string
	Password string
	Headers  map[string]string
}
