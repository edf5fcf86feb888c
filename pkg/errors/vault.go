package errors

// ErrSecretNotFound is returned when a vault secret is not found in path.
var ErrSecretNotFound = New("Secrets not found")
