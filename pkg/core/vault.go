package core

// Vault defines operation for working with vault store
type Vault interface {
	// CreateSecret create the Vault secret.
	CreateSecret(path string, values map[string]interface{}) error
	// ReadSecret returns the secret in given path.
	ReadSecret(path string) (map[string]interface{}, error)
}
