package utils

import (
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// GenerateUUID generates uuid v4
func GenerateUUID() string {
	uuidV4 := uuid.New() // panics on error
	return strings.Map(func(r rune) rune {
		if r == '-' {
			return -1
		}
		return r
	}, uuidV4.String())
}

// MaskToken hides all but the last four characters of a secret for logging.
func MaskToken(token string) string {
	const visible = 4
	if len(token) <= visible {
		return strings.Repeat("*", len(token))
	}
	return strings.Repeat("*", len(token)-visible) + token[len(token)-visible:]
}

// RedactURL drops any userinfo from an http(s) remote url so it can be logged.
// scp style remotes carry no secret and are returned unchanged.
func RedactURL(remoteURL string) string {
	u, err := url.Parse(strings.TrimSpace(remoteURL))
	if err != nil || u.User == nil {
		return remoteURL
	}
	u.User = nil
	return u.String()
}
