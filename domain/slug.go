package domain

import (
	"crypto/rand"
	"fmt"
	"regexp"
)

// SlugLength is the length of auto-generated slugs
const SlugLength = 14

const slugAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var slugPattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// NewRandomSlug generates a cryptographically random alphanumeric slug of the
// given length.
func NewRandomSlug(length int) (string, error) {
	if length <= 0 {
		length = SlugLength
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random slug: %w", err)
	}

	for i, b := range buf {
		buf[i] = slugAlphabet[int(b)%len(slugAlphabet)]
	}
	return string(buf), nil
}

// IsValidSlug reports whether a user-supplied slug is URL-safe alphanumeric
func IsValidSlug(slug string) bool {
	return slugPattern.MatchString(slug)
}
