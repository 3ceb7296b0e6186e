package repository

import (
	"crypto/rand"
	"math/big"
)

// SlugLength is the number of characters in a share slug.
const SlugLength = 8

const slugAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var slugAlphabetSize = big.NewInt(int64(len(slugAlphabet)))

// NewSlug returns a random slug of SlugLength characters from [a-zA-Z0-9].
func NewSlug() string {
	b := make([]byte, SlugLength)
	for i := range b {
		n, err := rand.Int(rand.Reader, slugAlphabetSize)
		if err != nil {
			// crypto/rand does not fail on supported platforms
			panic(err)
		}
		b[i] = slugAlphabet[n.Int64()]
	}
	return string(b)
}

// ValidSlug reports whether s has the shape NewSlug produces.
func ValidSlug(s string) bool {
	if len(s) != SlugLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9') {
			return false
		}
	}
	return true
}
