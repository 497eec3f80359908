// Package id generates Stripe-style prefixed identifiers ("cal_7Hq2...").
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// DefaultLength is the length of the random part of an identifier.
	DefaultLength = 12
)

const (
	PrefixCalendarFeed = "cal"
	PrefixCommuteRoute = "route"
)

// Generate returns a cryptographically random Base62 string.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}
	max := big.NewInt(int64(len(alphabet)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		out[i] = alphabet[n.Int64()]
	}
	return string(out), nil
}

// GenerateWithPrefix returns "prefix_<random>".
func GenerateWithPrefix(prefix string, length int) (string, error) {
	s, err := Generate(length)
	if err != nil {
		return "", err
	}
	return prefix + "_" + s, nil
}

// ParsePrefixedID splits "prefix_short" into its parts.
func ParsePrefixedID(prefixedID string) (prefix, shortID string, err error) {
	prefix, shortID, ok := strings.Cut(prefixedID, "_")
	if !ok || prefix == "" || shortID == "" {
		return "", "", fmt.Errorf("invalid prefixed ID format: %s", prefixedID)
	}
	return prefix, shortID, nil
}

// HasPrefix reports whether prefixedID is well formed and carries expected.
func HasPrefix(prefixedID, expected string) bool {
	prefix, _, err := ParsePrefixedID(prefixedID)
	return err == nil && prefix == expected
}

func NewCalendarFeedID() (string, error) {
	return GenerateWithPrefix(PrefixCalendarFeed, DefaultLength)
}

func NewCommuteRouteID() (string, error) {
	return GenerateWithPrefix(PrefixCommuteRoute, DefaultLength)
}
