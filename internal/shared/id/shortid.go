package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	// Base62 alphabet: 0-9, A-Z, a-z
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// DefaultLength is the default length for generated short IDs
	DefaultLength = 16
)

// Prefixes for different entity types (Stripe-style)
const (
	PrefixAdmin           = "adm"
	PrefixUser            = "usr"
	PrefixPlan            = "plan"
	PrefixSubscription    = "sub"
	PrefixInventory       = "inv"
	PrefixInvestmentEntry = "ent"
)

// Generate creates a random short ID with the specified length using Base62 encoding.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}

// GenerateWithPrefix creates a prefixed ID in the format "prefix_randomstring".
func GenerateWithPrefix(prefix string) (string, error) {
	id, err := Generate(DefaultLength)
	if err != nil {
		return "", err
	}
	return prefix + "_" + id, nil
}

// ParsePrefixedID extracts the prefix and short ID from a prefixed ID string.
// Example: ParsePrefixedID("sub_xK9mP2vL3nQ") returns ("sub", "xK9mP2vL3nQ", nil)
func ParsePrefixedID(prefixedID string) (prefix, shortID string, err error) {
	parts := strings.SplitN(prefixedID, "_", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid prefixed ID format: %s", prefixedID)
	}
	return parts[0], parts[1], nil
}

// ValidatePrefix checks if the prefixed ID has the expected prefix.
func ValidatePrefix(prefixedID, expectedPrefix string) error {
	prefix, _, err := ParsePrefixedID(prefixedID)
	if err != nil {
		return err
	}
	if prefix != expectedPrefix {
		return fmt.Errorf("invalid prefix: expected %s, got %s", expectedPrefix, prefix)
	}
	return nil
}

func NewAdminID() (string, error)           { return GenerateWithPrefix(PrefixAdmin) }
func NewUserID() (string, error)            { return GenerateWithPrefix(PrefixUser) }
func NewPlanID() (string, error)            { return GenerateWithPrefix(PrefixPlan) }
func NewSubscriptionID() (string, error)    { return GenerateWithPrefix(PrefixSubscription) }
func NewInventoryID() (string, error)       { return GenerateWithPrefix(PrefixInventory) }
func NewInvestmentEntryID() (string, error) { return GenerateWithPrefix(PrefixInvestmentEntry) }
