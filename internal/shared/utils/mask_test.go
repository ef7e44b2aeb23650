package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "u***@example.com", MaskEmail("user@example.com"))
	assert.Equal(t, "a***@goldvault.ae", MaskEmail("a@goldvault.ae"))
	assert.Equal(t, "***", MaskEmail("not-an-email"))
	assert.Equal(t, "***", MaskEmail("@example.com"))
	assert.Equal(t, "***", MaskEmail("user@"))
}

func TestMaskPhone(t *testing.T) {
	assert.Equal(t, "***0001", MaskPhone("500000001"))
	assert.Equal(t, "***", MaskPhone("123"))
}
