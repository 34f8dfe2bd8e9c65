package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidMonth(t *testing.T) {
	for _, ok := range []string{"1", " 12 ", "07"} {
		assert.NoError(t, validMonth(ok), ok)
	}

	for _, bad := range []string{"0", "13", "jan", ""} {
		assert.Error(t, validMonth(bad), bad)
	}
}

func TestValidYear(t *testing.T) {
	assert.NoError(t, validYear("2025"))
	assert.Error(t, validYear("1899"))
	assert.Error(t, validYear("25x"))
}
