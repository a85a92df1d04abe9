package htmltext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "Book Now", Normalize("  Book\n\tNow  "))
	assert.Equal(t, "Limited seats 3 available", Normalize("Limited seats 3\navailable"))
	assert.Equal(t, "", Normalize("    \n "))
	assert.Equal(t, "plain", Normalize("plain"))
}
