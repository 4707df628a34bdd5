package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEuro(t *testing.T) {
	assert.Equal(t, "30.000 €", Euro(30000))
	assert.Equal(t, "1.666 €", Euro(1665.90))
	assert.Equal(t, "950 €", Euro(950))
	assert.Equal(t, "0 €", Euro(0))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "22,26%", Percent(22.26))
	assert.Equal(t, "9,19%", Rate(0.0919))
}
