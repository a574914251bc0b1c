package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullDecimal(t *testing.T) {
	d, err := nullDecimal(nil)
	require.NoError(t, err)
	assert.False(t, d.Valid)

	s := "19.90"
	d, err = nullDecimal(&s)
	require.NoError(t, err)
	assert.True(t, d.Valid)
	assert.Equal(t, "19.9", d.Decimal.String())

	bad := "n/a"
	_, err = nullDecimal(&bad)
	assert.Error(t, err)
}
