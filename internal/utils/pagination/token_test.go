package pagination_test

import (
	"testing"
	"time"

	"github.com/nvallejos/contable/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	entryDate := time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC)

	token := pagination.EncodeToken(entryDate, 42)
	gotDate, gotNumber, err := pagination.DecodeToken(token)

	require.NoError(t, err)
	assert.True(t, entryDate.Equal(gotDate))
	assert.Equal(t, int64(42), gotNumber)
}

func TestDecodeToken_Invalid(t *testing.T) {
	_, _, err := pagination.DecodeToken("not-base64!!")
	require.Error(t, err)

	// Valid base64, wrong structure.
	_, _, err = pagination.DecodeToken("aGVsbG8=")
	require.Error(t, err)
}
