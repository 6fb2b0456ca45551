package pagination_test

import (
	"testing"
	"time"

	"github.com/fechasapp/fechas_backend/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken_RoundTrip(t *testing.T) {
	eventDate := time.Date(2025, 11, 14, 21, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 10, 2, 9, 30, 15, 123456789, time.UTC)

	token := pagination.EncodeToken(eventDate, createdAt)
	gotDate, gotCreated, err := pagination.DecodeToken(token)

	require.NoError(t, err)
	assert.True(t, eventDate.Equal(gotDate))
	assert.True(t, createdAt.Equal(gotCreated))
}

func TestDecodeToken_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "not base64", token: "%%%not-base64%%%"},
		{name: "missing separator", token: "MjAyNS0xMS0xNFQyMTowMDowMFo"},
		{name: "garbage dates", token: "Zm9vfGJhcg=="}, // "foo|bar"
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := pagination.DecodeToken(tt.token)
			assert.Error(t, err)
		})
	}
}
