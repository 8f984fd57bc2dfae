package qrcode

import (
	"encoding/json"
	"testing"
	"time"

	"greenloop/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, svc)
		})
	}
}

func TestQRCodeService_GenerateCollectionQR(t *testing.T) {
	svc := NewQRCodeService(256, "H")
	payload := service.CollectionQRPayload{
		AnnouncementID: uuid.New().String(),
		Token:          "0011223344556677",
		Timestamp:      time.Now().Unix(),
	}

	qrBytes, err := svc.GenerateCollectionQR(payload)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateCollectionQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.size, "H")
			payload := service.CollectionQRPayload{
				AnnouncementID: uuid.New().String(),
				Token:          "aabbccdd",
				Timestamp:      time.Now().Unix(),
			}

			qrBytes, err := svc.GenerateCollectionQR(payload)
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_ParseCollectionQR(t *testing.T) {
	svc := NewQRCodeService(256, "H")
	original := service.CollectionQRPayload{
		AnnouncementID: uuid.New().String(),
		Token:          "deadbeef",
		Timestamp:      time.Now().Unix(),
	}
	jsonData, err := json.Marshal(original)
	require.NoError(t, err)

	parsed, err := svc.ParseCollectionQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, original.AnnouncementID, parsed.AnnouncementID)
	assert.Equal(t, original.Token, parsed.Token)
	assert.Equal(t, original.Timestamp, parsed.Timestamp)
}

func TestQRCodeService_ParseCollectionQR_InvalidJSON(t *testing.T) {
	svc := NewQRCodeService(256, "H")

	_, err := svc.ParseCollectionQR("invalid json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal QR code payload")
}

func TestQRCodeService_ParseCollectionQR_MissingFields(t *testing.T) {
	svc := NewQRCodeService(256, "H")

	tests := []struct {
		name    string
		payload service.CollectionQRPayload
	}{
		{"missing token", service.CollectionQRPayload{AnnouncementID: uuid.New().String()}},
		{"missing announcement", service.CollectionQRPayload{Token: "deadbeef"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jsonData, err := json.Marshal(tt.payload)
			require.NoError(t, err)

			_, err = svc.ParseCollectionQR(string(jsonData))
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "incomplete QR code payload")
		})
	}
}
