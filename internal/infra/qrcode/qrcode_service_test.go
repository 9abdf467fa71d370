package qrcode

import (
	"encoding/json"
	"testing"

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
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateBookingQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	bookingID := uuid.New()

	qrBytes, err := service.GenerateBookingQR(bookingID, "BK-2026-0001")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateBookingQR_DifferentSizes(t *testing.T) {
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
			service := NewQRCodeService(tt.size, "M")

			qrBytes, err := service.GenerateBookingQR(uuid.New(), "BK-2026-0002")
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_ParseBookingQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	bookingID := uuid.New()

	// Create valid QR data
	data := QRCodeData{
		BookingID: bookingID.String(),
		Reference: "BK-2026-0003",
		Type:      "booking",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsedID, reference, err := service.ParseBookingQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, bookingID, parsedID)
	assert.Equal(t, "BK-2026-0003", reference)
}

func TestQRCodeService_ParseBookingQR_InvalidData(t *testing.T) {
	service := NewQRCodeService(256, "M")

	tests := []struct {
		name   string
		qrData string
	}{
		{"Not JSON", "not-json-at-all"},
		{"Wrong type", `{"booking_id":"` + uuid.NewString() + `","reference":"BK-1","type":"subscription"}`},
		{"Bad UUID", `{"booking_id":"not-a-uuid","reference":"BK-1","type":"booking"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsedID, reference, err := service.ParseBookingQR(tt.qrData)
			assert.Error(t, err)
			assert.Equal(t, uuid.Nil, parsedID)
			assert.Empty(t, reference)
		})
	}
}

func TestQRCodeService_RoundTrip(t *testing.T) {
	service := NewQRCodeService(256, "H")
	bookingID := uuid.New()

	qrBytes, err := service.GenerateBookingQR(bookingID, "BK-2026-0004")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// The encoded payload is the JSON document the parser accepts
	data := QRCodeData{
		BookingID: bookingID.String(),
		Reference: "BK-2026-0004",
		Type:      "booking",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsedID, reference, err := service.ParseBookingQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, bookingID, parsedID)
	assert.Equal(t, "BK-2026-0004", reference)
}
