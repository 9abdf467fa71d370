package service

import "github.com/google/uuid"

// QRCodeService defines the interface for QR code generation and parsing.
type QRCodeService interface {
	// GenerateBookingQR generates a QR code PNG carrying a booking reference.
	GenerateBookingQR(bookingID uuid.UUID, reference string) ([]byte, error)

	// ParseBookingQR parses scanned QR data and returns the booking ID and reference.
	ParseBookingQR(qrData string) (uuid.UUID, string, error)
}
