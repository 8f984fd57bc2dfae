// Package qrcode renders and parses the collection QR codes handed between
// depositors and collectors.
package qrcode

import (
	"encoding/json"
	"fmt"

	"greenloop/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		// Codes are scanned off phone screens in poor light, keep the
		// correction level high.
		level = qrcode.High
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateCollectionQR renders the collection payload as a PNG QR code.
func (s *qrcodeService) GenerateCollectionQR(payload service.CollectionQRPayload) ([]byte, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code payload: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseCollectionQR decodes scanned QR data back into the collection payload.
func (s *qrcodeService) ParseCollectionQR(qrData string) (*service.CollectionQRPayload, error) {
	var payload service.CollectionQRPayload
	if err := json.Unmarshal([]byte(qrData), &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal QR code payload: %w", err)
	}

	if payload.AnnouncementID == "" || payload.Token == "" {
		return nil, fmt.Errorf("incomplete QR code payload")
	}

	return &payload, nil
}
