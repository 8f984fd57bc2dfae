package service

// CollectionQRPayload is the structured data embedded in a collection QR code.
// The collector's scan sends it back verbatim for validation.
type CollectionQRPayload struct {
	AnnouncementID string `json:"announcement_id"`
	Token          string `json:"token"`
	Timestamp      int64  `json:"timestamp"` // Unix seconds at issuance.
}

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateCollectionQR renders the payload as a scannable PNG image.
	GenerateCollectionQR(payload CollectionQRPayload) ([]byte, error)

	// ParseCollectionQR parses scanned QR data back into a payload.
	ParseCollectionQR(qrData string) (*CollectionQRPayload, error)
}
