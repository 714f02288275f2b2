// Package qrcode renders eSIM activation codes as installable QR images.
package qrcode

import (
	"fmt"
	"strings"

	"esimhub/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

// lpaPrefix is the scheme carried by installable activation strings.
const lpaPrefix = "LPA:"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
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
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateActivationQR renders an LPA activation string as a PNG QR code.
// Device eSIM installers expect the raw activation string as the payload, so
// no wrapper encoding is applied.
func (s *qrcodeService) GenerateActivationQR(activationCode string) ([]byte, error) {
	if strings.TrimSpace(activationCode) == "" {
		return nil, fmt.Errorf("activation code is empty")
	}
	if !strings.HasPrefix(activationCode, lpaPrefix) {
		return nil, fmt.Errorf("activation code missing %s prefix", lpaPrefix)
	}

	qrCode, err := qrcode.New(activationCode, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
