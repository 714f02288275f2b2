package service

// QRCodeService defines the interface for activation QR code generation.
type QRCodeService interface {
	// GenerateActivationQR renders an LPA activation string as a PNG QR code.
	GenerateActivationQR(activationCode string) ([]byte, error)
}
