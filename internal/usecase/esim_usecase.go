package usecase

import (
	"context"

	"esimhub/internal/domain/entity"

	"github.com/google/uuid"
)

// EsimUsecase defines the eSIM profile management use cases. Every operation
// verifies that the profile belongs to the requesting user.
type EsimUsecase interface {
	// ListUserEsims retrieves the user's profiles, newest first.
	ListUserEsims(ctx context.Context, userID uuid.UUID) ([]*entity.Esim, error)

	// GetEsim retrieves one profile.
	GetEsim(ctx context.Context, userID, esimID uuid.UUID) (*entity.Esim, error)

	// GetActivationQR renders the profile's activation code as a PNG QR image.
	GetActivationQR(ctx context.Context, userID, esimID uuid.UUID) ([]byte, error)

	// TopUpEsim adds a data package to the profile.
	TopUpEsim(ctx context.Context, userID, esimID uuid.UUID, packageCode string) error

	// SuspendEsim pauses service on the profile.
	SuspendEsim(ctx context.Context, userID, esimID uuid.UUID) error

	// UnsuspendEsim resumes service on a suspended profile.
	UnsuspendEsim(ctx context.Context, userID, esimID uuid.UUID) error

	// RevokeEsim permanently retires the profile.
	RevokeEsim(ctx context.Context, userID, esimID uuid.UUID) error
}
