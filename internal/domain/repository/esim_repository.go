// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"esimhub/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for eSIM persistence.
var (
	// ErrEsimNotFound is returned when an eSIM profile is not found.
	ErrEsimNotFound = errors.New("esim not found")
	// ErrDuplicateEsim is returned when a profile with the same ICCID or order number already exists.
	ErrDuplicateEsim = errors.New("esim already exists")
)

// EsimRepository defines the interface for eSIM profile database operations.
type EsimRepository interface {
	// CreateEsim persists a newly fulfilled eSIM profile. The ICCID and order
	// number are unique; a collision returns ErrDuplicateEsim.
	CreateEsim(ctx context.Context, esim *entity.Esim) error

	// FindEsimByID retrieves a profile by its unique ID.
	FindEsimByID(ctx context.Context, id uuid.UUID) (*entity.Esim, error)

	// FindEsimByICCID retrieves a profile by its ICCID.
	FindEsimByICCID(ctx context.Context, iccid string) (*entity.Esim, error)

	// FindEsimByOrderNo retrieves the profile provisioned from an order.
	FindEsimByOrderNo(ctx context.Context, orderNo string) (*entity.Esim, error)

	// FindEsimsByUser retrieves all profiles owned by a user, newest first.
	FindEsimsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Esim, error)

	// ListEsimRefs retrieves the sync projection for a user's profiles.
	ListEsimRefs(ctx context.Context, userID uuid.UUID) ([]*entity.EsimRef, error)

	// ListAllEsimRefs retrieves the sync projection for every stored profile.
	// The background poll iterates over this set.
	ListAllEsimRefs(ctx context.Context) ([]*entity.EsimRef, error)

	// UpdateEsimUsage applies refreshed usage and status fields to the profile
	// with the given ICCID.
	UpdateEsimUsage(ctx context.Context, iccid string, usage *entity.EsimUsage) error

	// UpdateEsimStatus sets only the canonical status of the profile with the
	// given ICCID.
	UpdateEsimStatus(ctx context.Context, iccid string, status entity.EsimStatus) error
}
