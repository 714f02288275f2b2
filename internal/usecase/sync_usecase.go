// Package usecase defines the application's use case interfaces.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// SyncReport summarizes one reconciliation pass. A failed profile never
// aborts the pass; it is counted and the pass moves on.
type SyncReport struct {
	Total  int `json:"total"`
	Synced int `json:"synced"`
	Failed int `json:"failed"`
}

// SyncUsecase defines the pull-flow reconciliation use cases. The poll
// scheduler drives SyncAll on a fixed interval; SyncUserEsims serves
// on-demand refresh requests.
type SyncUsecase interface {
	// SyncAll reconciles every stored profile against the provider.
	SyncAll(ctx context.Context) (*SyncReport, error)

	// SyncUserEsims reconciles all profiles owned by one user.
	SyncUserEsims(ctx context.Context, userID uuid.UUID) (*SyncReport, error)

	// SyncEsim reconciles a single profile by ICCID.
	SyncEsim(ctx context.Context, iccid string) error
}
