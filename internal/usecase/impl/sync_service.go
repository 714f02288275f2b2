// Package impl contains the concrete implementations of the use case interfaces.
package impl

import (
	"context"
	"log/slog"
	"time"

	"esimhub/internal/domain/constants"
	"esimhub/internal/domain/entity"
	"esimhub/internal/domain/repository"
	"esimhub/internal/domain/service"
	"esimhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type syncService struct {
	logger          *slog.Logger
	esimRepo        repository.EsimRepository
	provisioningSvc service.ProvisioningService
	eventPublisher  service.EventPublisher
}

// NewSyncService creates a new sync service instance
func NewSyncService(
	logger *slog.Logger,
	esimRepo repository.EsimRepository,
	provisioningSvc service.ProvisioningService,
	eventPublisher service.EventPublisher,
) usecase.SyncUsecase {
	return &syncService{
		logger:          logger,
		esimRepo:        esimRepo,
		provisioningSvc: provisioningSvc,
		eventPublisher:  eventPublisher,
	}
}

// SyncAll reconciles every stored profile against the provider.
func (s *syncService) SyncAll(ctx context.Context) (*usecase.SyncReport, error) {
	refs, err := s.esimRepo.ListAllEsimRefs(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles for sync")
	}

	return s.syncRefs(ctx, refs), nil
}

// SyncUserEsims reconciles all profiles owned by one user.
func (s *syncService) SyncUserEsims(ctx context.Context, userID uuid.UUID) (*usecase.SyncReport, error) {
	refs, err := s.esimRepo.ListEsimRefs(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user profiles for sync")
	}

	return s.syncRefs(ctx, refs), nil
}

// syncRefs reconciles each profile independently. A failed profile is
// counted and skipped; it never aborts the remaining profiles.
func (s *syncService) syncRefs(ctx context.Context, refs []*entity.EsimRef) *usecase.SyncReport {
	report := &usecase.SyncReport{Total: len(refs)}

	for _, ref := range refs {
		if err := s.syncRef(ctx, ref); err != nil {
			report.Failed++
			s.logger.LogAttrs(ctx, slog.LevelWarn, "profile sync failed",
				slog.String("iccid", ref.ICCID),
				slog.String("error", err.Error()),
			)

			continue
		}

		report.Synced++
	}

	return report
}

// SyncEsim reconciles a single profile by ICCID.
func (s *syncService) SyncEsim(ctx context.Context, iccid string) error {
	esim, err := s.esimRepo.FindEsimByICCID(ctx, iccid)
	if err != nil {
		return err
	}

	return s.syncRef(ctx, &entity.EsimRef{
		ID:      esim.ID,
		UserID:  esim.UserID,
		ICCID:   esim.ICCID,
		OrderNo: esim.OrderNo,
		Status:  esim.Status,
	})
}

func (s *syncService) syncRef(ctx context.Context, ref *entity.EsimRef) error {
	profiles, err := s.provisioningSvc.QueryProfiles(ctx, &service.ProfileQuery{ICCID: ref.ICCID})
	if err != nil {
		return errors.Wrapf(err, "failed to query provider for %s", ref.ICCID)
	}
	if len(profiles) == 0 {
		return errors.Errorf("provider returned no profile for %s", ref.ICCID)
	}

	profile := profiles[0]
	status := entity.NormalizeProviderStatus(profile.ProviderStatus)

	usage := &entity.EsimUsage{
		DataUsed:  profile.DataUsed,
		DataTotal: profile.DataTotal,
		Status:    status,
		UpdatedAt: time.Now(),
	}
	if profile.ExpiredAt != nil {
		usage.ExpiryDate = *profile.ExpiredAt
	}

	if err := s.esimRepo.UpdateEsimUsage(ctx, ref.ICCID, usage); err != nil {
		return errors.Wrapf(err, "failed to store usage for %s", ref.ICCID)
	}

	if status != ref.Status {
		s.publishStatusChange(ctx, ref, status)
	}

	return nil
}

// publishStatusChange emits a lifecycle event. Publishing is best effort and
// never fails the sync that triggered it.
func (s *syncService) publishStatusChange(ctx context.Context, ref *entity.EsimRef, status entity.EsimStatus) {
	event := &service.EsimLifecycleEvent{
		EventType: constants.EventStatusChanged,
		UserID:    ref.UserID.String(),
		ICCID:     ref.ICCID,
		OrderNo:   ref.OrderNo,
		Status:    string(status),
	}

	if err := s.eventPublisher.PublishLifecycleEvent(ctx, event); err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "failed to publish status change event",
			slog.String("iccid", ref.ICCID),
			slog.String("error", err.Error()),
		)
	}
}
