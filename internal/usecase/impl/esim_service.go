package impl

import (
	"context"
	"log/slog"

	"esimhub/internal/domain/constants"
	"esimhub/internal/domain/entity"
	domainerrors "esimhub/internal/domain/errors"
	"esimhub/internal/domain/repository"
	"esimhub/internal/domain/service"
	"esimhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type esimService struct {
	logger          *slog.Logger
	esimRepo        repository.EsimRepository
	provisioningSvc service.ProvisioningService
	qrcodeSvc       service.QRCodeService
	eventPublisher  service.EventPublisher
}

// NewEsimService creates a new eSIM management service instance
func NewEsimService(
	logger *slog.Logger,
	esimRepo repository.EsimRepository,
	provisioningSvc service.ProvisioningService,
	qrcodeSvc service.QRCodeService,
	eventPublisher service.EventPublisher,
) usecase.EsimUsecase {
	return &esimService{
		logger:          logger,
		esimRepo:        esimRepo,
		provisioningSvc: provisioningSvc,
		qrcodeSvc:       qrcodeSvc,
		eventPublisher:  eventPublisher,
	}
}

// ListUserEsims retrieves the user's profiles, newest first.
func (s *esimService) ListUserEsims(ctx context.Context, userID uuid.UUID) ([]*entity.Esim, error) {
	return s.esimRepo.FindEsimsByUser(ctx, userID)
}

// GetEsim retrieves one profile after verifying ownership.
func (s *esimService) GetEsim(ctx context.Context, userID, esimID uuid.UUID) (*entity.Esim, error) {
	return s.ownedEsim(ctx, userID, esimID)
}

// GetActivationQR renders the profile's activation code as a PNG QR image.
func (s *esimService) GetActivationQR(ctx context.Context, userID, esimID uuid.UUID) ([]byte, error) {
	esim, err := s.ownedEsim(ctx, userID, esimID)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcodeSvc.GenerateActivationQR(esim.ActivationCode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render activation QR")
	}

	return png, nil
}

// TopUpEsim adds a data package to the profile, then refreshes local state
// from the provider.
func (s *esimService) TopUpEsim(ctx context.Context, userID, esimID uuid.UUID, packageCode string) error {
	esim, err := s.ownedEsim(ctx, userID, esimID)
	if err != nil {
		return err
	}

	transactionID := uuid.NewString()
	if err := s.provisioningSvc.TopUp(ctx, esim.ICCID, packageCode, transactionID); err != nil {
		return err
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "profile topped up",
		slog.String("iccid", esim.ICCID),
		slog.String("package_code", packageCode),
		slog.String("transaction_id", transactionID),
	)

	s.publishStatus(ctx, esim, constants.EventUsageUpdated, esim.Status)

	return nil
}

// SuspendEsim pauses service on the profile.
func (s *esimService) SuspendEsim(ctx context.Context, userID, esimID uuid.UUID) error {
	return s.transition(ctx, userID, esimID, entity.EsimStatusInactive, s.provisioningSvc.Suspend)
}

// UnsuspendEsim resumes service on a suspended profile.
func (s *esimService) UnsuspendEsim(ctx context.Context, userID, esimID uuid.UUID) error {
	return s.transition(ctx, userID, esimID, entity.EsimStatusActive, s.provisioningSvc.Unsuspend)
}

// RevokeEsim permanently retires the profile.
func (s *esimService) RevokeEsim(ctx context.Context, userID, esimID uuid.UUID) error {
	return s.transition(ctx, userID, esimID, entity.EsimStatusExpired, s.provisioningSvc.Revoke)
}

// transition runs a provider-side state change and mirrors it locally once
// the provider accepts. The local write happens only after provider success
// so the store never runs ahead of upstream.
func (s *esimService) transition(
	ctx context.Context,
	userID, esimID uuid.UUID,
	target entity.EsimStatus,
	providerOp func(ctx context.Context, iccid string) error,
) error {
	esim, err := s.ownedEsim(ctx, userID, esimID)
	if err != nil {
		return err
	}

	if err := providerOp(ctx, esim.ICCID); err != nil {
		return err
	}

	if err := s.esimRepo.UpdateEsimStatus(ctx, esim.ICCID, target); err != nil {
		return errors.Wrap(err, "failed to store status transition")
	}

	if target != esim.Status {
		s.publishStatus(ctx, esim, constants.EventStatusChanged, target)
	}

	return nil
}

func (s *esimService) ownedEsim(ctx context.Context, userID, esimID uuid.UUID) (*entity.Esim, error) {
	esim, err := s.esimRepo.FindEsimByID(ctx, esimID)
	if err != nil {
		if errors.Is(err, repository.ErrEsimNotFound) {
			return nil, domainerrors.ErrEsimNotFound
		}

		return nil, err
	}

	if esim.UserID != userID {
		return nil, domainerrors.ErrEsimOwnershipViolation
	}

	return esim, nil
}

func (s *esimService) publishStatus(ctx context.Context, esim *entity.Esim, eventType string, status entity.EsimStatus) {
	event := &service.EsimLifecycleEvent{
		EventType: eventType,
		UserID:    esim.UserID.String(),
		ICCID:     esim.ICCID,
		OrderNo:   esim.OrderNo,
		Status:    string(status),
	}

	if err := s.eventPublisher.PublishLifecycleEvent(ctx, event); err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "failed to publish lifecycle event",
			slog.String("iccid", esim.ICCID),
			slog.String("error", err.Error()),
		)
	}
}
