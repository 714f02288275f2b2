package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"esimhub/internal/domain/constants"
	"esimhub/internal/domain/entity"
	"esimhub/internal/domain/service"
	mockRepo "esimhub/internal/mocks/repository"
	mockSvc "esimhub/internal/mocks/service"
	"esimhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestSyncService(t *testing.T) (
	usecase.SyncUsecase,
	*mockRepo.MockEsimRepository,
	*mockSvc.MockProvisioningService,
	*mockSvc.MockEventPublisher,
) {
	esimRepo := mockRepo.NewMockEsimRepository(t)
	provisioningSvc := mockSvc.NewMockProvisioningService(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc := NewSyncService(logger, esimRepo, provisioningSvc, eventPublisher)

	return svc, esimRepo, provisioningSvc, eventPublisher
}

func TestSyncService_SyncAll_Success(t *testing.T) {
	svc, esimRepo, provisioningSvc, _ := createTestSyncService(t)
	ctx := context.Background()

	refs := []*entity.EsimRef{
		{ID: uuid.New(), UserID: uuid.New(), ICCID: "8944500000000000001", Status: entity.EsimStatusActive},
		{ID: uuid.New(), UserID: uuid.New(), ICCID: "8944500000000000002", Status: entity.EsimStatusActive},
	}
	esimRepo.EXPECT().ListAllEsimRefs(ctx).Return(refs, nil)

	for _, ref := range refs {
		provisioningSvc.EXPECT().
			QueryProfiles(ctx, &service.ProfileQuery{ICCID: ref.ICCID}).
			Return([]*service.ProfileInfo{{
				ICCID:          ref.ICCID,
				ProviderStatus: entity.ProviderStatusGotResource,
				DataUsed:       100,
				DataTotal:      1000,
			}}, nil)
		esimRepo.EXPECT().
			UpdateEsimUsage(ctx, ref.ICCID, mock.MatchedBy(func(usage *entity.EsimUsage) bool {
				return usage.DataUsed == 100 && usage.Status == entity.EsimStatusActive
			})).
			Return(nil)
	}

	report, err := svc.SyncAll(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 2, report.Synced)
	assert.Equal(t, 0, report.Failed)
}

func TestSyncService_SyncAll_PartialFailureContinues(t *testing.T) {
	svc, esimRepo, provisioningSvc, _ := createTestSyncService(t)
	ctx := context.Background()

	failing := &entity.EsimRef{ID: uuid.New(), UserID: uuid.New(), ICCID: "8944500000000000003", Status: entity.EsimStatusActive}
	healthy := &entity.EsimRef{ID: uuid.New(), UserID: uuid.New(), ICCID: "8944500000000000004", Status: entity.EsimStatusActive}
	esimRepo.EXPECT().ListAllEsimRefs(ctx).Return([]*entity.EsimRef{failing, healthy}, nil)

	provisioningSvc.EXPECT().
		QueryProfiles(ctx, &service.ProfileQuery{ICCID: failing.ICCID}).
		Return(nil, assert.AnError)

	provisioningSvc.EXPECT().
		QueryProfiles(ctx, &service.ProfileQuery{ICCID: healthy.ICCID}).
		Return([]*service.ProfileInfo{{
			ICCID:          healthy.ICCID,
			ProviderStatus: entity.ProviderStatusGotResource,
		}}, nil)
	esimRepo.EXPECT().UpdateEsimUsage(ctx, healthy.ICCID, mock.Anything).Return(nil)

	report, err := svc.SyncAll(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 1, report.Synced)
	assert.Equal(t, 1, report.Failed)
}

func TestSyncService_SyncAll_StatusChangePublishesEvent(t *testing.T) {
	svc, esimRepo, provisioningSvc, eventPublisher := createTestSyncService(t)
	ctx := context.Background()

	ref := &entity.EsimRef{
		ID:      uuid.New(),
		UserID:  uuid.New(),
		ICCID:   "8944500000000000005",
		OrderNo: "ORD-2001",
		Status:  entity.EsimStatusActive,
	}
	esimRepo.EXPECT().ListAllEsimRefs(ctx).Return([]*entity.EsimRef{ref}, nil)

	provisioningSvc.EXPECT().
		QueryProfiles(ctx, &service.ProfileQuery{ICCID: ref.ICCID}).
		Return([]*service.ProfileInfo{{
			ICCID:          ref.ICCID,
			ProviderStatus: entity.ProviderStatusSuspend,
		}}, nil)
	esimRepo.EXPECT().
		UpdateEsimUsage(ctx, ref.ICCID, mock.MatchedBy(func(usage *entity.EsimUsage) bool {
			return usage.Status == entity.EsimStatusInactive
		})).
		Return(nil)
	eventPublisher.EXPECT().
		PublishLifecycleEvent(ctx, mock.MatchedBy(func(event *service.EsimLifecycleEvent) bool {
			return event.EventType == constants.EventStatusChanged &&
				event.ICCID == ref.ICCID &&
				event.Status == "inactive"
		})).
		Return(nil)

	report, err := svc.SyncAll(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Synced)
}

func TestSyncService_SyncAll_UnknownProviderStatusFailsSafe(t *testing.T) {
	svc, esimRepo, provisioningSvc, eventPublisher := createTestSyncService(t)
	ctx := context.Background()

	ref := &entity.EsimRef{
		ID:     uuid.New(),
		UserID: uuid.New(),
		ICCID:  "8944500000000000006",
		Status: entity.EsimStatusActive,
	}
	esimRepo.EXPECT().ListAllEsimRefs(ctx).Return([]*entity.EsimRef{ref}, nil)

	provisioningSvc.EXPECT().
		QueryProfiles(ctx, &service.ProfileQuery{ICCID: ref.ICCID}).
		Return([]*service.ProfileInfo{{
			ICCID:          ref.ICCID,
			ProviderStatus: "SOME_NEW_CODE",
		}}, nil)
	esimRepo.EXPECT().
		UpdateEsimUsage(ctx, ref.ICCID, mock.MatchedBy(func(usage *entity.EsimUsage) bool {
			return usage.Status == entity.EsimStatusInactive
		})).
		Return(nil)
	eventPublisher.EXPECT().PublishLifecycleEvent(ctx, mock.Anything).Return(nil)

	report, err := svc.SyncAll(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Synced)
}

func TestSyncService_SyncAll_EventPublishFailureDoesNotFailSync(t *testing.T) {
	svc, esimRepo, provisioningSvc, eventPublisher := createTestSyncService(t)
	ctx := context.Background()

	ref := &entity.EsimRef{
		ID:     uuid.New(),
		UserID: uuid.New(),
		ICCID:  "8944500000000000007",
		Status: entity.EsimStatusActive,
	}
	esimRepo.EXPECT().ListAllEsimRefs(ctx).Return([]*entity.EsimRef{ref}, nil)

	provisioningSvc.EXPECT().
		QueryProfiles(ctx, &service.ProfileQuery{ICCID: ref.ICCID}).
		Return([]*service.ProfileInfo{{
			ICCID:          ref.ICCID,
			ProviderStatus: entity.ProviderStatusExpired,
		}}, nil)
	esimRepo.EXPECT().UpdateEsimUsage(ctx, ref.ICCID, mock.Anything).Return(nil)
	eventPublisher.EXPECT().PublishLifecycleEvent(ctx, mock.Anything).Return(assert.AnError)

	report, err := svc.SyncAll(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Synced)
	assert.Equal(t, 0, report.Failed)
}

func TestSyncService_SyncEsim_AppliesExpiry(t *testing.T) {
	svc, esimRepo, provisioningSvc, _ := createTestSyncService(t)
	ctx := context.Background()

	expiry := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
	esim := &entity.Esim{
		ID:     uuid.New(),
		UserID: uuid.New(),
		ICCID:  "8944500000000000008",
		Status: entity.EsimStatusActive,
	}

	esimRepo.EXPECT().FindEsimByICCID(ctx, esim.ICCID).Return(esim, nil)
	provisioningSvc.EXPECT().
		QueryProfiles(ctx, &service.ProfileQuery{ICCID: esim.ICCID}).
		Return([]*service.ProfileInfo{{
			ICCID:          esim.ICCID,
			ProviderStatus: entity.ProviderStatusGotResource,
			ExpiredAt:      &expiry,
		}}, nil)
	esimRepo.EXPECT().
		UpdateEsimUsage(ctx, esim.ICCID, mock.MatchedBy(func(usage *entity.EsimUsage) bool {
			return usage.ExpiryDate.Equal(expiry)
		})).
		Return(nil)

	err := svc.SyncEsim(ctx, esim.ICCID)

	require.NoError(t, err)
}

func TestSyncService_SyncEsim_ProviderReturnsNoProfile(t *testing.T) {
	svc, esimRepo, provisioningSvc, _ := createTestSyncService(t)
	ctx := context.Background()

	esim := &entity.Esim{
		ID:     uuid.New(),
		UserID: uuid.New(),
		ICCID:  "8944500000000000009",
		Status: entity.EsimStatusActive,
	}

	esimRepo.EXPECT().FindEsimByICCID(ctx, esim.ICCID).Return(esim, nil)
	provisioningSvc.EXPECT().
		QueryProfiles(ctx, &service.ProfileQuery{ICCID: esim.ICCID}).
		Return([]*service.ProfileInfo{}, nil)

	err := svc.SyncEsim(ctx, esim.ICCID)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no profile")
}

func TestSyncService_SyncUserEsims_ScopedToUser(t *testing.T) {
	svc, esimRepo, provisioningSvc, _ := createTestSyncService(t)
	ctx := context.Background()

	userID := uuid.New()
	ref := &entity.EsimRef{
		ID:     uuid.New(),
		UserID: userID,
		ICCID:  "8944500000000000010",
		Status: entity.EsimStatusActive,
	}
	esimRepo.EXPECT().ListEsimRefs(ctx, userID).Return([]*entity.EsimRef{ref}, nil)

	provisioningSvc.EXPECT().
		QueryProfiles(ctx, &service.ProfileQuery{ICCID: ref.ICCID}).
		Return([]*service.ProfileInfo{{
			ICCID:          ref.ICCID,
			ProviderStatus: entity.ProviderStatusGotResource,
		}}, nil)
	esimRepo.EXPECT().UpdateEsimUsage(ctx, ref.ICCID, mock.Anything).Return(nil)

	report, err := svc.SyncUserEsims(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Synced)
}
