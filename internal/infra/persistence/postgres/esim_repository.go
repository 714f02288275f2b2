// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"esimhub/internal/domain/entity"
	domainerrors "esimhub/internal/domain/errors"
	"esimhub/internal/domain/repository"
	"esimhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// esimRepository implements the repository.EsimRepository interface.
type esimRepository struct {
	db *gorm.DB
}

// NewEsimRepository is the constructor for esimRepository.
func NewEsimRepository(db *gorm.DB) repository.EsimRepository {
	return &esimRepository{
		db: db,
	}
}

// CreateEsim persists a newly fulfilled eSIM profile.
func (repo *esimRepository) CreateEsim(ctx context.Context, esim *entity.Esim) error {
	esimM := fromEsimDomain(esim)

	if err := repo.db.WithContext(ctx).Create(esimM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEsim
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrEsimAlreadyExists.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required esim information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create esim")
	}

	// Update the entity with generated values
	esim.ID = esimM.ID
	esim.CreatedAt = esimM.CreatedAt
	esim.UpdatedAt = esimM.UpdatedAt

	return nil
}

// FindEsimByID retrieves a profile by its unique ID.
func (repo *esimRepository) FindEsimByID(ctx context.Context, id uuid.UUID) (*entity.Esim, error) {
	var esimM model.EsimModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&esimM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEsimNotFound
		}

		return nil, errors.Wrap(err, "failed to find esim by ID")
	}

	return toEsimDomain(&esimM), nil
}

// FindEsimByICCID retrieves a profile by its ICCID.
func (repo *esimRepository) FindEsimByICCID(ctx context.Context, iccid string) (*entity.Esim, error) {
	var esimM model.EsimModel

	if err := repo.db.WithContext(ctx).
		Where("iccid = ?", iccid).
		First(&esimM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEsimNotFound
		}

		return nil, errors.Wrap(err, "failed to find esim by ICCID")
	}

	return toEsimDomain(&esimM), nil
}

// FindEsimByOrderNo retrieves the profile provisioned from an order.
func (repo *esimRepository) FindEsimByOrderNo(ctx context.Context, orderNo string) (*entity.Esim, error) {
	var esimM model.EsimModel

	if err := repo.db.WithContext(ctx).
		Where("order_no = ?", orderNo).
		First(&esimM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEsimNotFound
		}

		return nil, errors.Wrap(err, "failed to find esim by order number")
	}

	return toEsimDomain(&esimM), nil
}

// FindEsimsByUser retrieves all profiles owned by a user, newest first.
func (repo *esimRepository) FindEsimsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Esim, error) {
	var esimModels []*model.EsimModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("purchase_date DESC").
		Find(&esimModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find esims by user")
	}

	esims := make([]*entity.Esim, 0, len(esimModels))
	for _, esimM := range esimModels {
		esims = append(esims, toEsimDomain(esimM))
	}

	return esims, nil
}

// ListEsimRefs retrieves the sync projection for a user's profiles.
func (repo *esimRepository) ListEsimRefs(ctx context.Context, userID uuid.UUID) ([]*entity.EsimRef, error) {
	return listRefs(repo.db.WithContext(ctx).Where("user_id = ?", userID))
}

// ListAllEsimRefs retrieves the sync projection for every stored profile.
func (repo *esimRepository) ListAllEsimRefs(ctx context.Context) ([]*entity.EsimRef, error) {
	return listRefs(repo.db.WithContext(ctx))
}

func listRefs(query *gorm.DB) ([]*entity.EsimRef, error) {
	var esimModels []*model.EsimModel

	if err := query.
		Select("id", "user_id", "iccid", "order_no", "status").
		Find(&esimModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list esim refs")
	}

	refs := make([]*entity.EsimRef, 0, len(esimModels))
	for _, esimM := range esimModels {
		refs = append(refs, &entity.EsimRef{
			ID:      esimM.ID,
			UserID:  esimM.UserID,
			ICCID:   esimM.ICCID,
			OrderNo: esimM.OrderNo,
			Status:  entity.EsimStatus(esimM.Status),
		})
	}

	return refs, nil
}

// UpdateEsimUsage applies refreshed usage and status fields by ICCID.
func (repo *esimRepository) UpdateEsimUsage(ctx context.Context, iccid string, usage *entity.EsimUsage) error {
	updates := map[string]interface{}{
		"data_used":  usage.DataUsed,
		"status":     string(usage.Status),
		"updated_at": usage.UpdatedAt,
	}
	if usage.DataTotal > 0 {
		updates["data_total"] = usage.DataTotal
	}
	if !usage.ExpiryDate.IsZero() {
		updates["expiry_date"] = usage.ExpiryDate
	}

	result := repo.db.WithContext(ctx).
		Model(&model.EsimModel{}).
		Where("iccid = ?", iccid).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update esim usage")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEsimNotFound
	}

	return nil
}

// UpdateEsimStatus sets only the canonical status by ICCID.
func (repo *esimRepository) UpdateEsimStatus(ctx context.Context, iccid string, status entity.EsimStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EsimModel{}).
		Where("iccid = ?", iccid).
		Update("status", string(status))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update esim status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEsimNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toEsimDomain converts a GORM EsimModel to a domain Esim entity.
func toEsimDomain(data *model.EsimModel) *entity.Esim {
	if data == nil {
		return nil
	}

	return &entity.Esim{
		ID:             data.ID,
		UserID:         data.UserID,
		OrderNo:        data.OrderNo,
		ICCID:          data.ICCID,
		ActivationCode: data.ActivationCode,
		QRCode:         data.QRCode,
		PackageCode:    data.PackageCode,
		CountryCode:    data.CountryCode,
		CountryName:    data.CountryName,
		DataUsed:       data.DataUsed,
		DataTotal:      data.DataTotal,
		Status:         entity.EsimStatus(data.Status),
		PurchaseDate:   data.PurchaseDate,
		ExpiryDate:     data.ExpiryDate,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromEsimDomain converts a domain Esim entity to a GORM EsimModel.
func fromEsimDomain(data *entity.Esim) *model.EsimModel {
	if data == nil {
		return nil
	}

	return &model.EsimModel{
		ID:             data.ID,
		UserID:         data.UserID,
		OrderNo:        data.OrderNo,
		ICCID:          data.ICCID,
		ActivationCode: data.ActivationCode,
		QRCode:         data.QRCode,
		PackageCode:    data.PackageCode,
		CountryCode:    data.CountryCode,
		CountryName:    data.CountryName,
		DataUsed:       data.DataUsed,
		DataTotal:      data.DataTotal,
		Status:         string(data.Status),
		PurchaseDate:   data.PurchaseDate,
		ExpiryDate:     data.ExpiryDate,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
