package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "esimhub/internal/delivery/context"
	"esimhub/internal/delivery/http/response"
	domainerrors "esimhub/internal/domain/errors"
	"esimhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// EsimHandler holds dependencies for eSIM profile handlers
type EsimHandler struct {
	esimUC usecase.EsimUsecase
	syncUC usecase.SyncUsecase
	logger *slog.Logger
}

// NewEsimHandler is the constructor for EsimHandler
func NewEsimHandler(esimUC usecase.EsimUsecase, syncUC usecase.SyncUsecase, logger *slog.Logger) *EsimHandler {
	return &EsimHandler{
		esimUC: esimUC,
		syncUC: syncUC,
		logger: logger,
	}
}

// TopUpRequest represents the request body for topping up a profile
type TopUpRequest struct {
	PackageCode string `json:"package_code" validate:"required"`
}

// List returns the authenticated user's eSIM profiles
func (h *EsimHandler) List(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	esims, err := h.esimUC.ListUserEsims(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, esims, "")
}

// Get returns one eSIM profile
func (h *EsimHandler) Get(c echo.Context) error {
	userID, esimID, err := esimRequestIDs(c)
	if err != nil {
		return err
	}

	esim, err := h.esimUC.GetEsim(c.Request().Context(), userID, esimID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, esim, "")
}

// ActivationQR streams the profile's activation QR code as a PNG image
func (h *EsimHandler) ActivationQR(c echo.Context) error {
	userID, esimID, err := esimRequestIDs(c)
	if err != nil {
		return err
	}

	png, err := h.esimUC.GetActivationQR(c.Request().Context(), userID, esimID)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// TopUp adds a data package to the profile
func (h *EsimHandler) TopUp(c echo.Context) error {
	userID, esimID, err := esimRequestIDs(c)
	if err != nil {
		return err
	}

	var req TopUpRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid top up input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.esimUC.TopUpEsim(c.Request().Context(), userID, esimID, req.PackageCode); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Top up accepted")
}

// Suspend pauses service on the profile
func (h *EsimHandler) Suspend(c echo.Context) error {
	userID, esimID, err := esimRequestIDs(c)
	if err != nil {
		return err
	}

	if err := h.esimUC.SuspendEsim(c.Request().Context(), userID, esimID); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "eSIM suspended")
}

// Unsuspend resumes service on the profile
func (h *EsimHandler) Unsuspend(c echo.Context) error {
	userID, esimID, err := esimRequestIDs(c)
	if err != nil {
		return err
	}

	if err := h.esimUC.UnsuspendEsim(c.Request().Context(), userID, esimID); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "eSIM unsuspended")
}

// Revoke permanently retires the profile
func (h *EsimHandler) Revoke(c echo.Context) error {
	userID, esimID, err := esimRequestIDs(c)
	if err != nil {
		return err
	}

	if err := h.esimUC.RevokeEsim(c.Request().Context(), userID, esimID); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "eSIM revoked")
}

// Sync reconciles all of the user's profiles against the provider on demand
func (h *EsimHandler) Sync(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	report, err := h.syncUC.SyncUserEsims(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, report, "Sync finished")
}

// esimRequestIDs extracts the authenticated user and the :id path parameter.
// Errors are domain errors so the central error handler renders them.
func esimRequestIDs(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	esimID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid eSIM ID")
	}

	return userID, esimID, nil
}

// authenticatedUserID reads the user ID stored by the auth middleware.
func authenticatedUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrTokenInvalid
	}

	return userID, nil
}
