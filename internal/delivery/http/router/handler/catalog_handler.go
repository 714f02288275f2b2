package handler

import (
	"log/slog"
	"net/http"

	"esimhub/internal/delivery/http/response"
	"esimhub/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CatalogHandler holds dependencies for package catalog handlers
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListPackages returns purchasable packages, optionally filtered by location
func (h *CatalogHandler) ListPackages(c echo.Context) error {
	packages, err := h.uc.ListPackages(c.Request().Context(), c.QueryParam("location"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, packages, "")
}

// GetBalance returns the reseller account balance
func (h *CatalogHandler) GetBalance(c echo.Context) error {
	balance, err := h.uc.GetBalance(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, balance, "")
}
