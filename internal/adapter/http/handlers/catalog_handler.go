package handlers

import (
	"errors"
	"net/http"
	request "sparkle_shine/internal/adapter/http/dto/request"
	response "sparkle_shine/internal/adapter/http/dto/response"
	"sparkle_shine/internal/domain/entities"
	"sparkle_shine/internal/usecase"
	"sparkle_shine/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// CatalogHandler serves the fixed service catalog and stateless quotes.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListPackages godoc
// @Summary      List cleaning packages
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   response.PackageResponse
// @Router       /packages [get]
func (h *CatalogHandler) ListPackages(c *gin.Context) {
	packages, err := h.usecase.ListPackages(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServicePackages(packages))
}

// PricingTable godoc
// @Summary      Room surcharges and frequency discounts
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.PricingTableResponse
// @Router       /pricing [get]
func (h *CatalogHandler) PricingTable(c *gin.Context) {
	table, err := h.usecase.PricingTable(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPricingTable(table))
}

// Quote godoc
// @Summary      Price an ad-hoc configuration
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        quote  body      request.QuoteRequest  true  "Configuration"
// @Success      200    {object}  response.QuoteResponse
// @Failure      400    {object}  pkg.HTTPError
// @Router       /quotes [post]
func (h *CatalogHandler) Quote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.Quote(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrUnknownPackage):
		return pkg.NewDomainErrorSimple("UNKNOWN_PACKAGE", "Unknown service package", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidFrequency):
		return pkg.NewDomainErrorSimple("INVALID_FREQUENCY", "Invalid frequency", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidRoomCount):
		return pkg.NewDomainErrorSimple("INVALID_ROOM_COUNT", "Room counts cannot be negative", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
