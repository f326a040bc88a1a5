package routes

import (
	"sparkle_shine/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPackages = "/packages"
	PathPricing  = "/pricing"
	PathQuotes   = "/quotes"
)

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	rg.GET(PathPackages, h.ListPackages)
	rg.GET(PathPricing, h.PricingTable)
	rg.POST(PathQuotes, h.Quote)
}
