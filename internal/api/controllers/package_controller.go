package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradeacademy/internal/models/request_models"
	"tradeacademy/internal/services"
	"tradeacademy/pkg/utils"
)

type PackageController struct {
	packageService services.PackageServiceInterface
}

func NewPackageController(packageService services.PackageServiceInterface) *PackageController {
	return &PackageController{
		packageService: packageService,
	}
}

// ListPackages godoc
// @Summary List all subscription packages
// @Tags Packages
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/packages [get]
func (p *PackageController) ListPackages(c *gin.Context) {
	packages, err := p.packageService.ListPackages(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, packages, "Packages fetched successfully")
}

// CreatePackage godoc
// @Summary Create a subscription package
// @Tags Packages
// @Accept json
// @Produce json
// @Param request body request_models.PackageRequest true "Package payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/packages [post]
func (p *PackageController) CreatePackage(c *gin.Context) {
	var req request_models.PackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	pkg, err := p.packageService.CreatePackage(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, pkg, "Package created successfully")
}

func (p *PackageController) UpdatePackage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid id parameter")
		return
	}

	var req request_models.PackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	pkg, err := p.packageService.UpdatePackage(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, pkg, "Package updated successfully")
}

func (p *PackageController) DeletePackage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid id parameter")
		return
	}

	if err := p.packageService.DeletePackage(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Package deleted successfully")
}
