package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradeacademy/internal/models/request_models"
	"tradeacademy/internal/services"
	"tradeacademy/pkg/utils"
)

type ContentController struct {
	contentService services.ContentServiceInterface
}

func NewContentController(contentService services.ContentServiceInterface) *ContentController {
	return &ContentController{
		contentService: contentService,
	}
}

// GetHero godoc
// @Summary Get the hero banner content
// @Tags Content
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/hero [get]
func (ct *ContentController) GetHero(c *gin.Context) {
	hero, err := ct.contentService.GetHero(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, hero, "Hero content fetched successfully")
}

// UpdateHero godoc
// @Summary Replace the hero banner content
// @Tags Content
// @Accept json
// @Produce json
// @Param request body request_models.HeroUpdateRequest true "Hero payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/hero [put]
func (ct *ContentController) UpdateHero(c *gin.Context) {
	var req request_models.HeroUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	hero, err := ct.contentService.UpdateHero(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, hero, "Hero content updated successfully")
}

// ListFeatures godoc
// @Summary List all landing page features
// @Tags Content
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/features [get]
func (ct *ContentController) ListFeatures(c *gin.Context) {
	features, err := ct.contentService.ListFeatures(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, features, "Features fetched successfully")
}

func (ct *ContentController) CreateFeature(c *gin.Context) {
	var req request_models.FeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	feature, err := ct.contentService.CreateFeature(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, feature, "Feature created successfully")
}

func (ct *ContentController) UpdateFeature(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid id parameter")
		return
	}

	var req request_models.FeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	feature, err := ct.contentService.UpdateFeature(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, feature, "Feature updated successfully")
}

func (ct *ContentController) DeleteFeature(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid id parameter")
		return
	}

	if err := ct.contentService.DeleteFeature(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Feature deleted successfully")
}

// ListTestimonials godoc
// @Summary List all testimonials
// @Tags Content
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/testimonials [get]
func (ct *ContentController) ListTestimonials(c *gin.Context) {
	testimonials, err := ct.contentService.ListTestimonials(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, testimonials, "Testimonials fetched successfully")
}

func (ct *ContentController) CreateTestimonial(c *gin.Context) {
	var req request_models.TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	testimonial, err := ct.contentService.CreateTestimonial(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, testimonial, "Testimonial created successfully")
}

func (ct *ContentController) UpdateTestimonial(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid id parameter")
		return
	}

	var req request_models.TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	testimonial, err := ct.contentService.UpdateTestimonial(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, testimonial, "Testimonial updated successfully")
}

func (ct *ContentController) DeleteTestimonial(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid id parameter")
		return
	}

	if err := ct.contentService.DeleteTestimonial(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Testimonial deleted successfully")
}

// ListFAQs godoc
// @Summary List all FAQs
// @Tags Content
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/faqs [get]
func (ct *ContentController) ListFAQs(c *gin.Context) {
	faqs, err := ct.contentService.ListFAQs(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, faqs, "FAQs fetched successfully")
}

func (ct *ContentController) CreateFAQ(c *gin.Context) {
	var req request_models.FAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	faq, err := ct.contentService.CreateFAQ(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, faq, "FAQ created successfully")
}

func (ct *ContentController) UpdateFAQ(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid id parameter")
		return
	}

	var req request_models.FAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	faq, err := ct.contentService.UpdateFAQ(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, faq, "FAQ updated successfully")
}

func (ct *ContentController) DeleteFAQ(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid id parameter")
		return
	}

	if err := ct.contentService.DeleteFAQ(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "FAQ deleted successfully")
}
