package handlers

import (
	"errors"
	"log"
	"net/http"

	request "github.com/anshpaul/paymentApp-backend/internal/adapter/http/dto/request"
	response "github.com/anshpaul/paymentApp-backend/internal/adapter/http/dto/response"
	"github.com/anshpaul/paymentApp-backend/internal/usecase"
	"github.com/anshpaul/paymentApp-backend/pkg"

	"github.com/gin-gonic/gin"
)

// CampaignHandler handles campaign item uploads and management.

type CampaignHandler struct {
	usecase usecase.ICampaignUseCase
}

func NewCampaignHandler(uc usecase.ICampaignUseCase) *CampaignHandler {
	return &CampaignHandler{usecase: uc}
}

// CreateCampaign accepts a multipart form with an image plus title and
// description, stores the image and creates the campaign item.
//
// @Summary  Create a campaign item
// @Tags     uploads
// @Accept   multipart/form-data
// @Produce  json
// @Param    image formData file true "campaign image"
// @Param    title formData string false "title"
// @Param    description formData string false "description"
// @Success  201 {object} response.CampaignCreatedResponse
// @Router   /api/uploads [post]
func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		log.Printf("[upload][handler] missing image err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Image file is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("[upload][handler] image open failed err=%v", err)
		appErr := pkg.NewDomainError("INVALID_REQUEST", "Could not read image file", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer file.Close()

	created, err := h.usecase.CreateCampaign(c.Request.Context(), usecase.CreateCampaignInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Image:       file,
		ImageName:   fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
	})
	if err != nil {
		log.Printf("[upload][handler] create failed err=%v", err)
		appErr := mapCampaignError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[upload][handler] create success id=%s", created.ID)

	c.JSON(http.StatusCreated, response.CampaignCreatedResponse{
		Message: "Uploaded successfully",
		Data:    response.FromCampaignItem(created),
	})
}

// ListCampaigns returns all campaign items, latest first.
//
// @Summary  List campaign items
// @Tags     uploads
// @Produce  json
// @Success  200 {array} response.CampaignResponse
// @Router   /api/uploads [get]
func (h *CampaignHandler) ListCampaigns(c *gin.Context) {
	items, err := h.usecase.ListCampaigns(c.Request.Context())
	if err != nil {
		log.Printf("[upload][handler] list failed err=%v", err)
		appErr := mapCampaignError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.CampaignResponse, 0, len(items))
	for _, item := range items {
		out = append(out, response.FromCampaignItem(item))
	}
	c.JSON(http.StatusOK, out)
}

// UpdateCampaign updates title and description of a campaign item.
//
// @Summary  Update a campaign item
// @Tags     uploads
// @Accept   json
// @Produce  json
// @Param    id path string true "campaign id"
// @Param    payload body request.UpdateCampaignRequest true "fields to update"
// @Success  200 {object} response.CampaignResponse
// @Router   /api/uploads/{id} [put]
func (h *CampaignHandler) UpdateCampaign(c *gin.Context) {
	var payload request.UpdateCampaignRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateCampaignInfo(c.Request.Context(), c.Param("id"), payload.Title, payload.Description)
	if err != nil {
		log.Printf("[upload][handler] update failed id=%s err=%v", c.Param("id"), err)
		appErr := mapCampaignError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCampaignItem(updated))
}

// DeleteCampaign removes a campaign item.
//
// @Summary  Delete a campaign item
// @Tags     uploads
// @Produce  json
// @Param    id path string true "campaign id"
// @Success  200 {object} map[string]string
// @Router   /api/uploads/{id} [delete]
func (h *CampaignHandler) DeleteCampaign(c *gin.Context) {
	if err := h.usecase.DeleteCampaign(c.Request.Context(), c.Param("id")); err != nil {
		log.Printf("[upload][handler] delete failed id=%s err=%v", c.Param("id"), err)
		appErr := mapCampaignError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted successfully"})
}

func mapCampaignError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingCampaignImage), errors.Is(err, usecase.ErrInvalidCampaignID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCampaignNotFound):
		return pkg.NewDomainErrorSimple("CAMPAIGN_NOT_FOUND", "Campaign not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPersistenceFailure):
		return pkg.NewDomainError("PERSISTENCE_ERROR", "Storage operation failed", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
