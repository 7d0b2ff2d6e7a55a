package api

import (
	"net/http"
	"strconv"

	"slotdesk/internal/domain/booking"
	reqdto "slotdesk/internal/handler/dto/request"
	resdto "slotdesk/internal/handler/dto/response"
	"slotdesk/internal/pkg/errs"
	"slotdesk/internal/usecase/commands"
	"slotdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ResourceHandler struct {
	resourceCommands    commands.ResourceCommands
	resourceQueries     queries.ResourceQueries
	availabilityQueries queries.AvailabilityQueries
}

func NewResourceHandler(
	resourceCommands commands.ResourceCommands,
	resourceQueries queries.ResourceQueries,
	availabilityQueries queries.AvailabilityQueries,
) *ResourceHandler {
	return &ResourceHandler{
		resourceCommands:    resourceCommands,
		resourceQueries:     resourceQueries,
		availabilityQueries: availabilityQueries,
	}
}

// @Summary List resources
// @Description List all bookable resources, optionally filtered by type
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param type query string false "Resource type name"
// @Success 200 {array} resdto.ResourceResponse
// @Failure 401 {object} map[string]string
// @Router /resources [get]
func (h *ResourceHandler) ListResources(c *gin.Context) {
	var typeFilter *string
	if t := c.Query("type"); t != "" {
		typeFilter = &t
	}

	views, err := h.resourceQueries.List(c.Request.Context(), typeFilter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	res, err := resdto.FromResourceList(views)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get resource
// @Description Get resource by ID
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resource ID"
// @Success 200 {object} resdto.ResourceResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /resources/{id} [get]
func (h *ResourceHandler) GetResource(c *gin.Context) {
	id, err := parseResourceID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid resource ID format",
		})
		return
	}

	view, err := h.resourceQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, errs.ErrResourceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Resource not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	res, err := resdto.FromResourceView(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Resource availability
// @Description Per-slot availability of all resources on a date
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param type query string false "Resource type name"
// @Success 200 {array} resdto.ResourceAvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /resources/availability [get]
func (h *ResourceHandler) GetAvailability(c *gin.Context) {
	date, err := booking.ParseDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	var typeFilter *string
	if t := c.Query("type"); t != "" {
		typeFilter = &t
	}

	views, err := h.availabilityQueries.ListAvailable(c.Request.Context(), date, typeFilter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityList(views))
}

// @Summary List resource types
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ResourceTypeResponse
// @Failure 401 {object} map[string]string
// @Router /resource-types [get]
func (h *ResourceHandler) ListResourceTypes(c *gin.Context) {
	views, err := h.resourceQueries.ListTypes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromResourceTypeList(views))
}

// @Summary Create resource
// @Description Create a new bookable resource (admin only)
// @Tags resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateResourceRequest true "Resource request"
// @Success 201 {object} resdto.ResourceResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /resources [post]
func (h *ResourceHandler) CreateResource(c *gin.Context) {
	var req reqdto.CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.resourceCommands.Create(c.Request.Context(), req)
	if err != nil {
		h.writeResourceError(c, err)
		return
	}

	res, convErr := resdto.FromResourceView(view)
	if convErr != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Summary Update resource
// @Description Rename or retype a resource (admin only)
// @Tags resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resource ID"
// @Param request body reqdto.UpdateResourceRequest true "Resource update"
// @Success 200 {object} resdto.ResourceResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /resources/{id} [put]
func (h *ResourceHandler) UpdateResource(c *gin.Context) {
	id, err := parseResourceID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid resource ID format",
		})
		return
	}

	var req reqdto.UpdateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.resourceCommands.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeResourceError(c, err)
		return
	}

	res, convErr := resdto.FromResourceView(view)
	if convErr != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Delete resource
// @Description Delete a resource without bookings (admin only)
// @Tags resources
// @Security BearerAuth
// @Param id path int true "Resource ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /resources/{id} [delete]
func (h *ResourceHandler) DeleteResource(c *gin.Context) {
	id, err := parseResourceID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid resource ID format",
		})
		return
	}

	if err := h.resourceCommands.Delete(c.Request.Context(), id); err != nil {
		h.writeResourceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ResourceHandler) writeResourceError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Resource not found",
		})
	case errs.Is(err, errs.ErrResourceTypeNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Resource type not found",
		})
	case errs.Is(err, errs.ErrResourceInUse):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Resource has bookings and cannot be deleted",
		})
	case errs.Is(err, errs.ErrDomainValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid resource data",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func parseResourceID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
