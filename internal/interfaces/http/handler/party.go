package handler

import (
	partnerapp "github.com/bizdash/backend/internal/application/partner"
	"github.com/bizdash/backend/internal/domain/partner"
	"github.com/bizdash/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PartyHandler handles customer and supplier API endpoints. Customers
// and suppliers share one record shape, so both collections route
// through the same handler.
type PartyHandler struct {
	BaseHandler
	partyService *partnerapp.PartyService
}

// NewPartyHandler creates a new PartyHandler
func NewPartyHandler(partyService *partnerapp.PartyService) *PartyHandler {
	return &PartyHandler{
		partyService: partyService,
	}
}

// RegisterRoutes registers party routes
func (h *PartyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")
	{
		customers.GET("", h.listKind(partner.PartyKindCustomer))
		customers.POST("", h.createKind(partner.PartyKindCustomer))
	}

	suppliers := rg.Group("/suppliers")
	{
		suppliers.GET("", h.listKind(partner.PartyKindSupplier))
		suppliers.POST("", h.createKind(partner.PartyKindSupplier))
	}

	parties := rg.Group("/parties")
	{
		parties.GET("/:id", h.Get)
		parties.PUT("/:id", h.Update)
		parties.DELETE("/:id", h.Delete)
	}
}

func (h *PartyHandler) listKind(kind partner.PartyKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := h.partyService.List(c.Request.Context(), kind, c.Query("search"))
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, resp)
	}
}

func (h *PartyHandler) createKind(kind partner.PartyKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req partnerapp.CreatePartyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			middleware.HandleValidationError(c, err)
			return
		}

		resp, err := h.partyService.Create(c.Request.Context(), kind, req)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Created(c, resp)
	}
}

// Get returns a single party
func (h *PartyHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid party ID")
		return
	}

	resp, err := h.partyService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update updates a party
func (h *PartyHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid party ID")
		return
	}

	var req partnerapp.UpdatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	resp, err := h.partyService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete removes a party
func (h *PartyHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid party ID")
		return
	}

	if err := h.partyService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
