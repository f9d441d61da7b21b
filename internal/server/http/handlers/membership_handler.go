package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dormdine/dormdine/internal/server/http/dto"
)

// MembershipHandler serves subscription tiers.
type MembershipHandler struct {
	facade CatalogFacade
}

// NewMembershipHandler constructs MembershipHandler.
func NewMembershipHandler(facade CatalogFacade) *MembershipHandler {
	return &MembershipHandler{facade: facade}
}

// List handles GET /api/memberships.
func (h *MembershipHandler) List(c *gin.Context) {
	memberships, err := h.facade.Memberships(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	resp := make([]dto.MembershipResponse, 0, len(memberships))
	for _, m := range memberships {
		resp = append(resp, dto.MembershipResponse{
			ID:    int64(m.ID),
			Tier:  m.Tier,
			Price: m.Price,
			Perks: m.Perks,
		})
	}
	c.JSON(http.StatusOK, resp)
}
