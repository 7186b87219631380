package amenities

import (
	"net/http"

	"github.com/davidbrain001/AirBnB-clone-v3/internal/handlers/common"
	"github.com/gin-gonic/gin"
)

// Link attaches an amenity to a place.
// - 201 with the amenity when the link is new
// - 200 with the amenity when it was already linked (nothing is written)
func (h *Handler) Link(c *gin.Context) {
	ctx := c.Request.Context()
	placeID, amenityID := c.Param("place_id"), c.Param("amenity_id")

	a, linked, err := h.lookup(ctx, placeID, amenityID)
	if err != nil {
		common.Fail(c, h.log, err)
		return
	}
	if linked {
		c.JSON(http.StatusOK, a.ToMap())
		return
	}

	if err := h.links.Link(ctx, placeID, amenityID); err != nil {
		common.Fail(c, h.log, err)
		return
	}
	h.log.Debug("amenity linked", "place_id", placeID, "amenity_id", amenityID)
	c.JSON(http.StatusCreated, a.ToMap())
}
