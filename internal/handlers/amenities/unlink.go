package amenities

import (
	apperr "github.com/davidbrain001/AirBnB-clone-v3/internal/errors"
	"github.com/davidbrain001/AirBnB-clone-v3/internal/handlers/common"
	"github.com/gin-gonic/gin"
)

// Unlink detaches an amenity from a place.
// KISS flow:
// 1) Place, amenity and the link itself must exist (404 otherwise)
// 2) Remove the link and save the place
// 3) Answer {}
func (h *Handler) Unlink(c *gin.Context) {
	ctx := c.Request.Context()
	placeID, amenityID := c.Param("place_id"), c.Param("amenity_id")

	_, linked, err := h.lookup(ctx, placeID, amenityID)
	if err != nil {
		common.Fail(c, h.log, err)
		return
	}
	if !linked {
		common.Fail(c, h.log, apperr.ErrNotFound)
		return
	}

	if err := h.links.Unlink(ctx, placeID, amenityID); err != nil {
		common.Fail(c, h.log, err)
		return
	}
	h.log.Debug("amenity unlinked", "place_id", placeID, "amenity_id", amenityID)
	common.Empty(c)
}
