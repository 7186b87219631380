package reviews

import (
	"net/http"

	"github.com/davidbrain001/AirBnB-clone-v3/internal/handlers/common"
	"github.com/davidbrain001/AirBnB-clone-v3/internal/models"
	"github.com/gin-gonic/gin"
)

// List returns every review of a place.
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	placeID := c.Param("place_id")

	if _, err := h.db.GetPlace(ctx, placeID); err != nil {
		common.Fail(c, h.log, err)
		return
	}
	rs, err := h.db.ListReviewsByPlace(ctx, placeID)
	if err != nil {
		common.Fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, models.ReviewMaps(rs))
}
