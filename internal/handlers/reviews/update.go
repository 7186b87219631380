package reviews

import (
	"net/http"

	"github.com/davidbrain001/AirBnB-clone-v3/internal/handlers/common"
	"github.com/gin-gonic/gin"
)

// Update applies a partial update to a review.
// id, user_id, place_id, created_at and updated_at are dropped from the
// body; unknown keys are ignored. The review is saved even when nothing
// changed, which bumps updated_at.
func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	r, err := h.db.GetReview(ctx, c.Param("review_id"))
	if err != nil {
		common.Fail(c, h.log, err)
		return
	}

	obj, err := common.BindObject(c)
	if err != nil {
		common.Fail(c, h.log, err)
		return
	}
	u, err := decodeUpdate(obj)
	if err != nil {
		common.Fail(c, h.log, err)
		return
	}

	u.apply(r)
	if err := h.db.UpdateReview(ctx, r); err != nil {
		common.Fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, r.ToMap())
}
