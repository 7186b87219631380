package reviews

import (
	"github.com/davidbrain001/AirBnB-clone-v3/internal/handlers/common"
	"github.com/gin-gonic/gin"
)

// Delete removes a review by id and answers {}.
func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("review_id")

	if err := h.db.DeleteReview(ctx, id); err != nil {
		common.Fail(c, h.log, err)
		return
	}
	h.log.Info("review deleted", "review_id", id)
	common.Empty(c)
}
