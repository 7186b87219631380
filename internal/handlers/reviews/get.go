package reviews

import (
	"net/http"

	"github.com/davidbrain001/AirBnB-clone-v3/internal/handlers/common"
	"github.com/gin-gonic/gin"
)

// Get returns a single review by id.
func (h *Handler) Get(c *gin.Context) {
	r, err := h.db.GetReview(c.Request.Context(), c.Param("review_id"))
	if err != nil {
		common.Fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, r.ToMap())
}
