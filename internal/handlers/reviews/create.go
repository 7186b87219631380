package reviews

import (
	"net/http"

	apperr "github.com/davidbrain001/AirBnB-clone-v3/internal/errors"
	"github.com/davidbrain001/AirBnB-clone-v3/internal/handlers/common"
	"github.com/davidbrain001/AirBnB-clone-v3/internal/models"
	"github.com/gin-gonic/gin"
)

// Create adds a review to a place.
// Checks run in this order and the first failure answers:
// 1) place exists                  -> 404
// 2) body is a JSON object         -> 400 "Not a JSON"
// 3) user_id present               -> 400 "Missing user_id"
// 4) user exists                   -> 404
// 5) text present                  -> 400 "Missing text"
// place_id always comes from the path, whatever the body says.
func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	placeID := c.Param("place_id")

	if _, err := h.db.GetPlace(ctx, placeID); err != nil {
		common.Fail(c, h.log, err)
		return
	}

	obj, err := common.BindObject(c)
	if err != nil {
		common.Fail(c, h.log, err)
		return
	}

	userID, present, ok := obj.String("user_id")
	if !present {
		common.Fail(c, h.log, apperr.ErrMissingUserID)
		return
	}
	if !ok {
		// not a string, so it cannot name a user
		common.Fail(c, h.log, apperr.ErrNotFound)
		return
	}
	if _, err := h.db.GetUser(ctx, userID); err != nil {
		common.Fail(c, h.log, err)
		return
	}

	text, present, ok := obj.String("text")
	if !present {
		common.Fail(c, h.log, apperr.ErrMissingText)
		return
	}
	if !ok {
		common.Fail(c, h.log, errTextNotString)
		return
	}

	r := &models.Review{PlaceID: placeID, UserID: userID, Text: text}
	if err := h.db.CreateReview(ctx, r); err != nil {
		common.Fail(c, h.log, err)
		return
	}
	h.log.Info("review created", "review_id", r.ID, "place_id", placeID, "user_id", userID)
	c.JSON(http.StatusCreated, r.ToMap())
}
