package reviews

import (
	apperr "github.com/davidbrain001/AirBnB-clone-v3/internal/errors"
	"github.com/davidbrain001/AirBnB-clone-v3/internal/handlers/common"
	"github.com/davidbrain001/AirBnB-clone-v3/internal/models"
)

// immutableFields are dropped from update bodies without complaint.
var immutableFields = []string{"id", "user_id", "place_id", "created_at", "updated_at"}

var errTextNotString = apperr.BadRequest("text must be a string")

// reviewUpdate is the allow-list of fields a client may change.
// Keys outside it are ignored.
type reviewUpdate struct {
	Text *string
}

func decodeUpdate(obj common.Object) (reviewUpdate, error) {
	var u reviewUpdate
	obj.Drop(immutableFields...)

	text, present, ok := obj.String("text")
	if present && !ok {
		return u, errTextNotString
	}
	if present {
		u.Text = &text
	}
	return u, nil
}

func (u reviewUpdate) apply(r *models.Review) {
	if u.Text != nil {
		r.Text = *u.Text
	}
}
