package reviews

import (
	"log/slog"

	"github.com/davidbrain001/AirBnB-clone-v3/internal/db"
)

// Package reviews provides review HTTP handlers.
// KISS: keep types small, behavior explicit, and files focused.
//
// The HTTP methods are split into dedicated, focused files:
// - list.go:   Handler.List   (reviews of a place)
// - create.go: Handler.Create (review of a place)
// - get.go:    Handler.Get
// - update.go: Handler.Update
// - delete.go: Handler.Delete
// - payload.go decodes create/update bodies into typed values.

// Handler wires review endpoints to the data store.
type Handler struct {
	db  *db.DB
	log *slog.Logger
}

// New returns a new reviews handler.
func New(d *db.DB, log *slog.Logger) *Handler { return &Handler{db: d, log: log} }
