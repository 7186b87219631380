package amenities

import (
	"context"
	"log/slog"

	"github.com/davidbrain001/AirBnB-clone-v3/internal/db"
	"github.com/davidbrain001/AirBnB-clone-v3/internal/models"
)

// Package amenities provides the place/amenity link HTTP handlers.
// KISS: keep types small, behavior explicit, and files focused.
//
// The HTTP methods are split into dedicated, focused files:
// - list.go:   Handler.List
// - link.go:   Handler.Link
// - unlink.go: Handler.Unlink

// Handler wires place/amenity endpoints to the data store. links is chosen
// once, from the storage mode, when the handler is built.
type Handler struct {
	db    *db.DB
	links db.Links
	log   *slog.Logger
}

// New returns a new amenities handler.
func New(d *db.DB, links db.Links, log *slog.Logger) *Handler {
	return &Handler{db: d, links: links, log: log}
}

// lookup loads the place and amenity named in the path and reports whether
// they are already linked. Either entity missing is apperr.ErrNotFound.
func (h *Handler) lookup(ctx context.Context, placeID, amenityID string) (*models.Amenity, bool, error) {
	if _, err := h.db.GetPlace(ctx, placeID); err != nil {
		return nil, false, err
	}
	a, err := h.db.GetAmenity(ctx, amenityID)
	if err != nil {
		return nil, false, err
	}
	linked, err := h.links.Linked(ctx, placeID)
	if err != nil {
		return nil, false, err
	}
	for _, la := range linked {
		if la.ID == amenityID {
			return a, true, nil
		}
	}
	return a, false, nil
}
