package db

import (
	"context"
	"fmt"

	"github.com/davidbrain001/AirBnB-clone-v3/internal/models"
	"github.com/jmoiron/sqlx"
)

// Storage modes for the place/amenity link.
const (
	// ModeDB keeps links in the place_amenity join table.
	ModeDB = "db"
	// ModeFile keeps links as the amenity_ids list on the place row.
	ModeFile = "file"
)

// Links is the place/amenity association. Both implementations have set
// semantics: linking a linked pair and unlinking an unlinked pair are no-ops.
// Link and Unlink also bump the place's updated_at.
type Links interface {
	// Linked returns the amenities of a place in collection order.
	Linked(ctx context.Context, placeID string) ([]models.Amenity, error)
	Link(ctx context.Context, placeID, amenityID string) error
	Unlink(ctx context.Context, placeID, amenityID string) error
}

// NewLinks returns the Links implementation for mode. Anything other than
// ModeDB selects the id-list representation.
func NewLinks(mode string, d *DB) Links {
	if mode == ModeDB {
		return JoinTableLinks{db: d}
	}
	return IDListLinks{db: d}
}

type JoinTableLinks struct{ db *DB }

func (l JoinTableLinks) Linked(ctx context.Context, placeID string) ([]models.Amenity, error) {
	as := []models.Amenity{}
	err := l.db.SelectContext(ctx, &as, `SELECT a.* FROM amenities a
		JOIN place_amenity pa ON pa.amenity_id = a.id
		WHERE pa.place_id=?
		ORDER BY pa.linked_at ASC, pa.amenity_id ASC`, placeID)
	if err != nil {
		return nil, fmt.Errorf("amenities of %s: %w", placeID, err)
	}
	return as, nil
}

func (l JoinTableLinks) Link(ctx context.Context, placeID, amenityID string) error {
	return l.db.inTx(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, l.db.dialect.insertIgnore+" INTO place_amenity (place_id, amenity_id, linked_at) VALUES (?,?,?)",
			placeID, amenityID, now())
		if err != nil {
			return fmt.Errorf("link %s/%s: %w", placeID, amenityID, err)
		}
		return touchPlace(ctx, tx, placeID)
	})
}

func (l JoinTableLinks) Unlink(ctx context.Context, placeID, amenityID string) error {
	return l.db.inTx(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, "DELETE FROM place_amenity WHERE place_id=? AND amenity_id=?", placeID, amenityID)
		if err != nil {
			return fmt.Errorf("unlink %s/%s: %w", placeID, amenityID, err)
		}
		return touchPlace(ctx, tx, placeID)
	})
}

type IDListLinks struct{ db *DB }

func (l IDListLinks) Linked(ctx context.Context, placeID string) ([]models.Amenity, error) {
	p, err := l.db.GetPlace(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if len(p.AmenityIDs) == 0 {
		return []models.Amenity{}, nil
	}

	q, args, err := sqlx.In("SELECT * FROM amenities WHERE id IN (?)", []string(p.AmenityIDs))
	if err != nil {
		return nil, err
	}
	var found []models.Amenity
	if err := l.db.SelectContext(ctx, &found, l.db.Rebind(q), args...); err != nil {
		return nil, fmt.Errorf("amenities of %s: %w", placeID, err)
	}

	// Keep list order; ids of deleted amenities are skipped.
	byID := make(map[string]models.Amenity, len(found))
	for _, a := range found {
		byID[a.ID] = a
	}
	out := make([]models.Amenity, 0, len(found))
	for _, id := range p.AmenityIDs {
		if a, ok := byID[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (l IDListLinks) Link(ctx context.Context, placeID, amenityID string) error {
	return l.update(ctx, placeID, func(ids models.IDList) models.IDList {
		if ids.Contains(amenityID) {
			return ids
		}
		return append(ids, amenityID)
	})
}

func (l IDListLinks) Unlink(ctx context.Context, placeID, amenityID string) error {
	return l.update(ctx, placeID, func(ids models.IDList) models.IDList {
		return ids.Without(amenityID)
	})
}

// update read-modify-writes amenity_ids in one transaction.
func (l IDListLinks) update(ctx context.Context, placeID string, fn func(models.IDList) models.IDList) error {
	return l.db.inTx(ctx, func(tx *sqlx.Tx) error {
		var ids models.IDList
		if err := tx.GetContext(ctx, &ids, "SELECT amenity_ids FROM places WHERE id=?"+l.db.dialect.forUpdate, placeID); err != nil {
			return fmt.Errorf("amenity_ids of %s: %w", placeID, err)
		}
		_, err := tx.ExecContext(ctx, "UPDATE places SET amenity_ids=?, updated_at=? WHERE id=?", fn(ids), now(), placeID)
		if err != nil {
			return fmt.Errorf("save amenity_ids of %s: %w", placeID, err)
		}
		return nil
	})
}

func (d *DB) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := d.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
