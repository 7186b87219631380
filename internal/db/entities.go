package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	apperr "github.com/davidbrain001/AirBnB-clone-v3/internal/errors"
	"github.com/davidbrain001/AirBnB-clone-v3/internal/models"
	"github.com/jmoiron/sqlx"
)

// getByID loads one row of table into dest. A missing row is apperr.ErrNotFound.
func getByID(ctx context.Context, q sqlx.QueryerContext, dest any, table, id string) error {
	err := sqlx.GetContext(ctx, q, dest, "SELECT * FROM "+table+" WHERE id=?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("%s %s: %w", table, id, err)
	}
	return nil
}

func (d *DB) GetPlace(ctx context.Context, id string) (*models.Place, error) {
	var p models.Place
	if err := getByID(ctx, d, &p, "places", id); err != nil {
		return nil, err
	}
	return &p, nil
}

func (d *DB) GetAmenity(ctx context.Context, id string) (*models.Amenity, error) {
	var a models.Amenity
	if err := getByID(ctx, d, &a, "amenities", id); err != nil {
		return nil, err
	}
	return &a, nil
}

func (d *DB) GetUser(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := getByID(ctx, d, &u, "users", id); err != nil {
		return nil, err
	}
	return &u, nil
}

func (d *DB) GetReview(ctx context.Context, id string) (*models.Review, error) {
	var r models.Review
	if err := getByID(ctx, d, &r, "reviews", id); err != nil {
		return nil, err
	}
	return &r, nil
}

// ListReviewsByPlace returns the reviews of a place, oldest first.
func (d *DB) ListReviewsByPlace(ctx context.Context, placeID string) ([]models.Review, error) {
	rs := []models.Review{}
	if err := d.SelectContext(ctx, &rs,
		"SELECT * FROM reviews WHERE place_id=? ORDER BY created_at ASC, id ASC", placeID); err != nil {
		return nil, fmt.Errorf("reviews of %s: %w", placeID, err)
	}
	return rs, nil
}

// CreateReview inserts r, assigning its id when empty and both timestamps.
func (d *DB) CreateReview(ctx context.Context, r *models.Review) error {
	stampNew(&r.Base)
	_, err := d.ExecContext(ctx,
		"INSERT INTO reviews (id, created_at, updated_at, place_id, user_id, text) VALUES (?,?,?,?,?,?)",
		r.ID, r.CreatedAt, r.UpdatedAt, r.PlaceID, r.UserID, r.Text)
	if err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

// UpdateReview saves the mutable fields of r and bumps updated_at.
// id, place_id, user_id and created_at are never written.
func (d *DB) UpdateReview(ctx context.Context, r *models.Review) error {
	r.UpdatedAt = now()
	res, err := d.ExecContext(ctx, "UPDATE reviews SET text=?, updated_at=? WHERE id=?", r.Text, r.UpdatedAt, r.ID)
	if err != nil {
		return fmt.Errorf("update review %s: %w", r.ID, err)
	}
	return mustAffect(res)
}

func (d *DB) DeleteReview(ctx context.Context, id string) error {
	res, err := d.ExecContext(ctx, "DELETE FROM reviews WHERE id=?", id)
	if err != nil {
		return fmt.Errorf("delete review %s: %w", id, err)
	}
	return mustAffect(res)
}

// CreatePlace inserts p. Existing ids are left untouched.
func (d *DB) CreatePlace(ctx context.Context, p *models.Place) error {
	stampNew(&p.Base)
	_, err := d.NamedExecContext(ctx, d.dialect.insertIgnore+` INTO places
		(id, created_at, updated_at, city_id, user_id, name, description, number_rooms,
		 number_bathrooms, max_guest, price_by_night, latitude, longitude, amenity_ids)
		VALUES (:id, :created_at, :updated_at, :city_id, :user_id, :name, :description, :number_rooms,
		 :number_bathrooms, :max_guest, :price_by_night, :latitude, :longitude, :amenity_ids)`, p)
	if err != nil {
		return fmt.Errorf("insert place: %w", err)
	}
	return nil
}

// CreateAmenity inserts a. Existing ids are left untouched.
func (d *DB) CreateAmenity(ctx context.Context, a *models.Amenity) error {
	stampNew(&a.Base)
	_, err := d.ExecContext(ctx, d.dialect.insertIgnore+" INTO amenities (id, created_at, updated_at, name) VALUES (?,?,?,?)",
		a.ID, a.CreatedAt, a.UpdatedAt, a.Name)
	if err != nil {
		return fmt.Errorf("insert amenity: %w", err)
	}
	return nil
}

// CreateUser inserts u. u.Password must already be hashed.
// Existing ids are left untouched.
func (d *DB) CreateUser(ctx context.Context, u *models.User) error {
	stampNew(&u.Base)
	_, err := d.NamedExecContext(ctx, d.dialect.insertIgnore+` INTO users
		(id, created_at, updated_at, email, password, first_name, last_name)
		VALUES (:id, :created_at, :updated_at, :email, :password, :first_name, :last_name)`, u)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// touchPlace marks the place as saved: only updated_at changes.
func touchPlace(ctx context.Context, ex sqlx.ExecerContext, placeID string) error {
	res, err := ex.ExecContext(ctx, "UPDATE places SET updated_at=? WHERE id=?", now(), placeID)
	if err != nil {
		return fmt.Errorf("touch place %s: %w", placeID, err)
	}
	return mustAffect(res)
}

func stampNew(b *models.Base) {
	if b.ID == "" {
		b.ID = models.NewID()
	}
	t := now()
	b.CreatedAt = t
	b.UpdatedAt = t
}

func mustAffect(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
