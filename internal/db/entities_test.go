package db_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/davidbrain001/AirBnB-clone-v3/internal/db"
	"github.com/davidbrain001/AirBnB-clone-v3/internal/db/dbtest"
	apperr "github.com/davidbrain001/AirBnB-clone-v3/internal/errors"
	"github.com/davidbrain001/AirBnB-clone-v3/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureSchema_Idempotent(t *testing.T) {
	d := dbtest.New(t)
	require.NoError(t, db.EnsureSchema(context.Background(), d))
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := db.Open("postgres", "whatever")
	assert.Error(t, err)
}

func TestConnect(t *testing.T) {
	ctx := context.Background()

	_, err := db.Connect(ctx, "postgres", "whatever")
	assert.Error(t, err)

	d, err := db.Connect(ctx, db.DriverSQLite, filepath.Join(t.TempDir(), "c.db"))
	require.NoError(t, err)
	require.NoError(t, d.Close())

	short, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	_, err = db.Connect(short, db.DriverSQLite, filepath.Join(t.TempDir(), "no", "such", "dir", "c.db"))
	assert.ErrorContains(t, err, "database not reachable")
}

func TestGet_MissingIsNotFound(t *testing.T) {
	d := dbtest.New(t)
	ctx := context.Background()

	_, err := d.GetPlace(ctx, "nope")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	_, err = d.GetAmenity(ctx, "nope")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	_, err = d.GetUser(ctx, "nope")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	_, err = d.GetReview(ctx, "nope")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestPlace_RoundTrip(t *testing.T) {
	d := dbtest.New(t)
	ctx := context.Background()

	p := &models.Place{Name: "Loft", Description: "Top floor", MaxGuest: 4, Latitude: 37.77, Longitude: -122.41}
	require.NoError(t, d.CreatePlace(ctx, p))
	require.NotEmpty(t, p.ID)

	got, err := d.GetPlace(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Loft", got.Name)
	assert.Equal(t, "Top floor", got.Description)
	assert.Equal(t, 4, got.MaxGuest)
	assert.InDelta(t, 37.77, got.Latitude, 1e-9)
	assert.Empty(t, got.AmenityIDs)
	assert.True(t, p.CreatedAt.Equal(got.CreatedAt), "created_at %v != %v", p.CreatedAt, got.CreatedAt)
}

func TestReview_Lifecycle(t *testing.T) {
	d := dbtest.New(t)
	ctx := context.Background()
	p := dbtest.Place(t, d, "Cabin")
	u := dbtest.User(t, d, "betty@hbnb.io")

	r := &models.Review{PlaceID: p.ID, UserID: u.ID, Text: "Cosy"}
	require.NoError(t, d.CreateReview(ctx, r))
	require.NotEmpty(t, r.ID)
	assert.Equal(t, r.CreatedAt, r.UpdatedAt)

	got, err := d.GetReview(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.PlaceID)
	assert.Equal(t, u.ID, got.UserID)
	assert.Equal(t, "Cosy", got.Text)

	time.Sleep(2 * time.Millisecond)
	got.Text = "Cosy, but cold"
	require.NoError(t, d.UpdateReview(ctx, got))

	again, err := d.GetReview(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cosy, but cold", again.Text)
	assert.True(t, again.UpdatedAt.After(again.CreatedAt))
	assert.True(t, again.CreatedAt.Equal(r.CreatedAt))

	require.NoError(t, d.DeleteReview(ctx, r.ID))
	_, err = d.GetReview(ctx, r.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.ErrorIs(t, d.DeleteReview(ctx, r.ID), apperr.ErrNotFound)
}

func TestUpdateReview_Missing(t *testing.T) {
	d := dbtest.New(t)
	err := d.UpdateReview(context.Background(), &models.Review{Base: models.Base{ID: "ghost"}, Text: "x"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestListReviewsByPlace(t *testing.T) {
	d := dbtest.New(t)
	ctx := context.Background()
	p1 := dbtest.Place(t, d, "One")
	p2 := dbtest.Place(t, d, "Two")
	u := dbtest.User(t, d, "u@hbnb.io")

	first := dbtest.Review(t, d, p1.ID, u.ID, "first")
	time.Sleep(2 * time.Millisecond)
	second := dbtest.Review(t, d, p1.ID, u.ID, "second")
	dbtest.Review(t, d, p2.ID, u.ID, "elsewhere")

	rs, err := d.ListReviewsByPlace(ctx, p1.ID)
	require.NoError(t, err)
	require.Len(t, rs, 2)
	assert.Equal(t, first.ID, rs[0].ID)
	assert.Equal(t, second.ID, rs[1].ID)

	none, err := d.ListReviewsByPlace(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
