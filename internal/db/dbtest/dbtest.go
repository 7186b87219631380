// Package dbtest opens throwaway SQLite databases for tests.
package dbtest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/davidbrain001/AirBnB-clone-v3/internal/db"
	"github.com/davidbrain001/AirBnB-clone-v3/internal/models"
	"github.com/stretchr/testify/require"
)

// New opens a schema-initialized SQLite database under t.TempDir.
func New(t testing.TB) *db.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hbnb.db")
	d, err := db.Open(db.DriverSQLite, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })
	require.NoError(t, db.EnsureSchema(context.Background(), d))
	return d
}

func Place(t testing.TB, d *db.DB, name string) *models.Place {
	t.Helper()
	p := &models.Place{Name: name, NumberRooms: 2, PriceByNight: 100}
	require.NoError(t, d.CreatePlace(context.Background(), p))
	return p
}

func Amenity(t testing.TB, d *db.DB, name string) *models.Amenity {
	t.Helper()
	a := &models.Amenity{Name: name}
	require.NoError(t, d.CreateAmenity(context.Background(), a))
	return a
}

func User(t testing.TB, d *db.DB, email string) *models.User {
	t.Helper()
	u := &models.User{Email: email, Password: "not-a-real-hash", FirstName: "Betty", LastName: "Holberton"}
	require.NoError(t, d.CreateUser(context.Background(), u))
	return u
}

func Review(t testing.TB, d *db.DB, placeID, userID, text string) *models.Review {
	t.Helper()
	r := &models.Review{PlaceID: placeID, UserID: userID, Text: text}
	require.NoError(t, d.CreateReview(context.Background(), r))
	return r
}
