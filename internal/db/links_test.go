package db_test

import (
	"context"
	"testing"
	"time"

	"github.com/davidbrain001/AirBnB-clone-v3/internal/db"
	"github.com/davidbrain001/AirBnB-clone-v3/internal/db/dbtest"
	"github.com/davidbrain001/AirBnB-clone-v3/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var modes = []string{db.ModeDB, db.ModeFile}

func amenityIDs(as []models.Amenity) []string {
	ids := make([]string, 0, len(as))
	for _, a := range as {
		ids = append(ids, a.ID)
	}
	return ids
}

func TestNewLinks_SelectsByMode(t *testing.T) {
	d := dbtest.New(t)
	assert.IsType(t, db.JoinTableLinks{}, db.NewLinks(db.ModeDB, d))
	assert.IsType(t, db.IDListLinks{}, db.NewLinks(db.ModeFile, d))
	assert.IsType(t, db.IDListLinks{}, db.NewLinks("", d))
}

func TestLinks_SetSemantics(t *testing.T) {
	for _, mode := range modes {
		t.Run(mode, func(t *testing.T) {
			d := dbtest.New(t)
			ctx := context.Background()
			links := db.NewLinks(mode, d)

			p := dbtest.Place(t, d, "Loft")
			wifi := dbtest.Amenity(t, d, "Wifi")
			pool := dbtest.Amenity(t, d, "Pool")

			got, err := links.Linked(ctx, p.ID)
			require.NoError(t, err)
			assert.Empty(t, got)

			require.NoError(t, links.Link(ctx, p.ID, wifi.ID))
			time.Sleep(2 * time.Millisecond)
			require.NoError(t, links.Link(ctx, p.ID, pool.ID))
			require.NoError(t, links.Link(ctx, p.ID, wifi.ID))

			got, err = links.Linked(ctx, p.ID)
			require.NoError(t, err)
			assert.Equal(t, []string{wifi.ID, pool.ID}, amenityIDs(got))
			assert.Equal(t, "Wifi", got[0].Name)

			require.NoError(t, links.Unlink(ctx, p.ID, wifi.ID))
			require.NoError(t, links.Unlink(ctx, p.ID, wifi.ID))

			got, err = links.Linked(ctx, p.ID)
			require.NoError(t, err)
			assert.Equal(t, []string{pool.ID}, amenityIDs(got))
		})
	}
}

func TestLinks_TouchPlace(t *testing.T) {
	for _, mode := range modes {
		t.Run(mode, func(t *testing.T) {
			d := dbtest.New(t)
			ctx := context.Background()
			links := db.NewLinks(mode, d)
			p := dbtest.Place(t, d, "Loft")
			a := dbtest.Amenity(t, d, "Wifi")

			time.Sleep(2 * time.Millisecond)
			require.NoError(t, links.Link(ctx, p.ID, a.ID))

			got, err := d.GetPlace(ctx, p.ID)
			require.NoError(t, err)
			assert.True(t, got.UpdatedAt.After(p.UpdatedAt))
		})
	}
}

func TestLinks_PlacesAreIndependent(t *testing.T) {
	for _, mode := range modes {
		t.Run(mode, func(t *testing.T) {
			d := dbtest.New(t)
			ctx := context.Background()
			links := db.NewLinks(mode, d)
			p1 := dbtest.Place(t, d, "One")
			p2 := dbtest.Place(t, d, "Two")
			a := dbtest.Amenity(t, d, "Wifi")

			require.NoError(t, links.Link(ctx, p1.ID, a.ID))

			got, err := links.Linked(ctx, p2.ID)
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestIDListLinks_KeepsListOrder(t *testing.T) {
	d := dbtest.New(t)
	ctx := context.Background()
	links := db.NewLinks(db.ModeFile, d)
	p := dbtest.Place(t, d, "Loft")

	var want []string
	for _, name := range []string{"Wifi", "Pool", "Sauna", "Parking"} {
		a := dbtest.Amenity(t, d, name)
		require.NoError(t, links.Link(ctx, p.ID, a.ID))
		want = append(want, a.ID)
	}

	got, err := links.Linked(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, want, amenityIDs(got))

	stored, err := d.GetPlace(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.IDList(want), stored.AmenityIDs)
}

func TestIDListLinks_MissingPlace(t *testing.T) {
	d := dbtest.New(t)
	links := db.NewLinks(db.ModeFile, d)
	_, err := links.Linked(context.Background(), "ghost")
	assert.Error(t, err)
	assert.Error(t, links.Link(context.Background(), "ghost", "a"))
}
