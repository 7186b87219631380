package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReview_ToMap(t *testing.T) {
	created := time.Date(2017, 9, 28, 21, 5, 54, 119572000, time.UTC)
	r := Review{
		Base:    Base{ID: "r-1", CreatedAt: created, UpdatedAt: created.Add(time.Second)},
		PlaceID: "p-1",
		UserID:  "u-1",
		Text:    "Great stay",
	}

	m := r.ToMap()

	assert.Equal(t, map[string]any{
		"id":         "r-1",
		"created_at": "2017-09-28T21:05:54.119572",
		"updated_at": "2017-09-28T21:05:55.119572",
		"__class__":  "Review",
		"place_id":   "p-1",
		"user_id":    "u-1",
		"text":       "Great stay",
	}, m)
}

func TestAmenity_ToMap(t *testing.T) {
	a := Amenity{Base: Base{ID: "a-1"}, Name: "Wifi"}
	m := a.ToMap()
	assert.Equal(t, "Wifi", m["name"])
	assert.Equal(t, "Amenity", m["__class__"])
	assert.Equal(t, "a-1", m["id"])
}

func TestFormatTime_ConvertsToUTC(t *testing.T) {
	loc := time.FixedZone("CEST", 2*60*60)
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, loc)
	assert.Equal(t, "2024-05-01T10:00:00.000000", FormatTime(ts))
}

func TestNewID_IsUUID(t *testing.T) {
	id := NewID()
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.NotEqual(t, id, NewID())
}

func TestIDList_Scan(t *testing.T) {
	tests := []struct {
		name string
		src  any
		want IDList
	}{
		{"null", nil, IDList{}},
		{"empty string", "", IDList{}},
		{"bytes", []byte(`["a","b"]`), IDList{"a", "b"}},
		{"string", `["c"]`, IDList{"c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l IDList
			require.NoError(t, l.Scan(tt.src))
			assert.Equal(t, tt.want, l)
		})
	}

	var l IDList
	assert.Error(t, l.Scan(42))
	assert.Error(t, l.Scan("not json"))
}

func TestIDList_Value(t *testing.T) {
	v, err := IDList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	v, err = IDList{"a", "b"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["a","b"]`, v)
}

func TestIDList_ContainsWithout(t *testing.T) {
	l := IDList{"a", "b", "a"}
	assert.True(t, l.Contains("b"))
	assert.False(t, l.Contains("z"))
	assert.Equal(t, IDList{"b"}, l.Without("a"))
	assert.Equal(t, IDList{"a", "b", "a"}, l, "Without must not modify the receiver")
}
