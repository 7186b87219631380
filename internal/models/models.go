// Package models holds the hbnb entities and their serialized form.
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TimeFormat is the layout of created_at/updated_at in serialized entities.
const TimeFormat = "2006-01-02T15:04:05.000000"

// NewID returns a fresh entity id.
func NewID() string { return uuid.NewString() }

// Base carries the fields every entity shares.
type Base struct {
	ID        string    `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (b Base) toMap(class string) map[string]any {
	return map[string]any{
		"id":         b.ID,
		"created_at": FormatTime(b.CreatedAt),
		"updated_at": FormatTime(b.UpdatedAt),
		"__class__":  class,
	}
}

// FormatTime renders t in UTC using TimeFormat.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeFormat)
}

type Place struct {
	Base
	CityID          string  `db:"city_id"`
	UserID          string  `db:"user_id"`
	Name            string  `db:"name"`
	Description     string  `db:"description"`
	NumberRooms     int     `db:"number_rooms"`
	NumberBathrooms int     `db:"number_bathrooms"`
	MaxGuest        int     `db:"max_guest"`
	PriceByNight    int     `db:"price_by_night"`
	Latitude        float64 `db:"latitude"`
	Longitude       float64 `db:"longitude"`
	// AmenityIDs backs the place/amenity link when links are kept on the place row.
	AmenityIDs IDList `db:"amenity_ids"`
}

type Amenity struct {
	Base
	Name string `db:"name"`
}

func (a Amenity) ToMap() map[string]any {
	m := a.Base.toMap("Amenity")
	m["name"] = a.Name
	return m
}

// User is only looked up by id here. Password holds a bcrypt hash and is
// never serialized.
type User struct {
	Base
	Email     string `db:"email"`
	Password  string `db:"password"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
}

type Review struct {
	Base
	PlaceID string `db:"place_id"`
	UserID  string `db:"user_id"`
	Text    string `db:"text"`
}

func (r Review) ToMap() map[string]any {
	m := r.Base.toMap("Review")
	m["place_id"] = r.PlaceID
	m["user_id"] = r.UserID
	m["text"] = r.Text
	return m
}

// AmenityMaps serializes a list of amenities, keeping order.
func AmenityMaps(as []Amenity) []map[string]any {
	out := make([]map[string]any, 0, len(as))
	for _, a := range as {
		out = append(out, a.ToMap())
	}
	return out
}

// ReviewMaps serializes a list of reviews, keeping order.
func ReviewMaps(rs []Review) []map[string]any {
	out := make([]map[string]any, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.ToMap())
	}
	return out
}

// IDList is an ordered list of ids stored as a JSON array column.
// A NULL column reads as an empty list.
type IDList []string

// Contains reports whether id is in the list.
func (l IDList) Contains(id string) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}

// Without returns a copy of l with every occurrence of id removed.
func (l IDList) Without(id string) IDList {
	out := make(IDList, 0, len(l))
	for _, v := range l {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func (l IDList) Value() (driver.Value, error) {
	if l == nil {
		l = IDList{}
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *IDList) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = IDList{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("models: cannot scan %T into IDList", src)
	}
	if len(raw) == 0 {
		*l = IDList{}
		return nil
	}
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return fmt.Errorf("models: amenity_ids: %w", err)
	}
	*l = IDList(ids)
	return nil
}
