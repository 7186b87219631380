package db

import (
	"context"
	"fmt"
	"os"

	"github.com/davidbrain001/AirBnB-clone-v3/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// Fixtures is the seed file layout:
//
//	amenities:
//	  - {id: wifi, name: Wifi}
//	users:
//	  - {id: u1, email: a@b.c, password: secret}
//	places:
//	  - {id: p1, name: Loft, user_id: u1, amenities: [wifi]}
type Fixtures struct {
	Amenities []AmenityFixture `yaml:"amenities"`
	Users     []UserFixture    `yaml:"users"`
	Places    []PlaceFixture   `yaml:"places"`
}

type AmenityFixture struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type UserFixture struct {
	ID        string `yaml:"id"`
	Email     string `yaml:"email"`
	Password  string `yaml:"password"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
}

type PlaceFixture struct {
	ID              string   `yaml:"id"`
	CityID          string   `yaml:"city_id"`
	UserID          string   `yaml:"user_id"`
	Name            string   `yaml:"name"`
	Description     string   `yaml:"description"`
	NumberRooms     int      `yaml:"number_rooms"`
	NumberBathrooms int      `yaml:"number_bathrooms"`
	MaxGuest        int      `yaml:"max_guest"`
	PriceByNight    int      `yaml:"price_by_night"`
	Latitude        float64  `yaml:"latitude"`
	Longitude       float64  `yaml:"longitude"`
	Amenities       []string `yaml:"amenities"`
}

func LoadFixtures(path string) (Fixtures, error) {
	var f Fixtures
	b, err := os.ReadFile(path)
	if err != nil {
		return f, err
	}
	if err := yaml.Unmarshal(b, &f); err != nil {
		return f, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Seed inserts the fixtures that are not present yet and links place
// amenities through links. Running it twice changes nothing.
func Seed(ctx context.Context, d *DB, links Links, f Fixtures) error {
	for _, af := range f.Amenities {
		if af.ID == "" || af.Name == "" {
			return fmt.Errorf("seed: amenity needs id and name: %+v", af)
		}
		if err := d.CreateAmenity(ctx, &models.Amenity{Base: models.Base{ID: af.ID}, Name: af.Name}); err != nil {
			return err
		}
	}

	for _, uf := range f.Users {
		if uf.ID == "" || uf.Email == "" || uf.Password == "" {
			return fmt.Errorf("seed: user needs id, email and password: %s", uf.ID)
		}
		if _, err := d.GetUser(ctx, uf.ID); err == nil {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(uf.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u := &models.User{
			Base:      models.Base{ID: uf.ID},
			Email:     uf.Email,
			Password:  string(hash),
			FirstName: uf.FirstName,
			LastName:  uf.LastName,
		}
		if err := d.CreateUser(ctx, u); err != nil {
			return err
		}
	}

	for _, pf := range f.Places {
		if pf.ID == "" || pf.Name == "" {
			return fmt.Errorf("seed: place needs id and name: %+v", pf)
		}
		p := &models.Place{
			Base:            models.Base{ID: pf.ID},
			CityID:          pf.CityID,
			UserID:          pf.UserID,
			Name:            pf.Name,
			Description:     pf.Description,
			NumberRooms:     pf.NumberRooms,
			NumberBathrooms: pf.NumberBathrooms,
			MaxGuest:        pf.MaxGuest,
			PriceByNight:    pf.PriceByNight,
			Latitude:        pf.Latitude,
			Longitude:       pf.Longitude,
		}
		if err := d.CreatePlace(ctx, p); err != nil {
			return err
		}
		for _, aid := range pf.Amenities {
			if _, err := d.GetAmenity(ctx, aid); err != nil {
				return fmt.Errorf("seed: place %s amenity %s: %w", pf.ID, aid, err)
			}
			if err := links.Link(ctx, pf.ID, aid); err != nil {
				return fmt.Errorf("seed: link %s/%s: %w", pf.ID, aid, err)
			}
		}
	}
	return nil
}
