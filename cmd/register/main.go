// Command register pushes place/amenity links and reviews from a YAML file
// through the hbnb API.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Link struct {
	PlaceID   string `yaml:"place_id"`
	AmenityID string `yaml:"amenity_id"`
}

type Review struct {
	PlaceID string `yaml:"place_id" json:"-"`
	UserID  string `yaml:"user_id" json:"user_id"`
	Text    string `yaml:"text" json:"text"`
}

type Batch struct {
	Links   []Link   `yaml:"links"`
	Reviews []Review `yaml:"reviews"`
}

func main() {
	api := flag.String("api", "http://localhost:5000/api/v1", "API base URL")
	file := flag.String("file", "register.yml", "YAML file of links and reviews")
	flag.Parse()

	b, err := loadBatch(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read %s: %v\n", *file, err)
		os.Exit(1)
	}
	if len(b.Links) == 0 && len(b.Reviews) == 0 {
		fmt.Println("Nothing to register.")
		return
	}

	cli := &http.Client{Timeout: 15 * time.Second}
	base := strings.TrimRight(*api, "/")

	var anyFailed bool
	for _, l := range b.Links {
		if l.PlaceID == "" || l.AmenityID == "" {
			fmt.Fprintf(os.Stderr, "Skipping incomplete link: %+v\n", l)
			continue
		}
		if err := postLink(cli, base, l); err != nil {
			anyFailed = true
			fmt.Fprintf(os.Stderr, "Failed to link %s -> %s: %v\n", l.PlaceID, l.AmenityID, err)
		} else {
			fmt.Printf("Linked %s -> %s\n", l.PlaceID, l.AmenityID)
		}
	}
	for _, r := range b.Reviews {
		if r.PlaceID == "" || r.UserID == "" || r.Text == "" {
			fmt.Fprintf(os.Stderr, "Skipping incomplete review: %+v\n", r)
			continue
		}
		id, err := postReview(cli, base, r)
		if err != nil {
			anyFailed = true
			fmt.Fprintf(os.Stderr, "Failed to review %s: %v\n", r.PlaceID, err)
		} else {
			fmt.Printf("Reviewed %s (%s)\n", r.PlaceID, id)
		}
	}

	if anyFailed {
		os.Exit(2)
	}
}

func postLink(cli *http.Client, base string, l Link) error {
	url := base + "/places/" + l.PlaceID + "/amenities/" + l.AmenityID
	resp, err := cli.Post(url, "application/json", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	// 200 means the link already existed.
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return statusErr(resp)
	}
	return nil
}

func postReview(cli *http.Client, base string, r Review) (string, error) {
	data, _ := json.Marshal(r)
	resp, err := cli.Post(base+"/places/"+r.PlaceID+"/reviews", "application/json", bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return "", statusErr(resp)
	}
	var out struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.ID, nil
}

func statusErr(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
}

// loadBatch accepts {links: [...], reviews: [...]} or a bare list of links.
func loadBatch(path string) (Batch, error) {
	var b Batch
	data, err := os.ReadFile(path)
	if err != nil {
		return b, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return b, err
	}
	if len(doc.Content) == 0 {
		return b, nil
	}
	root := doc.Content[0]
	if root.Kind == yaml.SequenceNode {
		err = root.Decode(&b.Links)
	} else {
		err = root.Decode(&b)
	}
	if err != nil {
		return Batch{}, err
	}

	for i := range b.Links {
		b.Links[i].PlaceID = strings.TrimSpace(b.Links[i].PlaceID)
		b.Links[i].AmenityID = strings.TrimSpace(b.Links[i].AmenityID)
	}
	for i := range b.Reviews {
		b.Reviews[i].PlaceID = strings.TrimSpace(b.Reviews[i].PlaceID)
		b.Reviews[i].UserID = strings.TrimSpace(b.Reviews[i].UserID)
	}
	return b, nil
}
