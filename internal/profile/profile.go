// Package profile holds the static portfolio content shown by the terminal
// UI and served by the API.
package profile

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultDocument []byte

var (
	ErrMissingName = errors.New("profile: name is required")
	ErrNoSegments  = errors.New("profile: at least one typewriter segment is required")
)

// Profile is one portfolio document.
type Profile struct {
	Name           string          `yaml:"name" json:"name"`
	Role           string          `yaml:"role" json:"role"`
	Location       string          `yaml:"location" json:"location,omitempty"`
	Tagline        string          `yaml:"tagline" json:"tagline,omitempty"`
	Summary        string          `yaml:"summary" json:"summary,omitempty"`
	Segments       []string        `yaml:"segments" json:"segments"`
	About          string          `yaml:"about" json:"about"`
	Interests      []string        `yaml:"interests" json:"interests,omitempty"`
	Skills         []SkillGroup    `yaml:"skills" json:"skills"`
	Experience     []Experience    `yaml:"experience" json:"experience,omitempty"`
	Projects       []Project       `yaml:"projects" json:"projects"`
	Articles       []Article       `yaml:"articles" json:"articles,omitempty"`
	CodingProfiles []CodingProfile `yaml:"coding_profiles" json:"coding_profiles,omitempty"`
	Achievements   []Achievement   `yaml:"achievements" json:"achievements,omitempty"`
	Contact        Contact         `yaml:"contact" json:"contact"`
	Social         []Link          `yaml:"social" json:"social,omitempty"`
	Prompts        []string        `yaml:"prompts" json:"prompts,omitempty"`
	Greeting       []string        `yaml:"greeting" json:"greeting,omitempty"`
}

type SkillGroup struct {
	Name  string   `yaml:"name" json:"name"`
	Items []string `yaml:"items" json:"items"`
}

type Experience struct {
	Role       string   `yaml:"role" json:"role"`
	Company    string   `yaml:"company" json:"company"`
	Start      string   `yaml:"start" json:"start"`
	End        string   `yaml:"end" json:"end"`
	Highlights []string `yaml:"highlights" json:"highlights,omitempty"`
}

type Project struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Tech        []string `yaml:"tech" json:"tech,omitempty"`
	URL         string   `yaml:"url" json:"url,omitempty"`
}

type Article struct {
	Title    string `yaml:"title" json:"title"`
	Excerpt  string `yaml:"excerpt" json:"excerpt"`
	Date     string `yaml:"date" json:"date"`
	ReadTime string `yaml:"read_time" json:"read_time,omitempty"`
	URL      string `yaml:"url" json:"url,omitempty"`
	Category string `yaml:"category" json:"category"`
}

type CodingProfile struct {
	Name        string      `yaml:"name" json:"name"`
	Username    string      `yaml:"username" json:"username"`
	Description string      `yaml:"description" json:"description,omitempty"`
	Stats       CodingStats `yaml:"stats" json:"stats"`
	URL         string      `yaml:"url" json:"url,omitempty"`
}

type CodingStats struct {
	Solved string `yaml:"solved" json:"solved"`
	Rating string `yaml:"rating" json:"rating"`
	Rank   string `yaml:"rank" json:"rank"`
}

type Achievement struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

type Contact struct {
	Email    string `yaml:"email" json:"email,omitempty"`
	GitHub   string `yaml:"github" json:"github,omitempty"`
	LinkedIn string `yaml:"linkedin" json:"linkedin,omitempty"`
	Website  string `yaml:"website" json:"website,omitempty"`
}

type Link struct {
	Label string `yaml:"label" json:"label"`
	URL   string `yaml:"url" json:"url"`
}

// Default returns the built-in profile. It panics only if the embedded
// document is broken, which the tests guard against.
func Default() *Profile {
	p, err := Parse(defaultDocument)
	if err != nil {
		panic(fmt.Sprintf("profile: embedded default: %v", err))
	}
	return p
}

// Load reads a profile document from path. An empty path yields Default.
func Load(path string) (*Profile, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("profile: read %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("profile: %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes and validates a YAML profile document. Unknown keys are
// rejected so typos surface instead of silently dropping content.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the fields every surface depends on.
func (p *Profile) Validate() error {
	var errs []error
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ErrMissingName)
	}
	if len(p.Segments) == 0 {
		errs = append(errs, ErrNoSegments)
	}
	return errors.Join(errs...)
}

// AllCategories is the article filter that matches everything.
const AllCategories = "All"

// ArticleCategories returns AllCategories followed by each distinct article
// category in order of first appearance.
func (p *Profile) ArticleCategories() []string {
	out := []string{AllCategories}
	seen := map[string]bool{AllCategories: true}
	for _, a := range p.Articles {
		if a.Category == "" || seen[a.Category] {
			continue
		}
		seen[a.Category] = true
		out = append(out, a.Category)
	}
	return out
}

// FilterArticles returns the articles in category. AllCategories and the
// empty string match every article.
func (p *Profile) FilterArticles(category string) []Article {
	if category == "" || category == AllCategories {
		return p.Articles
	}
	var out []Article
	for _, a := range p.Articles {
		if a.Category == category {
			out = append(out, a)
		}
	}
	return out
}

// SkillNames flattens every skill group.
func (p *Profile) SkillNames() []string {
	var out []string
	for _, g := range p.Skills {
		out = append(out, g.Items...)
	}
	return out
}
