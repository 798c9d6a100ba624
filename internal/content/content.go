// Package content holds the portfolio data shown by the terminal app and
// served by the web API.
package content

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

var ErrInvalidContent = errors.New("content: invalid")

type Content struct {
	Profile         Profile         `yaml:"profile" json:"profile"`
	Skills          []Skill         `yaml:"skills" json:"skills"`
	Experience      []Experience    `yaml:"experience" json:"experience"`
	Education       Education       `yaml:"education" json:"education"`
	Specializations []string        `yaml:"specializations" json:"specializations"`
	Projects        []Project       `yaml:"projects" json:"projects"`
	Certifications  []Certification `yaml:"certifications" json:"certifications"`
}

type Profile struct {
	Name      string   `yaml:"name" json:"name"`
	Headlines []string `yaml:"headlines" json:"headlines"`
	Tagline   string   `yaml:"tagline" json:"tagline"`
	Bio       string   `yaml:"bio" json:"bio"`
	Email     string   `yaml:"email" json:"email"`
	Phone     string   `yaml:"phone,omitempty" json:"phone,omitempty"`
	Location  string   `yaml:"location" json:"location"`
	ResumeURL string   `yaml:"resume_url" json:"resume_url"`
	Socials   []Social `yaml:"socials" json:"socials"`

	// Assistant configures the chat widget.
	Assistant Assistant `yaml:"assistant" json:"-"`
}

type Assistant struct {
	Instruction string `yaml:"instruction"`
	Greeting    string `yaml:"greeting"`
}

type Social struct {
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url" json:"url"`
}

type Skill struct {
	Name string `yaml:"name" json:"name"`
	Icon string `yaml:"icon,omitempty" json:"icon,omitempty"`
}

type Experience struct {
	Role        string `yaml:"role" json:"role"`
	Company     string `yaml:"company" json:"company"`
	Period      string `yaml:"period" json:"period"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

type Education struct {
	Degree     string `yaml:"degree" json:"degree"`
	Field      string `yaml:"field,omitempty" json:"field,omitempty"`
	University string `yaml:"university" json:"university"`
}

type Stat struct {
	Label string `yaml:"label" json:"label"`
	Value string `yaml:"value" json:"value"`
}

type Project struct {
	ID              string   `yaml:"id" json:"id"`
	Title           string   `yaml:"title" json:"title"`
	Category        string   `yaml:"category" json:"category"`
	Description     string   `yaml:"description" json:"description"`
	LongDescription string   `yaml:"long_description" json:"long_description"`
	Image           string   `yaml:"image,omitempty" json:"image,omitempty"`
	Video           string   `yaml:"video,omitempty" json:"video,omitempty"`
	Tags            []string `yaml:"tags" json:"tags"`
	Link            string   `yaml:"link,omitempty" json:"link,omitempty"`
	Stats           []Stat   `yaml:"stats" json:"stats"`
}

// HasLink reports whether the project points somewhere real.
func (p Project) HasLink() bool { return p.Link != "" && p.Link != "#" }

type Certification struct {
	ID          string `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Issuer      string `yaml:"issuer" json:"issuer"`
	Date        string `yaml:"date" json:"date"`
	Image       string `yaml:"image,omitempty" json:"image,omitempty"`
	Description string `yaml:"description" json:"description"`
}

// Load reads a YAML file over the defaults; sections present in the file
// replace the default ones.
func Load(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Content) Validate() error {
	if c.Profile.Name == "" {
		return fmt.Errorf("%w: profile name is required", ErrInvalidContent)
	}
	if len(c.Profile.Headlines) == 0 {
		return fmt.Errorf("%w: at least one headline is required", ErrInvalidContent)
	}
	seen := make(map[string]bool)
	for _, p := range c.Projects {
		if p.ID == "" || p.Title == "" {
			return fmt.Errorf("%w: project needs id and title", ErrInvalidContent)
		}
		if seen["p:"+p.ID] {
			return fmt.Errorf("%w: duplicate project id %q", ErrInvalidContent, p.ID)
		}
		seen["p:"+p.ID] = true
	}
	for _, cert := range c.Certifications {
		if cert.ID == "" || cert.Title == "" {
			return fmt.Errorf("%w: certification needs id and title", ErrInvalidContent)
		}
		if seen["c:"+cert.ID] {
			return fmt.Errorf("%w: duplicate certification id %q", ErrInvalidContent, cert.ID)
		}
		seen["c:"+cert.ID] = true
	}
	return nil
}

// Project looks a project up by id.
func (c *Content) Project(id string) (Project, bool) {
	for _, p := range c.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

// Categories lists project categories in first-seen order.
func (c *Content) Categories() []string {
	var out []string
	seen := make(map[string]bool)
	for _, p := range c.Projects {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// ByCategory filters projects; an empty category returns all of them.
func (c *Content) ByCategory(category string) []Project {
	if category == "" {
		return c.Projects
	}
	var out []Project
	for _, p := range c.Projects {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Tags counts how many projects use each tag, most used first.
func (c *Content) Tags() []TagCount {
	counts := make(map[string]int)
	for _, p := range c.Projects {
		for _, t := range p.Tags {
			counts[t]++
		}
	}
	out := make([]TagCount, 0, len(counts))
	for t, n := range counts {
		out = append(out, TagCount{Tag: t, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag < out[j].Tag
	})
	return out
}

type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}
