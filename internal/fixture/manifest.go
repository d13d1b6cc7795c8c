package fixture

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/astutecat/aoc-2024/internal/pipeline"
	"github.com/astutecat/aoc-2024/internal/store"
)

// #region manifest-types
// Manifest lists expected answers for a set of day/part runs.
type Manifest struct {
	Description string `yaml:"description"`
	Source      string `yaml:"source"` // "example" | "real"
	Cases       []Case `yaml:"cases"`
}

// Case is one expectation. A nil Want expects the part to be unsolved. A
// non-empty Input is used instead of the data directory file.
type Case struct {
	Day   int    `yaml:"day"`
	Part  int    `yaml:"part"`
	Want  *int64 `yaml:"want"`
	Input string `yaml:"input,omitempty"`
}

// Expected returns the answer the case expects.
func (c Case) Expected() pipeline.Answer {
	if c.Want == nil {
		return pipeline.Unsolved
	}
	return pipeline.Solved(*c.Want)
}

// #endregion manifest-types

// #region manifest-io
// LoadManifest reads and validates a YAML manifest.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return &m, nil
}

// Save writes m as YAML.
func (m *Manifest) Save(path string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write manifest %s: %w", path, err)
	}
	return nil
}

// Validate checks that every case names a real day and part.
func (m *Manifest) Validate() error {
	switch m.Source {
	case "", "example", "real":
	default:
		return fmt.Errorf("unknown source %q", m.Source)
	}
	for i, c := range m.Cases {
		if c.Day < 1 || c.Day > 25 {
			return fmt.Errorf("case %d: day %d out of range", i, c.Day)
		}
		if c.Part != 1 && c.Part != 2 {
			return fmt.Errorf("case %d: part %d out of range", i, c.Part)
		}
	}
	return nil
}

// #endregion manifest-io

// #region from-runs
// FromRuns builds a manifest from stored runs of the given source, keeping
// the most recent error-free run per day/part. runs must be newest first, as
// returned by store.ListRuns.
func FromRuns(description, source string, runs []store.Run) *Manifest {
	type key struct{ day, part int }
	seen := make(map[key]bool)
	m := &Manifest{Description: description, Source: source}
	for _, r := range runs {
		k := key{r.Day, r.Part}
		if r.Source != source || !r.OK() || seen[k] {
			continue
		}
		seen[k] = true
		c := Case{Day: r.Day, Part: r.Part}
		if r.Solved {
			v := r.Value
			c.Want = &v
		}
		m.Cases = append(m.Cases, c)
	}
	sort.Slice(m.Cases, func(i, j int) bool {
		if m.Cases[i].Day != m.Cases[j].Day {
			return m.Cases[i].Day < m.Cases[j].Day
		}
		return m.Cases[i].Part < m.Cases[j].Part
	})
	return m
}

// #endregion from-runs
