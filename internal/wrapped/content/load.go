package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed catalog.toml
var embeddedCatalog []byte

// ErrInvalidCatalog marks catalog validation failures.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Default decodes the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(bytes.NewReader(embeddedCatalog))
}

// Load decodes the catalog at path. An empty path yields the embedded catalog.
func Load(path string) (*Catalog, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default()
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer file.Close()
	return Parse(file)
}

// Parse decodes and validates a catalog document. Unknown keys are rejected so
// typos in an override file surface at startup.
func Parse(r io.Reader) (*Catalog, error) {
	var catalog Catalog
	decoder := toml.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&catalog); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	catalog.normalize()
	return &catalog, nil
}

// Validate checks the invariants screens rely on.
func (c *Catalog) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: catalog is nil", ErrInvalidCatalog)
	}
	if strings.TrimSpace(c.Recipient.Name) == "" {
		return fmt.Errorf("%w: recipient name is required", ErrInvalidCatalog)
	}
	seenRanks := make(map[int]string, len(c.Music.Songs))
	for _, song := range c.Music.Songs {
		if song.Rank <= 0 {
			return fmt.Errorf("%w: song %q has non-positive rank %d", ErrInvalidCatalog, song.Title, song.Rank)
		}
		if previous, ok := seenRanks[song.Rank]; ok {
			return fmt.Errorf("%w: songs %q and %q share rank %d", ErrInvalidCatalog, previous, song.Title, song.Rank)
		}
		seenRanks[song.Rank] = song.Title
		if strings.TrimSpace(song.Title) == "" {
			return fmt.Errorf("%w: song rank %d has no title", ErrInvalidCatalog, song.Rank)
		}
	}
	for idx, stat := range c.Stats.Items {
		if strings.TrimSpace(stat.Title) == "" {
			return fmt.Errorf("%w: stat %d has no title", ErrInvalidCatalog, idx)
		}
		switch stat.Value.(type) {
		case int64, string:
		default:
			if _, ok := stat.Numeric(); !ok {
				return fmt.Errorf("%w: stat %q must be a string or an integer within int64, got %T %v", ErrInvalidCatalog, stat.Title, stat.Value, stat.Value)
			}
		}
	}
	for _, entries := range [][]Entry{c.Moments.Items, c.Growth.Items} {
		for idx, entry := range entries {
			if strings.TrimSpace(entry.Title) == "" {
				return fmt.Errorf("%w: entry %d has no title", ErrInvalidCatalog, idx)
			}
			if entry.Delay < 0 {
				return fmt.Errorf("%w: entry %q has negative delay", ErrInvalidCatalog, entry.Title)
			}
		}
	}
	for idx, memory := range c.Travel.Memories {
		if strings.TrimSpace(memory.Place) == "" {
			return fmt.Errorf("%w: travel memory %d has no place", ErrInvalidCatalog, idx)
		}
	}
	if c.Birthday.Bubbles < 0 {
		return fmt.Errorf("%w: birthday bubble count is negative", ErrInvalidCatalog)
	}
	if strings.TrimSpace(c.Letter.Body) == "" {
		return fmt.Errorf("%w: letter body is required", ErrInvalidCatalog)
	}
	return nil
}

func (c *Catalog) normalize() {
	sort.SliceStable(c.Music.Songs, func(i, j int) bool {
		return c.Music.Songs[i].Rank < c.Music.Songs[j].Rank
	})
	for idx := range c.Stats.Items {
		if n, ok := c.Stats.Items[idx].Numeric(); ok {
			c.Stats.Items[idx].Value = n
		}
	}
}
