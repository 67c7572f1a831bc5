package orbit

import (
	_ "embed"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	toml "github.com/pelletier/go-toml/v2"
)

// SupportedVersions is the semver constraint a dataset's version must satisfy.
const SupportedVersions = "^1.0"

//go:embed maps.toml
var defaultDataset []byte

// Map is one themed set of items shown on the rings.
type Map struct {
	Key   string `toml:"key"`
	Name  string `toml:"name"`
	Color string `toml:"color"`
	Items []Item `toml:"item"`
}

// Selectable reports whether the map has anything to show.
func (m Map) Selectable() bool { return len(m.Items) > 0 }

// Catalog is a parsed dataset: ring configuration plus maps in file order.
type Catalog struct {
	Version string `toml:"version"`
	Rings   Rings  `toml:"ring"`
	Maps    []Map  `toml:"map"`
}

// DefaultCatalog returns the embedded dataset. It panics if the embedded file
// is malformed, which only a broken build can cause.
func DefaultCatalog() *Catalog {
	c, err := Parse(defaultDataset)
	if err != nil {
		panic(fmt.Sprintf("orbit: embedded dataset: %v", err))
	}
	return c
}

// Load reads and parses a dataset file. It does not validate; call Validate.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a TOML dataset. A file without [[ring]] tables inherits
// DefaultRings, so a dataset may contain only maps.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	if len(c.Rings) == 0 {
		c.Rings = DefaultRings()
	}
	return &c, nil
}

// LoadValid loads path and returns the catalog only if it validates cleanly.
func LoadValid(path string) (*Catalog, []ValidationError, error) {
	c, err := Load(path)
	if err != nil {
		return nil, nil, err
	}
	if errs := Validate(c); len(errs) > 0 {
		return nil, errs, fmt.Errorf("%s: %d validation error(s)", path, len(errs))
	}
	return c, nil, nil
}

// Map returns the map with the given key.
func (c *Catalog) Map(key string) (Map, error) {
	for _, m := range c.Maps {
		if m.Key == key {
			return m, nil
		}
	}
	return Map{}, fmt.Errorf("%w: %q", ErrNoMap, key)
}

// Select returns the map with the given key if it can be shown.
func (c *Catalog) Select(key string) (Map, error) {
	m, err := c.Map(key)
	if err != nil {
		return Map{}, err
	}
	if !m.Selectable() {
		return Map{}, fmt.Errorf("%w: %q", ErrEmptyMap, key)
	}
	return m, nil
}

// First returns the first selectable map, if any.
func (c *Catalog) First() (Map, bool) {
	for _, m := range c.Maps {
		if m.Selectable() {
			return m, true
		}
	}
	return Map{}, false
}

// Keys returns map keys in file order.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.Maps))
	for _, m := range c.Maps {
		keys = append(keys, m.Key)
	}
	return keys
}

// Validate checks a catalog and returns every problem found.
func Validate(c *Catalog) []ValidationError {
	var errs []ValidationError

	if err := checkVersion(c.Version); err != nil {
		errs = append(errs, ValidationError{Category: ValCatVersion, Index: -1, Field: "version", Err: err})
	}

	ringIDs := make(map[int]bool)
	for _, r := range c.Rings {
		if ringIDs[r.ID] {
			errs = append(errs, ValidationError{
				Category: ValCatDuplicate,
				Index:    -1,
				Field:    "ring.id",
				Err:      fmt.Errorf("%w: %d", ErrDuplicateRing, r.ID),
			})
		}
		ringIDs[r.ID] = true
		if r.Radius <= 0 {
			errs = append(errs, ValidationError{
				Category: ValCatBounds,
				Index:    -1,
				Field:    "ring.radius",
				Err:      fmt.Errorf("ring %d: radius must be positive, got %g", r.ID, r.Radius),
			})
		}
	}

	seen := make(map[string]bool)
	for _, m := range c.Maps {
		if strings.TrimSpace(m.Key) == "" {
			errs = append(errs, ValidationError{
				Category: ValCatMissingField,
				Index:    -1,
				Field:    "map.key",
				Err:      fmt.Errorf("%w: map.key", ErrMissingField),
			})
			continue
		}
		if seen[m.Key] {
			errs = append(errs, ValidationError{
				Category: ValCatDuplicate,
				MapKey:   m.Key,
				Index:    -1,
				Field:    "map.key",
				Err:      fmt.Errorf("%w: %q", ErrDuplicateMap, m.Key),
			})
		}
		seen[m.Key] = true

		for i, it := range m.Items {
			if !ringIDs[it.Ring] {
				errs = append(errs, ValidationError{
					Category: ValCatUnknownRing,
					MapKey:   m.Key,
					Index:    i,
					Field:    "ring",
					Err:      fmt.Errorf("%w: %d", ErrUnknownRing, it.Ring),
				})
			}
			if it.Angle < 0 || it.Angle >= 360 || math.IsNaN(it.Angle) {
				errs = append(errs, ValidationError{
					Category: ValCatAngle,
					MapKey:   m.Key,
					Index:    i,
					Field:    "angle",
					Err:      fmt.Errorf("%w: %g", ErrAngleRange, it.Angle),
				})
			}
			if strings.TrimSpace(it.Text) == "" {
				errs = append(errs, ValidationError{
					Category: ValCatMissingField,
					MapKey:   m.Key,
					Index:    i,
					Field:    "text",
					Err:      fmt.Errorf("%w: text", ErrMissingField),
				})
			}
		}
	}

	return errs
}

func checkVersion(v string) error {
	if v == "" {
		return fmt.Errorf("%w: version missing", ErrSchemaVersion)
	}
	ver, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrSchemaVersion, v, err)
	}
	constraint, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return err
	}
	if !constraint.Check(ver) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrSchemaVersion, ver, SupportedVersions)
	}
	return nil
}
