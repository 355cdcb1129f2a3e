package catalog

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/SoroushXYZ/Bit-by-Bit/pkg/errors"
	"github.com/SoroushXYZ/Bit-by-Bit/pkg/grid"
)

// Default values applied by ValidateAndSetDefaults.
const (
	DefaultColumns  = 12
	DefaultRows     = 16
	DefaultCellSize = 48

	// DefaultMaxRetries bounds the number of full placement attempts before
	// the orchestrator gives up and loads the fallback layout.
	DefaultMaxRetries = 500

	// DefaultMaxStocks caps the stock fill pass when the config enables it
	// without an explicit max_count.
	DefaultMaxStocks = 4

	DefaultOutputDir        = "data/raw"
	DefaultFilenameTemplate = "grid_blueprint_{timestamp}.json"
	DefaultFallbackPath     = "data/fallback_grid_blueprint.json"
	DefaultRedisKey         = "bitbybit:fallback_blueprint"
)

// GridConfig holds grid dimensions plus the cosmetic cell size. The cell
// size is carried into blueprint metadata but never consulted by the
// algorithm.
type GridConfig struct {
	Columns  int `toml:"columns"`
	Rows     int `toml:"rows"`
	CellSize int `toml:"cell_size"`
}

// StockConfig controls the 2x2 stock fill pass.
type StockConfig struct {
	Enabled  bool `toml:"enabled"`
	MaxCount int  `toml:"max_count"`
}

// DayNumberConfig controls the single 2x1 day-number fill pass.
type DayNumberConfig struct {
	Enabled bool `toml:"enabled"`
}

// BitConfig controls the 1x1 bit fill pass that saturates the grid.
type BitConfig struct {
	Enabled bool `toml:"enabled"`
}

// OutputConfig controls where blueprints land. The filename template may
// contain a {timestamp} placeholder.
type OutputConfig struct {
	Dir              string `toml:"dir"`
	FilenameTemplate string `toml:"filename_template"`
}

// FallbackConfig selects the fallback store backend. When RedisAddr is set
// the store is Redis-backed; otherwise Path names a JSON file.
type FallbackConfig struct {
	Path      string `toml:"path"`
	RedisAddr string `toml:"redis_addr"`
	RedisKey  string `toml:"redis_key"`
}

// componentConfig is the on-disk form of a component spec. A block with a
// non-empty shapes list declares a flexible component; otherwise it is fixed.
type componentConfig struct {
	Name       string  `toml:"name"`
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	Count      int     `toml:"count"`
	Shapes     []Shape `toml:"shapes"`
	TotalCount int     `toml:"total_count"`
	CanRotate  bool    `toml:"can_rotate"`
	Priority   int     `toml:"priority"`
}

// Config is the full run configuration for one blueprint generation.
type Config struct {
	Grid       GridConfig        `toml:"grid"`
	MaxRetries int               `toml:"max_retries"`
	Seed       uint64            `toml:"seed"`
	Components []componentConfig `toml:"component"`
	Stocks     StockConfig       `toml:"stocks"`
	DayNumber  DayNumberConfig   `toml:"day_number"`
	Bits       BitConfig         `toml:"bits"`
	Output     OutputConfig      `toml:"output"`
	Fallback   FallbackConfig    `toml:"fallback"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Load reads and validates a TOML run configuration.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read config %s", path)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if err := cfg.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (c *Config) ValidateAndSetDefaults() error {
	if c.validated {
		return nil
	}

	if c.Grid.Columns == 0 {
		c.Grid.Columns = DefaultColumns
	}
	if c.Grid.Rows == 0 {
		c.Grid.Rows = DefaultRows
	}
	if c.Grid.CellSize == 0 {
		c.Grid.CellSize = DefaultCellSize
	}
	if c.Grid.Columns < 0 || c.Grid.Rows < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "grid dimensions must be positive, got %dx%d", c.Grid.Columns, c.Grid.Rows)
	}
	if c.MaxRetries == 0 {
		c.MaxRetries = DefaultMaxRetries
	}
	if c.MaxRetries < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "max_retries must be positive, got %d", c.MaxRetries)
	}
	if c.Stocks.Enabled && c.Stocks.MaxCount == 0 {
		c.Stocks.MaxCount = DefaultMaxStocks
	}
	if c.Output.Dir == "" {
		c.Output.Dir = DefaultOutputDir
	}
	if c.Output.FilenameTemplate == "" {
		c.Output.FilenameTemplate = DefaultFilenameTemplate
	}
	if c.Fallback.Path == "" && c.Fallback.RedisAddr == "" {
		c.Fallback.Path = DefaultFallbackPath
	}
	if c.Fallback.RedisAddr != "" && c.Fallback.RedisKey == "" {
		c.Fallback.RedisKey = DefaultRedisKey
	}

	for i := range c.Components {
		if err := c.Components[i].validate(); err != nil {
			return err
		}
	}

	c.validated = true
	return nil
}

func (cc *componentConfig) validate() error {
	if cc.Name == "" {
		return errors.New(errors.ErrCodeInvalidComponent, "component name is required")
	}
	if len(cc.Shapes) > 0 {
		if cc.TotalCount <= 0 {
			return errors.New(errors.ErrCodeInvalidComponent, "flexible component %s needs a positive total_count, got %d", cc.Name, cc.TotalCount)
		}
		for _, s := range cc.Shapes {
			if s.Width <= 0 || s.Height <= 0 {
				return errors.New(errors.ErrCodeInvalidComponent, "flexible component %s has invalid shape %dx%d", cc.Name, s.Width, s.Height)
			}
		}
		return nil
	}
	if cc.Width <= 0 || cc.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidComponent, "component %s has invalid size %dx%d", cc.Name, cc.Width, cc.Height)
	}
	if cc.Count <= 0 {
		return errors.New(errors.ErrCodeInvalidComponent, "component %s needs a positive count, got %d", cc.Name, cc.Count)
	}
	return nil
}

// Catalog converts the configured component blocks into immutable specs.
// The config must have passed ValidateAndSetDefaults.
func (c *Config) Catalog() Catalog {
	var cat Catalog
	for _, cc := range c.Components {
		if len(cc.Shapes) > 0 {
			cat.Flexible = append(cat.Flexible, FlexibleSpec{
				Name:       cc.Name,
				Shapes:     append([]Shape(nil), cc.Shapes...),
				TotalCount: cc.TotalCount,
				CanRotate:  cc.CanRotate,
				Priority:   cc.Priority,
				Type:       grid.TypeFromName(cc.Name),
			})
			continue
		}
		cat.Fixed = append(cat.Fixed, ComponentSpec{
			Name:      cc.Name,
			Width:     cc.Width,
			Height:    cc.Height,
			Count:     cc.Count,
			CanRotate: cc.CanRotate,
			Priority:  cc.Priority,
			Type:      grid.TypeFromName(cc.Name),
		})
	}
	return cat
}
