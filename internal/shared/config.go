package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Pagination PaginationConfig `toml:"pagination"`
	Modal      ModalConfig      `toml:"modal"`
	Database   DatabaseConfig   `toml:"database"`
	Log        LogConfig        `toml:"log"`

	// Unknown holds keys present in the file that no field recognizes. They are ignored.
	Unknown []string `toml:"-"`
}

// PaginationConfig mirrors the pagination options shared by both lists of a dual list.
type PaginationConfig struct {
	ItemsPerPage          int  `toml:"items_per_page"`
	MaxPageButtons        int  `toml:"max_page_buttons"`
	AlwaysShowNavButtons  bool `toml:"always_show_nav_buttons"`
	AlwaysShowEdgeButtons bool `toml:"always_show_edge_buttons"`
}

// ModalConfig contains the labels and contexts of the picker dialog.
type ModalConfig struct {
	ID                  string          `toml:"id"`
	Title               string          `toml:"title"`
	DropdownDescription string          `toml:"dropdown_description"`
	SearchPlaceholder   string          `toml:"search_placeholder"`
	SourceListTitle     string          `toml:"source_list_title"`
	TargetListTitle     string          `toml:"target_list_title"`
	CancelButtonLabel   string          `toml:"cancel_button_label"`
	ConfirmButtonLabel  string          `toml:"confirm_button_label"`
	Required            bool            `toml:"required"`
	Contexts            []ContextOption `toml:"contexts"`
}

// ContextOption is a single dropdown entry.
type ContextOption struct {
	ID      string `toml:"id"`
	Caption string `toml:"caption"`
}

// DatabaseConfig contains the item catalog connection settings.
type DatabaseConfig struct {
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// LogConfig controls the level and the file the TUI logs to.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// The file is decoded over [DefaultConfig], so keys missing from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read config file: %v", ErrMissingConfig, err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes raw TOML over the defaults and validates the result.
func ParseConfig(data []byte) (*Config, error) {
	config := DefaultConfig()

	md, err := toml.Decode(string(data), config)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", ErrInvalidConfig, err)
	}

	for _, key := range md.Undecoded() {
		config.Unknown = append(config.Unknown, key.String())
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the ranges of the pagination settings.
func (c *Config) Validate() error {
	if c.Pagination.ItemsPerPage <= 0 {
		return fmt.Errorf("%w: items_per_page must be positive, got %d", ErrInvalidConfig, c.Pagination.ItemsPerPage)
	}
	if c.Pagination.MaxPageButtons < 1 {
		return fmt.Errorf("%w: max_page_buttons must be at least 1, got %d", ErrInvalidConfig, c.Pagination.MaxPageButtons)
	}
	if _, err := ParseLogLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: config file already exists at %s", ErrInvalidArgument, path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
