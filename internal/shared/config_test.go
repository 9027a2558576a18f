package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Pagination.ItemsPerPage != 5 {
			t.Errorf("expected items_per_page 5, got %d", config.Pagination.ItemsPerPage)
		}
		if config.Pagination.MaxPageButtons != 6 {
			t.Errorf("expected max_page_buttons 6, got %d", config.Pagination.MaxPageButtons)
		}
		if !config.Pagination.AlwaysShowNavButtons || !config.Pagination.AlwaysShowEdgeButtons {
			t.Error("expected nav and edge buttons to default to true")
		}
		if config.Modal.CancelButtonLabel != "Cancelar" {
			t.Errorf("expected cancel label Cancelar, got %s", config.Modal.CancelButtonLabel)
		}
		if config.Database.Path != "./dlx.db" {
			t.Errorf("expected database path ./dlx.db, got %s", config.Database.Path)
		}
		if len(config.Modal.Contexts) != 1 || config.Modal.Contexts[0].ID != "default" {
			t.Errorf("expected a single default context, got %+v", config.Modal.Contexts)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		if config.Pagination != DefaultConfig().Pagination {
			t.Errorf("created config pagination doesn't match default: %+v", config.Pagination)
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig keeps defaults for missing keys", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		testConfig := `[pagination]
items_per_page = 10
always_show_nav_buttons = false

[modal]
title = "Select Items"

[[modal.contexts]]
id = "context1"
caption = "Context 1"

[[modal.contexts]]
id = "context2"
caption = "Context 2"
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Pagination.ItemsPerPage != 10 {
			t.Errorf("expected items_per_page 10, got %d", config.Pagination.ItemsPerPage)
		}
		if config.Pagination.AlwaysShowNavButtons {
			t.Error("expected nav buttons to be disabled")
		}
		if !config.Pagination.AlwaysShowEdgeButtons {
			t.Error("expected edge buttons to keep the default")
		}
		if config.Pagination.MaxPageButtons != 6 {
			t.Errorf("expected max_page_buttons default 6, got %d", config.Pagination.MaxPageButtons)
		}
		if config.Modal.Title != "Select Items" {
			t.Errorf("expected title Select Items, got %s", config.Modal.Title)
		}
		if config.Modal.SourceListTitle != "Source List" {
			t.Errorf("expected source title default, got %s", config.Modal.SourceListTitle)
		}
		if len(config.Modal.Contexts) != 2 || config.Modal.Contexts[1].ID != "context2" {
			t.Errorf("expected two contexts from file, got %+v", config.Modal.Contexts)
		}
	})

	t.Run("LoadConfig reports unknown keys", func(t *testing.T) {
		config, err := ParseConfig([]byte("[pagination]\nitems_per_page = 3\nshow_everything = true\n"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(config.Unknown) != 1 || config.Unknown[0] != "pagination.show_everything" {
			t.Errorf("expected unknown key pagination.show_everything, got %v", config.Unknown)
		}
	})

	t.Run("LoadConfig rejects invalid values", func(t *testing.T) {
		tc := []struct {
			name string
			data string
		}{
			{name: "zero page size", data: "[pagination]\nitems_per_page = 0\n"},
			{name: "negative page size", data: "[pagination]\nitems_per_page = -2\n"},
			{name: "zero max buttons", data: "[pagination]\nmax_page_buttons = 0\n"},
			{name: "bad log level", data: "[log]\nlevel = \"loud\"\n"},
			{name: "malformed toml", data: "[pagination\n"},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				_, err := ParseConfig([]byte(tt.data))
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("expected ErrInvalidConfig, got %v", err)
				}
			})
		}
	})

	t.Run("LoadConfig missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
		if !errors.Is(err, ErrMissingConfig) {
			t.Errorf("expected ErrMissingConfig, got %v", err)
		}
	})
}
