// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// setupCommand handles setup operations for configuration and the catalog database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "Write a config file from the built-in template",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupConfig,
			},
			{
				Name:  "database",
				Usage: "Initialize the catalog database and run migrations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupDatabase,
			},
		},
	}
}

// catalogCommand manages the item catalog pickers are seeded from
func catalogCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "catalog",
		Aliases: []string{"cat"},
		Usage:   "Manage the item catalog",
		Commands: []*cli.Command{
			{
				Name:  "import",
				Usage: "Import id,caption rows from a CSV file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "CSV file to import",
						Required: true,
					},
				},
				Action: r.CatalogImport,
			},
			{
				Name:  "list",
				Usage: "List catalog items one page at a time",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "filter",
						Usage: "Case-insensitive caption filter",
					},
					&cli.IntFlag{
						Name:  "page",
						Usage: "Page to show",
						Value: 1,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.CatalogList,
			},
			{
				Name:  "remove",
				Usage: "Remove an item from the catalog",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "id",
						Usage:    "Item ID to remove",
						Required: true,
					},
				},
				Action: r.CatalogRemove,
			},
		},
	}
}

// layoutCommand prints the page buttons a pager would render
func layoutCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "layout",
		Usage: "Show the page buttons for a page count",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "current",
				Usage:    "Current page",
				Required: true,
			},
			&cli.IntFlag{
				Name:     "total",
				Usage:    "Total pages",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "max",
				Usage: "Maximum number of buttons (defaults to pagination.max_page_buttons)",
			},
			&cli.BoolFlag{
				Name:  "nav",
				Usage: "Always show the previous/next buttons",
				Value: r.config.Pagination.AlwaysShowNavButtons,
			},
			&cli.BoolFlag{
				Name:  "edge",
				Usage: "Always show the first/last page buttons",
				Value: r.config.Pagination.AlwaysShowEdgeButtons,
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		},
		Action: r.Layout,
	}
}

// pickCommand returns the top-level command for the interactive picker.
func pickCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "pick",
		Aliases: []string{"ui", "tui"},
		Usage:   "Launch the dual-list picker and export the confirmed selection",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "CSV file with the source items (defaults to the catalog)",
			},
			&cli.StringFlag{
				Name:  "target",
				Usage: "CSV file with items that start in the target list",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Export format: json, csv, text or markdown",
				Value: "json",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path (defaults to stdout)",
			},
		},
		Action: r.Pick,
	}
}
