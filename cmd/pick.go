package main

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/dlx/internal/formatter"
	"github.com/desertthunder/dlx/internal/models"
	"github.com/desertthunder/dlx/internal/shared"
	"github.com/desertthunder/dlx/internal/ui"
	"github.com/urfave/cli/v3"
)

// Pick runs the dual-list picker and exports the confirmed selection.
func (r *Runner) Pick(ctx context.Context, cmd *cli.Command) error {
	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidFlag, err)
	}
	output := cmd.String("output")

	source, target, err := r.pickItems(cmd.String("file"), cmd.String("target"))
	if err != nil {
		return err
	}

	modal, err := r.newPicker(source, target, r.tuiLogger())
	if err != nil {
		return err
	}

	r.logger.Debug("starting picker", "source", len(source), "target", len(target))
	final, err := tea.NewProgram(modal, tea.WithContext(ctx), tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("picker failed: %w", err)
	}

	if m, ok := final.(*ui.Modal); ok {
		modal = m
	}
	return r.finishPick(modal, format, output)
}

// pickItems loads the source items from file (or the catalog when file is empty) and the target items from
// targetFile. Source items already present in the target are dropped so both lists stay disjoint.
func (r *Runner) pickItems(file, targetFile string) (source, target []models.Item, err error) {
	if file != "" {
		if source, err = formatter.ReadCSVFile(file); err != nil {
			return nil, nil, err
		}
	} else {
		repo, err := r.catalog()
		if err != nil {
			return nil, nil, err
		}
		if source, err = repo.Items(); err != nil {
			return nil, nil, err
		}
	}

	if targetFile == "" {
		return source, nil, nil
	}
	if target, err = formatter.ReadCSVFile(targetFile); err != nil {
		return nil, nil, err
	}

	inTarget := make(map[string]struct{}, len(target))
	for _, item := range target {
		inTarget[item.ID] = struct{}{}
	}
	kept := source[:0:0]
	for _, item := range source {
		if _, ok := inTarget[item.ID]; ok {
			r.logger.Debug("item already in target, skipping", "id", item.ID)
			continue
		}
		kept = append(kept, item)
	}
	return kept, target, nil
}

func (r *Runner) newPicker(source, target []models.Item, logger *log.Logger) (*ui.Modal, error) {
	return ui.NewModal(ui.ModalOptions{
		Config:     r.config.Modal,
		Pagination: r.config.Pagination,
		Source:     source,
		Target:     target,
		Logger:     logger,
		OnConfirm: func(items []models.Item, value string) {
			logger.Info("selection confirmed", "items", len(items), "context", value)
		},
		OnCancel: func() { logger.Info("selection cancelled") },
	})
}

// finishPick writes the confirmed selection of m, or reports that the dialog was cancelled.
func (r *Runner) finishPick(m *ui.Modal, format formatter.Format, path string) error {
	items, value, ok := m.Result()
	if !ok {
		return r.writePlain("cancelled\n")
	}

	sel := &formatter.Selection{Context: value, Items: items}
	if err := formatter.WriteExport(sel, format, path, r.output); err != nil {
		return err
	}
	if path != "" {
		r.logger.Info("selection exported", "path", path, "format", format, "items", len(items))
	}
	return nil
}

// tuiLogger returns the logger the picker writes to while it owns the terminal.
func (r *Runner) tuiLogger() *log.Logger {
	if r.config.Log.File == "" {
		return shared.NewLogger(io.Discard)
	}

	logger, err := shared.NewFileLogger(r.config.Log.File)
	if err != nil {
		r.logger.Warn("failed to open TUI log file, discarding picker logs", "error", err)
		return shared.NewLogger(io.Discard)
	}
	if level, err := shared.ParseLogLevel(r.config.Log.Level); err == nil {
		shared.SetLogLevel(logger, level)
	}
	return logger
}
