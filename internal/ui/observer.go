package ui

import (
	"github.com/charmbracelet/log"
	"github.com/desertthunder/dlx/internal/transfer"
)

// logObserver writes coordinator notifications to the debug log.
type logObserver struct {
	logger *log.Logger
}

func newLogObserver(logger *log.Logger, list string) logObserver {
	return logObserver{logger: logger.With("list", list)}
}

func (o logObserver) OnTransfer(kind transfer.Kind) {
	o.logger.Debug("transfer", "kind", kind.String())
}

func (o logObserver) OnFilterChange(text string) {
	o.logger.Debug("filter", "text", text)
}
