//go:build !perlstatic

package entry

import (
	"github.com/charmbracelet/log"

	"github.com/vertti/ppl/pkg/config"
	"github.com/vertti/ppl/pkg/dynlib"
)

// Static reports whether the entry point is linked at build time.
const Static = false

// NewBinder returns the binder selected by the build.
func NewBinder(cfg config.Config, logger *log.Logger) Binder {
	return &DynamicBinder{
		Pattern:  cfg.LibraryPattern,
		Symbol:   cfg.Symbol,
		Capacity: cfg.LibraryCapacity,
		Loader:   dynlib.RealLoader{},
		Log:      logger,
	}
}
