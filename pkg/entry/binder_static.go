//go:build perlstatic

package entry

import (
	"github.com/charmbracelet/log"

	"github.com/vertti/ppl/pkg/config"
)

// Static reports whether the entry point is linked at build time.
const Static = true

// NewBinder returns the binder selected by the build. The library settings
// in cfg are unused: there is nothing to discover.
func NewBinder(_ config.Config, logger *log.Logger) Binder {
	if logger != nil {
		logger.Debug("entry point linked at build time")
	}
	return StaticBinder{}
}
