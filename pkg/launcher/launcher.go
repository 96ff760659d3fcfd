// Package launcher runs the pipeline from the executable path to the
// entry point call.
package launcher

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vertti/ppl/pkg/argv"
	"github.com/vertti/ppl/pkg/config"
	"github.com/vertti/ppl/pkg/entry"
	"github.com/vertti/ppl/pkg/scriptpath"
	"github.com/vertti/ppl/pkg/selfpath"
)

// ExitFailure is returned for every failure of the launcher itself.
const ExitFailure = 1

// Launcher wires the stages together.
type Launcher struct {
	Config   config.Config
	Resolver selfpath.Resolver
	Binder   entry.Binder
	Stderr   io.Writer
	Log      *log.Logger
}

// New returns a launcher using the operating system and the binder
// selected by the build.
func New(cfg config.Config) *Launcher {
	logger := NewLogger(os.Stderr, cfg.Debug)
	return &Launcher{
		Config:   cfg,
		Resolver: &selfpath.RealResolver{Capacity: cfg.MaxPath},
		Binder:   entry.NewBinder(cfg, logger),
		Stderr:   os.Stderr,
		Log:      logger,
	}
}

// Run executes the pipeline and returns the process exit code: the entry
// point's result, or ExitFailure after printing one diagnostic line.
func (l *Launcher) Run(args, env []string) int {
	code, err := l.run(args, env)
	if err != nil {
		_, _ = fmt.Fprintln(l.Stderr, err)
		return ExitFailure
	}
	return code
}

// Plan is what the launcher decided before binding the entry point.
type Plan struct {
	Executable string
	Script     string
	Emulate    bool
}

// Prepare resolves the executable and derives the script path. The script
// path is derived even in emulation mode, so a missing delimiter fails the
// same way in both.
func (l *Launcher) Prepare() (Plan, error) {
	if err := l.Config.Validate(); err != nil {
		return Plan{}, err
	}
	rule, err := l.Config.Rule()
	if err != nil {
		return Plan{}, err
	}

	exe, err := l.Resolver.Executable()
	if err != nil {
		return Plan{}, err
	}

	p := Plan{
		Executable: exe,
		Emulate:    scriptpath.Emulates(exe, l.Config.ReferenceTool),
	}
	p.Script, err = scriptpath.Derive(exe, rule, l.Config.MaxPath)
	if err != nil {
		return Plan{}, err
	}
	return p, nil
}

func (l *Launcher) run(args, env []string) (int, error) {
	logger := l.logger()

	p, err := l.Prepare()
	if err != nil {
		return 0, err
	}

	logger.Debug("arguments passed to the executable", "argc", len(args))
	for i, a := range args {
		logger.Debug("argv", "i", i, "value", a)
	}
	if p.Emulate {
		logger.Debug("emulating the reference tool", "name", l.Config.ReferenceTool)
	} else {
		logger.Debug("script to be called", "path", p.Script)
	}

	ep, err := l.Binder.Bind(p.Executable)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err := ep.Close(); err != nil {
			logger.Debug("release entry point", "err", err)
		}
	}()

	vec, err := argv.Build(args, p.Script, p.Emulate)
	if err != nil {
		return 0, err
	}

	return ep.Call(vec, env)
}

func (l *Launcher) logger() *log.Logger {
	if l.Log == nil {
		return log.New(io.Discard)
	}
	return l.Log
}
