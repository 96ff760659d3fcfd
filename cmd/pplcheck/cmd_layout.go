package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vertti/ppl/pkg/check"
	"github.com/vertti/ppl/pkg/config"
	"github.com/vertti/ppl/pkg/dynlib"
	"github.com/vertti/ppl/pkg/entry"
	"github.com/vertti/ppl/pkg/launcher"
	"github.com/vertti/ppl/pkg/layoutcheck"
	"github.com/vertti/ppl/pkg/selfpath"
)

var (
	layoutExe       string
	layoutJSON      bool
	layoutReplace   string
	layoutPattern   string
	layoutReference string
	layoutSymbol    string
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Check script path and runtime library discovery",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runLayout(cmd, false)
	},
}

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Like layout, and also load the library and resolve the entry point",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runLayout(cmd, true)
	},
}

func init() {
	defaults := config.Default()
	for _, c := range []*cobra.Command{layoutCmd, loadCmd} {
		addLayoutFlags(c.Flags(), defaults)
		rootCmd.AddCommand(c)
	}
}

func addLayoutFlags(fs *pflag.FlagSet, defaults config.Config) {
	fs.StringVar(&layoutExe, "exe", "", "launcher executable to inspect (default: this executable)")
	fs.BoolVar(&layoutJSON, "json", false, "print a JSON report")
	fs.StringVar(&layoutReplace, "replace", defaults.Replace, "script path replacement rule")
	fs.StringVar(&layoutPattern, "pattern", defaults.LibraryPattern, "runtime library search pattern")
	fs.StringVar(&layoutReference, "reference", defaults.ReferenceTool, "file name that selects emulation mode")
	fs.StringVar(&layoutSymbol, "symbol", defaults.Symbol, "entry point symbol")
}

func layoutConfig() config.Config {
	cfg := config.Default()
	cfg.Replace = layoutReplace
	cfg.LibraryPattern = layoutPattern
	cfg.ReferenceTool = layoutReference
	cfg.Symbol = layoutSymbol
	return cfg
}

func runLayout(cmd *cobra.Command, load bool) error {
	cfg := layoutConfig()

	var resolver selfpath.Resolver = &selfpath.RealResolver{Capacity: cfg.MaxPath}
	if layoutExe != "" {
		resolver = selfpath.Fixed(layoutExe)
	}

	exeCheck := &layoutcheck.ExecutableCheck{
		Launcher: &launcher.Launcher{Config: cfg, Resolver: resolver},
	}
	results := []check.Result{exeCheck.Run()}

	if results[0].OK() {
		checks := []check.Checker{
			&layoutcheck.ScriptCheck{
				Plan: exeCheck.Plan,
				FS:   &layoutcheck.RealFileSystem{},
			},
			&layoutcheck.LibraryCheck{
				Executable: exeCheck.Plan.Executable,
				Config:     cfg,
				Static:     entry.Static,
				Load:       load,
				Loader:     dynlib.RealLoader{},
			},
		}
		for _, c := range checks {
			results = append(results, c.Run())
		}
	}

	return report(cmd, results, layoutJSON)
}
