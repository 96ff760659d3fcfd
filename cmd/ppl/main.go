// Command ppl runs the script that belongs to this executable with the
// perl runtime shipped next to it.
//
// The executable takes no options of its own: every argument is passed on
// to the script. Behavior is fixed at build time, see package config.
package main

import (
	"os"
	"runtime"

	"github.com/vertti/ppl/pkg/config"
	"github.com/vertti/ppl/pkg/launcher"
)

func init() {
	// The runtime keeps per-thread state; it must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	l := launcher.New(config.Default())
	os.Exit(l.Run(os.Args, os.Environ()))
}
