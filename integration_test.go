package ppl_test

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/vertti/ppl/pkg/check"
	"github.com/vertti/ppl/pkg/config"
	"github.com/vertti/ppl/pkg/dynlib"
	"github.com/vertti/ppl/pkg/entry"
	"github.com/vertti/ppl/pkg/launcher"
	"github.com/vertti/ppl/pkg/layoutcheck"
	"github.com/vertti/ppl/pkg/selfpath"
)

// Integration tests verify Real* implementations work with actual system resources.
// Unit tests in each package cover edge cases; these tests verify end-to-end integration.

// hostLibc returns the path of the C library, or skips.
func hostLibc(t *testing.T) string {
	t.Helper()
	if runtime.GOOS != "linux" {
		t.Skipf("no known C library location on %s", runtime.GOOS)
	}
	for _, p := range []string{
		"/lib/x86_64-linux-gnu/libc.so.6",
		"/lib/aarch64-linux-gnu/libc.so.6",
		"/usr/lib/x86_64-linux-gnu/libc.so.6",
		"/usr/lib/aarch64-linux-gnu/libc.so.6",
		"/lib64/libc.so.6",
		"/usr/lib64/libc.so.6",
		"/usr/lib/libc.so.6",
	} {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	t.Skip("no C library found")
	return ""
}

// stageLibc lays out dir/app.exe with lib/libc.so.6 linked to the host C
// library.
func stageLibc(t *testing.T) string {
	t.Helper()
	libc := hostLibc(t)
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "lib"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.Symlink(libc, filepath.Join(dir, "lib", "libc.so.6")); err != nil {
		t.Skipf("symlink: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "app.pl"), []byte("1;\n"), 0o600); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return filepath.Join(dir, "app.exe")
}

func libcConfig() config.Config {
	cfg := config.Default()
	cfg.Replace = ".pl"
	cfg.LibraryPattern = "lib/libc.so*"
	cfg.Symbol = "getpid"
	return cfg
}

func TestIntegration_SelfPath(t *testing.T) {
	r := &selfpath.RealResolver{Capacity: config.MaxPath}

	exe, err := r.Executable()
	if err != nil {
		t.Fatalf("Executable() error = %v", err)
	}
	if !filepath.IsAbs(exe) {
		t.Errorf("Executable() = %q, want an absolute path", exe)
	}
	if _, err := os.Stat(exe); err != nil {
		t.Errorf("Executable() = %q does not exist: %v", exe, err)
	}
}

func TestIntegration_SelfPathTooSmall(t *testing.T) {
	r := &selfpath.RealResolver{Capacity: 2}

	_, err := r.Executable()
	if err == nil {
		t.Fatal("Executable() with a 2 byte buffer succeeded")
	}
	if !strings.Contains(err.Error(), "executable path") {
		t.Errorf("error = %q, want it to mention the executable path", err)
	}
}

func TestIntegration_Locate(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "perl532.dll"), []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	m, err := dynlib.Locate(filepath.Join(dir, "perl.exe"), "perl5*.dll", config.LibraryCapacity)
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}
	if m.Name != "perl532.dll" {
		t.Errorf("Name = %q, want perl532.dll", m.Name)
	}
	if m.Path() != filepath.Join(dir, "perl532.dll") {
		t.Errorf("Path() = %q", m.Path())
	}
}

func TestIntegration_LoadLibrary(t *testing.T) {
	exe := stageLibc(t)
	cfg := libcConfig()

	m, err := dynlib.Locate(exe, cfg.LibraryPattern, cfg.LibraryCapacity)
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}
	lib, err := dynlib.RealLoader{}.Open(m)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer func() { _ = lib.Close() }()

	if _, err := lib.Symbol(cfg.Symbol); err != nil {
		t.Errorf("Symbol(%q) error = %v", cfg.Symbol, err)
	}
	if _, err := lib.Symbol("RunPerl"); err == nil {
		t.Error("Symbol(RunPerl) resolved in the C library")
	}
}

func TestIntegration_Layout(t *testing.T) {
	exe := stageLibc(t)
	cfg := libcConfig()

	exeCheck := &layoutcheck.ExecutableCheck{
		Launcher: &launcher.Launcher{Config: cfg, Resolver: selfpath.Fixed(exe)},
	}
	results := []check.Result{exeCheck.Run()}
	results = append(results,
		(&layoutcheck.ScriptCheck{Plan: exeCheck.Plan, FS: &layoutcheck.RealFileSystem{}}).Run(),
		(&layoutcheck.LibraryCheck{Executable: exe, Config: cfg, Load: true, Loader: dynlib.RealLoader{}}).Run(),
	)

	for _, r := range results {
		if r.Status != check.StatusOK {
			t.Errorf("%s: Status = %v, want OK (details: %v)", r.Name, r.Status, r.Details)
		}
	}
}

// The C library's getpid ignores the arguments it is handed, so the exit
// code is the process id.
func TestIntegration_LauncherRun(t *testing.T) {
	if entry.Static {
		t.Skip("entry point is linked at build time")
	}
	exe := stageLibc(t)
	cfg := libcConfig()

	var stderr bytes.Buffer
	l := &launcher.Launcher{
		Config:   cfg,
		Resolver: selfpath.Fixed(exe),
		Binder:   entry.NewBinder(cfg, nil),
		Stderr:   &stderr,
	}

	code := l.Run([]string{exe, "-x"}, os.Environ())
	if code != os.Getpid() {
		t.Errorf("Run() = %d, want %d (stderr: %q)", code, os.Getpid(), stderr.String())
	}
}

func TestIntegration_LauncherMissingLibrary(t *testing.T) {
	if entry.Static {
		t.Skip("entry point is linked at build time")
	}
	dir := t.TempDir()
	exe := filepath.Join(dir, "app.exe")
	cfg := libcConfig()

	var stderr bytes.Buffer
	l := &launcher.Launcher{
		Config:   cfg,
		Resolver: selfpath.Fixed(exe),
		Binder:   entry.NewBinder(cfg, nil),
		Stderr:   &stderr,
	}

	code := l.Run([]string{exe}, nil)
	if code != launcher.ExitFailure {
		t.Errorf("Run() = %d, want %d", code, launcher.ExitFailure)
	}
	want := "could not find " + dir + string(filepath.Separator) + "lib/libc.so*\n"
	if stderr.String() != want {
		t.Errorf("stderr = %q, want %q", stderr.String(), want)
	}
}
