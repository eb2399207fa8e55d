//go:build (linux || freebsd) && (amd64 || arm64)

// Package bindings handles loading the libinput and libudev shared libraries
// and exposing their handles so that sibling packages can register function
// bindings with purego.
package bindings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/inputgo/internal/platform"
)

// ErrNotLoaded is returned when libinput functions are called before Load().
var ErrNotLoaded = errors.New("inputgo: libinput not loaded; call inputgo.Init() first")

// ErrLibraryNotFound is returned when a required shared library cannot be found.
var ErrLibraryNotFound = errors.New("inputgo: shared library not found")

// Library handles
var (
	libInput uintptr
	libUdev  uintptr

	loaded   bool
	loadOnce sync.Once
	loadErr  error
)

// Symbols introduced in libinput 1.14. When none of them resolve, the loaded
// library predates the totem tool type and the size axis.
var tabletV114 bool

// IsLoaded returns true if the libraries have been successfully loaded.
func IsLoaded() bool {
	return loaded
}

// Load loads libinput and libudev and records feature probes.
// It is safe to call multiple times; subsequent calls are no-ops.
// Returns an error if libraries cannot be found or loaded.
func Load() error {
	loadOnce.Do(func() {
		loadErr = doLoad()
		if loadErr == nil {
			loaded = true
		}
	})
	return loadErr
}

func doLoad() error {
	var err error

	// libudev first: the udev backend hands a struct udev* to libinput.
	libUdev, err = loadLibrary("udev", []int{1})
	if err != nil {
		return fmt.Errorf("loading libudev: %w", err)
	}

	libInput, err = loadLibrary("input", []int{10})
	if err != nil {
		return fmt.Errorf("loading libinput: %w", err)
	}

	// Runtime feature probe, the dlopen equivalent of a version gate.
	if _, err := purego.Dlsym(libInput, "libinput_tablet_tool_has_size"); err == nil {
		tabletV114 = true
	}

	return nil
}

// loadLibrary attempts to load a library by trying versioned names.
func loadLibrary(name string, versions []int) (uintptr, error) {
	// Try each search path
	for _, searchPath := range LibrarySearchPaths() {
		for _, ver := range versions {
			libName := platform.FormatLibraryName(name, ver)
			lib, err := tryOpen(filepath.Join(searchPath, libName))
			if err == nil {
				return lib, nil
			}
		}

		// Try unversioned name
		libName := platform.FormatLibraryName(name, -1)
		lib, err := tryOpen(filepath.Join(searchPath, libName))
		if err == nil {
			return lib, nil
		}
	}

	// Try just the library name (let the dynamic linker find it)
	for _, ver := range versions {
		libName := platform.FormatLibraryName(name, ver)
		lib, err := tryOpen(libName)
		if err == nil {
			return lib, nil
		}
	}

	libName := platform.FormatLibraryName(name, -1)
	lib, err := tryOpen(libName)
	if err == nil {
		return lib, nil
	}

	return 0, fmt.Errorf("%w: %s", ErrLibraryNotFound, name)
}

func tryOpen(path string) (uintptr, error) {
	lib, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, err
	}
	return lib, nil
}

// FindLibrary searches for a library and returns its full path.
// This is useful for diagnostics.
func FindLibrary(name string, versions []int) (string, error) {
	for _, searchPath := range LibrarySearchPaths() {
		for _, ver := range versions {
			libName := platform.FormatLibraryName(name, ver)
			fullPath := filepath.Join(searchPath, libName)
			if _, err := os.Stat(fullPath); err == nil {
				return fullPath, nil
			}
		}
		libName := platform.FormatLibraryName(name, -1)
		fullPath := filepath.Join(searchPath, libName)
		if _, err := os.Stat(fullPath); err == nil {
			return fullPath, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrLibraryNotFound, name)
}

// LibrarySearchPaths returns platform-specific library search paths.
func LibrarySearchPaths() []string {
	var paths []string

	if ldPath := os.Getenv("LD_LIBRARY_PATH"); ldPath != "" {
		paths = append(paths, filepath.SplitList(ldPath)...)
	}

	switch runtime.GOOS {
	case "freebsd":
		paths = append(paths,
			"/usr/local/lib",
			"/usr/lib",
		)
	default: // linux
		paths = append(paths,
			"/usr/lib/x86_64-linux-gnu",
			"/usr/lib/aarch64-linux-gnu",
			"/usr/local/lib",
			"/usr/lib64",
			"/usr/lib",
			"/lib/x86_64-linux-gnu",
			"/lib",
		)
	}

	return paths
}

// LibInput returns the libinput library handle.
func LibInput() uintptr {
	return libInput
}

// LibUdev returns the libudev library handle.
func LibUdev() uintptr {
	return libUdev
}

// HasTabletV114 reports whether the loaded libinput carries the 1.14 tablet
// additions (totem tool type, tool size axis).
func HasTabletV114() bool {
	return tabletV114
}
