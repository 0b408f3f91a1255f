// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathkit

package pathkit

import "runtime"

// AppDirsOptions controls NewAppDirs.
type AppDirsOptions struct {
	// Suffix is appended to application name as "name-suffix".
	Suffix string `json:"suffix,omitempty" yaml:"suffix,omitempty"`
	// GOOS selects directory layout, defaults to runtime.GOOS.
	GOOS string `json:"goos,omitempty" yaml:"goos,omitempty"`
}

// applyDefaults fills empty options with runtime values.
func (o *AppDirsOptions) applyDefaults() {
	if o.GOOS == "" {
		o.GOOS = runtime.GOOS
	}
}

// AppDirs holds per-application directories.
type AppDirs struct {
	Data   string `json:"data" yaml:"data"`
	Config string `json:"config" yaml:"config"`
	Cache  string `json:"cache" yaml:"cache"`
	Log    string `json:"log" yaml:"log"`
	Temp   string `json:"temp" yaml:"temp"`
}

// HomeDir returns user home directory reported by env.
func HomeDir(env Env) string {
	if env == nil {
		env = OSEnv{}
	}

	return env.HomeDir()
}

// ExecutableDir returns directory holding running executable, empty when
// env cannot report it.
func (f Flavor) ExecutableDir(env Env) string {
	if env == nil {
		env = OSEnv{}
	}

	exe := env.Executable()
	if exe == "" {
		return ""
	}

	return f.Dirname(exe)
}

// ExecutableDir returns Native directory of running executable.
func ExecutableDir(env Env) string { return Native.ExecutableDir(env) }

// TempDir returns temporary directory for flavor from env variables.
//
// Single trailing separator is trimmed, except after a drive colon.
func (f Flavor) TempDir(env Env) string {
	if env == nil {
		env = OSEnv{}
	}

	if f.resolve() == Win32 {
		p, ok := lookupNonEmpty(env, "TEMP", "TMP")
		if !ok {
			if root, found := lookupNonEmpty(env, "SystemRoot", "windir"); found {
				p = root + `\temp`
			} else {
				p = `C:\temp`
			}
		}

		if len(p) > 1 && p[len(p)-1] == '\\' && p[len(p)-2] != ':' {
			p = p[:len(p)-1]
		}

		return p
	}

	p, ok := lookupNonEmpty(env, "TMPDIR", "TMP", "TEMP")
	if !ok {
		p = "/tmp"
	}
	if len(p) > 1 && p[len(p)-1] == '/' {
		p = p[:len(p)-1]
	}

	return p
}

// TempDir returns Native temporary directory.
func TempDir(env Env) string { return Native.TempDir(env) }

// NewAppDirs builds data, config, cache, log and temp directories for name.
//
// Layout follows opts.GOOS: APPDATA/LOCALAPPDATA on windows, ~/Library on
// darwin and XDG base directories elsewhere.
func NewAppDirs(env Env, name string, opts AppDirsOptions) AppDirs {
	if env == nil {
		env = OSEnv{}
	}
	opts.applyDefaults()

	if opts.Suffix != "" {
		name += "-" + opts.Suffix
	}

	home := env.HomeDir()

	switch opts.GOOS {
	case "windows":
		appData, ok := lookupNonEmpty(env, "APPDATA")
		if !ok {
			appData = Win32.Join(home, "AppData", "Roaming")
		}
		localAppData, ok := lookupNonEmpty(env, "LOCALAPPDATA")
		if !ok {
			localAppData = Win32.Join(home, "AppData", "Local")
		}

		return AppDirs{
			Data:   Win32.Join(localAppData, name, "Data"),
			Config: Win32.Join(appData, name, "Config"),
			Cache:  Win32.Join(localAppData, name, "Cache"),
			Log:    Win32.Join(localAppData, name, "Log"),
			Temp:   Win32.Join(Win32.TempDir(env), name),
		}

	case "darwin", "ios":
		library := Posix.Join(home, "Library")

		return AppDirs{
			Data:   Posix.Join(library, "Application Support", name),
			Config: Posix.Join(library, "Preferences", name),
			Cache:  Posix.Join(library, "Caches", name),
			Log:    Posix.Join(library, "Logs", name),
			Temp:   Posix.Join(Posix.TempDir(env), name),
		}

	default:
		xdg := func(key string, fallback string) string {
			if v, ok := lookupNonEmpty(env, key); ok {
				return v
			}

			return Posix.Join(home, fallback)
		}

		return AppDirs{
			Data:   Posix.Join(xdg("XDG_DATA_HOME", ".local/share"), name),
			Config: Posix.Join(xdg("XDG_CONFIG_HOME", ".config"), name),
			Cache:  Posix.Join(xdg("XDG_CACHE_HOME", ".cache"), name),
			Log:    Posix.Join(xdg("XDG_STATE_HOME", ".local/state"), name),
			Temp:   Posix.Join(Posix.TempDir(env), Posix.Basename(home), name),
		}
	}
}
