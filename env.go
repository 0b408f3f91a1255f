// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathkit

package pathkit

import "os"

// Env supplies process state consumed by Resolve, Relative and directory helpers.
type Env interface {
	// Cwd returns current working directory, empty when unknown.
	Cwd() string
	// HomeDir returns user home directory, empty when unknown.
	HomeDir() string
	// LookupEnv returns environment variable value and presence flag.
	LookupEnv(key string) (string, bool)
	// Executable returns path of running executable, empty when unknown.
	Executable() string
}

// OSEnv reads working directory, home and variables from current process.
type OSEnv struct{}

// Cwd returns os.Getwd result, empty on error.
func (OSEnv) Cwd() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	return dir
}

// HomeDir returns os.UserHomeDir result, empty on error.
func (OSEnv) HomeDir() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return dir
}

// LookupEnv wraps os.LookupEnv.
func (OSEnv) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Executable returns os.Executable result, empty on error.
func (OSEnv) Executable() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}

	return exe
}

// StaticEnv is fixed Env implementation.
type StaticEnv struct {
	// Vars holds environment variables.
	Vars map[string]string `json:"vars,omitempty" yaml:"vars,omitempty"`
	// Dir is working directory.
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty"`
	// Home is user home directory.
	Home string `json:"home,omitempty" yaml:"home,omitempty"`
	// Exe is running executable path.
	Exe string `json:"exe,omitempty" yaml:"exe,omitempty"`
}

// Cwd returns Dir.
func (e StaticEnv) Cwd() string { return e.Dir }

// HomeDir returns Home.
func (e StaticEnv) HomeDir() string { return e.Home }

// Executable returns Exe.
func (e StaticEnv) Executable() string { return e.Exe }

// LookupEnv returns value from Vars.
func (e StaticEnv) LookupEnv(key string) (string, bool) {
	v, ok := e.Vars[key]
	return v, ok
}

// lookupNonEmpty returns first non-empty value among keys.
func lookupNonEmpty(env Env, keys ...string) (string, bool) {
	for _, key := range keys {
		if v, ok := env.LookupEnv(key); ok && v != "" {
			return v, true
		}
	}

	return "", false
}
