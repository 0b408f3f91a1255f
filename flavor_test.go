// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathkit

package pathkit

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFlavorSet(t *testing.T) {
	t.Parallel()

	cases := map[string]Flavor{
		"posix":   Posix,
		"UNIX":    Posix,
		"win32":   Win32,
		"Windows": Win32,
		"native":  Native,
		"":        Native,
	}

	for in, want := range cases {
		var f Flavor
		require.NoError(t, f.Set(in), "Set(%q)", in)
		assert.Equal(t, want, f, "Set(%q)", in)
	}

	var f Flavor
	require.ErrorIs(t, f.Set("vms"), ErrInvalidFlavor)
	assert.Equal(t, "flavor", f.Type())
}

func TestFlavorText(t *testing.T) {
	t.Parallel()

	text, err := Win32.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "win32", string(text))
	assert.Equal(t, "native", FlavorUnknown.String())

	var opts GlobOptions
	require.NoError(t, yaml.Unmarshal([]byte("flavor: win32\nextended: true\n"), &opts))
	assert.Equal(t, GlobOptions{Flavor: Win32, Extended: true}, opts)

	require.Error(t, yaml.Unmarshal([]byte("flavor: amiga\n"), &opts))
}

func TestFlavorSeparators(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/", Posix.Separator())
	assert.Equal(t, ":", Posix.Delimiter())
	assert.Equal(t, `\`, Win32.Separator())
	assert.Equal(t, ";", Win32.Delimiter())

	assert.True(t, Win32.IsSeparator('/'))
	assert.True(t, Win32.IsSeparator('\\'))
	assert.True(t, Posix.IsSeparator('/'))
	assert.False(t, Posix.IsSeparator('\\'))
}

func TestNativeFlavor(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		assert.Equal(t, Win32, Native)
		assert.Equal(t, `\`, FlavorUnknown.Separator())
	} else {
		assert.Equal(t, Posix, Native)
		assert.Equal(t, "/", FlavorUnknown.Separator())
	}

	assert.Equal(t, Native.Join("a", "b"), Join("a", "b"))
	assert.Equal(t, Native.Normalize("a/./b"), Normalize("a/./b"))
	assert.Equal(t, Native.Extname("x.go"), Extname("x.go"))
}
