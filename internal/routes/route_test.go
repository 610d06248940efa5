package routes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(n uint) *uint {
	return &n
}

func TestClassifyKind(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "script.sh")
	require.NoError(t, os.WriteFile(tmpFile, []byte("#!/bin/sh\n"), 0o755))

	tests := []struct {
		name     string
		path     string
		expected Kind
	}{
		{"existing file is local", tmpFile, KindInternal},
		{"nonexistent path is external", "/nonexistent/script", KindExternal},
		{"url is external", "https://example.com/search?q={{query}}", KindExternal},
		{"existing directory is local", t.TempDir(), KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyKind(tt.path))
		})
	}
}

func TestRoute_Validate(t *testing.T) {
	tests := []struct {
		name        string
		route       Route
		expectError bool
	}{
		{"no bounds", Route{Path: "https://example.com"}, false},
		{"min only", Route{Path: "x", MinArgs: uintPtr(2)}, false},
		{"max only", Route{Path: "x", MaxArgs: uintPtr(2)}, false},
		{"min equals max", Route{Path: "x", MinArgs: uintPtr(2), MaxArgs: uintPtr(2)}, false},
		{"min below max", Route{Path: "x", MinArgs: uintPtr(1), MaxArgs: uintPtr(3)}, false},
		{"min above max", Route{Path: "x", MinArgs: uintPtr(3), MaxArgs: uintPtr(1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.route.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoute_AcceptsArgCount(t *testing.T) {
	const veryLarge = int(^uint(0) >> 1)

	t.Run("no bounds accepts any count", func(t *testing.T) {
		r := Route{}
		assert.True(t, r.AcceptsArgCount(0))
		assert.True(t, r.AcceptsArgCount(veryLarge))
	})

	t.Run("min only", func(t *testing.T) {
		r := Route{MinArgs: uintPtr(3)}
		assert.False(t, r.AcceptsArgCount(0))
		assert.False(t, r.AcceptsArgCount(2))
		assert.True(t, r.AcceptsArgCount(3))
		assert.True(t, r.AcceptsArgCount(4))
		assert.True(t, r.AcceptsArgCount(veryLarge))
	})

	t.Run("max only", func(t *testing.T) {
		r := Route{MaxArgs: uintPtr(3)}
		assert.True(t, r.AcceptsArgCount(0))
		assert.True(t, r.AcceptsArgCount(2))
		assert.True(t, r.AcceptsArgCount(3))
		assert.False(t, r.AcceptsArgCount(4))
		assert.False(t, r.AcceptsArgCount(veryLarge))
	})

	t.Run("both bounds inclusive", func(t *testing.T) {
		r := Route{MinArgs: uintPtr(2), MaxArgs: uintPtr(3)}
		assert.False(t, r.AcceptsArgCount(0))
		assert.False(t, r.AcceptsArgCount(1))
		assert.True(t, r.AcceptsArgCount(2))
		assert.True(t, r.AcceptsArgCount(3))
		assert.False(t, r.AcceptsArgCount(4))
	})
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "external", KindExternal.String())
	assert.Equal(t, "local", KindInternal.String())
}

func TestRoute_String(t *testing.T) {
	r := Route{Kind: KindExternal, Path: "https://example.com"}
	assert.Equal(t, "external (https://example.com)", r.String())
}
