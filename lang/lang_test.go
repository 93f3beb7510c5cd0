package lang

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	for _, name := range []string{"c", "cpp"} {
		l := Get(name)
		require.NotNil(t, l, "language %q should be registered", name)
		require.Equal(t, name, l.Name())
		require.NotNil(t, l.TreeSitterLang())
		require.NotEmpty(t, l.DeclsQuery())
		require.NotEmpty(t, l.Extensions())
	}

	require.Nil(t, Get("rust"))
}

func TestList(t *testing.T) {
	require.Equal(t, []string{"c", "cpp"}, List())
}

func TestByExtension(t *testing.T) {
	tests := []struct {
		ext  string
		want string
	}{
		{".c", "c"},
		{".h", "c"}, // shared extension resolves to c, not cpp
		{".cpp", "cpp"},
		{".cc", "cpp"},
		{".cxx", "cpp"},
		{".hpp", "cpp"},
		{".hh", "cpp"},
		{".hxx", "cpp"},
	}
	for _, tc := range tests {
		l := ByExtension(tc.ext)
		require.NotNil(t, l, "extension %q", tc.ext)
		require.Equal(t, tc.want, l.Name(), "extension %q", tc.ext)
	}

	require.Nil(t, ByExtension(".go"))
	require.Nil(t, ByExtension(""))
}

func TestAllExtensions(t *testing.T) {
	exts := AllExtensions()
	require.Contains(t, exts, ".c")
	require.Contains(t, exts, ".h")
	require.Contains(t, exts, ".cpp")
	require.Contains(t, exts, ".hpp")

	// Sorted and deduplicated.
	for i := 1; i < len(exts); i++ {
		require.Less(t, exts[i-1], exts[i])
	}
}
