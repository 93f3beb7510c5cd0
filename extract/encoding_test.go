package extract

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeUTF8(t *testing.T) {
	src := []byte("// Unicode: é, 中文\n")
	out, err := decode(src, "")
	require.NoError(t, err)
	require.Equal(t, src, out)

	out, err = decode(src, "UTF-8")
	require.NoError(t, err)
	require.Equal(t, src, out)
}

func TestDecodeInvalidUTF8(t *testing.T) {
	src := []byte("// ok\n// bad \xff\n")
	_, err := decode(src, "")
	require.Error(t, err)

	var encErr *EncodingError
	require.True(t, errors.As(err, &encErr))
	require.Equal(t, 13, encErr.Offset)
}

func TestDecodeDeclaredEncoding(t *testing.T) {
	// "café" in ISO-8859-1: é is a single 0xE9 byte.
	src := []byte("// caf\xe9\n")
	out, err := decode(src, "ISO-8859-1")
	require.NoError(t, err)
	require.Equal(t, "// café\n", string(out))
}

func TestDecodeUnknownEncoding(t *testing.T) {
	_, err := decode([]byte("// x\n"), "no-such-encoding")
	require.Error(t, err)

	var encErr *EncodingError
	require.True(t, errors.As(err, &encErr))
	require.Contains(t, encErr.Error(), "unknown encoding")
}
