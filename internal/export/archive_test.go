package export

import (
	"archive/zip"
	"bytes"
	"compress/flate"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readZip(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	out := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		out[f.Name] = string(content)
	}
	return out
}

func TestCreateZipFile(t *testing.T) {
	files := map[string][]byte{
		"package.json":  []byte(`{"name":"x"}`),
		"/src/main.tsx": []byte("export {};"),
		`src\App.tsx`:   []byte("export default 1;"),
	}

	arch, err := CreateZipFile(files, "my-form", nil)
	require.NoError(t, err)
	assert.Equal(t, "my-form.zip", arch.FileName)

	entries := readZip(t, arch.Data)
	// Leading slashes stripped, backslashes converted.
	assert.Equal(t, `{"name":"x"}`, entries["package.json"])
	assert.Equal(t, "export {};", entries["src/main.tsx"])
	assert.Equal(t, "export default 1;", entries["src/App.tsx"])
}

func TestZipFileNameSuffix(t *testing.T) {
	tests := []struct {
		project  string
		expected string
	}{
		{"foo", "foo.zip"},
		{"foo.zip", "foo.zip"},
		{"foo.ZIP", "foo.ZIP"},
		{"foo.Zip", "foo.Zip"},
	}
	for _, tt := range tests {
		t.Run(tt.project, func(t *testing.T) {
			arch, err := CreateZipFile(map[string][]byte{"a.txt": []byte("a")}, tt.project, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, arch.FileName)
		})
	}
}

func TestCreateZipFileEmptyInput(t *testing.T) {
	arch, err := CreateZipFile(map[string][]byte{}, "empty", nil)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(arch.Data), int64(len(arch.Data)))
	require.NoError(t, err)
	assert.Empty(t, zr.File)
}

func TestCreateZipFileCompressionLevel(t *testing.T) {
	files := map[string][]byte{
		"big.txt": bytes.Repeat([]byte("abcdef"), 2048),
	}

	deflated, err := CreateZipFile(files, "p", nil)
	require.NoError(t, err)

	store := flate.NoCompression
	stored, err := CreateZipFile(files, "p", &ZipOptions{CompressionLevel: &store})
	require.NoError(t, err)

	// Store-only must be reachable: repetitive content stays full size.
	assert.Greater(t, len(stored.Data), len(deflated.Data))
	assert.Equal(t, string(files["big.txt"]), readZip(t, stored.Data)["big.txt"])
	assert.Equal(t, string(files["big.txt"]), readZip(t, deflated.Data)["big.txt"])
}

func TestCreateZipFileProgress(t *testing.T) {
	type call struct {
		phase   string
		percent float64
	}
	var calls []call

	files := map[string][]byte{
		"a.txt": []byte("a"),
		"b.txt": []byte("b"),
	}
	_, err := CreateZipFile(files, "p", &ZipOptions{
		OnProgress: func(phase string, processed, total int, percent float64) {
			calls = append(calls, call{phase, percent})
		},
	})
	require.NoError(t, err)
	require.Len(t, calls, 4)

	assert.Equal(t, "adding", calls[0].phase)
	assert.Equal(t, "adding", calls[1].phase)
	assert.Equal(t, 50.0, calls[1].percent)
	assert.Equal(t, "compressing", calls[2].phase)
	assert.Equal(t, 75.0, calls[2].percent)
	assert.Equal(t, 100.0, calls[3].percent)
}

func TestCreateZipFileCollision(t *testing.T) {
	files := map[string][]byte{
		"/a.txt": []byte("1"),
		"a.txt":  []byte("2"),
	}
	_, err := CreateZipFile(files, "p", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "collide")
}
