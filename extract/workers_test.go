package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestExtractWorkers tests the worker pool for concurrency correctness.
// Run with -race flag to detect race conditions: go test -race
func TestExtractWorkers(t *testing.T) {
	tests := []struct {
		name      string
		fileCount int
		jobs      int
	}{
		{"single_file_single_worker", 1, 1},
		{"multiple_files_single_worker", 5, 1},
		{"multiple_files_multiple_workers", 10, 4},
		{"more_workers_than_files", 3, 10},
		{"many_files_high_concurrency", 50, 16},
		{"zero_jobs_defaults_to_cpus", 5, 0},
		{"empty_dir", 0, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			generateTestFiles(t, tmpDir, tc.fileCount)

			results, err := Extract(context.Background(), Options{
				Path:    tmpDir,
				Jobs:    tc.jobs,
				NoParse: true,
			})
			require.NoError(t, err)
			require.Len(t, results, tc.fileCount)

			// Results come back sorted by path regardless of worker
			// interleaving, each with its file's single comment.
			for i, res := range results {
				require.Equal(t, fmt.Sprintf("file_%03d.c", i), res.File)
				require.Empty(t, res.Errors)
				require.Len(t, res.Comments, 1)
				require.Equal(t, fmt.Sprintf("marker %03d", i), res.Comments[0].Body)

				decl := res.Comments[0].Decl
				require.NotNil(t, decl)
				require.Equal(t, fmt.Sprintf("func_%03d", i), decl.Name)
			}
		})
	}
}

// generateTestFiles creates N C files, each with one comment and one
// declaration.
func generateTestFiles(t *testing.T, dir string, count int) {
	t.Helper()

	for i := 0; i < count; i++ {
		content := fmt.Sprintf("// marker %03d\nint func_%03d(int v);\n", i, i)
		path := filepath.Join(dir, fmt.Sprintf("file_%03d.c", i))
		err := os.WriteFile(path, []byte(content), 0644)
		require.NoError(t, err)
	}
}
