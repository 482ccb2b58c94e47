// Package testutil holds helpers shared by package tests
package testutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/ayoisaiah/streak/internal/osutil"
)

// GoldenTest is a test case whose output is compared with a golden file.
type GoldenTest interface {
	Output() ([]byte, string)
}

// CompareGoldenFile verifies that the output of an operation matches
// the expected output.
func CompareGoldenFile(t *testing.T, tc GoldenTest) {
	t.Helper()

	if runtime.GOOS == osutil.Windows {
		// TODO: normalise CRLF line endings in golden files
		t.Skip("skipping golden file test in Windows")
	}

	g := goldie.New(
		t,
		goldie.WithFixtureDir("testdata"),
	)

	snap, golden := tc.Output()

	if snap != nil {
		g.Assert(t, golden, snap)
		return
	}

	// no output means no golden file may exist
	f := filepath.Join("testdata", golden+".golden")

	_, err := os.Stat(f)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected no output for %s, got stat error %v", f, err)
	}
}

// CopyFile copies src to dst, creating or truncating dst.
func CopyFile(src, dst string) error {
	b, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("reading fixture: %w", err)
	}

	if err := os.WriteFile(dst, b, osutil.FilePermission); err != nil {
		return fmt.Errorf("writing fixture copy: %w", err)
	}

	return nil
}
