package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setFlag points a flag variable at v for the duration of the test.
func setFlag[T any](t *testing.T, p *T, v T) {
	t.Helper()
	old := *p
	*p = v
	t.Cleanup(func() { *p = old })
}

func TestRunFlushesProfileOnExportFailure(t *testing.T) {
	dir := t.TempDir()
	profile := filepath.Join(dir, "cpu.pprof")
	setFlag(t, cpuProfileFlag, profile)
	setFlag(t, exportFlag, filepath.Join(dir, "missing", "out.gif"))
	setFlag(t, exportFramesFlag, 1)
	setFlag(t, dropsFlag, 2)
	setFlag(t, seedFlag, int64(1))

	err := run()
	if err == nil {
		t.Fatal("expected an error exporting into a missing directory")
	}
	if !strings.Contains(err.Error(), "export failed") {
		t.Errorf("unexpected error %v", err)
	}

	info, statErr := os.Stat(profile)
	if statErr != nil {
		t.Fatalf("profile not written: %v", statErr)
	}
	if info.Size() == 0 {
		t.Error("profile is empty; the profiler was not stopped before run returned")
	}
}

func TestRunExportsWithProfile(t *testing.T) {
	dir := t.TempDir()
	profile := filepath.Join(dir, "cpu.pprof")
	out := filepath.Join(dir, "out.gif")
	setFlag(t, cpuProfileFlag, profile)
	setFlag(t, exportFlag, out)
	setFlag(t, exportFramesFlag, 1)
	setFlag(t, exportScaleFlag, 0.1)
	setFlag(t, dropsFlag, 1)
	setFlag(t, seedFlag, int64(1))

	if err := run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, path := range []string{profile, out} {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("%s not written: %v", path, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", path)
		}
	}
}
