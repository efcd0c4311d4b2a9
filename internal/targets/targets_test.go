package targets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTargetsFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	file := filepath.Join(dir, "targets.yaml")
	if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
		t.Fatalf("write targets file: %v", err)
	}
	return file
}

func TestLoadTargetsYAML(t *testing.T) {
	file := writeTargetsFile(t, `
targets:
  - id: iss-nyc
    name: ISS over New York City
    satid: 25544
    lat: 40.7
    lng: -74.0
    alt: 10
    days: 5
    min_visibility: 100
    seconds: 60
    search_radius: 45
`)

	list, err := Load(file)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 target, got %d", len(list))
	}

	tgt := list[0]
	if tgt.ID != "iss-nyc" || tgt.SatID != 25544 {
		t.Fatalf("unexpected target: %+v", tgt)
	}
	obs := tgt.Observer()
	if obs.Lat != 40.7 || obs.Lng != -74.0 || obs.Alt != 10 {
		t.Fatalf("unexpected observer: %+v", obs)
	}
	if tgt.Days != 5 || tgt.MinVisibility != 100 || tgt.Seconds != 60 || tgt.SearchRadius != 45 {
		t.Fatalf("unexpected tuning: %+v", tgt)
	}
}

func TestLoadTargetsDuplicateID(t *testing.T) {
	file := writeTargetsFile(t, `
targets:
  - id: duplicate
    name: Target One
    satid: 25544
    lat: 40.7
    lng: -74.0
  - id: duplicate
    name: Target Two
    satid: 20580
    lat: 40.7
    lng: -74.0
`)

	if _, err := Load(file); err == nil {
		t.Fatal("expected error for duplicate target id")
	}
}

func TestLoadTargetsRejectsInvalidCoordinates(t *testing.T) {
	file := writeTargetsFile(t, `
targets:
  - id: bad
    name: Out of range
    satid: 25544
    lat: 140.7
    lng: -74.0
`)

	if _, err := Load(file); err == nil {
		t.Fatal("expected error for out-of-range latitude")
	}
}

func TestLoadTargetsMalformedYAMLReportsDecoderError(t *testing.T) {
	file := writeTargetsFile(t, "targets: [whoops: {")

	_, err := Load(file)
	if err == nil {
		t.Fatal("expected error for malformed targets file")
	}
	if !strings.Contains(err.Error(), "decode yaml targets") {
		t.Fatalf("expected the yaml decoder error to surface, got: %v", err)
	}
}

func TestLoadTargetsMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDefaultTarget(t *testing.T) {
	tgt := Default()
	if tgt.SatID != 25544 {
		t.Errorf("expected ISS NORAD id, got %d", tgt.SatID)
	}
	if err := validateTarget(tgt); err != nil {
		t.Errorf("built-in default must validate: %v", err)
	}
}
