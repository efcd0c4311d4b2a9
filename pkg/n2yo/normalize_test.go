package n2yo

import (
	"reflect"
	"testing"
	"time"
)

func TestSplitTLELines(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		line1 string
		line2 string
	}{
		{"two lines", "LINE1\r\nLINE2\r\n", "LINE1", "LINE2"},
		{"single line", "ONLYLINE\r\n", "ONLYLINE", ""},
		{"blank segments discarded", "\r\n  \r\nLINE1\r\n\r\nLINE2", "LINE1", "LINE2"},
		{"empty payload", "", "", ""},
		{"extra lines ignored", "A\r\nB\r\nC", "A", "B"},
	}

	for _, tc := range cases {
		line1, line2 := splitTLELines(tc.raw)
		if line1 != tc.line1 || line2 != tc.line2 {
			t.Errorf("%s: got (%q, %q), want (%q, %q)", tc.name, line1, line2, tc.line1, tc.line2)
		}
	}
}

func TestParseLaunchDate(t *testing.T) {
	if got := parseLaunchDate(""); got != nil {
		t.Errorf("expected nil for empty raw value, got %v", got)
	}
	if got := parseLaunchDate("2021-13-40"); got != nil {
		t.Errorf("expected nil for unparsable value, got %v", got)
	}
	got := parseLaunchDate("1998-11-20")
	if got == nil {
		t.Fatal("expected parsed date")
	}
	want := time.Date(1998, time.November, 20, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestMappingIsDeterministic(t *testing.T) {
	passes := passesResponse{
		Info: infoPayload{SatName: "SPACE STATION", PassesCount: 2},
		Passes: []passPayload{
			{StartUTC: 1000, MaxUTC: 1045, EndUTC: 1090, Duration: 90, StartAzCompass: "N", EndAzCompass: "S", MaxEl: 45, Mag: -1.5},
			{StartUTC: 2000, MaxUTC: 2100, EndUTC: 2200, Duration: 200, StartAzCompass: "NW", EndAzCompass: "SE", MaxEl: 80, Mag: -3.2},
		},
	}
	zone := time.FixedZone("IST", 19800)

	first := mapVisualPasses(passes, true, zone)
	second := mapVisualPasses(passes, true, zone)
	if !reflect.DeepEqual(first, second) {
		t.Error("visual pass mapping is not deterministic")
	}

	firstRadio := mapRadioPasses(passes, false, nil)
	secondRadio := mapRadioPasses(passes, false, nil)
	if !reflect.DeepEqual(firstRadio, secondRadio) {
		t.Error("radio pass mapping is not deterministic")
	}

	alt := 420.5
	positions := positionsResponse{
		Info: infoPayload{SatID: 25544, SatName: "SPACE STATION", TransactionsCount: 3},
		Positions: &[]positionPayload{
			{SatLatitude: 50.1, SatLongitude: -80.2, SatAltitude: &alt, Azimuth: 110, Elevation: 25, RA: 200.1, Dec: -10.2, Timestamp: 1521354418},
		},
	}
	firstPos, err := mapPositions(positions)
	if err != nil {
		t.Fatalf("mapPositions returned error: %v", err)
	}
	secondPos, err := mapPositions(positions)
	if err != nil {
		t.Fatalf("mapPositions returned error: %v", err)
	}
	if !reflect.DeepEqual(firstPos, secondPos) {
		t.Error("positions mapping is not deterministic")
	}

	above := aboveResponse{
		Info: infoPayload{Category: "ANY", SatCount: 1},
		Above: []aboveSatPayload{
			{SatID: 20580, SatName: "HST", IntDesignator: "1990-037B", LaunchDate: "1990-04-24", SatLat: 32.1, SatLng: 50.5, SatAlt: 540.2},
		},
	}
	if !reflect.DeepEqual(mapAbove(above), mapAbove(above)) {
		t.Error("above mapping is not deterministic")
	}
}

func TestMapPassesPreservesOrder(t *testing.T) {
	passes := passesResponse{
		Info: infoPayload{SatName: "SPACE STATION"},
		Passes: []passPayload{
			{StartUTC: 3000, EndUTC: 3100},
			{StartUTC: 1000, EndUTC: 1100},
			{StartUTC: 2000, EndUTC: 2100},
		},
	}

	forecast := mapVisualPasses(passes, false, nil)
	starts := []int64{3000, 1000, 2000}
	for i, p := range forecast.Passes {
		if !p.StartTime.Equal(time.Unix(starts[i], 0)) {
			t.Fatalf("pass %d reordered: got %v, want %v", i, p.StartTime, time.Unix(starts[i], 0))
		}
	}
}
