package domain

import "time"

// Domain contains the normalized satellite-tracking models returned by the
// n2yo client. Everything here is created fresh per call; list fields keep
// the remote service's ordering.

// Observer is a ground location: decimal degrees and meters above sea level.
type Observer struct {
	Lat float64
	Lng float64
	Alt float64
}

// TLE holds a satellite's two-line element set. Line1/Line2 are empty when
// the service returned fewer than two non-blank lines.
type TLE struct {
	SatID        int
	SatName      string
	Transactions int
	Line1        string
	Line2        string
}

// Pass is one observable window of a satellite from a ground location.
// MaxTime is set for radio passes only; BrightnessMag for visual passes only.
type Pass struct {
	StartTime       time.Time
	MaxTime         time.Time
	EndTime         time.Time
	DurationSec     int
	StartDirection  string
	EndDirection    string
	MaxElevationDeg float64
	BrightnessMag   float64
}

// PassForecast is an ordered sequence of predicted passes for one satellite.
// A forecast with zero passes is a valid result, not an error.
type PassForecast struct {
	Satellite string
	Passes    []Pass
}

// PositionPoint is one timestamped groundtrack sample. Altitude is nil when
// the service omitted it.
type PositionPoint struct {
	Latitude  float64
	Longitude float64
	Altitude  *float64
	Azimuth   float64
	Elevation float64
	RA        float64
	Dec       float64
	Timestamp time.Time
}

// Positions holds future groundtrack samples for one satellite.
type Positions struct {
	SatID        int
	SatName      string
	Transactions int
	Points       []PositionPoint
}

// AboveSatellite summarizes one object currently above an observer.
// LaunchDateRaw is the verbatim payload value; LaunchDate is its best-effort
// YYYY-MM-DD parse and stays nil when the raw value is absent or unparsable.
type AboveSatellite struct {
	ID             int
	Name           string
	IntlDesignator string
	LaunchDateRaw  string
	LaunchDate     *time.Time
	Latitude       float64
	Longitude      float64
	AltitudeKm     float64
}

// ObjectsAbove lists the satellites inside a search cone above an observer.
type ObjectsAbove struct {
	Category   string
	Count      int
	Satellites []AboveSatellite
}
