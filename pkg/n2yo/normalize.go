package n2yo

import (
	"fmt"
	"strings"
	"time"

	"github.com/ManzarAli25/Orbitarium/internal/domain"
)

// Payload-to-domain mapping. Every function here is a pure, deterministic
// function of the payload (and, for pass times, the target time zone), so the
// same payload always maps to the same result.

const launchDateLayout = "2006-01-02"

const unknownName = "Unknown"

// mapTLE splits the raw TLE string on CRLF, discards blank segments, and
// takes the first two non-blank lines. Fewer lines leave the remainder empty.
func mapTLE(p tleResponse) (*domain.TLE, error) {
	if p.TLE == nil {
		return nil, fmt.Errorf("%w: tle", ErrMissingField)
	}

	line1, line2 := splitTLELines(*p.TLE)

	return &domain.TLE{
		SatID:        p.Info.SatID,
		SatName:      p.Info.SatName,
		Transactions: p.Info.TransactionsCount,
		Line1:        line1,
		Line2:        line2,
	}, nil
}

func splitTLELines(raw string) (string, string) {
	var lines []string
	for _, seg := range strings.Split(raw, "\r\n") {
		if strings.TrimSpace(seg) != "" {
			lines = append(lines, seg)
		}
	}

	var line1, line2 string
	if len(lines) > 0 {
		line1 = lines[0]
	}
	if len(lines) > 1 {
		line2 = lines[1]
	}
	return line1, line2
}

// mapVisualPasses keeps the payload's duration field; pass order is preserved.
func mapVisualPasses(p passesResponse, convertToLocal bool, loc *time.Location) *domain.PassForecast {
	forecast := &domain.PassForecast{
		Satellite: satelliteName(p.Info),
		Passes:    make([]domain.Pass, 0, len(p.Passes)),
	}

	for _, raw := range p.Passes {
		start := passTime(raw.StartUTC, convertToLocal, loc)
		end := passTime(raw.EndUTC, convertToLocal, loc)

		forecast.Passes = append(forecast.Passes, domain.Pass{
			StartTime:       start,
			EndTime:         end,
			DurationSec:     raw.Duration,
			StartDirection:  raw.StartAzCompass,
			EndDirection:    raw.EndAzCompass,
			MaxElevationDeg: raw.MaxEl,
			BrightnessMag:   raw.Mag,
		})
	}

	return forecast
}

// mapRadioPasses adds the max-elevation timestamp and computes duration
// client-side as end minus start, ignoring any duration field in the payload.
func mapRadioPasses(p passesResponse, convertToLocal bool, loc *time.Location) *domain.PassForecast {
	forecast := &domain.PassForecast{
		Satellite: satelliteName(p.Info),
		Passes:    make([]domain.Pass, 0, len(p.Passes)),
	}

	for _, raw := range p.Passes {
		start := passTime(raw.StartUTC, convertToLocal, loc)
		max := passTime(raw.MaxUTC, convertToLocal, loc)
		end := passTime(raw.EndUTC, convertToLocal, loc)

		forecast.Passes = append(forecast.Passes, domain.Pass{
			StartTime:       start,
			MaxTime:         max,
			EndTime:         end,
			DurationSec:     int(end.Sub(start).Seconds()),
			StartDirection:  raw.StartAzCompass,
			EndDirection:    raw.EndAzCompass,
			MaxElevationDeg: raw.MaxEl,
		})
	}

	return forecast
}

func mapPositions(p positionsResponse) (*domain.Positions, error) {
	if p.Positions == nil {
		return nil, fmt.Errorf("%w: positions", ErrMissingField)
	}

	points := make([]domain.PositionPoint, 0, len(*p.Positions))
	for _, raw := range *p.Positions {
		points = append(points, domain.PositionPoint{
			Latitude:  raw.SatLatitude,
			Longitude: raw.SatLongitude,
			Altitude:  raw.SatAltitude,
			Azimuth:   raw.Azimuth,
			Elevation: raw.Elevation,
			RA:        raw.RA,
			Dec:       raw.Dec,
			Timestamp: time.Unix(raw.Timestamp, 0).UTC(),
		})
	}

	return &domain.Positions{
		SatID:        p.Info.SatID,
		SatName:      p.Info.SatName,
		Transactions: p.Info.TransactionsCount,
		Points:       points,
	}, nil
}

// mapAbove returns a zero-count result when the above list is missing or
// empty. Launch dates are parsed best-effort; an unparsable value stays nil
// while the raw string is kept so callers can tell "absent in source" from
// "present but unparsable".
func mapAbove(p aboveResponse) *domain.ObjectsAbove {
	if len(p.Above) == 0 {
		return &domain.ObjectsAbove{
			Category:   categoryName(p.Info),
			Count:      0,
			Satellites: []domain.AboveSatellite{},
		}
	}

	sats := make([]domain.AboveSatellite, 0, len(p.Above))
	for _, raw := range p.Above {
		sats = append(sats, domain.AboveSatellite{
			ID:             raw.SatID,
			Name:           raw.SatName,
			IntlDesignator: raw.IntDesignator,
			LaunchDateRaw:  raw.LaunchDate,
			LaunchDate:     parseLaunchDate(raw.LaunchDate),
			Latitude:       raw.SatLat,
			Longitude:      raw.SatLng,
			AltitudeKm:     raw.SatAlt,
		})
	}

	return &domain.ObjectsAbove{
		Category:   categoryName(p.Info),
		Count:      p.Info.SatCount,
		Satellites: sats,
	}
}

func parseLaunchDate(raw string) *time.Time {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	t, err := time.Parse(launchDateLayout, raw)
	if err != nil {
		return nil
	}
	return &t
}

func passTime(epoch int64, convertToLocal bool, loc *time.Location) time.Time {
	t := time.Unix(epoch, 0).UTC()
	if convertToLocal {
		if loc == nil {
			loc = time.Local
		}
		t = t.In(loc)
	}
	return t
}

func satelliteName(info infoPayload) string {
	if info.SatName == "" {
		return unknownName
	}
	return info.SatName
}

func categoryName(info infoPayload) string {
	if info.Category == "" {
		return unknownName
	}
	return info.Category
}
