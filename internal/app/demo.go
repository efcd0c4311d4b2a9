package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"go.uber.org/zap"

	"github.com/ManzarAli25/Orbitarium/internal/config"
	"github.com/ManzarAli25/Orbitarium/internal/targets"
	"github.com/ManzarAli25/Orbitarium/pkg/httpclient"
	"github.com/ManzarAli25/Orbitarium/pkg/n2yo"
)

// Demo drives the five client operations for each configured target and
// prints human-readable summaries to stdout. It is illustrative output, not a
// stable CLI contract.
type Demo struct {
	cfg     *config.Config
	client  *n2yo.Client
	targets []targets.Target
	log     *zap.SugaredLogger
}

// NewDemo builds the demo runtime from config.
func NewDemo(cfg *config.Config, log *zap.SugaredLogger) (*Demo, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	list, err := targets.Load(cfg.TargetsFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load targets registry: %w", err)
		}
		log.Infow("no targets file found, using built-in default", "path", cfg.TargetsFile)
		list = []targets.Target{targets.Default()}
	}

	client, err := n2yo.NewClient(n2yo.Options{
		APIKey:     cfg.APIKey,
		BaseURL:    cfg.BaseURL,
		HTTPClient: httpclient.NewRestyClient(cfg.HTTPTimeout),
		Logger:     log,
	})
	if err != nil {
		return nil, fmt.Errorf("build n2yo client: %w", err)
	}

	return &Demo{cfg: cfg, client: client, targets: list, log: log}, nil
}

// Run invokes each operation for every target. Individual failures are
// reported and do not stop the remaining calls.
func (d *Demo) Run(ctx context.Context) error {
	for _, t := range d.targets {
		fmt.Printf("=== %s (NORAD %d, observer %.4f,%.4f) ===\n", t.Name, t.SatID, t.Lat, t.Lng)

		d.showTLE(ctx, t)
		d.showVisualPasses(ctx, t)
		d.showRadioPasses(ctx, t)
		d.showPositions(ctx, t)
		d.showObjectsAbove(ctx, t)

		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return nil
}

func (d *Demo) showTLE(ctx context.Context, t targets.Target) {
	fmt.Println("--- TLE ---")
	tle, err := d.client.GetTLE(ctx, t.SatID)
	if err != nil {
		d.reportError("fetch tle", t.ID, err)
		return
	}
	fmt.Printf("%s (ID: %d)\n", tle.SatName, tle.SatID)
	fmt.Printf("  Line 1: %s\n", tle.Line1)
	fmt.Printf("  Line 2: %s\n", tle.Line2)
}

func (d *Demo) showVisualPasses(ctx context.Context, t targets.Target) {
	fmt.Println("--- Visual passes ---")
	forecast, err := d.client.GetVisualPasses(ctx, n2yo.VisualPassesRequest{
		SatID:         t.SatID,
		Observer:      t.Observer(),
		Days:          t.Days,
		MinVisibility: t.MinVisibility,
	})
	if err != nil {
		d.reportError("fetch visual passes", t.ID, err)
		return
	}
	if len(forecast.Passes) == 0 {
		fmt.Println("No visual passes found for the given parameters.")
		return
	}
	fmt.Printf("Found %d visual passes for %s.\n", len(forecast.Passes), forecast.Satellite)
	for _, p := range forecast.Passes {
		fmt.Printf("  - Start: %s (%s), End: %s (%s), Duration: %ds, Max elevation: %.1f°, Magnitude: %.1f\n",
			p.StartTime.Format(time.RFC3339), p.StartDirection,
			p.EndTime.Format(time.RFC3339), p.EndDirection,
			p.DurationSec, p.MaxElevationDeg, p.BrightnessMag)
	}
}

func (d *Demo) showRadioPasses(ctx context.Context, t targets.Target) {
	fmt.Println("--- Radio passes ---")
	forecast, err := d.client.GetRadioPasses(ctx, n2yo.RadioPassesRequest{
		SatID:        t.SatID,
		Observer:     t.Observer(),
		Days:         t.Days,
		MinElevation: t.MinElevation,
	})
	if err != nil {
		d.reportError("fetch radio passes", t.ID, err)
		return
	}
	if len(forecast.Passes) == 0 {
		fmt.Println("No radio passes found for the given parameters.")
		return
	}
	fmt.Printf("Found %d radio passes for %s.\n", len(forecast.Passes), forecast.Satellite)
	for _, p := range forecast.Passes {
		fmt.Printf("  - Start: %s (%s), Max: %s, End: %s (%s), Duration: %ds, Max elevation: %.1f°\n",
			p.StartTime.Format(time.RFC3339), p.StartDirection,
			p.MaxTime.Format(time.RFC3339),
			p.EndTime.Format(time.RFC3339), p.EndDirection,
			p.DurationSec, p.MaxElevationDeg)
	}
}

func (d *Demo) showPositions(ctx context.Context, t targets.Target) {
	fmt.Println("--- Future positions ---")
	positions, err := d.client.GetPositions(ctx, n2yo.PositionsRequest{
		SatID:    t.SatID,
		Observer: t.Observer(),
		Seconds:  t.Seconds,
	})
	if err != nil {
		d.reportError("fetch positions", t.ID, err)
		return
	}
	fmt.Printf("Found %d position points for %s.\n", len(positions.Points), positions.SatName)
	for i, p := range positions.Points {
		if i == 5 {
			fmt.Println("  ...")
			break
		}
		fmt.Printf("  - %s lat %.4f lng %.4f alt %s\n",
			p.Timestamp.Format(time.RFC3339), p.Latitude, p.Longitude, formatAltitude(p.Altitude))
	}
}

func (d *Demo) showObjectsAbove(ctx context.Context, t targets.Target) {
	fmt.Println("--- Objects above ---")
	above, err := d.client.GetObjectsAbove(ctx, n2yo.AboveRequest{
		Observer:     t.Observer(),
		SearchRadius: t.SearchRadius,
	})
	if err != nil {
		d.reportError("fetch objects above", t.ID, err)
		return
	}
	if len(above.Satellites) == 0 {
		fmt.Println("No satellites found above this location currently.")
		return
	}
	fmt.Printf("Found %d satellites in the %q category.\n", above.Count, above.Category)
	for i, s := range above.Satellites {
		if i == 5 {
			fmt.Println("  ...")
			break
		}
		fmt.Printf("  - %s (ID: %d), lat %.4f lng %.4f\n", s.Name, s.ID, s.Latitude, s.Longitude)
	}
}

func (d *Demo) reportError(op, targetID string, err error) {
	var terr *n2yo.TransportError
	switch {
	case errors.As(err, &terr):
		d.log.Warnw(op+" transport failure", "target", targetID, "error", err)
	default:
		d.log.Errorw(op+" failed", "target", targetID, "error", err)
	}
	fmt.Printf("Could not %s: %v\n", op, err)
}

func formatAltitude(alt *float64) string {
	if alt == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f km", *alt)
}
