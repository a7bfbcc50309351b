package enrich

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/ifls/patchbay-go/pkg/patchbay/models"
	"github.com/ifls/patchbay-go/pkg/patchbay/output"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Config configures an enrichment run.
type Config struct {
	ManualMap   string
	ProfilesDir string
	// Max is the number of profiles to enrich successfully.
	Max int
	// Concurrency bounds parallel downloads.
	Concurrency int
	// Timeout applies to each download.
	Timeout     time.Duration
	MaxPDFPages int
	UserAgent   string
	Client      *http.Client
	Logger      *zap.Logger
	Now         func() time.Time
}

// DefaultConfig returns the enrichment defaults.
func DefaultConfig() Config {
	return Config{
		Max:         20,
		Concurrency: 4,
		Timeout:     30 * time.Second,
		MaxPDFPages: 10,
	}
}

// Summary reports what a run did.
type Summary struct {
	Processed int
	Failed    int
	Skipped   int
}

type job struct {
	ref  ManualRef
	path string
}

type fetchResult struct {
	controls []models.Control
	err      error
}

// Run enriches the profiles listed in the manual map. Profiles missing from
// disk are skipped. A failed download is recorded in the profile's meta and
// does not count toward Max. Downloads run concurrently; results are
// applied in manual map order.
func Run(ctx context.Context, cfg Config) (Summary, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	now := time.Now
	if cfg.Now != nil {
		now = cfg.Now
	}

	refs, err := ReadManualMap(cfg.ManualMap)
	if err != nil {
		return Summary{}, err
	}

	var sum Summary
	var jobs []job
	for _, ref := range refs {
		path := filepath.Join(cfg.ProfilesDir, ref.ID+".json")
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			log.Debug("no profile for manual", zap.String("id", ref.ID))
			sum.Skipped++
			continue
		}
		jobs = append(jobs, job{ref: ref, path: path})
	}

	fetcher := &Fetcher{Client: cfg.Client, UserAgent: cfg.UserAgent}
	for len(jobs) > 0 && sum.Processed < cfg.Max {
		n := min(cfg.Concurrency, cfg.Max-sum.Processed, len(jobs))
		batch := jobs[:n]
		jobs = jobs[n:]

		results := make([]fetchResult, len(batch))
		g, gctx := errgroup.WithContext(ctx)
		for i, j := range batch {
			i, j := i, j
			g.Go(func() error {
				fctx, cancel := context.WithTimeout(gctx, cfg.Timeout)
				defer cancel()
				text, err := fetcher.ManualText(fctx, j.ref.URL, cfg.MaxPDFPages)
				if err != nil {
					results[i].err = err
					return nil
				}
				results[i].controls = ExtractControls(text)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return sum, err
		}
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		for i, j := range batch {
			ok, err := apply(j, results[i], now())
			if err != nil {
				return sum, err
			}
			if !ok {
				log.Warn("manual enrichment failed", zap.String("id", j.ref.ID), zap.Error(results[i].err))
				sum.Failed++
				continue
			}
			log.Info("enriched profile", zap.String("id", j.ref.ID), zap.Int("controls", len(results[i].controls)))
			sum.Processed++
		}
	}
	return sum, nil
}

// apply merges one download result into the profile on disk. It reports
// false when the download failed and only the error was recorded.
func apply(j job, res fetchResult, now time.Time) (bool, error) {
	var prof models.DeviceProfile
	if err := output.ReadJSON(j.path, &prof); err != nil {
		return false, err
	}

	if res.err != nil {
		prof.Meta.ManualEnrichError = res.err.Error()
		return false, output.WriteJSON(j.path, prof)
	}

	Merge(&prof, j.ref.URL, res.controls, now)
	return true, output.WriteJSON(j.path, prof)
}

// Merge applies extracted controls and the manual URL to a profile. Existing
// controls are kept unless the manual yielded more.
func Merge(prof *models.DeviceProfile, url string, controls []models.Control, now time.Time) {
	if len(controls) > len(prof.Controls) {
		prof.Controls = controls
	}

	sources := make([]string, 0, len(prof.ManualSources)+1)
	seen := make(map[string]bool)
	for _, s := range append(prof.ManualSources, url) {
		if !seen[s] {
			seen[s] = true
			sources = append(sources, s)
		}
	}
	prof.ManualSources = sources
	prof.Enriched = true
	prof.Meta.ManualEnrichedAtUTC = models.FormatUTC(now)
}
