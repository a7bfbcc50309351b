package enrich

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ifls/patchbay-go/pkg/patchbay/models"
	"github.com/ifls/patchbay-go/pkg/patchbay/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

var enrichNow = time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)

func manualServer() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/a.html", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, "<p>GAIN KNOB</p><p>TONE</p><p>RATE</p>")
	})
	mux.HandleFunc("/b.pdf", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		fmt.Fprint(w, "broken")
	})
	mux.HandleFunc("/c", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<p>DEPTH</p>")
	})
	return httptest.NewServer(mux)
}

func setupProfiles(t *testing.T, baseURL string) (Config, string) {
	t.Helper()
	dir := t.TempDir()
	profilesDir := filepath.Join(dir, "device_profiles")

	write := func(p models.DeviceProfile) {
		require.NoError(t, output.WriteJSON(filepath.Join(profilesDir, p.ID+".json"), p))
	}
	write(models.DeviceProfile{
		ID:            "a",
		Controls:      []models.Control{{NameEN: "Old", Type: "unknown"}},
		ManualSources: []string{baseURL + "/a.html"},
	})
	write(models.DeviceProfile{ID: "b"})
	write(models.DeviceProfile{ID: "c"})

	manualMap := filepath.Join(dir, "manual_map.csv")
	csvText := "id,manual_url\n" +
		"a," + baseURL + "/a.html\n" +
		"missing," + baseURL + "/a.html\n" +
		"b," + baseURL + "/b.pdf\n" +
		"c," + baseURL + "/c\n"
	require.NoError(t, os.WriteFile(manualMap, []byte(csvText), 0644))

	cfg := DefaultConfig()
	cfg.ManualMap = manualMap
	cfg.ProfilesDir = profilesDir
	cfg.Concurrency = 2
	cfg.Client = &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	cfg.Now = func() time.Time { return enrichNow }
	return cfg, profilesDir
}

func readProfile(t *testing.T, dir, id string) models.DeviceProfile {
	t.Helper()
	var p models.DeviceProfile
	require.NoError(t, output.ReadJSON(filepath.Join(dir, id+".json"), &p))
	return p
}

func TestRun(t *testing.T) {
	defer goleak.VerifyNone(t)
	srv := manualServer()
	defer srv.Close()

	cfg, dir := setupProfiles(t, srv.URL)
	sum, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, Summary{Processed: 2, Failed: 1, Skipped: 1}, sum)

	a := readProfile(t, dir, "a")
	assert.True(t, a.Enriched)
	assert.Equal(t, []string{srv.URL + "/a.html"}, a.ManualSources)
	assert.Equal(t, "2026-07-01T09:00:00Z", a.Meta.ManualEnrichedAtUTC)
	var names []string
	for _, c := range a.Controls {
		names = append(names, c.NameEN)
	}
	assert.Contains(t, names, "Gain")
	assert.NotContains(t, names, "Old")

	b := readProfile(t, dir, "b")
	assert.False(t, b.Enriched)
	assert.NotEmpty(t, b.Meta.ManualEnrichError)

	c := readProfile(t, dir, "c")
	assert.True(t, c.Enriched)
	require.Len(t, c.Controls, 1)
	assert.Equal(t, "Depth", c.Controls[0].NameEN)
}

func TestRunStopsAtMax(t *testing.T) {
	defer goleak.VerifyNone(t)
	srv := manualServer()
	defer srv.Close()

	cfg, dir := setupProfiles(t, srv.URL)
	cfg.Max = 1
	cfg.Concurrency = 4
	sum, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Processed)
	assert.Equal(t, 0, sum.Failed)

	assert.True(t, readProfile(t, dir, "a").Enriched)
	assert.False(t, readProfile(t, dir, "c").Enriched)
	assert.Empty(t, readProfile(t, dir, "b").Meta.ManualEnrichError)
}

func TestRunHTTPError(t *testing.T) {
	defer goleak.VerifyNone(t)
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	cfg, dir := setupProfiles(t, srv.URL)
	sum, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 0, sum.Processed)
	assert.Equal(t, 3, sum.Failed)
	assert.Contains(t, readProfile(t, dir, "a").Meta.ManualEnrichError, "404")
}

func TestRunMissingManualMap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ManualMap = filepath.Join(t.TempDir(), "nope.csv")
	_, err := Run(context.Background(), cfg)
	assert.Error(t, err)
}

func TestMergeKeepsRicherControls(t *testing.T) {
	p := models.DeviceProfile{
		Controls:      []models.Control{{NameEN: "A"}, {NameEN: "B"}},
		ManualSources: []string{"u1"},
	}
	Merge(&p, "u2", []models.Control{{NameEN: "C"}}, enrichNow)

	assert.Len(t, p.Controls, 2)
	assert.Equal(t, []string{"u1", "u2"}, p.ManualSources)
	assert.True(t, p.Enriched)
}
