package basesets

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"basemedia/core/media"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T) (*fiber.App, afero.Fs) {
	fs := newTestFs(t, standardFixtures()...)
	svc := newTestService(t, fs, media.Config{})
	_, err := svc.Rescan(context.Background())
	require.NoError(t, err)

	app := fiber.New()
	NewHandler(svc).RegisterRoutes(app)
	return app, fs
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string, out any) int {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestHandleList(t *testing.T) {
	app, _ := setupTestApp(t)

	t.Run("Visible", func(t *testing.T) {
		var views []SetView
		status := doJSON(t, app, "GET", "/basesets/sound", "", &views)
		assert.Equal(t, 200, status)
		assert.Equal(t, []string{"OpenSFX"}, viewNames(views))
	})

	t.Run("All", func(t *testing.T) {
		var views []SetView
		status := doJSON(t, app, "GET", "/basesets/sound?all=true", "", &views)
		assert.Equal(t, 200, status)
		assert.Equal(t, []string{"OpenSFX", "Broken"}, viewNames(views))
	})

	t.Run("UnknownKind", func(t *testing.T) {
		var body map[string]string
		status := doJSON(t, app, "GET", "/basesets/fonts", "", &body)
		assert.Equal(t, 404, status)
		assert.Contains(t, body["error"], "unknown base set kind")
	})
}

func TestHandleReport(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/basesets/graphics/report", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "List of graphics sets:\n"))
	assert.Contains(t, string(body), "           OpenGFX: OpenGFX graphics\n")
}

func TestHandleSelect(t *testing.T) {
	app, _ := setupTestApp(t)

	t.Run("ByName", func(t *testing.T) {
		var view SetView
		status := doJSON(t, app, "PUT", "/basesets/sound/active", `{"name":"Broken"}`, &view)
		assert.Equal(t, 200, status)
		assert.Equal(t, "Broken", view.Name)
		assert.True(t, view.Active)
	})

	t.Run("NotFound", func(t *testing.T) {
		status := doJSON(t, app, "PUT", "/basesets/sound/active", `{"name":"Nope"}`, nil)
		assert.Equal(t, 404, status)
	})

	t.Run("BadBody", func(t *testing.T) {
		status := doJSON(t, app, "PUT", "/basesets/sound/active", `{"name":`, nil)
		assert.Equal(t, 400, status)
	})
}

func TestHandleContent(t *testing.T) {
	app, _ := setupTestApp(t)
	sum := md5Hex(fileContent("OpenSFX", "samples"))

	tests := []struct {
		name   string
		target string
		want   int
		path   string
	}{
		{"ShortName", "/basesets/sound/content?id=OSFX", 200, "opensfx/samples.dat"},
		{"NumericID", "/basesets/sound/content?id=1481003855", 200, "opensfx/samples.dat"},
		{"WithChecksum", "/basesets/sound/content?id=OSFX&md5=" + sum, 200, "opensfx/samples.dat"},
		{"WrongChecksum", "/basesets/sound/content?id=OSFX&md5=00000000000000000000000000000000", 404, ""},
		{"MalformedChecksum", "/basesets/sound/content?id=OSFX&md5=xyz", 400, ""},
		{"MissingID", "/basesets/sound/content", 400, ""},
		{"NamePrefix", "/basesets/sound/content?id=name:OSFX", 200, "opensfx/samples.dat"},
		{"IDPrefixWithName", "/basesets/sound/content?id=id:OSFX", 400, ""},
		{"Incomplete", "/basesets/sound/content?id=BRKN", 404, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body map[string]string
			status := doJSON(t, app, "GET", tt.target, "", &body)
			assert.Equal(t, tt.want, status)
			if tt.path != "" {
				assert.Equal(t, tt.path, body["path"])
			}
		})
	}
}

func TestHandleAddManifest(t *testing.T) {
	app, fs := setupTestApp(t)

	newer := setFixture{Dir: "opensfx-9", Kind: Sound, Name: "OpenSFX", Short: "OSFX", Version: 9}
	writeSet(t, fs, newer)

	t.Run("Replaced", func(t *testing.T) {
		var body map[string]string
		status := doJSON(t, app, "POST", "/basesets/sound/manifests", `{"path":"`+newer.manifestPath()+`"}`, &body)
		assert.Equal(t, 200, status)
		assert.Equal(t, "replaced", body["outcome"])
	})

	t.Run("MissingPath", func(t *testing.T) {
		status := doJSON(t, app, "POST", "/basesets/sound/manifests", `{}`, nil)
		assert.Equal(t, 400, status)
	})

	t.Run("Unreadable", func(t *testing.T) {
		status := doJSON(t, app, "POST", "/basesets/sound/manifests", `{"path":"nowhere/none.obs"}`, nil)
		assert.Equal(t, 500, status)
	})

	t.Run("ParentPath", func(t *testing.T) {
		writeSet(t, fs, setFixture{Dir: "../elsewhere", Kind: Sound, Name: "Elsewhere", Short: "ELSE", Version: 1})
		status := doJSON(t, app, "POST", "/basesets/sound/manifests", `{"path":"../elsewhere/elsewhere.obs"}`, nil)
		assert.Equal(t, 400, status)
	})

	t.Run("Malformed", func(t *testing.T) {
		require.NoError(t, afero.WriteFile(fs, "/media/bad.obs", []byte("[files]\nsamples = x\n"), 0o644))
		status := doJSON(t, app, "POST", "/basesets/sound/manifests", `{"path":"bad.obs"}`, nil)
		assert.Equal(t, 422, status)
	})
}

func TestHandleRescan(t *testing.T) {
	app, _ := setupTestApp(t)

	var summaries []ScanSummary
	status := doJSON(t, app, "POST", "/basesets/rescan", "", &summaries)
	assert.Equal(t, 200, status)
	require.Len(t, summaries, 3)
	assert.Equal(t, "OpenGFX", summaries[0].Active)
}

func TestLoader(t *testing.T) {
	svc := newTestService(t, newTestFs(t), media.Config{})
	feature := NewFeature(svc)

	assert.Equal(t, "basesets", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NoError(t, feature.Load(fiber.New()))
}
