package http_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	handler "github.com/lh1862570-stack/backendapp/internal/adapters/http"
	"github.com/lh1862570-stack/backendapp/internal/adapters/catalog"
	"github.com/lh1862570-stack/backendapp/internal/adapters/ephemeris"
	"github.com/lh1862570-stack/backendapp/internal/core/domain"
	"github.com/lh1862570-stack/backendapp/internal/core/usecases"
)

func setupApp(deps *handler.Dependencies) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	handler.SetupRoutes(app, deps)
	return app
}

// makeDeps wires the built-in catalog and analytic ephemeris. Handlers
// exercise real computations; no external stores are involved.
func makeDeps(opts ...func(*handler.Dependencies)) *handler.Dependencies {
	cat := catalog.NewBuiltin()
	eph := ephemeris.New()
	bounds, _ := catalog.LoadBoundaries("")

	d := &handler.Dependencies{
		Stars:          usecases.NewStarService(cat, nil, 0),
		Bodies:         usecases.NewBodyService(cat, eph, 0),
		Events:         usecases.NewEventService(cat, eph, 0),
		Constellations: usecases.NewConstellationService(cat, bounds),
		Catalog:        cat,
		Boundaries:     bounds,
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

func TestHealth(t *testing.T) {
	app := setupApp(makeDeps())

	req := httptest.NewRequest("GET", "/v1/health", nil)
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Status string `json:"status"`
	}
	json.NewDecoder(resp.Body).Decode(&body)
	if body.Status != "healthy" {
		t.Errorf("expected healthy, got %s", body.Status)
	}
}

func TestCatalogStatus(t *testing.T) {
	app := setupApp(makeDeps())

	req := httptest.NewRequest("GET", "/v1/catalog/status", nil)
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var status handler.CatalogStatus
	json.NewDecoder(resp.Body).Decode(&status)
	if status.Stars == 0 {
		t.Error("expected non-empty star catalog")
	}
	if status.Bodies != 9 {
		t.Errorf("expected 9 bodies, got %d", status.Bodies)
	}
	if status.Constellations != 5 {
		t.Errorf("expected 5 constellations, got %d", status.Constellations)
	}
	if status.BoundariesLoaded {
		t.Error("no boundary file was loaded")
	}
}

func TestListStars_Pagination(t *testing.T) {
	app := setupApp(makeDeps())

	req := httptest.NewRequest("GET", "/v1/stars?offset=2&limit=3", nil)
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var result struct {
		Data       []domain.Star `json:"data"`
		Pagination struct {
			Offset int `json:"offset"`
			Limit  int `json:"limit"`
			Total  int `json:"total"`
		} `json:"pagination"`
	}
	json.NewDecoder(resp.Body).Decode(&result)
	if len(result.Data) != 3 {
		t.Errorf("expected 3 stars in page, got %d", len(result.Data))
	}
	if result.Pagination.Offset != 2 {
		t.Errorf("expected offset 2, got %d", result.Pagination.Offset)
	}
	if result.Pagination.Total < 50 {
		t.Errorf("expected a substantial catalog, got total %d", result.Pagination.Total)
	}
	if resp.Header.Get("Link") == "" {
		t.Error("expected Link headers on paginated response")
	}
}

func TestVisibleStars_Success(t *testing.T) {
	app := setupApp(makeDeps())

	req := httptest.NewRequest("GET", "/v1/stars/visible?lat=45&lon=0&time=2024-06-15T00:00:00Z", nil)
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var frame domain.StarFrame
	json.NewDecoder(resp.Body).Decode(&frame)
	if len(frame.Stars) == 0 {
		t.Fatal("expected visible stars at lat 45")
	}
	for _, ps := range frame.Stars {
		if ps.Position.AltitudeDeg < 0 {
			t.Errorf("star %s below horizon: alt %.2f", ps.Star.Name, ps.Position.AltitudeDeg)
		}
	}
}

func TestVisibleStars_MissingParams(t *testing.T) {
	app := setupApp(makeDeps())

	req := httptest.NewRequest("GET", "/v1/stars/visible", nil)
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 400 {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var apiErr struct {
		Status int    `json:"status"`
		Code   string `json:"code"`
	}
	json.NewDecoder(resp.Body).Decode(&apiErr)
	if apiErr.Code != "bad_request" {
		t.Errorf("expected bad_request error, got %s", apiErr.Code)
	}
}

func TestVisibleStars_BadTime(t *testing.T) {
	app := setupApp(makeDeps())

	req := httptest.NewRequest("GET", "/v1/stars/visible?lat=45&lon=0&time=yesterday", nil)
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 400 {
		t.Fatalf("expected 400 for unparseable time, got %d", resp.StatusCode)
	}
}

func TestVisibleStars_BadLatitude(t *testing.T) {
	app := setupApp(makeDeps())

	req := httptest.NewRequest("GET", "/v1/stars/visible?lat=123&lon=0", nil)
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 400 {
		t.Fatalf("expected 400 for out-of-range lat, got %d", resp.StatusCode)
	}
}

func TestVisibleStarsBatch_Success(t *testing.T) {
	app := setupApp(makeDeps())

	req := httptest.NewRequest("GET",
		"/v1/stars/visible/batch?lat=45&lon=0&start=2024-06-15T00:00:00Z&end=2024-06-15T02:00:00Z&step=1h", nil)
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var result struct {
		Frames []domain.StarFrame `json:"frames"`
		Count  int                `json:"count"`
	}
	json.NewDecoder(resp.Body).Decode(&result)
	if result.Count != 3 {
		t.Errorf("expected 3 frames for a 2h window at 1h steps, got %d", result.Count)
	}
}

func TestVisibleStarsBatch_KeepsBelowHorizonStars(t *testing.T) {
	app := setupApp(makeDeps())

	// Canopus (dec -52.7) never rises at lat 45, yet batch frames carry
	// it unless the caller sets min_alt.
	req := httptest.NewRequest("GET",
		"/v1/stars/visible/batch?lat=45&lon=0&start=2024-06-15T00:00:00Z&end=2024-06-15T01:00:00Z&step=1h", nil)
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var result struct {
		Frames []domain.StarFrame `json:"frames"`
	}
	json.NewDecoder(resp.Body).Decode(&result)
	if len(result.Frames) == 0 {
		t.Fatal("expected frames")
	}
	found := false
	for _, ps := range result.Frames[0].Stars {
		if ps.Star.Name == "Canopus" {
			found = true
			if ps.Position.AltitudeDeg >= 0 {
				t.Errorf("Canopus should be below horizon at lat 45, alt %.2f", ps.Position.AltitudeDeg)
			}
		}
	}
	if !found {
		t.Error("batch frame dropped below-horizon star Canopus")
	}
}

func TestVisibleStarsBatch_BadStep(t *testing.T) {
	app := setupApp(makeDeps())

	req := httptest.NewRequest("GET",
		"/v1/stars/visible/batch?lat=45&lon=0&start=2024-06-15T00:00:00Z&end=2024-06-15T02:00:00Z&step=fast", nil)
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 400 {
		t.Fatalf("expected 400 for bad step, got %d", resp.StatusCode)
	}
}

func TestVisibleStarsBatch_TooManyFrames(t *testing.T) {
	app := setupApp(makeDeps())

	req := httptest.NewRequest("GET",
		"/v1/stars/visible/batch?lat=45&lon=0&start=2024-06-15T00:00:00Z&end=2024-06-16T00:00:00Z&step=1s", nil)
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 400 {
		t.Fatalf("expected 400 when the frame cap is exceeded, got %d", resp.StatusCode)
	}
}

func TestGetStar_Success(t *testing.T) {
	app := setupApp(makeDeps())

	req := httptest.NewRequest("GET", "/v1/stars/sirius?lat=18.48&lon=-69.93&time=2024-01-01T04:00:00Z", nil)
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var ps domain.PositionedStar
	json.NewDecoder(resp.Body).Decode(&ps)
	if ps.Star == nil || ps.Star.Name != "Sirius" {
		t.Fatalf("expected Sirius, got %+v", ps.Star)
	}
}

func TestGetStar_NotFound(t *testing.T) {
	app := setupApp(makeDeps())

	req := httptest.NewRequest("GET", "/v1/stars/nonexistent?lat=45&lon=0", nil)
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 404 {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}

	var apiErr struct {
		Code string `json:"code"`
	}
	json.NewDecoder(resp.Body).Decode(&apiErr)
	if apiErr.Code != "not_found" {
		t.Errorf("expected not_found error, got %s", apiErr.Code)
	}
}

func TestVisibleBodies_Success(t *testing.T) {
	app := setupApp(makeDeps())

	req := httptest.NewRequest("GET", "/v1/bodies/visible?lat=18.48&lon=-69.93&time=2024-06-15T16:00:00Z", nil)
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var frame domain.BodyFrame
	json.NewDecoder(resp.Body).Decode(&frame)
	if len(frame.Bodies) == 0 {
		t.Fatal("expected at least one body above the horizon at midday")
	}
	for _, pb := range frame.Bodies {
		if pb.Position.AltitudeDeg < 0 {
			t.Errorf("body %s below horizon: alt %.2f", pb.Body.ID, pb.Position.AltitudeDeg)
		}
	}
}

func TestVisibleBodiesBatch_Success(t *testing.T) {
	app := setupApp(makeDeps())

	req := httptest.NewRequest("GET",
		"/v1/bodies/visible/batch?lat=18.48&lon=-69.93&start=2024-06-15T00:00:00Z&end=2024-06-15T03:00:00Z&step=1h", nil)
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var result struct {
		Count int `json:"count"`
	}
	json.NewDecoder(resp.Body).Decode(&result)
	if result.Count != 4 {
		t.Errorf("expected 4 frames for a 3h window at 1h steps, got %d", result.Count)
	}
}

func TestEvents_StarRiseSet(t *testing.T) {
	app := setupApp(makeDeps())

	req := httptest.NewRequest("GET",
		"/v1/events?lat=18.48&lon=-69.93&start=2024-06-15T00:00:00Z&end=2024-06-16T00:00:00Z&targets=sirius", nil)
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var result struct {
		Events []domain.AstronomyEvent `json:"events"`
		Count  int                     `json:"count"`
	}
	json.NewDecoder(resp.Body).Decode(&result)
	if result.Count == 0 {
		t.Fatal("expected Sirius to rise or set inside a 24h window")
	}
	for _, ev := range result.Events {
		if ev.Type != domain.EventRise && ev.Type != domain.EventSet {
			t.Errorf("unexpected event type %s for a star target", ev.Type)
		}
		if !strings.Contains(ev.Description, "Sirius") {
			t.Errorf("description should name the star: %q", ev.Description)
		}
	}
}

func TestEvents_InvalidWindow(t *testing.T) {
	app := setupApp(makeDeps())

	req := httptest.NewRequest("GET",
		"/v1/events?lat=18.48&lon=-69.93&start=2024-06-16T00:00:00Z&end=2024-06-15T00:00:00Z", nil)
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 400 {
		t.Fatalf("expected 400 for end before start, got %d", resp.StatusCode)
	}
}

func TestEvents_UnknownTarget(t *testing.T) {
	app := setupApp(makeDeps())

	req := httptest.NewRequest("GET",
		"/v1/events?lat=18.48&lon=-69.93&start=2024-06-15T00:00:00Z&end=2024-06-16T00:00:00Z&targets=vulcan", nil)
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 404 {
		t.Fatalf("expected 404 for unknown target, got %d", resp.StatusCode)
	}
}

func TestListConstellations(t *testing.T) {
	app := setupApp(makeDeps())

	req := httptest.NewRequest("GET", "/v1/constellations", nil)
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var figures []domain.Constellation
	json.NewDecoder(resp.Body).Decode(&figures)
	if len(figures) != 5 {
		t.Fatalf("expected 5 constellations, got %d", len(figures))
	}
}

func TestConstellationFrame_Success(t *testing.T) {
	app := setupApp(makeDeps())

	req := httptest.NewRequest("GET",
		"/v1/constellations/Ursa%20Minor/frame?lat=45&lon=0&time=2024-06-15T00:00:00Z", nil)
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var frame domain.ConstellationFrame
	json.NewDecoder(resp.Body).Decode(&frame)
	if frame.Name != "Ursa Minor" {
		t.Errorf("expected Ursa Minor, got %s", frame.Name)
	}
	// Circumpolar at lat 45: the whole figure stays up
	if frame.BelowHorizon {
		t.Error("Ursa Minor should never set at lat 45")
	}
	if len(frame.Stars) != 6 {
		t.Errorf("expected 6 member stars, got %d", len(frame.Stars))
	}
}

func TestConstellationFrame_NotFound(t *testing.T) {
	app := setupApp(makeDeps())

	req := httptest.NewRequest("GET", "/v1/constellations/orion/frame?lat=45&lon=0", nil)
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 404 {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestConstellationFrame_ScreenWithoutFOV(t *testing.T) {
	app := setupApp(makeDeps())

	req := httptest.NewRequest("GET",
		"/v1/constellations/draco/frame?lat=45&lon=0&screen_w=800&screen_h=600", nil)
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 400 {
		t.Fatalf("expected 400 when screen is given without fov, got %d", resp.StatusCode)
	}
}

func TestConstellationFrame_PartialFOV(t *testing.T) {
	app := setupApp(makeDeps())

	req := httptest.NewRequest("GET",
		"/v1/constellations/draco/frame?lat=45&lon=0&fov_az=180&fov_width=60", nil)
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 400 {
		t.Fatalf("expected 400 for an incomplete fov parameter set, got %d", resp.StatusCode)
	}
}

func TestConstellationFrames_Success(t *testing.T) {
	app := setupApp(makeDeps())

	req := httptest.NewRequest("GET",
		"/v1/constellations/frames?lat=45&lon=0&time=2024-06-15T00:00:00Z&include_below_horizon=true", nil)
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var result struct {
		Count int `json:"count"`
	}
	json.NewDecoder(resp.Body).Decode(&result)
	if result.Count != 5 {
		t.Errorf("expected all 5 constellations with include_below_horizon, got %d", result.Count)
	}
}

func TestLocateStar_NoBoundaries(t *testing.T) {
	app := setupApp(makeDeps())

	req := httptest.NewRequest("GET", "/v1/constellations/locate?star=polaris", nil)
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 404 {
		t.Fatalf("expected 404 without boundary data, got %d", resp.StatusCode)
	}
}

func TestLocateStar_MissingParam(t *testing.T) {
	app := setupApp(makeDeps())

	req := httptest.NewRequest("GET", "/v1/constellations/locate", nil)
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 400 {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestGraphQL_VisibleStars(t *testing.T) {
	app := setupApp(makeDeps())

	body := strings.NewReader(`{"query":"{ visibleStars(lat: 45, lon: 0, time: \"2024-06-15T00:00:00Z\", limit: 5) { star { name } position { altitude_deg } } }"}`)
	req := httptest.NewRequest("POST", "/graphql", body)
	req.Header.Set("Content-Type", "application/json")
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var result struct {
		Data struct {
			VisibleStars []struct {
				Star struct {
					Name string `json:"name"`
				} `json:"star"`
			} `json:"visibleStars"`
		} `json:"data"`
		Errors []interface{} `json:"errors"`
	}
	json.NewDecoder(resp.Body).Decode(&result)
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected graphql errors: %v", result.Errors)
	}
	if len(result.Data.VisibleStars) == 0 {
		t.Fatal("expected visible stars from graphql query")
	}
}

func TestETagNotModified(t *testing.T) {
	app := setupApp(makeDeps())

	req := httptest.NewRequest("GET", "/v1/constellations", nil)
	resp, _ := app.Test(req, -1)
	etag := resp.Header.Get("ETag")
	if etag == "" {
		t.Fatal("expected an ETag on a 200 GET response")
	}

	req2 := httptest.NewRequest("GET", "/v1/constellations", nil)
	req2.Header.Set("If-None-Match", etag)
	resp2, _ := app.Test(req2, -1)
	if resp2.StatusCode != 304 {
		t.Fatalf("expected 304 for matching ETag, got %d", resp2.StatusCode)
	}
}
