package http

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lh1862570-stack/backendapp/internal/core/domain"
	"github.com/lh1862570-stack/backendapp/internal/pkg/metrics"
)

// parseObserver extracts and validates the lat/lon query parameters.
func parseObserver(c *fiber.Ctx) (float64, float64, error) {
	if c.Query("lat") == "" || c.Query("lon") == "" {
		return 0, 0, errors.New("lat and lon are required")
	}
	lat := c.QueryFloat("lat", 0)
	lon := c.QueryFloat("lon", 0)
	if lat < -90 || lat > 90 {
		return 0, 0, errors.New("lat must be between -90 and 90")
	}
	if lon < -180 || lon > 180 {
		return 0, 0, errors.New("lon must be between -180 and 180")
	}
	return lat, lon, nil
}

// parseFilterOptions reads the visibility filter parameters. Absent
// parameters stay nil so the services apply their own defaults.
func parseFilterOptions(c *fiber.Ctx) domain.FilterOptions {
	var opts domain.FilterOptions
	if c.Query("min_alt") != "" {
		v := c.QueryFloat("min_alt", 0)
		opts.MinAltitude = &v
	}
	if c.Query("max_mag") != "" {
		v := c.QueryFloat("max_mag", 0)
		opts.MaxMagnitude = &v
	}
	opts.Limit = c.QueryInt("limit", 0)
	if opts.Limit < 0 {
		opts.Limit = 0
	}
	opts.SortKey = domain.SortKey(c.Query("sort"))
	return opts
}

// withHorizonDefault applies the 0 degree minimum altitude the
// single-instant visible endpoints use when the caller gives no min_alt.
// Batch endpoints skip this, so their frames keep below-horizon objects.
func withHorizonDefault(opts domain.FilterOptions) domain.FilterOptions {
	if opts.MinAltitude == nil {
		horizon := 0.0
		opts.MinAltitude = &horizon
	}
	return opts
}

// parseStep reads the batch step as a Go duration string (e.g. "30m").
func parseStep(c *fiber.Ctx) (time.Duration, error) {
	raw := c.Query("step", "60m")
	step, err := time.ParseDuration(raw)
	if err != nil {
		return 0, errors.New("step must be a duration like 30m or 1h30m")
	}
	return step, nil
}

// parseProjectionOptions reads constellation projection parameters. The
// four fov_* parameters come as a set; screen_w/screen_h likewise.
func parseProjectionOptions(c *fiber.Ctx) (domain.ProjectionOptions, error) {
	var opts domain.ProjectionOptions

	if c.Query("min_alt") != "" {
		v := c.QueryFloat("min_alt", 0)
		opts.MinAltitude = &v
	}

	fovSet := 0
	for _, k := range []string{"fov_az", "fov_alt", "fov_width", "fov_height"} {
		if c.Query(k) != "" {
			fovSet++
		}
	}
	if fovSet > 0 && fovSet < 4 {
		return opts, errors.New("fov_az, fov_alt, fov_width and fov_height must be given together")
	}
	if fovSet == 4 {
		opts.FOV = &domain.FieldOfView{
			CenterAzDeg:  c.QueryFloat("fov_az", 0),
			CenterAltDeg: c.QueryFloat("fov_alt", 0),
			WidthDeg:     c.QueryFloat("fov_width", 0),
			HeightDeg:    c.QueryFloat("fov_height", 0),
		}
	}

	if c.Query("screen_w") != "" || c.Query("screen_h") != "" {
		opts.Screen = &domain.Resolution{
			Width:  c.QueryInt("screen_w", 0),
			Height: c.QueryInt("screen_h", 0),
		}
	}

	opts.ClipEdgesToFOV = c.QueryBool("clip_edges", false)
	opts.IncludeOffscreen = c.QueryBool("include_offscreen", false)
	opts.IncludeBelowHorizon = c.QueryBool("include_below_horizon", false)
	return opts, nil
}

// CatalogStatus summarizes the loaded catalog.
type CatalogStatus struct {
	Stars            int  `json:"stars"`
	Bodies           int  `json:"bodies"`
	Constellations   int  `json:"constellations"`
	BoundariesLoaded bool `json:"boundaries_loaded"`
}

// CatalogStatusHandler reports catalog sizes and boundary availability.
func CatalogStatusHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status := CatalogStatus{
			Stars:          len(deps.Catalog.Stars()),
			Bodies:         len(deps.Catalog.Bodies()),
			Constellations: len(deps.Catalog.AllConstellations()),
		}
		if deps.Boundaries != nil {
			status.BoundariesLoaded = deps.Boundaries.Loaded()
		}
		c.Set("Cache-Control", "public, max-age=60")
		return c.JSON(status)
	}
}

// ListStarsHandler returns the raw star catalog with pagination.
func ListStarsHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stars := deps.Catalog.Stars()

		offset := c.QueryInt("offset", 0)
		limit := c.QueryInt("limit", 100)
		if offset < 0 {
			offset = 0
		}
		if limit <= 0 || limit > 500 {
			limit = 100
		}

		total := len(stars)
		if offset >= total {
			stars = nil
		} else {
			end := offset + limit
			if end > total {
				end = total
			}
			stars = stars[offset:end]
		}

		pg := Pagination{Offset: offset, Limit: limit, Total: total}
		SetLinkHeaders(c, pg)
		return c.JSON(PaginatedResponse{Data: stars, Pagination: pg})
	}
}

// VisibleStarsHandler returns stars above the horizon for an observer.
// GET /v1/stars/visible?lat=18.48&lon=-69.93&time=2024-06-15T04:00:00Z
func VisibleStarsHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lat, lon, err := parseObserver(c)
		if err != nil {
			return errBadRequest(c, err.Error())
		}
		opts := withHorizonDefault(parseFilterOptions(c))

		frame, svcErr := deps.Stars.Visible(c.Context(), lat, lon, c.Query("time"), opts)
		if svcErr != nil {
			return svcError(c, svcErr)
		}
		metrics.TransformsComputed.WithLabelValues("stars").Add(float64(len(frame.Stars)))
		return c.JSON(frame)
	}
}

// VisibleStarsBatchHandler returns one visibility frame per step across a
// window, end inclusive.
func VisibleStarsBatchHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lat, lon, err := parseObserver(c)
		if err != nil {
			return errBadRequest(c, err.Error())
		}
		start, end := c.Query("start"), c.Query("end")
		if start == "" || end == "" {
			return errBadRequest(c, "start and end are required")
		}
		step, err := parseStep(c)
		if err != nil {
			return errBadRequest(c, err.Error())
		}
		opts := parseFilterOptions(c)

		frames, svcErr := deps.Stars.VisibleBatch(c.Context(), lat, lon, start, end, step, opts)
		if svcErr != nil {
			return svcError(c, svcErr)
		}
		metrics.FramesGenerated.WithLabelValues("stars").Add(float64(len(frames)))
		return c.JSON(fiber.Map{
			"frames": frames,
			"count":  len(frames),
		})
	}
}

// pathName decodes a percent-encoded path parameter. Star and
// constellation names may contain spaces.
func pathName(c *fiber.Ctx, key string) string {
	raw := c.Params(key)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

// GetStarHandler returns one star with its current horizontal position.
func GetStarHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := pathName(c, "name")
		if name == "" {
			return errBadRequest(c, "star name is required")
		}
		lat, lon, err := parseObserver(c)
		if err != nil {
			return errBadRequest(c, err.Error())
		}
		star, svcErr := deps.Stars.Get(c.Context(), name, lat, lon, c.Query("time"))
		if svcErr != nil {
			return svcError(c, svcErr)
		}
		return c.JSON(star)
	}
}

// VisibleBodiesHandler returns sun, moon, and planet positions.
func VisibleBodiesHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lat, lon, err := parseObserver(c)
		if err != nil {
			return errBadRequest(c, err.Error())
		}
		opts := withHorizonDefault(parseFilterOptions(c))

		frame, svcErr := deps.Bodies.Visible(c.Context(), lat, lon, c.Query("time"), opts)
		if svcErr != nil {
			return svcError(c, svcErr)
		}
		metrics.TransformsComputed.WithLabelValues("bodies").Add(float64(len(frame.Bodies)))
		return c.JSON(frame)
	}
}

// VisibleBodiesBatchHandler returns body frames across a window.
func VisibleBodiesBatchHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lat, lon, err := parseObserver(c)
		if err != nil {
			return errBadRequest(c, err.Error())
		}
		start, end := c.Query("start"), c.Query("end")
		if start == "" || end == "" {
			return errBadRequest(c, "start and end are required")
		}
		step, err := parseStep(c)
		if err != nil {
			return errBadRequest(c, err.Error())
		}
		opts := parseFilterOptions(c)

		frames, svcErr := deps.Bodies.VisibleBatch(c.Context(), lat, lon, start, end, step, opts)
		if svcErr != nil {
			return svcError(c, svcErr)
		}
		metrics.FramesGenerated.WithLabelValues("bodies").Add(float64(len(frames)))
		return c.JSON(fiber.Map{
			"frames": frames,
			"count":  len(frames),
		})
	}
}

// EventsHandler finds rise/set and moon-phase events inside a window.
// GET /v1/events?lat=..&lon=..&start=..&end=..&targets=moon,jupiter
func EventsHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lat, lon, err := parseObserver(c)
		if err != nil {
			return errBadRequest(c, err.Error())
		}
		start, end := c.Query("start"), c.Query("end")
		if start == "" || end == "" {
			return errBadRequest(c, "start and end are required")
		}

		var targets []string
		if raw := c.Query("targets"); raw != "" {
			for _, t := range strings.Split(raw, ",") {
				if trimmed := strings.TrimSpace(t); trimmed != "" {
					targets = append(targets, trimmed)
				}
			}
		}

		events, svcErr := deps.Events.Find(c.Context(), lat, lon, start, end, targets)
		if svcErr != nil {
			return svcError(c, svcErr)
		}
		for _, ev := range events {
			metrics.EventsFound.WithLabelValues(string(ev.Type)).Inc()
		}
		return c.JSON(fiber.Map{
			"events": events,
			"count":  len(events),
		})
	}
}

// ListConstellationsHandler returns all constellation figures.
func ListConstellationsHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Cache-Control", "public, max-age=3600")
		return c.JSON(deps.Constellations.List(c.Context()))
	}
}

// ConstellationFrameHandler projects one constellation for an observer.
// FOV and screen parameters switch on windowing and pixel projection.
func ConstellationFrameHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := pathName(c, "name")
		if name == "" {
			return errBadRequest(c, "constellation name is required")
		}
		lat, lon, err := parseObserver(c)
		if err != nil {
			return errBadRequest(c, err.Error())
		}
		opts, err := parseProjectionOptions(c)
		if err != nil {
			return errBadRequest(c, err.Error())
		}

		frame, svcErr := deps.Constellations.Frame(c.Context(), name, lat, lon, c.Query("time"), opts)
		if svcErr != nil {
			return svcError(c, svcErr)
		}
		return c.JSON(frame)
	}
}

// ConstellationFramesHandler projects every constellation at once,
// skipping below-horizon figures unless include_below_horizon is set.
func ConstellationFramesHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lat, lon, err := parseObserver(c)
		if err != nil {
			return errBadRequest(c, err.Error())
		}
		opts, err := parseProjectionOptions(c)
		if err != nil {
			return errBadRequest(c, err.Error())
		}

		frames, svcErr := deps.Constellations.Frames(c.Context(), lat, lon, c.Query("time"), opts)
		if svcErr != nil {
			return svcError(c, svcErr)
		}
		return c.JSON(fiber.Map{
			"constellations": frames,
			"count":          len(frames),
		})
	}
}

// LocateStarHandler answers "which constellation contains this point"
// using the IAU boundary polygons. Accepts either a catalog star name or
// raw ra/dec coordinates.
func LocateStarHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if star := c.Query("star"); star != "" {
			name, svcErr := deps.Constellations.Locate(c.Context(), star)
			if svcErr != nil {
				return svcError(c, svcErr)
			}
			return c.JSON(fiber.Map{
				"star":          star,
				"constellation": name,
			})
		}

		if c.Query("ra") == "" || c.Query("dec") == "" {
			return errBadRequest(c, "star, or ra and dec, are required")
		}
		ra := c.QueryFloat("ra", 0)
		dec := c.QueryFloat("dec", 0)
		if deps.Boundaries == nil || !deps.Boundaries.Loaded() {
			return errNotFound(c, "no boundary data loaded")
		}
		name := deps.Boundaries.FindByEquatorial(ra, dec)
		if name == "" {
			return errNotFound(c, "no constellation contains this point")
		}
		return c.JSON(fiber.Map{
			"ra_deg":        ra,
			"dec_deg":       dec,
			"constellation": name,
		})
	}
}
