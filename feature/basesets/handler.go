package basesets

import (
	"errors"

	"basemedia/core/baseset"
	"basemedia/core/filecheck"
	"basemedia/core/logger"
	"basemedia/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for base sets.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the base set routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/basesets")
	group.Post("/rescan", h.HandleRescan)
	group.Get("/:kind", h.HandleList)
	group.Get("/:kind/report", h.HandleReport)
	group.Put("/:kind/active", h.HandleSelect)
	group.Get("/:kind/content", h.HandleContent)
	group.Post("/:kind/manifests", h.HandleAddManifest)
}

// SelectRequest is the body of a selection request.
type SelectRequest struct {
	// Name of the set to activate; empty picks the best set.
	Name string `json:"name"`
}

// ManifestRequest is the body of a manifest registration request.
type ManifestRequest struct {
	// Path of the manifest relative to the media root.
	Path string `json:"path"`
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, ErrUnknownKind), errors.Is(err, ErrSetNotFound), errors.Is(err, ErrNoUsableSet):
		return fiber.StatusNotFound
	case errors.Is(err, baseset.ErrMalformedManifest):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, filecheck.ErrOutsideScope):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := errorStatus(err)
	if status == fiber.StatusInternalServerError {
		logger.WithRayID(h.service.Logger(), c).Error("Base set request failed", zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// HandleList lists the sets of a kind.
// @Summary List Base Sets
// @Description Lists the visible sets of a kind in selection order. With all=true superseded and unusable sets are included.
// @Tags basesets
// @Produce json
// @Param kind path string true "Kind (graphics, sound, music)"
// @Param all query boolean false "Include every known set"
// @Success 200 {array} SetView
// @Failure 404 {object} map[string]string "Unknown kind"
// @Router /basesets/{kind} [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	views, err := h.service.List(c.Params("kind"), utils.ToBool(c.Query("all")))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(views)
}

// HandleReport renders the plain text listing of a kind.
// @Summary Base Set Listing
// @Description Returns the human readable listing of the usable sets of a kind.
// @Tags basesets
// @Produce plain
// @Param kind path string true "Kind (graphics, sound, music)"
// @Success 200 {string} string "Listing"
// @Failure 404 {object} map[string]string "Unknown kind"
// @Router /basesets/{kind}/report [get]
func (h *Handler) HandleReport(c *fiber.Ctx) error {
	report, err := h.service.Report(c.Params("kind"))
	if err != nil {
		return h.fail(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(report)
}

// HandleSelect activates a set.
// @Summary Select Base Set
// @Description Activates the named set. An empty name selects the best available set.
// @Tags basesets
// @Accept json
// @Produce json
// @Param kind path string true "Kind (graphics, sound, music)"
// @Param request body SelectRequest true "Selection"
// @Success 200 {object} SetView
// @Failure 400 {object} map[string]string "Invalid body"
// @Failure 404 {object} map[string]string "Unknown kind or set"
// @Router /basesets/{kind}/active [put]
func (h *Handler) HandleSelect(c *fiber.Ctx) error {
	var req SelectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	view, err := h.service.Select(c.Context(), c.Params("kind"), req.Name)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(view)
}

// HandleContent looks up a set offered by a content source.
// @Summary Match Content
// @Description Finds a complete local set with the given short id and, optionally, the XOR of its file checksums.
// @Tags basesets
// @Produce json
// @Param kind path string true "Kind (graphics, sound, music)"
// @Param id query string true "Short name or numeric short id, optionally prefixed with name: or id:"
// @Param md5 query string false "Folded MD5 checksum"
// @Success 200 {object} map[string]string "Path of the set's first file"
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 404 {object} map[string]string "No matching set"
// @Router /basesets/{kind}/content [get]
func (h *Handler) HandleContent(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id is required"})
	}

	queries, err := ParseContentQuery(id, c.Query("md5"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	path, ok, err := h.service.Match(c.Params("kind"), queries...)
	if err != nil {
		return h.fail(c, err)
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no matching set"})
	}
	return c.JSON(fiber.Map{"path": path})
}

// HandleAddManifest registers a newly installed manifest.
// @Summary Add Manifest
// @Description Reads one manifest below the media root and reconciles it with the known sets.
// @Tags basesets
// @Accept json
// @Produce json
// @Param kind path string true "Kind (graphics, sound, music)"
// @Param request body ManifestRequest true "Manifest"
// @Success 200 {object} map[string]string "Outcome"
// @Failure 400 {object} map[string]string "Invalid body or path outside the media root"
// @Failure 422 {object} map[string]string "Malformed manifest"
// @Router /basesets/{kind}/manifests [post]
func (h *Handler) HandleAddManifest(c *fiber.Ctx) error {
	var req ManifestRequest
	if err := c.BodyParser(&req); err != nil || req.Path == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "path is required"})
	}

	outcome, err := h.service.AddManifest(c.Context(), c.Params("kind"), req.Path)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"outcome": outcome.String()})
}

// HandleRescan rescans every kind.
// @Summary Rescan Base Sets
// @Description Rebuilds all registries from the media source and restores the selections.
// @Tags basesets
// @Produce json
// @Success 200 {array} ScanSummary
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /basesets/rescan [post]
func (h *Handler) HandleRescan(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.Logger(), c)
	l.Info("Triggering base set rescan")

	summaries, err := h.service.Rescan(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(summaries)
}
