package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/agrobooks/internal/finance"
	"github.com/mamadbah2/agrobooks/internal/service/dashboard"
)

// maxWindowDays caps the days query parameter so a single request cannot ask
// for an unbounded series.
const maxWindowDays = 366

// DashboardHandler serves the financial series endpoints.
type DashboardHandler struct {
	svc    *dashboard.Service
	window int
	logger *zap.Logger
}

// NewDashboardHandler constructs the HTTP handler adapter. defaultWindow is
// the series length served when the request does not ask for one.
func NewDashboardHandler(svc *dashboard.Service, defaultWindow int, logger *zap.Logger) *DashboardHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if defaultWindow <= 0 {
		defaultWindow = finance.DefaultWindowDays
	}
	return &DashboardHandler{svc: svc, window: defaultWindow, logger: logger}
}

// Taxonomies are immutable; build each once and share across requests.
var (
	genericTaxonomy    = finance.GenericCategories()
	poultryTaxonomy    = finance.PoultryCategories()
	apicultureTaxonomy = finance.ApicultureCategories()
)

// Summary serves the all-occupations dashboard series.
func (h *DashboardHandler) Summary(c *gin.Context) {
	h.serve(c, "", genericTaxonomy)
}

// Poultry serves the poultry screen series.
func (h *DashboardHandler) Poultry(c *gin.Context) {
	h.serve(c, "Poultry", poultryTaxonomy)
}

// Apiculture serves the apiculture screen series.
func (h *DashboardHandler) Apiculture(c *gin.Context) {
	h.serve(c, "Apiculture", apicultureTaxonomy)
}

func (h *DashboardHandler) serve(c *gin.Context, targetOccupation string, categories *finance.CategoryConfig) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	windowDays, err := h.windowDays(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	series, err := h.svc.Series(c.Request.Context(), dashboard.SeriesRequest{
		UserID:           userID,
		WindowDays:       windowDays,
		TargetOccupation: targetOccupation,
		Categories:       categories,
	})
	if err != nil {
		h.logger.Error("failed computing dashboard series",
			zap.String("user_id", userID),
			zap.String("target_occupation", targetOccupation),
			zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to load records"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"series": series})
}

func (h *DashboardHandler) windowDays(c *gin.Context) (int, error) {
	raw := c.Query("days")
	if raw == "" {
		return h.window, nil
	}

	days, err := strconv.Atoi(raw)
	if err != nil || days < 1 {
		return 0, errors.New("days must be a positive integer")
	}
	if days > maxWindowDays {
		return 0, errors.New("days must not exceed 366")
	}
	return days, nil
}
