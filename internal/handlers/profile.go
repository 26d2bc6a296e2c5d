package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/AllenLeeyn/graphql/internal/charts"
	"github.com/AllenLeeyn/graphql/internal/loader"
	"github.com/AllenLeeyn/graphql/internal/metrics"
	"github.com/AllenLeeyn/graphql/internal/middleware"
	"github.com/AllenLeeyn/graphql/internal/models"
	"github.com/AllenLeeyn/graphql/internal/svg"
)

// Default container sizes, matching the dashboard layout slots.
var chartDims = map[string]charts.Dimensions{
	"timeline": {Width: 500, Height: 700},
	"xp":       {Width: 800, Height: 600},
	"ratio":    {Width: 850, Height: 200},
	"skills":   {Width: 500, Height: 500},
}

type ProfileHandler struct {
	loader  *loader.Loader
	metrics *metrics.Manager
}

func NewProfileHandler(l *loader.Loader, m *metrics.Manager) *ProfileHandler {
	return &ProfileHandler{loader: l, metrics: m}
}

// Dashboard assembles the full page payload: identity fields, all four charts
// and the three side tables in one response.
func (h *ProfileHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetToken(r.Context())

	result, err := h.loader.Load(r.Context(), token)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	h.metrics.RecordDashboardLoad()
	writeJSON(w, http.StatusOK, buildDashboard(result))
}

func buildDashboard(result *loader.Result) models.Dashboard {
	user := result.User

	timeline := charts.Timeline(result.Completed, result.Wip, chartDims["timeline"])
	xpChart, xpRows := charts.XPLine(result.XP, chartDims["xp"])
	ratioChart, auditRows := charts.RatioBar(user, result.Audits, chartDims["ratio"])
	radarChart, skillRows := charts.SkillRadar(result.Skills, chartDims["skills"])

	return models.Dashboard{
		User: models.UserInfo{
			ID:          user.ID,
			Login:       user.Login,
			Campus:      fmt.Sprintf("[%s:%s]", user.Campus, user.LabelName()),
			Name:        user.FullName(),
			Email:       user.Attrs.Email,
			Gender:      user.Attrs.Gender,
			Nationality: user.Attrs.Nationality,
			AuditRatio:  user.AuditRatio,
		},
		Charts: models.ChartSet{
			Timeline: svg.Render(timeline),
			XP:       svg.Render(xpChart),
			Ratio:    svg.Render(ratioChart),
			Skills:   svg.Render(radarChart),
		},
		Tables: models.TableSet{
			XP:     xpRows,
			Audits: auditRows,
			Skills: skillRows,
		},
		Notices: result.Notices,
	}
}

// Chart serves one visualization as a standalone SVG document. The container
// size can be overridden with width and height query parameters.
func (h *ProfileHandler) Chart(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	dims, ok := chartDims[name]
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Unknown chart: "+name, r))
		return
	}
	dims = overrideDims(dims, r)

	token := middleware.GetToken(r.Context())
	result, err := h.loader.Load(r.Context(), token)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	var chart charts.Chart
	switch name {
	case "timeline":
		chart = charts.Timeline(result.Completed, result.Wip, dims)
	case "xp":
		chart, _ = charts.XPLine(result.XP, dims)
	case "ratio":
		chart, _ = charts.RatioBar(result.User, result.Audits, dims)
	case "skills":
		chart, _ = charts.SkillRadar(result.Skills, dims)
	}

	h.metrics.RecordChartRender(name)
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(svg.Render(chart)))
}

func overrideDims(dims charts.Dimensions, r *http.Request) charts.Dimensions {
	if v := r.URL.Query().Get("width"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil && n > 0 {
			dims.Width = n
		}
	}
	if v := r.URL.Query().Get("height"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil && n > 0 {
			dims.Height = n
		}
	}
	return dims
}
