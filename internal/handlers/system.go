// internal/handlers/system.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/practicebay/practicebay-api/internal/config"
	"github.com/practicebay/practicebay-api/internal/i18n"
	"github.com/practicebay/practicebay-api/internal/services"
	"github.com/practicebay/practicebay-api/internal/utils"
)

const Version = "1.0.0"

// maxErrorText bounds how much of a store error the diagnostics expose.
const maxErrorText = 50

type SystemHandler struct {
	source services.CatalogSource
	cfg    *config.Config
}

func NewSystemHandler(source services.CatalogSource, cfg *config.Config) *SystemHandler {
	return &SystemHandler{source: source, cfg: cfg}
}

type DiagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// GET /
func (h *SystemHandler) Root(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	utils.OKResponse(c, gin.H{"message": i18n.T(lang, i18n.KeyAPIRunning)})
}

// GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"version": Version,
	})
}

// GET /test
func (h *SystemHandler) Diagnostics(c *gin.Context) {
	status := h.source.Status(c.Request.Context())

	resp := DiagnosticsResponse{
		Backend:          "✅ Running",
		Database:         "⚠️  Available but not initialized",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
		DatabaseURL:      setFlag(h.cfg.Database.Enabled()),
		DatabaseName:     setFlag(h.cfg.Database.NameFromEnv),
	}

	if status.Connected {
		resp.ConnectionStatus = "Connected"
		if status.Err != nil {
			resp.Database = fmt.Sprintf("⚠️  Connected but Error: %s", truncate(status.Err.Error(), maxErrorText))
		} else {
			resp.Database = "✅ Connected & Working"
			resp.Collections = status.Collections
		}
	}

	utils.OKResponse(c, resp)
}

func setFlag(set bool) string {
	if set {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
