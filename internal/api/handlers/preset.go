package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"battery-case/internal/api/models"
	"battery-case/internal/config"
	"battery-case/internal/logging"

	"github.com/gin-gonic/gin"
)

// PresetHandler serves the scenario presets found in a directory of YAML files
type PresetHandler struct {
	presetDir string
	log       *logging.Logger
}

// NewPresetHandler creates a new preset handler
func NewPresetHandler(dir string, log *logging.Logger) *PresetHandler {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	log.Info().Str("dir", dir).Msg("using preset directory")
	return &PresetHandler{presetDir: dir, log: log}
}

// Load reads one preset by id.
func (h *PresetHandler) Load(id string) (config.InvestmentConfig, error) {
	path, err := presetFile(h.presetDir, id)
	if err != nil {
		return config.InvestmentConfig{}, err
	}
	return config.LoadPreset(path)
}

// ListPresets handles GET /api/v1/presets
func (h *PresetHandler) ListPresets(c *gin.Context) {
	presets := []models.PresetInfo{}

	entries, err := os.ReadDir(h.presetDir)
	if err != nil {
		h.log.Warn().Err(err).Str("dir", h.presetDir).Msg("failed to read preset directory")
		c.JSON(http.StatusOK, gin.H{"presets": presets})
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		id := presetID(entry.Name())
		inv, err := h.Load(id)
		if err != nil {
			h.log.Warn().Err(err).Str("file", entry.Name()).Msg("skipping invalid preset")
			continue
		}

		name := inv.Name
		if name == "" {
			name = id
		}
		presets = append(presets, models.PresetInfo{
			ID:         id,
			Name:       name,
			File:       filepath.Join(h.presetDir, entry.Name()),
			Parameters: toParameters(name, inv.ToModelParams()),
		})
	}

	h.log.Debug().Int("count", len(presets)).Msg("listed presets")
	c.JSON(http.StatusOK, gin.H{"presets": presets})
}

// presetID strips the extension, e.g. "1_small_site.yaml" -> "1_small_site".
func presetID(filename string) string {
	return filename[:len(filename)-len(filepath.Ext(filename))]
}

func presetFile(dir, id string) (string, error) {
	if id == "" || id != filepath.Base(id) {
		return "", fmt.Errorf("invalid preset id %q", id)
	}
	return filepath.Join(dir, id+".yaml"), nil
}
