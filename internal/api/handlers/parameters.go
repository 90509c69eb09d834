package handlers

import (
	"net/http"

	"battery-case/internal/api/models"
	"battery-case/internal/config"

	"github.com/gin-gonic/gin"
)

// ListParameters handles GET /api/v1/parameters
func ListParameters(c *gin.Context) {
	params := make([]models.ParameterInfo, 0, len(config.Parameters))
	for _, p := range config.Parameters {
		params = append(params, models.ParameterInfo{
			Name:        p.Name,
			Label:       p.Label,
			Unit:        p.Unit,
			Min:         p.Min,
			Max:         p.Max,
			Step:        p.Step,
			Default:     p.Default,
			Description: p.Description,
		})
	}
	c.JSON(http.StatusOK, gin.H{"parameters": params})
}
