package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/modelhomeart/mhabackend/config"
	"github.com/modelhomeart/mhabackend/wizard"
)

// GetFormOptions serves the quote form's option registry so clients render
// the same label/value pairs the server validates against.
func GetFormOptions() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":          config.OptionsVersion,
			"categories":       config.Categories,
			"styles":           config.Styles,
			"matting":          config.Matting,
			"protection":       config.Protection,
			"budget":           config.Budget,
			"timeline":         config.Timeline,
			"services":         config.Services,
			"contactMethods":   config.ContactMethods,
			"maxQuoteImages":   wizard.MaxQuoteImages,
			"maxInquiryImages": wizard.MaxInquiryImages,
			"maxUploadMB":      wizard.MaxUploadMB,
		})
	}
}
