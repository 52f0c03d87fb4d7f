package controllers

import (
	"log"
	"net/http"
	"path/filepath"

	"soiladvisor/internal/cache"
	"soiladvisor/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

type ResultsController struct {
	results   cache.ResultStore
	store     sessions.Store
	uploadDir string
}

func NewResultsController(results cache.ResultStore, store sessions.Store, uploadDir string) *ResultsController {
	return &ResultsController{results: results, store: store, uploadDir: uploadDir}
}

// Show renders whatever the session's result token points at; it never
// recomputes a prediction.
func (rc *ResultsController) Show(c *gin.Context) {
	token, ok := middleware.ResultToken(rc.store, c)
	if !ok {
		middleware.AddFlash(rc.store, c, "warning", "No results to display. Please submit data first.")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	result, found, err := rc.results.Get(c.Request.Context(), token)
	if err != nil {
		log.Printf("results: loading payload: %v", err)
	}
	if err != nil || !found {
		middleware.AddFlash(rc.store, c, "warning", "No results to display. Please submit data first.")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	c.HTML(http.StatusOK, "results.html", gin.H{
		"flashes":  middleware.TakeFlashes(rc.store, c),
		"username": c.GetString("username"),
		"result":   result,
	})
}

// Download serves a file from the upload directory as an attachment. The route
// is deliberately ungated and checks no ownership; only the basename of the
// requested name is used.
func (rc *ResultsController) Download(c *gin.Context) {
	filename := filepath.Base(c.Param("filename"))
	c.FileAttachment(filepath.Join(rc.uploadDir, filename), filename)
}
