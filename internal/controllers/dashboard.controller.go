package controllers

import (
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"soiladvisor/internal/apperrors"
	"soiladvisor/internal/cache"
	"soiladvisor/internal/chart"
	"soiladvisor/internal/dataset"
	"soiladvisor/internal/middleware"
	"soiladvisor/internal/ml"
	"soiladvisor/internal/models"
	"soiladvisor/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const sampleRowLimit = 5

// DashboardConfig carries the paths and TTL the dashboard handlers need.
type DashboardConfig struct {
	UploadDir string
	ImgDir    string
	ResultTTL time.Duration
}

type DashboardController struct {
	predictor ml.Predictor
	results   cache.ResultStore
	store     sessions.Store
	cfg       DashboardConfig
}

func NewDashboardController(predictor ml.Predictor, results cache.ResultStore, store sessions.Store, cfg DashboardConfig) *DashboardController {
	return &DashboardController{predictor: predictor, results: results, store: store, cfg: cfg}
}

func (dc *DashboardController) Show(c *gin.Context) {
	dc.render(c)
}

func (dc *DashboardController) render(c *gin.Context) {
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"flashes":  middleware.TakeFlashes(dc.store, c),
		"username": c.GetString("username"),
	})
}

// Submit dispatches a dashboard POST to the manual or CSV path.
func (dc *DashboardController) Submit(c *gin.Context) {
	if _, manual := c.GetPostForm("manual"); manual {
		dc.submitManual(c)
		return
	}
	if file, err := c.FormFile("csvfile"); err == nil && file != nil {
		dc.submitCSV(c, file)
		return
	}
	middleware.AddFlash(dc.store, c, "warning", "Invalid or no file uploaded.")
	dc.render(c)
}

func (dc *DashboardController) submitManual(c *gin.Context) {
	sample, err := parseManualSample(c)
	if err != nil {
		middleware.AddFlash(dc.store, c, "danger", fmt.Sprintf("Error: %v", err))
		dc.render(c)
		return
	}

	crop, err := dc.predictor.PredictCrop(sample)
	if err != nil {
		dc.failGeneric(c, "predicting crop", err)
		return
	}
	fertility, err := dc.predictor.PredictFertility(sample)
	if err != nil {
		dc.failGeneric(c, "predicting fertility", err)
		return
	}

	input := models.ChartInfo{
		Labels: []string{"N", "P", "K", "pH", "Temperature", "Moisture"},
		Values: sample.Features(),
	}

	chartName, err := dc.renderChart(input, fertility)
	if err != nil {
		dc.failGeneric(c, "rendering chart", err)
		return
	}

	suggestion := models.SuggestionForTier(fertility)
	result := &models.ResultData{
		Mode:       "manual",
		Input:      input,
		Crop:       crop,
		Fertility:  fertility,
		Suggestion: &suggestion,
		Chart:      chartName,
	}

	dc.storeAndRedirect(c, result)
}

func (dc *DashboardController) submitCSV(c *gin.Context, file *multipart.FileHeader) {
	if err := utils.CheckCSVExtension(file.Filename); err != nil {
		middleware.AddFlash(dc.store, c, "warning", "Invalid or no file uploaded.")
		dc.render(c)
		return
	}

	filename := utils.SanitizeFilename(file.Filename)
	path := filepath.Join(dc.cfg.UploadDir, filename)
	if err := c.SaveUploadedFile(file, path); err != nil {
		dc.failGeneric(c, "saving upload", err)
		return
	}

	f, err := os.Open(path)
	if err != nil {
		dc.failGeneric(c, "reading upload", err)
		return
	}
	defer f.Close()

	table, err := dataset.ReadTable(f)
	if err != nil {
		middleware.AddFlash(dc.store, c, "danger", fmt.Sprintf("Error processing CSV: %v", err))
		dc.render(c)
		return
	}

	if err := table.Require(dataset.FeatureColumns...); err != nil {
		middleware.AddFlash(dc.store, c, "danger", "CSV missing required columns.")
		dc.render(c)
		return
	}

	samples, err := table.Samples()
	if err != nil {
		middleware.AddFlash(dc.store, c, "danger", fmt.Sprintf("Error processing CSV: %v", err))
		dc.render(c)
		return
	}

	crops, err := dc.predictor.PredictCropBatch(samples)
	if err != nil {
		dc.failGeneric(c, "batch crop prediction", err)
		return
	}
	fertilities, err := dc.predictor.PredictFertilityBatch(samples)
	if err != nil {
		dc.failGeneric(c, "batch fertility prediction", err)
		return
	}

	majorityCrop := dataset.Mode(crops)
	means, err := table.Means()
	if err != nil {
		middleware.AddFlash(dc.store, c, "danger", fmt.Sprintf("Error processing CSV: %v", err))
		dc.render(c)
		return
	}

	input := models.ChartInfo{Labels: dataset.FeatureColumns, Values: means}
	chartName, err := dc.renderChart(input, "")
	if err != nil {
		dc.failGeneric(c, "rendering chart", err)
		return
	}

	predictionsName := "predictions_" + filename
	out, err := os.Create(filepath.Join(dc.cfg.UploadDir, predictionsName))
	if err != nil {
		dc.failGeneric(c, "writing predictions file", err)
		return
	}
	writeErr := dataset.WritePredictions(out, table, crops, fertilities)
	out.Close()
	if writeErr != nil {
		dc.failGeneric(c, "writing predictions file", writeErr)
		return
	}

	summary := fmt.Sprintf(
		"Based on %d soil samples, the recommended crop for your farm is %s. "+
			"The soil shows a balanced fertility pattern suitable for %s cultivation.",
		table.Len(), majorityCrop, majorityCrop,
	)

	result := &models.ResultData{
		Mode:      "csv",
		Input:     input,
		Crop:      majorityCrop,
		Fertility: "Mixed / Averaged",
		File:      predictionsName,
		Sample:    dataset.SampleRecords(table, crops, fertilities, sampleRowLimit),
		Summary:   summary,
		Chart:     chartName,
	}

	dc.storeAndRedirect(c, result)
}

// renderChart writes a request-keyed chart image and returns its file name.
func (dc *DashboardController) renderChart(input models.ChartInfo, fertility string) (string, error) {
	name := uuid.NewString() + ".png"
	if err := chart.RenderBarChart(filepath.Join(dc.cfg.ImgDir, name), input.Labels, input.Values, fertility); err != nil {
		return "", err
	}
	return name, nil
}

func (dc *DashboardController) storeAndRedirect(c *gin.Context, result *models.ResultData) {
	token := uuid.NewString()
	if err := dc.results.Put(c.Request.Context(), token, result, dc.cfg.ResultTTL); err != nil {
		dc.failGeneric(c, "storing result", err)
		return
	}
	if err := middleware.SetResultToken(dc.store, c, token); err != nil {
		dc.failGeneric(c, "saving session", err)
		return
	}
	c.Redirect(http.StatusFound, "/results")
}

// failGeneric logs the internal detail and shows the user a generic failure.
func (dc *DashboardController) failGeneric(c *gin.Context, op string, err error) {
	log.Printf("dashboard: %s: %v", op, err)
	middleware.AddFlash(dc.store, c, "danger", "Something went wrong processing your request. Please try again.")
	dc.render(c)
}

func parseManualSample(c *gin.Context) (models.SoilSample, error) {
	fields := []string{"N", "P", "K", "pH", "temperature", "moisture"}
	parsed := make(map[string]float64, len(fields))
	for _, name := range fields {
		raw := c.PostForm(name)
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return models.SoilSample{}, fmt.Errorf("%w: %s must be a number", apperrors.ErrInvalidInput, name)
		}
		parsed[name] = v
	}
	return models.SoilSample{
		N:           parsed["N"],
		P:           parsed["P"],
		K:           parsed["K"],
		PH:          parsed["pH"],
		Temperature: parsed["temperature"],
		Moisture:    parsed["moisture"],
	}, nil
}
