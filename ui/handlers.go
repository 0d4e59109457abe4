package ui

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
	"github.com/google/uuid"

	"splicegen/domain/fiber"
	"splicegen/domain/splice"
	"splicegen/internal/errors"
	"splicegen/internal/summary"
	"splicegen/internal/validation"
)

// generateResponse is the JSON payload both generate endpoints return.
type generateResponse struct {
	Rows        int                `json:"rows"`
	Columns     int                `json:"columns"`
	FileID      string             `json:"file_id"`
	DownloadURL string             `json:"download_url"`
	Summary     summary.HubSummary `json:"summary"`
	Table       [][]string         `json:"table,omitempty"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// handleGenerate builds a splice sheet from a JSON config body.
func (s *Server) handleGenerate(c *gin.Context) {
	var cfg splice.Config
	if err := c.ShouldBindJSON(&cfg); err != nil {
		log.Printf("[handleGenerate] FAILED - Invalid request body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "code": errors.CodeInputParse})
		return
	}

	s.generateAndRespond(c, cfg)
}

// handleUpload builds a splice sheet from an uploaded workbook/CSV plus
// optional hub form fields.
func (s *Server) handleUpload(c *gin.Context) {
	file, header, err := c.Request.FormFile("sheet")
	if err != nil {
		log.Printf("[handleUpload] FAILED - No file uploaded: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded", "code": errors.CodeInputParse})
		return
	}
	defer file.Close()

	maxFileSize := s.cfg.Server.MaxUploadMB * 1024 * 1024
	if header.Size > maxFileSize {
		log.Printf("[handleUpload] FAILED - File too large: %d bytes", header.Size)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("File size (%.1f MB) exceeds the %dMB limit",
				float64(header.Size)/(1024*1024), s.cfg.Server.MaxUploadMB),
			"code": errors.CodeValidation,
		})
		return
	}

	if !hasValidExtension(header.Filename) {
		log.Printf("[handleUpload] FAILED - Invalid file extension: %s", header.Filename)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Only Excel (.xlsx, .xls) and CSV (.csv) files are allowed",
			"code":  errors.CodeValidation,
		})
		return
	}

	if contentType := header.Header.Get("Content-Type"); !isExpectedMimeType(contentType) {
		// Some clients mislabel spreadsheets; log and continue.
		log.Printf("[handleUpload] WARNING - Unexpected MIME type: %s for file: %s", contentType, header.Filename)
	}

	records, err := s.reader.ReadAddresses(header.Filename, file)
	if err != nil {
		log.Printf("[handleUpload] FAILED - Parsing %s: %v", header.Filename, err)
		s.respondError(c, err)
		return
	}

	cfg := splice.Config{Addresses: records}
	if err := bindHubFormFields(c, &cfg); err != nil {
		s.respondError(c, err)
		return
	}

	s.generateAndRespond(c, cfg)
}

// bindHubFormFields overlays the optional multipart form fields onto cfg.
func bindHubFormFields(c *gin.Context, cfg *splice.Config) error {
	if v := c.PostForm("ports"); v != "" {
		ports, err := strconv.Atoi(v)
		if err != nil {
			return errors.ValidationErrorf("ports must be a number, got %q", v)
		}
		cfg.Ports = ports
	}
	if v := c.PostForm("main_cable"); v != "" {
		cfg.MainCableName = v
	}
	if v := c.PostForm("cables"); v != "" {
		var cables []splice.CableBundle
		if err := json.Unmarshal([]byte(v), &cables); err != nil {
			return errors.InputParseError("cables field must be a JSON array of {name, fiber_count}", err)
		}
		cfg.Cables = cables
	}
	return nil
}

// generateAndRespond is the shared tail of both generate endpoints:
// defaults, validation, build, serialize, register for download.
func (s *Server) generateAndRespond(c *gin.Context, cfg splice.Config) {
	cfg = splice.ApplyDefaults(cfg)
	if err := validation.ValidateConfig(cfg); err != nil {
		s.respondError(c, err)
		return
	}

	table := splice.Build(cfg)

	id := uuid.NewString()
	path := filepath.Join(s.cfg.Output.Dir, "splice-"+id+".xlsx")
	if err := s.writer.WriteTable(path, table); err != nil {
		log.Printf("[generateAndRespond] FAILED - Writing workbook: %v", err)
		s.respondError(c, err)
		return
	}
	s.store.Put(id, path)

	resp := generateResponse{
		Rows:        len(table.Rows),
		Columns:     len(table.Header),
		FileID:      id,
		DownloadURL: "/download/" + id,
		Summary:     summary.Summarize(cfg),
	}
	if c.Query("include_table") == "true" {
		resp.Table = table.Grid()
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleColorStandard(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"convention":      "TIA-598-C",
		"fibers_per_tube": fiber.DefaultFibersPerTube,
		"entries":         fiber.Standard(),
	})
}

// handleStandardPage renders the embedded color standard reference.
func (s *Server) handleStandardPage(c *gin.Context) {
	html := markdown.ToHTML(colorStandardDoc, nil, nil)
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

func (s *Server) handleDownload(c *gin.Context) {
	id := c.Param("id")
	path, ok := s.store.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "generated file not found", "code": errors.CodeNotFound})
		return
	}
	c.FileAttachment(path, filepath.Base(path))
}

func (s *Server) handleIndex(c *gin.Context) {
	page, err := staticFiles.ReadFile("static/index.html")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "index page unavailable", "code": errors.CodeInternalError})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

// respondError maps AppError codes to HTTP statuses.
func (s *Server) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.CodeInputParse, errors.CodeValidation:
		status = http.StatusBadRequest
	case errors.CodeNotFound:
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": err.Error(), "code": errors.GetCode(err)})
}

func hasValidExtension(filename string) bool {
	name := strings.ToLower(filename)
	for _, ext := range []string{".xlsx", ".xls", ".csv"} {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

func isExpectedMimeType(contentType string) bool {
	expected := []string{
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", // .xlsx
		"application/vnd.ms-excel", // .xls
		"text/csv",
		"application/csv",
		"text/plain",
	}
	for _, mimeType := range expected {
		if contentType == mimeType {
			return true
		}
	}
	return strings.Contains(contentType, "excel") || strings.Contains(contentType, "csv")
}
