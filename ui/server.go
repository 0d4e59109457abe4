// Package ui exposes the splice generator over HTTP: JSON and upload
// generate endpoints, the color standard, and downloads of generated
// workbooks. All state lives in the file store; every request runs the
// pure core independently.
package ui

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"splicegen/internal/config"
	"splicegen/ports"
)

//go:embed static/*
var staticFiles embed.FS

//go:embed docs/colors.md
var colorStandardDoc []byte

// Server is the public HTTP surface.
type Server struct {
	router *gin.Engine
	reader ports.SheetReader
	writer ports.SheetWriter
	store  *FileStore
	cfg    *config.Config
}

// NewServer wires the handlers around the given spreadsheet adapters.
func NewServer(cfg *config.Config, reader ports.SheetReader, writer ports.SheetWriter) *Server {
	gin.SetMode(cfg.Server.GinMode)

	s := &Server{
		router: gin.Default(),
		reader: reader,
		writer: writer,
		store:  NewFileStore(cfg.Output.MaxStoredFiles),
		cfg:    cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	s.router.POST("/api/splice/generate", s.handleGenerate)
	s.router.POST("/api/splice/upload", s.handleUpload)
	s.router.GET("/api/colors", s.handleColorStandard)
	s.router.GET("/download/:id", s.handleDownload)

	s.router.GET("/standard", s.handleStandardPage)

	staticFS, _ := fs.Sub(staticFiles, "static")
	s.router.StaticFS("/static", http.FS(staticFS))
	s.router.GET("/", s.handleIndex)
}

// Handler exposes the router for an http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the server on addr (blocking).
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}
