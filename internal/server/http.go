package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/crypto/acme/autocert"

	"github.com/MKhiriev/go-bookmarks/internal/config"
	"github.com/MKhiriev/go-bookmarks/internal/logger"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

type httpServer struct {
	server *http.Server
	tls    bool

	logger *logger.Logger
}

// newHTTPServer serves router on cfg.HTTPAddress. With HTTPS enabled the
// certificates for cfg.TLSDomains come from Let's Encrypt through autocert
// and are cached in cfg.TLSCacheDir.
func newHTTPServer(router http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	srv := &http.Server{
		Addr:              cfg.HTTPAddress,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	if cfg.EnableHTTPS {
		manager := &autocert.Manager{
			Cache:      autocert.DirCache(cfg.TLSCacheDir),
			Prompt:     autocert.AcceptTOS,
			HostPolicy: autocert.HostWhitelist(cfg.TLSDomains...),
		}
		srv.TLSConfig = manager.TLSConfig()
		logger.Info().Strs("domains", cfg.TLSDomains).Msg("HTTPS enabled")
	}

	return &httpServer{
		server: srv,
		tls:    cfg.EnableHTTPS,
		logger: logger,
	}
}

func (h *httpServer) RunServer() error {
	var err error
	if h.tls {
		err = h.server.ListenAndServeTLS("", "")
	} else {
		err = h.server.ListenAndServe()
	}

	if errors.Is(err, http.ErrServerClosed) {
		return errServerClosed
	}
	return fmt.Errorf("HTTP server ListenAndServe: %w", err)
}

func (h *httpServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Msg("HTTP server Shutdown")
	}
}
