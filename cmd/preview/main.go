// Copyright 2025, Shiki0138
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package main is the entry point for the run preview server.
//
// This application sets up a small web server using the Gin framework to
// browse the artifacts the pipeline produced. It exposes a JSON listing
// of run directories under the configured output base, the metadata of a
// single run, and the run files themselves as static content, so a
// generated article or description can be checked in a browser before
// publishing. The server is instrumented with OpenTelemetry middleware
// and permits cross-origin requests for local frontend development.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Shiki0138/video-content-system/internal/config"
	"github.com/Shiki0138/video-content-system/internal/core/commands"
	"github.com/Shiki0138/video-content-system/internal/telemetry"
)

// runEntry is one row of the run listing.
type runEntry struct {
	Name       string `json:"name"`
	Path       string `json:"path"`
	ModifiedAt string `json:"modified_at"`
	HasArticle bool   `json:"has_article"`
}

func main() {
	telemetry.SetupLogging()
	slog.Info("Logging initialized")

	cfg := config.NewConfig()
	if err := config.Load(cfg); err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	outputBase := cfg.Application.OutputBaseDir

	r := gin.Default()
	r.Use(otelgin.Middleware("content-preview-server"))
	r.Use(cors.Default())

	apiV1 := r.Group("/api/v1")
	{
		apiV1.GET("/runs", listRuns(outputBase))
		apiV1.GET("/runs/:name", runMetadata(outputBase))
	}
	r.Static("/files", outputBase)

	srv := &http.Server{
		Addr:         cfg.Preview.Address,
		Handler:      r,
		ReadTimeout:  20 * time.Second,
		WriteTimeout: 20 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("failed to listen", slog.Any("error", err))
		}
	}()
	slog.Info("Preview server ready", slog.String("address", cfg.Preview.Address))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutdown Server ...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server Shutdown Failed", slog.Any("error", err))
	}
}

// listRuns returns the run directories under the output base, newest
// first in directory-listing order.
func listRuns(outputBase string) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := os.ReadDir(outputBase)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		runs := make([]runEntry, 0, len(entries))
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			info, err := entry.Info()
			if err != nil {
				continue
			}
			articles, _ := filepath.Glob(filepath.Join(outputBase, entry.Name(), "*.md"))
			runs = append(runs, runEntry{
				Name:       entry.Name(),
				Path:       "/files/" + entry.Name(),
				ModifiedAt: info.ModTime().Format(time.RFC3339),
				HasArticle: len(articles) > 0,
			})
		}
		c.JSON(http.StatusOK, runs)
	}
}

// runMetadata serves the metadata.json of one run.
func runMetadata(outputBase string) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := filepath.Base(c.Param("name"))
		path := filepath.Join(outputBase, name, commands.MetadataFile)
		if _, err := os.Stat(path); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
			return
		}
		c.File(path)
	}
}
