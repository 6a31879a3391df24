// Copyright 2025 Dittonal
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"litsearch/cnf"
	"litsearch/corpus"
	searchActions "litsearch/corpus/handlers"
	"litsearch/merror"
	"litsearch/rdb"
)

const (
	redisConnectionTestTimeout = 120 * time.Second
)

type apiServer struct {
	server   *http.Server
	conf     *cnf.Conf
	radapter *rdb.Adapter
	loader   *corpus.Loader
}

type serverInfo struct {
	Name      string `json:"name"`
	PublicURL string `json:"publicUrl"`
}

func mkServerInfo(conf *cnf.Conf) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		uniresp.WriteJSONResponse(ctx.Writer, &serverInfo{
			Name:      "litsearch",
			PublicURL: conf.PublicURL,
		})
	}
}

func (api *apiServer) Start(ctx context.Context) {
	if !api.conf.IsDebugMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.CustomRecovery(func(ctx *gin.Context, rec any) {
		err := merror.PanicValueToErr(rec)
		log.Error().Err(err).Msg("recovered from a panicking handler")
		uniresp.WriteJSONErrorResponse(
			ctx.Writer, uniresp.NewActionErrorFrom(err), http.StatusInternalServerError)
		ctx.Abort()
	}))
	engine.Use(additionalLogEvents())
	engine.Use(logging.GinMiddleware())
	engine.Use(uniresp.AlwaysJSONContentType())
	engine.Use(CORSMiddleware(api.conf))
	engine.NoMethod(uniresp.NoMethodHandler)
	engine.NoRoute(uniresp.NotFoundHandler)

	actions := searchActions.NewActions(api.conf.Sources, api.loader, api.radapter)

	engine.GET("/", mkServerInfo(api.conf))

	engine.GET("/search", actions.Search)

	engine.GET("/corplist", actions.SourceList)

	engine.GET("/info/:sourceId", actions.SourceInfo)

	protected := engine.Group("/tools").Use(AuthRequired(api.conf))

	protected.POST("/flush-cache", actions.FlushCache)

	log.Info().Msgf("starting to listen at %s:%d", api.conf.ListenAddress, api.conf.ListenPort)
	api.server = &http.Server{
		Handler:      engine,
		Addr:         fmt.Sprintf("%s:%d", api.conf.ListenAddress, api.conf.ListenPort),
		WriteTimeout: time.Duration(api.conf.ServerWriteTimeoutSecs) * time.Second,
		ReadTimeout:  time.Duration(api.conf.ServerReadTimeoutSecs) * time.Second,
	}
	go func() {
		if err := api.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()
}

func (s *apiServer) Stop(ctx context.Context) error {
	log.Warn().Msg("shutting down LITSEARCH HTTP API server")
	return s.server.Shutdown(ctx)
}

func runApiServer(conf *cnf.Conf) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	radapter := rdb.NewAdapter(conf.Redis, ctx)
	err := radapter.TestConnection(redisConnectionTestTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
		return
	}
	loader := corpus.NewLoader(conf.Sources, radapter)
	server := newAPIServer(conf, radapter, loader)

	services := []service{server}
	for _, m := range services {
		m.Start(ctx)
	}
	<-ctx.Done()
	log.Warn().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var wg sync.WaitGroup
	for _, s := range services {
		wg.Add(1)
		go func(srv service) {
			defer wg.Done()
			if err := srv.Stop(shutdownCtx); err != nil {
				log.Error().Err(err).Type("service", srv).Msg("Error shutting down service")
			}
		}(s)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info().Msg("Graceful shutdown completed")
	case <-shutdownCtx.Done():
		log.Warn().Msg("Shutdown timed out")
	}
}

func newAPIServer(
	conf *cnf.Conf,
	radapter *rdb.Adapter,
	loader *corpus.Loader,
) *apiServer {
	return &apiServer{
		conf:     conf,
		radapter: radapter,
		loader:   loader,
	}
}
