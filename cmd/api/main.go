package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/BruksfildServices01/barbearia-api/internal/config"
	"github.com/BruksfildServices01/barbearia-api/internal/logger"
	"github.com/BruksfildServices01/barbearia-api/internal/middleware"
	"github.com/BruksfildServices01/barbearia-api/internal/routes"
)

func main() {

	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(reg)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(log))
	r.Use(metrics.Handler())
	r.Use(middleware.Identify(cfg))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	routes.RegisterRoutes(r, cfg, log)

	log.Info().Str("addr", cfg.Addr()).Msg("servidor iniciado")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("falha ao iniciar servidor")
	}
}
