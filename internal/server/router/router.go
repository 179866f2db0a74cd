package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/resqcart/aiml-service/internal/server/handlers"
)

// New wires the Gin engine with required routes and middlewares.
func New(detection *handlers.DetectionHandler, milk *handlers.MilkHandler, stream *handlers.StreamHandler, rescue *handlers.RescueHandler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	// The browser frontend is served from another origin.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
	}))

	r.GET("/", detection.Info)
	r.POST("/detect", detection.Detect)
	r.POST("/predict_milk_spoilage", milk.Predict)
	r.GET("/ws/video", stream.Video)
	r.POST("/process_video_frame", stream.ProcessFrame)
	r.POST("/nearby-ngos", rescue.NearbyNGOs)
	r.POST("/route", rescue.Route)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
