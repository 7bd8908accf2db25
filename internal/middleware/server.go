package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"bountyboard_backend/internal/i18n"
	"bountyboard_backend/internal/logger"
	"bountyboard_backend/internal/metrics"
	"bountyboard_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx := logger.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		log := logger.FromContext(c.Request.Context())
		fields := []any{
			slog.String("client_ip", c.ClientIP()),
			slog.String("user_agent", c.Request.UserAgent()),
			slog.Int("status", c.Writer.Status()),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Duration("duration", duration),
			slog.Int("size_bytes", c.Writer.Size()),
		}
		if c.Writer.Status() >= 500 {
			log.Error("HTTP Server Error", fields...)
		} else if c.Writer.Status() >= 400 {
			log.Warn("HTTP Client Error", fields...)
		} else {
			log.Info("HTTP Request", fields...)
		}
	}
}

// MetricsMiddleware считает запросы по шаблону маршрута, а не по сырому пути,
// чтобы id не раздували кардинальность.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RequestDuration.WithLabelValues(path, c.Request.Method).Observe(time.Since(start).Seconds())
		metrics.RequestCount.WithLabelValues(path, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, Accept-Language, X-Request-ID")
		c.Header("Access-Control-Expose-Headers", "X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func DBMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		dbKey := string(contextkeys.DBContextKey)
		tx, ok := c.Request.Context().Value(contextkeys.DBContextKey).(*gorm.DB)

		if ok && tx != nil {
			c.Set(dbKey, tx)
		} else {
			c.Set(dbKey, db)
		}

		c.Next()
	}
}

// LocalizerMiddleware выбирает язык: ?lang= важнее Accept-Language,
// fallback - язык из конфига.
func LocalizerMiddleware(bundle *i18n.Bundle, fallback string) gin.HandlerFunc {
	return func(c *gin.Context) {
		prefs := make([]string, 0, 3)
		if lang := c.Query("lang"); lang != "" {
			prefs = append(prefs, lang)
		}
		if accept := c.GetHeader("Accept-Language"); accept != "" {
			prefs = append(prefs, accept)
		}
		if fallback != "" {
			prefs = append(prefs, fallback)
		}

		c.Set(string(contextkeys.LocalizerKey), bundle.Match(prefs...))
		c.Next()
	}
}

// GetLocalizer returns the request's localizer, English when the middleware did not run.
func GetLocalizer(c *gin.Context) i18n.Localizer {
	if val, ok := c.Get(string(contextkeys.LocalizerKey)); ok {
		if l, ok := val.(i18n.Localizer); ok {
			return l
		}
	}
	return defaultBundle.Match()
}

var defaultBundle = i18n.MustNewBundle()
