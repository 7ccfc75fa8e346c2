package api

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"quotegateway/internal/metrics"
)

const (
	// RequestIDHeader carries the request id in both directions.
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// requestID propagates the caller's X-Request-ID or generates a UUID v4.
func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func (s *Server) logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestURL := c.Request.URL.String()

		fields := []zap.Field{
			zap.String("type", "logger"),
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.String("method", c.Request.Method),
			zap.String("url", requestURL),
			zap.String("viewer_ip", c.ClientIP()),
		}

		zap.L().Info(fmt.Sprintf("[START] %s %s", c.Request.Method, requestURL), fields...)

		c.Next()

		duration := time.Since(start)
		fields = append(fields,
			zap.Int("size", c.Writer.Size()),
			zap.Int("status", c.Writer.Status()),
			zap.Int64("duration", duration.Milliseconds()))

		fn := zap.L().Info
		if duration > time.Second*10 {
			fn = zap.L().Warn
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			fn = zap.L().Error
		}

		fn(fmt.Sprintf("[END] %s %s (%d) in %s", c.Request.Method, requestURL, c.Writer.Status(), duration.String()), fields...)
	}
}

// recovery turns a handler panic into a 500, except on a dead connection
// where nothing can be written.
func (s *Server) recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			var brokenPipe bool
			if ne, ok := rec.(*net.OpError); ok {
				if se, ok := ne.Err.(*os.SyscallError); ok {
					msg := strings.ToLower(se.Error())
					brokenPipe = strings.Contains(msg, "broken pipe") || strings.Contains(msg, "connection reset by peer")
				}
			}

			zap.L().Error("[Recovery] panic recovered",
				zap.Any("panic", rec),
				zap.Stack("stack"),
				zap.String("request_id", c.GetString(requestIDKey)),
				zap.String("method", c.Request.Method),
				zap.String("url", c.Request.URL.String()),
			)

			if brokenPipe {
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		}()
		c.Next()
	}
}

func (s *Server) metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RecordHTTPRequest(c.Request.Method, path, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}

// headers adds CORS headers for browser usage and answers preflights.
func (s *Server) headers() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET,OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type,Authorization,"+RequestIDHeader)
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

var gzPool = sync.Pool{New: func() any {
	// JSON payloads: favor speed over ratio
	w, _ := gzip.NewWriterLevel(io.Discard, gzip.BestSpeed)
	return w
}}

// gzip compresses responses when the client supports it. /metrics and
// /debug are left alone; they negotiate encoding themselves.
func (s *Server) gzip() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if !strings.Contains(c.GetHeader("Accept-Encoding"), "gzip") ||
			path == "/metrics" || strings.HasPrefix(path, "/debug/") {
			c.Next()
			return
		}

		original := c.Writer
		gz := gzPool.Get().(*gzip.Writer)
		gz.Reset(original)
		defer func() {
			c.Writer = original
			if rec := recover(); rec != nil {
				// leave the response to the recovery handler uncompressed
				if !original.Written() {
					original.Header().Del("Content-Encoding")
				}
				gz.Reset(io.Discard)
				gzPool.Put(gz)
				panic(rec)
			}
			_ = gz.Close()
			gz.Reset(io.Discard)
			gzPool.Put(gz)
		}()

		c.Header("Content-Encoding", "gzip")
		original.Header().Add("Vary", "Accept-Encoding")
		c.Writer = &gzipWriter{ResponseWriter: original, writer: gz}
		c.Next()
	}
}

type gzipWriter struct {
	gin.ResponseWriter
	writer *gzip.Writer
}

func (g *gzipWriter) Write(b []byte) (int, error) {
	g.Header().Del("Content-Length")
	return g.writer.Write(b)
}

func (g *gzipWriter) WriteString(s string) (int, error) {
	return g.Write([]byte(s))
}

// timeout bounds the request context so upstream calls give up in time.
func (s *Server) timeout() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.opts.RequestTimeout <= 0 {
			c.Next()
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), s.opts.RequestTimeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
