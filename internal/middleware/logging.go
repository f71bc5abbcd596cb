package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

var logger *zap.SugaredLogger = zap.NewNop().Sugar()

// SetLogger задаёт логгер для мидлварей. По умолчанию — no-op.
func SetLogger(l *zap.SugaredLogger) {
	logger = l
}

type responseData struct {
	status int
	size   int
}

// loggingResponseWriter перехватывает статус и размер ответа
type loggingResponseWriter struct {
	http.ResponseWriter
	responseData *responseData
}

func (w *loggingResponseWriter) Write(b []byte) (int, error) {
	size, err := w.ResponseWriter.Write(b)
	w.responseData.size += size
	return size, err
}

func (w *loggingResponseWriter) WriteHeader(statusCode int) {
	w.ResponseWriter.WriteHeader(statusCode)
	w.responseData.status = statusCode
}

// WithLogging логирует uri, метод, статус, размер и длительность запроса.
func WithLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rd := &responseData{status: http.StatusOK}
		lw := &loggingResponseWriter{ResponseWriter: w, responseData: rd}

		next.ServeHTTP(lw, r)

		logger.Infow("request",
			"uri", r.RequestURI,
			"method", r.Method,
			"status", rd.status,
			"size", rd.size,
			"duration", time.Since(start),
		)
	})
}
