package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MirrorPreflightHeaders must run before the CORS middleware. When the CORS
// config allows every header ("*"), it answers a preflight with the exact
// headers the browser asked for, since credentialed requests treat "*" as a
// literal header name.
func MirrorPreflightHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		requested := c.GetHeader("Access-Control-Request-Headers")
		if c.Request.Method == http.MethodOptions && requested != "" {
			c.Writer = &allowHeadersWriter{ResponseWriter: c.Writer, requested: requested}
		}
		c.Next()
	}
}

type allowHeadersWriter struct {
	gin.ResponseWriter
	requested string
}

func (w *allowHeadersWriter) WriteHeaderNow() {
	w.mirror()
	w.ResponseWriter.WriteHeaderNow()
}

func (w *allowHeadersWriter) Write(data []byte) (int, error) {
	w.mirror()
	return w.ResponseWriter.Write(data)
}

func (w *allowHeadersWriter) mirror() {
	h := w.Header()
	if h.Get("Access-Control-Allow-Headers") == "*" {
		h.Set("Access-Control-Allow-Headers", w.requested)
	}
}
