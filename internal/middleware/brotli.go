package middleware

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
)

const (
	brotliLevel    = 5
	brotliMinBytes = 1024
)

// Brotli compresses response bodies of at least minBytes for clients that send
// "br" in Accept-Encoding. Smaller bodies go out untouched. A non-positive
// minBytes selects the 1 KiB default.
func Brotli(minBytes int) gin.HandlerFunc {
	if minBytes <= 0 {
		minBytes = brotliMinBytes
	}

	return func(c *gin.Context) {
		if c.Request.Method == http.MethodHead || !acceptsBrotli(c.Request) {
			c.Next()
			return
		}

		c.Header("Vary", "Accept-Encoding")
		bw := &brotliWriter{ResponseWriter: c.Writer, threshold: minBytes}
		c.Writer = bw
		defer func() {
			if err := bw.finish(); err != nil {
				_ = c.Error(err)
			}
		}()

		c.Next()
	}
}

// brotliWriter holds the body back until it is long enough to be worth
// compressing. enc stays nil until then.
type brotliWriter struct {
	gin.ResponseWriter
	threshold int
	pending   bytes.Buffer
	enc       *brotli.Writer
}

func (bw *brotliWriter) Write(p []byte) (int, error) {
	if bw.enc != nil {
		return bw.enc.Write(p)
	}
	bw.pending.Write(p)
	if bw.pending.Len() >= bw.threshold {
		if err := bw.startCompression(); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}

func (bw *brotliWriter) WriteString(s string) (int, error) {
	return bw.Write([]byte(s))
}

func (bw *brotliWriter) startCompression() error {
	h := bw.ResponseWriter.Header()
	h.Set("Content-Encoding", "br")
	h.Del("Content-Length")
	bw.enc = brotli.NewWriterLevel(bw.ResponseWriter, brotliLevel)
	_, err := bw.pending.WriteTo(bw.enc)
	return err
}

func (bw *brotliWriter) finish() error {
	if bw.enc != nil {
		return bw.enc.Close()
	}
	if bw.pending.Len() == 0 {
		return nil
	}
	_, err := bw.pending.WriteTo(bw.ResponseWriter)
	return err
}

func acceptsBrotli(r *http.Request) bool {
	for _, enc := range strings.Split(r.Header.Get("Accept-Encoding"), ",") {
		// "br;q=0.9" still counts.
		name := strings.TrimSpace(strings.SplitN(enc, ";", 2)[0])
		if strings.EqualFold(name, "br") {
			return true
		}
	}
	return false
}
