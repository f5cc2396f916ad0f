// Package responsewriter provides an http.ResponseWriter wrapper that records
// the response status code and the number of bytes written, for use by
// logging middleware.
package responsewriter

import "net/http"

// Wrapper wraps http.ResponseWriter and records status code and body size.
type Wrapper struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int
	wroteHeader  bool
}

// Wrap returns a Wrapper around w. The status code defaults to 200 in case
// the handler never calls WriteHeader explicitly.
func Wrap(w http.ResponseWriter) *Wrapper {
	return &Wrapper{ResponseWriter: w, statusCode: http.StatusOK}
}

// WriteHeader records the status code and forwards to the underlying writer.
func (w *Wrapper) WriteHeader(code int) {
	if !w.wroteHeader {
		w.statusCode = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

// Write forwards to the underlying writer and accumulates the byte count.
func (w *Wrapper) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.bytesWritten += n
	return n, err
}

// StatusCode returns the recorded response status code.
func (w *Wrapper) StatusCode() int { return w.statusCode }

// BytesWritten returns the number of response body bytes written so far.
func (w *Wrapper) BytesWritten() int { return w.bytesWritten }
