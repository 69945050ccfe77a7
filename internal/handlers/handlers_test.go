package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

// failingWriter refuses every body write and records any status codes
// written after the fact.
type failingWriter struct {
	header      http.Header
	statusesSet []int
}

func (w *failingWriter) Header() http.Header {
	if w.header == nil {
		w.header = http.Header{}
	}
	return w.header
}

func (w *failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("client went away")
}

func (w *failingWriter) WriteHeader(statusCode int) {
	w.statusesSet = append(w.statusesSet, statusCode)
}

func TestSendJSONOrLogFailedWriteLeavesStatusAlone(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	w := &failingWriter{}

	sendJSONOrLog(w, logger, map[string]int{"count": 2})

	assert.Empty(t, w.statusesSet)
}
