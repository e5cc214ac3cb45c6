package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"nexus-exporter/internal/exporters/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRequestCompletionLog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exportService := mocks.NewMockExportService(ctrl)
	shellRunner := mocks.NewMockShellRunner(ctrl)
	exportService.EXPECT().Export(gomock.Any(), "12h").Return([]byte("ok\n"), nil)

	var buf bytes.Buffer
	router := NewRouter(exportService, shellRunner, "1h", zerolog.New(&buf))

	req := httptest.NewRequest(http.MethodGet, "/metrics?window=12h", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	logged := buf.String()
	assert.Contains(t, logged, "request completed")
	assert.Contains(t, logged, `"window":"12h"`)
	assert.Contains(t, logged, `"http_status":200`)
	assert.Contains(t, logged, `"request_id":`)
}

func TestRequestCompletionLog_NoWindowParam(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exportService := mocks.NewMockExportService(ctrl)
	shellRunner := mocks.NewMockShellRunner(ctrl)

	var buf bytes.Buffer
	router := NewRouter(exportService, shellRunner, "1h", zerolog.New(&buf))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	logged := buf.String()
	assert.Contains(t, logged, "request completed")
	assert.NotContains(t, logged, `"window"`)
}
