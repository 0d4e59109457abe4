package ui

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"splicegen/adapters/excel"
	"splicegen/domain/splice"
	"splicegen/internal/config"
	"splicegen/internal/errors"
)

// MockSheetWriter stands in for the xlsx writer so handler tests don't
// have to produce real workbooks.
type MockSheetWriter struct {
	mock.Mock
}

func (m *MockSheetWriter) WriteTable(path string, table splice.Table) error {
	args := m.Called(path, table)
	return args.Error(0)
}

func newTestServer(t *testing.T, writer *MockSheetWriter) *Server {
	t.Helper()
	cfg := &config.Config{
		Server: config.ServerConfig{Port: "0", GinMode: gin.TestMode, MaxUploadMB: 50},
		Output: config.OutputConfig{Dir: t.TempDir(), MaxStoredFiles: 8},
	}
	return NewServer(cfg, excel.NewAddressReader(), writer)
}

func stubWrittenFile(writer *MockSheetWriter) {
	writer.On("WriteTable", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			_ = os.WriteFile(args.String(0), []byte("stub workbook"), 0o644)
		}).
		Return(nil)
}

func doRequest(s *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t, &MockSheetWriter{})

	rec := doRequest(s, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestHandleGenerate_Defaults(t *testing.T) {
	writer := &MockSheetWriter{}
	writer.On("WriteTable", mock.Anything, mock.Anything).Return(nil)
	s := newTestServer(t, writer)

	req := httptest.NewRequest(http.MethodPost, "/api/splice/generate", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	rec := doRequest(s, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp generateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	// Default hub: 96 ports, 4 cables -> 2 + 6*4 + 2 header columns.
	assert.Equal(t, 96, resp.Rows)
	assert.Equal(t, 28, resp.Columns)
	assert.NotEmpty(t, resp.FileID)
	assert.Equal(t, "/download/"+resp.FileID, resp.DownloadURL)
	assert.Len(t, resp.Summary.Cables, 4)
	assert.Nil(t, resp.Table)

	writer.AssertNumberOfCalls(t, "WriteTable", 1)
}

func TestHandleGenerate_IncludeTable(t *testing.T) {
	writer := &MockSheetWriter{}
	writer.On("WriteTable", mock.Anything, mock.Anything).Return(nil)
	s := newTestServer(t, writer)

	body := `{"ports": 4, "cables": [{"name": "DIST A", "fiber_count": 4}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/splice/generate?include_table=true", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := doRequest(s, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp generateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Table, 5) // header + 4 ports
	assert.Equal(t, "Port #", resp.Table[0][0])
}

func TestHandleGenerate_ValidationError(t *testing.T) {
	s := newTestServer(t, &MockSheetWriter{})

	req := httptest.NewRequest(http.MethodPost, "/api/splice/generate", strings.NewReader(`{"ports": -3}`))
	req.Header.Set("Content-Type", "application/json")
	rec := doRequest(s, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, errors.CodeValidation, body["code"])
}

func TestHandleGenerate_MalformedJSON(t *testing.T) {
	s := newTestServer(t, &MockSheetWriter{})

	req := httptest.NewRequest(http.MethodPost, "/api/splice/generate", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := doRequest(s, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func multipartUpload(t *testing.T, filename, content string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	part, err := w.CreateFormFile("sheet", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	return buf, w.FormDataContentType()
}

func TestHandleUpload_CSV(t *testing.T) {
	writer := &MockSheetWriter{}
	writer.On("WriteTable", mock.Anything, mock.Anything).Return(nil)
	s := newTestServer(t, writer)

	csvBody := "MST,Address,Sheet,Terminal\nMST_1,101 E Coats Ave,12,T1\nMST_2,103 E Coats Ave,,\n"
	buf, contentType := multipartUpload(t, "terminals.csv", csvBody, map[string]string{
		"ports":      "8",
		"main_cable": "FEEDER 96CT",
		"cables":     `[{"name": "DIST A", "fiber_count": 8}]`,
	})

	req := httptest.NewRequest(http.MethodPost, "/api/splice/upload", buf)
	req.Header.Set("Content-Type", contentType)
	rec := doRequest(s, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp generateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 8, resp.Rows)
	assert.Equal(t, 2+6+2, resp.Columns)
	require.Len(t, resp.Summary.Cables, 1)
	assert.Equal(t, "DIST A", resp.Summary.Cables[0].Cable)
}

func TestHandleUpload_RejectsBadExtension(t *testing.T) {
	s := newTestServer(t, &MockSheetWriter{})

	buf, contentType := multipartUpload(t, "payload.exe", "MST,Address\nMST_1,101\n", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/splice/upload", buf)
	req.Header.Set("Content-Type", contentType)
	rec := doRequest(s, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleUpload_RejectsUnparseableFile(t *testing.T) {
	s := newTestServer(t, &MockSheetWriter{})

	buf, contentType := multipartUpload(t, "broken.xlsx", "definitely not a workbook", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/splice/upload", buf)
	req.Header.Set("Content-Type", contentType)
	rec := doRequest(s, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, errors.CodeInputParse, body["code"])
}

func TestHandleDownload(t *testing.T) {
	writer := &MockSheetWriter{}
	stubWrittenFile(writer)
	s := newTestServer(t, writer)

	req := httptest.NewRequest(http.MethodPost, "/api/splice/generate", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	rec := doRequest(s, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp generateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	dl := doRequest(s, httptest.NewRequest(http.MethodGet, resp.DownloadURL, nil))
	require.Equal(t, http.StatusOK, dl.Code)
	assert.Contains(t, dl.Header().Get("Content-Disposition"), "attachment")
	assert.Equal(t, "stub workbook", dl.Body.String())
}

func TestHandleDownload_UnknownID(t *testing.T) {
	s := newTestServer(t, &MockSheetWriter{})

	rec := doRequest(s, httptest.NewRequest(http.MethodGet, "/download/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleColorStandard(t *testing.T) {
	s := newTestServer(t, &MockSheetWriter{})

	rec := doRequest(s, httptest.NewRequest(http.MethodGet, "/api/colors", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Convention    string `json:"convention"`
		FibersPerTube int    `json:"fibers_per_tube"`
		Entries       []struct {
			Name       string `json:"name"`
			BufferCode string `json:"buffer_code"`
		} `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "TIA-598-C", body.Convention)
	assert.Equal(t, 12, body.FibersPerTube)
	require.Len(t, body.Entries, 12)
	assert.Equal(t, "Blue", body.Entries[0].Name)
	assert.Equal(t, "AQ", body.Entries[11].BufferCode)
}

func TestHandleStandardPage(t *testing.T) {
	s := newTestServer(t, &MockSheetWriter{})

	rec := doRequest(s, httptest.NewRequest(http.MethodGet, "/standard", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "TIA-598-C")
}

func TestHandleIndex(t *testing.T) {
	s := newTestServer(t, &MockSheetWriter{})

	rec := doRequest(s, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Splice Sheet Generator")
}
