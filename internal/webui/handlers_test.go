package webui

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ca-srg/brandrank/internal/types"
)

func testServer(t *testing.T) *Server {
	t.Helper()

	cfg := &types.Config{
		ChatModel:   "gpt-4o-mini",
		Temperature: 0.3,
		MaxTokens:   1000,
		ResultCount: 10,
	}

	server, err := NewServer(DefaultServerConfig(), cfg, log.New(io.Discard, "", 0))
	require.NoError(t, err)
	return server
}

func TestHandleDashboard(t *testing.T) {
	server := testServer(t)

	t.Run("renders the check form", func(t *testing.T) {
		rec := httptest.NewRecorder()
		server.handleDashboard(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		require.Contains(t, body, "AI Search Ranking Check")
		require.Contains(t, body, `name="api_key"`)
		require.Contains(t, body, `name="brand"`)
		require.Contains(t, body, `name="keyword"`)
	})

	t.Run("unknown paths 404", func(t *testing.T) {
		rec := httptest.NewRecorder()
		server.handleDashboard(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("renders last results with match summary", func(t *testing.T) {
		server.state.RecordRun(testRun("best widget companies overall"))

		rec := httptest.NewRecorder()
		server.handleDashboard(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		body := rec.Body.String()
		require.Contains(t, body, "Acme Corp - widgets")
		require.Contains(t, body, "#1")
		require.Contains(t, body, "row-match")
	})
}

func TestHandleCheck(t *testing.T) {
	t.Run("rejects non-POST", func(t *testing.T) {
		server := testServer(t)
		rec := httptest.NewRecorder()
		server.handleCheck(rec, httptest.NewRequest(http.MethodGet, "/check", nil))
		require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})

	t.Run("unspecific keyword shows a warning without calling the service", func(t *testing.T) {
		server := testServer(t)
		form := strings.NewReader("api_key=sk-test&brand=Acme&keyword=crm")
		req := httptest.NewRequest(http.MethodPost, "/check", form)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		rec := httptest.NewRecorder()
		server.handleCheck(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "keyword is too generic")
	})

	t.Run("missing credential shows an error", func(t *testing.T) {
		server := testServer(t)
		form := strings.NewReader("brand=Acme&keyword=best+widget+companies+overall")
		req := httptest.NewRequest(http.MethodPost, "/check", form)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		rec := httptest.NewRecorder()
		server.handleCheck(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "API key is required")
	})
}

func TestHandleExportCSV(t *testing.T) {
	server := testServer(t)

	t.Run("404 when nothing has been checked", func(t *testing.T) {
		rec := httptest.NewRecorder()
		server.handleExportCSV(rec, httptest.NewRequest(http.MethodGet, "/export.csv", nil))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("downloads last results as CSV", func(t *testing.T) {
		server.state.RecordRun(testRun("best widget companies overall"))

		rec := httptest.NewRecorder()
		server.handleExportCSV(rec, httptest.NewRequest(http.MethodGet, "/export.csv", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
		require.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
		require.Contains(t, rec.Body.String(), "rank,result,brand_match")
		require.Contains(t, rec.Body.String(), "Acme Corp - widgets")
	})
}

func TestHandleAPICheck(t *testing.T) {
	t.Run("validation failure returns 400 with typed body", func(t *testing.T) {
		server := testServer(t)
		req := httptest.NewRequest(http.MethodPost, "/api/check",
			strings.NewReader(`{"api_key":"sk-test","brand":"Acme","keyword":"crm"}`))

		rec := httptest.NewRecorder()
		server.handleAPICheck(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, types.ErrorTypeValidation, resp.Type)
	})

	t.Run("missing credential returns 401", func(t *testing.T) {
		server := testServer(t)
		req := httptest.NewRequest(http.MethodPost, "/api/check",
			strings.NewReader(`{"brand":"Acme","keyword":"best widget companies overall"}`))

		rec := httptest.NewRecorder()
		server.handleAPICheck(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		server := testServer(t)
		req := httptest.NewRequest(http.MethodPost, "/api/check", strings.NewReader("{not json"))

		rec := httptest.NewRecorder()
		server.handleAPICheck(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleAPIHistory(t *testing.T) {
	server := testServer(t)
	server.state.RecordRun(testRun("best widget companies overall"))

	rec := httptest.NewRecorder()
	server.handleAPIHistory(rec, httptest.NewRequest(http.MethodGet, "/api/history", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var history []HistoryEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
	require.Len(t, history, 1)
	require.Equal(t, "best widget companies overall", history[0].Keyword)
}
