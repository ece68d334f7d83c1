package conn_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/edudata/scorecard/internal/conn"
	"github.com/edudata/scorecard/internal/query"
	"github.com/edudata/scorecard/internal/settings"
	"github.com/gorilla/websocket"
	"gotest.tools/assert"
)

func newTestApp(t *testing.T) *conn.App {
	t.Helper()
	s := settings.Default()
	app := &conn.App{Service: newTestService(t), Settings: &s}
	return app
}

func getJSON(t *testing.T, server *httptest.Server, path string, out any) *http.Response {
	t.Helper()
	res, err := http.Get(server.URL + path)
	assert.NilError(t, err)
	defer res.Body.Close()
	if out != nil {
		assert.NilError(t, json.NewDecoder(res.Body).Decode(out))
	}
	return res
}

func TestSearchRoute(t *testing.T) {
	server := httptest.NewServer(newTestApp(t).Routes())
	defer server.Close()

	t.Run("search returns school records", func(t *testing.T) {
		var schools []query.SchoolRecord
		res := getJSON(t, server, "/api/schools/search/?query=acme", &schools)

		assert.Equal(t, res.StatusCode, http.StatusOK)
		assert.Equal(t, len(schools), 1)
		assert.Equal(t, schools[0].Id, 77)
		assert.Equal(t, schools[0].Name, "Acme College")
		assert.Equal(t, *schools[0].Tuition, 10000.0)
		assert.Equal(t, *schools[0].AdmissionRate, 0.5)
		assert.Equal(t, *schools[0].GraduationRate, 0.8)
		assert.Equal(t, *schools[0].MedianEarnings, 55000.0)
	})

	t.Run("out-of-state tuition", func(t *testing.T) {
		var schools []query.SchoolRecord
		res := getJSON(t, server, "/api/schools/search/?query=acme&is_in_state=false", &schools)

		assert.Equal(t, res.StatusCode, http.StatusOK)
		assert.Equal(t, *schools[0].Tuition, 20000.0)
	})

	t.Run("short query rejected before the engine runs", func(t *testing.T) {
		res := getJSON(t, server, "/api/schools/search/?query=a", nil)
		assert.Equal(t, res.StatusCode, http.StatusBadRequest)
	})

	t.Run("bad boolean rejected", func(t *testing.T) {
		res := getJSON(t, server, "/api/schools/search/?query=acme&is_in_state=maybe", nil)
		assert.Equal(t, res.StatusCode, http.StatusBadRequest)
	})

	t.Run("no matches is an empty array, not null", func(t *testing.T) {
		res, err := http.Get(server.URL + "/api/schools/search/?query=nowhere")
		assert.NilError(t, err)
		defer res.Body.Close()

		body, err := io.ReadAll(res.Body)
		assert.NilError(t, err)
		assert.Equal(t, res.StatusCode, http.StatusOK)
		assert.Equal(t, strings.TrimSpace(string(body)), "[]")
	})
}

func TestMajorsRoute(t *testing.T) {
	server := httptest.NewServer(newTestApp(t).Routes())
	defer server.Close()

	t.Run("majors for a school", func(t *testing.T) {
		var majors []query.MajorRecord
		res := getJSON(t, server, "/api/schools/77/majors/", &majors)

		assert.Equal(t, res.StatusCode, http.StatusOK)
		assert.Equal(t, len(majors), 1)
		assert.Equal(t, majors[0].Category, "Computer Science")
		assert.Equal(t, majors[0].Description, "Computer Science")
		assert.Equal(t, majors[0].Salary, 70000.0)
	})

	t.Run("unknown school id is an empty array", func(t *testing.T) {
		var majors []query.MajorRecord
		res := getJSON(t, server, "/api/schools/999/majors/", &majors)

		assert.Equal(t, res.StatusCode, http.StatusOK)
		assert.Equal(t, len(majors), 0)
	})

	t.Run("malformed school id rejected", func(t *testing.T) {
		res := getJSON(t, server, "/api/schools/abc/majors/", nil)
		assert.Equal(t, res.StatusCode, http.StatusBadRequest)
	})
}

func TestHealthRoute(t *testing.T) {
	server := httptest.NewServer(newTestApp(t).Routes())
	defer server.Close()

	res, err := http.Get(server.URL + "/health")
	assert.NilError(t, err)
	defer res.Body.Close()
	assert.Equal(t, res.StatusCode, http.StatusOK)
}

func TestCORS(t *testing.T) {
	server := httptest.NewServer(newTestApp(t).Routes())
	defer server.Close()

	req, err := http.NewRequest(http.MethodGet, server.URL+"/api/schools/search/?query=acme", nil)
	assert.NilError(t, err)
	req.Header.Set("Origin", "http://localhost:5173")

	res, err := http.DefaultClient.Do(req)
	assert.NilError(t, err)
	defer res.Body.Close()

	// default settings allow every origin
	assert.Equal(t, res.Header.Get("Access-Control-Allow-Origin"), "http://localhost:5173")
}

func TestLiveChannel(t *testing.T) {
	server := httptest.NewServer(newTestApp(t).Routes())
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/live"
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	assert.NilError(t, err)
	defer ws.Close()

	err = ws.WriteJSON(map[string]any{
		"action":                "searchSchools",
		"query":                 "acme",
		"__scd_client_req_id__": 7,
	})
	assert.NilError(t, err)

	var res struct {
		Status  int               `json:"status"`
		Message string            `json:"message"`
		ReqId   int               `json:"__scd_client_req_id__"`
		Data    []json.RawMessage `json:"data"`
	}
	assert.NilError(t, ws.ReadJSON(&res))

	assert.Equal(t, res.Status, http.StatusOK, res.Message)
	assert.Equal(t, res.ReqId, 7)
	assert.Equal(t, len(res.Data), 1)
}
