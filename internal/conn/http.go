package conn

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/edudata/scorecard/internal/query"
	"github.com/edudata/scorecard/pkg"
)

// Routes wires the REST surface the browser client consumes, plus
// the live-query websocket and a health probe.
func (app *App) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("GET /api/schools/search/{$}", app.SearchHandler)
	mux.HandleFunc("GET /api/schools/{school_id}/majors/", app.MajorsHandler)
	mux.HandleFunc("GET /api/live", app.HandleLive)
	return app.cors(mux)
}

func (app *App) SearchHandler(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	in_state := true
	if v := params.Get("is_in_state"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "is_in_state must be a boolean")
			return
		}
		in_state = parsed
	}

	schools, err := app.Service.SearchSchools(params.Get("query"), in_state)
	if err != nil {
		if query_error, ok := err.(*query.QueryError); ok {
			writeError(w, query_error.Status(), query_error.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, schools)
}

func (app *App) MajorsHandler(w http.ResponseWriter, r *http.Request) {
	school_id, err := strconv.Atoi(r.PathValue("school_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "school_id must be an integer")
		return
	}
	writeJSON(w, http.StatusOK, app.Service.SchoolMajors(school_id))
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		pkg.ErrorLog("writing response", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (app *App) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && app.Settings.AllowsOrigin(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "*")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
