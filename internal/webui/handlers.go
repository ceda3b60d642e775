package webui

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/ca-srg/brandrank/internal/types"
)

// handleDashboard handles the dashboard page
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	s.renderDashboard(w, "", "", s.state.Brand(), "")
}

// handleCheck handles the check form submission
func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	s.state.SetCredential(r.PostFormValue("api_key"))
	brand := r.PostFormValue("brand")
	keyword := r.PostFormValue("keyword")
	s.state.SetBrand(brand)

	run, err := s.checker.Run(r.Context(), s.state.Credential(), brand, keyword, "webui")
	if err != nil {
		s.logger.Printf("Check failed: %v", err)

		var checkErr *types.CheckError
		if errors.As(err, &checkErr) && checkErr.Type == types.ErrorTypeValidation {
			s.renderDashboard(w, "", checkErr.Message, brand, keyword)
			return
		}
		s.renderDashboard(w, err.Error(), "", brand, keyword)
		return
	}

	s.state.RecordRun(run)
	s.renderDashboard(w, "", "", brand, keyword)
}

// handleHistoryPage handles the history page
func (s *Server) handleHistoryPage(w http.ResponseWriter, r *http.Request) {
	data := &HistoryPageData{
		ActivePage: "history",
		History:    s.state.History(),
	}

	if err := s.templates.Render(w, "history.html", data); err != nil {
		s.logger.Printf("Failed to render history page: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// handleExportCSV downloads the last check's ranked list as CSV
func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	run := s.state.LastRun()
	if run == nil {
		http.Error(w, "No check results to export", http.StatusNotFound)
		return
	}

	filename := s.exporter.DefaultFilename(run.Keyword)
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := s.exporter.WriteResults(w, run); err != nil {
		s.logger.Printf("Failed to export CSV: %v", err)
	}
}

// handleAPICheck runs a check from a JSON request
func (s *Server) handleAPICheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed", "")
		return
	}

	var req CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body", "")
		return
	}

	s.state.SetCredential(req.APIKey)

	run, err := s.checker.Run(r.Context(), s.state.Credential(), req.Brand, req.Keyword, "webui")
	if err != nil {
		s.logger.Printf("API check failed: %v", err)

		status := http.StatusBadGateway
		var checkErr *types.CheckError
		if errors.As(err, &checkErr) {
			switch checkErr.Type {
			case types.ErrorTypeValidation:
				status = http.StatusBadRequest
			case types.ErrorTypeMissingCredential, types.ErrorTypeServiceInit:
				status = http.StatusUnauthorized
			}
			writeJSONError(w, status, checkErr.Message, checkErr.Type)
			return
		}
		writeJSONError(w, status, err.Error(), "")
		return
	}

	s.state.RecordRun(run)

	writeJSON(w, http.StatusOK, &CheckResponse{
		Keyword: run.Keyword,
		Brand:   run.Brand,
		Results: run.Results,
		Match:   run.Match,
	})
}

// handleAPIHistory returns the check history as JSON
func (s *Server) handleAPIHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.state.History())
}

func (s *Server) renderDashboard(w http.ResponseWriter, errorMsg, warningMsg, brand, keyword string) {
	data := &DashboardData{
		ActivePage:     "dashboard",
		CredentialSet:  s.state.HasCredential(),
		MaskedKey:      s.state.MaskedCredential(),
		Brand:          brand,
		Keyword:        keyword,
		LastRun:        s.state.LastRun(),
		History:        s.state.History(),
		ErrorMessage:   errorMsg,
		WarningMessage: warningMsg,
	}

	if err := s.templates.Render(w, "index.html", data); err != nil {
		s.logger.Printf("Failed to render dashboard: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeJSONError(w http.ResponseWriter, status int, message string, errType types.ErrorType) {
	writeJSON(w, status, &ErrorResponse{Error: message, Type: errType})
}
