package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/fwojciec/harvest"
)

// envelope is the JSON response shape shared by every API endpoint.
type envelope struct {
	Success    bool   `json:"success"`
	Message    string `json:"message,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
	Count      *int   `json:"count,omitempty"`
	Data       any    `json:"data,omitempty"`
	Timestamp  string `json:"timestamp,omitempty"`
}

// handleScrape scrapes the URL given in the url query parameter and returns
// the persisted record.
func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	url := r.URL.Query().Get("url")
	if url == "" {
		writeJSON(w, http.StatusBadRequest, envelope{
			Success: false,
			Message: "URL parameter is required",
		})
		return
	}

	rec, err := s.Scraper.Scrape(r.Context(), url)
	if err != nil {
		status := http.StatusInternalServerError
		suggestion := harvest.DefaultSuggestion

		var scrapeErr *harvest.ScrapeError
		if errors.As(err, &scrapeErr) {
			if scrapeErr.Code == harvest.EINVALID {
				status = http.StatusBadRequest
			}
			if scrapeErr.Suggestion != "" {
				suggestion = scrapeErr.Suggestion
			}
		}

		writeJSON(w, status, envelope{
			Success:    false,
			Message:    harvest.Classify(err).Message,
			Suggestion: suggestion,
		})
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Message: "Website scraped successfully",
		Data:    rec,
	})
}

// handleListRecords returns the most recent records, newest first.
func (s *Server) handleListRecords(w http.ResponseWriter, r *http.Request) {
	records, err := s.Records.FindRecords(r.Context(), harvest.RecordFilter{Limit: harvest.MaxListLimit})
	if err != nil {
		s.Logger.Error("list records failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, envelope{
			Success: false,
			Message: "Failed to fetch data from database",
		})
		return
	}

	count := len(records)
	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Count:   &count,
		Data:    records,
	})
}

// handleDeleteRecord deletes a record by id.
func (s *Server) handleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := s.Records.DeleteRecord(r.Context(), id); err != nil {
		if harvest.ErrorCode(err) == harvest.ENOTFOUND {
			writeJSON(w, http.StatusNotFound, envelope{
				Success: false,
				Message: "Data not found",
			})
			return
		}
		s.Logger.Error("delete record failed", "id", id, "err", err)
		writeJSON(w, http.StatusInternalServerError, envelope{
			Success: false,
			Message: "Failed to delete data",
		})
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Message: "Data deleted successfully",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, envelope{
		Success:   true,
		Message:   "Server is running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, envelope{
		Success: false,
		Message: "Route not found",
	})
}

func writeJSON(w http.ResponseWriter, status int, v envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
