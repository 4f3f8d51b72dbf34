package controllers

import (
	"encoding/json"
	"net/http"
	"wordquest/app/dto"
	"wordquest/app/services"
)

type APIController struct {
	Words  *services.WordBankService
	Scores *services.LeaderboardService
}

func NewAPIController(words *services.WordBankService, scores *services.LeaderboardService) *APIController {
	return &APIController{Words: words, Scores: scores}
}

func (c *APIController) GetWords(w http.ResponseWriter, r *http.Request) {
	bank, err := c.Words.ListAll()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(bank)
}

func (c *APIController) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	q, err := dto.ParseLeaderboardQuery(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"limit and offset must be integers"}`))
		return
	}
	rows, err := c.Scores.Read(q.Limit, q.Offset)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rows)
}

func (c *APIController) PostScore(w http.ResponseWriter, r *http.Request) {
	var req dto.ScoreSubmission
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid json body"}`))
		return
	}
	if err := req.Validate(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"player, score and level are required"}`))
		return
	}
	if _, err := c.Scores.Submit(req.Player, *req.Score, req.Level); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "Score submitted successfully"})
}
