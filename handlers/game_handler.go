package handlers

import (
	"errors"
	"net/http"

	"github.com/kijvolley/tournament-tracker/services"
)

type GameHandler struct {
	gameService services.GameService
}

func NewGameHandler(gameService services.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

func (h *GameHandler) StartGame(w http.ResponseWriter, r *http.Request) {
	var input services.StartGameInput
	err := readJSON(w, r, &input)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	game, err := h.gameService.StartGame(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"success":  true,
		"game_key": game.Key,
		"game":     game,
	}

	err = writeJSON(w, http.StatusCreated, response, nil)
	if err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *GameHandler) ListGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.gameService.ListGames(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	err = writeJSON(w, http.StatusOK, games, nil)
	if err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *GameHandler) AdjustScore(w http.ResponseWriter, r *http.Request) {
	var input services.AdjustScoreInput
	err := readJSON(w, r, &input)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.GameKey == "" {
		badRequestResponse(w, r, errors.New("game_key is required"))
		return
	}

	game, err := h.gameService.AdjustScore(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"success": true,
		"game":    game,
	}

	err = writeJSON(w, http.StatusOK, response, nil)
	if err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *GameHandler) CompleteGame(w http.ResponseWriter, r *http.Request) {
	var input struct {
		GameKey string `json:"game_key"`
	}
	err := readJSON(w, r, &input)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.GameKey == "" {
		badRequestResponse(w, r, errors.New("game_key is required"))
		return
	}

	game, err := h.gameService.CompleteGame(r.Context(), input.GameKey)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"success": true,
		"winner":  game.Winner,
		"game":    game,
	}

	err = writeJSON(w, http.StatusOK, response, nil)
	if err != nil {
		serverErrorResponse(w, r, err)
	}
}
