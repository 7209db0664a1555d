// internal/httpserver/routes_game.go
//
// HTTP routes for playing a session.
//   - POST   /game/new         → start a session ("normal" or "daily"), returns its token
//   - GET    /game/{id}        → current state
//   - POST   /game/{id}/key    → one key token (letter, ENTER, BACKSPACE)
//   - POST   /game/{id}/guess  → type a whole word and submit it
//   - POST   /game/{id}/reset  → start a new round in the same session
//   - DELETE /game/{id}        → drop the session
//
// Rejected submissions answer 422 with the reason and the unchanged state,
// so clients can show a transient message.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordguess/internal/daily"
	"github.com/robalobadob/wordguess/internal/game"
	"github.com/robalobadob/wordguess/internal/store"
)

// Session modes accepted by POST /game/new.
const (
	ModeNormal = "normal"
	ModeDaily  = "daily"
)

// mountGame registers all /game routes.
func (s *Server) mountGame(r chi.Router) {
	r.Post("/game/new", s.handleNewGame)
	r.Route("/game/{id}", func(r chi.Router) {
		r.Use(s.requireSession)
		r.Get("/", s.handleState)
		r.Delete("/", s.handleDelete)
		r.Post("/key", s.handleKey)
		r.Post("/guess", s.handleGuess)
		r.Post("/reset", s.handleReset)
	})
}

// RandFor returns the target picker for a session mode.
func RandFor(mode, salt string) game.Rand {
	if mode == ModeDaily {
		return daily.Today(salt)
	}
	return nil
}

// -----------------------------------------------------------------------------
// /game/new

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Mode string `json:"mode"` // "normal" | "daily"
}
type newGameRes struct {
	GameID string    `json:"gameId"`
	Token  string    `json:"token"`
	Game   game.View `json:"game"`
}

// handleNewGame creates and stores a session, then hands out its token
// as both a response field and a cookie.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	_ = json.NewDecoder(r.Body).Decode(&req)
	mode := strings.ToLower(strings.TrimSpace(req.Mode))
	if mode == "" {
		mode = ModeNormal
	}
	if mode != ModeNormal && mode != ModeDaily {
		writeError(w, http.StatusBadRequest, "unknown_mode")
		return
	}

	g, err := game.New(s.words, game.Options{
		Mode:        mode,
		MaxAttempts: s.cfg.Game.MaxAttempts,
		Rand:        RandFor(mode, s.cfg.Game.DailySalt),
	})
	if err != nil {
		log.Error().Err(err).Msg("new game")
		writeError(w, http.StatusInternalServerError, "no_words")
		return
	}
	view := g.View()
	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}

	tok, exp, err := s.tokens.issue(view.ID)
	if err != nil {
		log.Error().Err(err).Msg("sign token")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	s.setSessionCookie(w, tok, exp)

	log.Info().Str("gameId", view.ID).Str("mode", mode).Msg("game started")
	writeJSON(w, http.StatusOK, newGameRes{GameID: view.ID, Token: tok, Game: view})
}

// -----------------------------------------------------------------------------
// state / delete

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	g, err := s.store.Get(r.Context(), sessionID(r))
	if err != nil {
		s.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, moveRes{Game: g.View()})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), sessionID(r)); err != nil {
		s.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// -----------------------------------------------------------------------------
// moves

// moveRes is returned by every route that changes a session.
type moveRes struct {
	Game       game.View       `json:"game"`
	Evaluation game.Evaluation `json:"evaluation,omitempty"` // set when a guess was accepted
	Rejected   string          `json:"rejected,omitempty"`   // too_short | not_in_word_list | game_finished
}

type keyReq struct {
	Key string `json:"key"`
}

// handleKey routes one raw key through game.NormalizeKey and Session.Press.
// Unknown keys are ignored and answer with the unchanged state.
func (s *Server) handleKey(w http.ResponseWriter, r *http.Request) {
	var req keyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	s.move(w, r, func(g *game.Session) (game.Evaluation, error) {
		token, ok := game.NormalizeKey(req.Key)
		if !ok {
			return nil, nil
		}
		return g.Press(token)
	})
}

type guessReq struct {
	Guess string `json:"guess"`
}

// handleGuess types a whole word into the buffer and submits it.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	word := strings.ToUpper(strings.TrimSpace(req.Guess))
	s.move(w, r, func(g *game.Session) (game.Evaluation, error) {
		return g.Enter(word)
	})
}

// handleReset starts a new round. Daily sessions land on the day's word again.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.move(w, r, func(g *game.Session) (game.Evaluation, error) {
		g.Reset()
		log.Info().Str("gameId", g.ID()).Msg("game reset")
		return nil, nil
	})
}

// move applies op under the store's per-session lock and writes the result.
func (s *Server) move(w http.ResponseWriter, r *http.Request, op func(*game.Session) (game.Evaluation, error)) {
	var res moveRes
	var opErr error
	err := s.store.Update(r.Context(), sessionID(r), func(g *game.Session) error {
		before := g.Outcome()
		res.Evaluation, opErr = op(g)
		res.Game = g.View()
		logMove(g, before, res.Evaluation, opErr)
		return nil
	})
	if err != nil {
		s.storeError(w, err)
		return
	}
	if opErr != nil {
		res.Rejected = game.Rejection(opErr)
		writeJSON(w, http.StatusUnprocessableEntity, res)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func logMove(g *game.Session, before game.Outcome, ev game.Evaluation, err error) {
	switch {
	case err != nil:
		log.Debug().Str("gameId", g.ID()).Str("reason", game.Rejection(err)).Msg("guess rejected")
	case ev != nil:
		log.Debug().Str("gameId", g.ID()).Int("attempt", len(g.Guesses())).Msg("guess accepted")
	}
	if after := g.Outcome(); after != before && after.Terminal() {
		log.Info().Str("gameId", g.ID()).Str("outcome", string(after)).Int("guesses", len(g.Guesses())).Msg("game over")
	}
}

// storeError maps store failures to HTTP responses.
func (s *Server) storeError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	log.Error().Err(err).Msg("session store")
	writeError(w, http.StatusInternalServerError, "store_failed")
}
