package main

import (
	"encoding/json"
	"errors"
	"html"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/tomz197/cybertyper/internal/store"
)

const (
	writeTimeout = 10 * time.Second
	pingInterval = 25 * time.Second
)

// highscoreSource is the read side of the high score store.
type highscoreSource interface {
	Load() (int, error)
}

// site serves the landing page and the high score feed.
type site struct {
	page       string
	sshHost    string
	sshPort    string
	highscores highscoreSource
	poll       time.Duration
	logger     *log.Logger
	upgrader   websocket.Upgrader
}

func newRouter(s *site) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/api/highscore", s.handleHighscore).Methods(http.MethodGet)
	r.HandleFunc("/ws/highscore", s.handleHighscoreFeed).Methods(http.MethodGet)
	return r
}

// highscore reads the record; a corrupt file counts as no record, like in game.
func (s *site) highscore() (int, error) {
	hs, err := s.highscores.Load()
	if errors.Is(err, store.ErrCorrupt) {
		s.logger.Warn("highscore file is corrupt", "err", err)
		return 0, nil
	}
	return hs, err
}

func (s *site) handleIndex(w http.ResponseWriter, r *http.Request) {
	hs, err := s.highscore()
	if err != nil {
		s.logger.Error("load highscore", "err", err)
	}
	page := strings.NewReplacer(
		"{{.SSHHost}}", html.EscapeString(s.sshHost),
		"{{.SSHPort}}", html.EscapeString(s.sshPort),
		"{{.Highscore}}", strconv.Itoa(hs),
	).Replace(s.page)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(page))
}

func (s *site) handleHighscore(w http.ResponseWriter, r *http.Request) {
	hs, err := s.highscore()
	if err != nil {
		s.logger.Error("load highscore", "err", err)
		http.Error(w, "highscore unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(store.Record{Highscore: hs})
}

// handleHighscoreFeed pushes the record on connect and whenever it changes.
func (s *site) handleHighscoreFeed(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Debug("upgrade", "err", err)
		return
	}
	defer conn.Close()

	// Reading is required for control frames; any error means the peer left.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	poll := time.NewTicker(s.poll)
	defer poll.Stop()
	ping := time.NewTicker(pingInterval)
	defer ping.Stop()

	last := -1
	for {
		if hs, err := s.highscore(); err == nil && hs != last {
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteJSON(store.Record{Highscore: hs}); err != nil {
				s.logger.Debug("feed write", "err", err)
				return
			}
			last = hs
		}

		select {
		case <-closed:
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-poll.C:
		}
	}
}
