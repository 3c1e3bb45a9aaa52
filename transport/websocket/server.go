package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-session/internal/entity"
)

const (
	sessionCookie   = "user_session"
	maxMessageSize  = 4096
	writeWait       = 10 * time.Second
	shutdownTimeout = 5 * time.Second
)

const (
	actionState = "game:state"
	actionTurn  = "game:turn"
	actionJump  = "game:jump"
	actionReset = "game:reset"
	actionError = "error"
)

// GameController is the game of one connection.
type GameController interface {
	MakeTurn(ctx context.Context, cell int) bool
	JumpTo(step int) bool
	Reset()
	State() *entity.GameState
}

// GameFactory creates the game for a new connection.
type GameFactory func(sessionID string) GameController

type handlerFunc func(ctx context.Context, conn *session, msg *Message) error

// session is one websocket connection and the game it drives.
// Only the connection's read loop touches game and writes to conn.
type session struct {
	id   string
	conn *websocket.Conn
	game GameController
}

type Server struct {
	logger   *slog.Logger
	newGame  GameFactory
	upgrader websocket.Upgrader

	handlers map[string]handlerFunc

	connections      map[*websocket.Conn]struct{}
	connectionsMutex sync.Mutex
}

func New(logger *slog.Logger, newGame GameFactory) *Server {
	server := &Server{
		logger:  logger.With("component", "websocket"),
		newGame: newGame,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},

		handlers:    make(map[string]handlerFunc),
		connections: make(map[*websocket.Conn]struct{}),
	}

	server.handlers[actionState] = server.handleState
	server.handlers[actionTurn] = server.handleTurn
	server.handlers[actionJump] = server.handleJump
	server.handlers[actionReset] = server.handleReset

	return server
}

// Routes returns the handler serving sessions at /ws.
func (that *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ws", that.upgradeToWebSocket)

	return mux
}

// Start - starts WebSocket server. Open sessions are closed when ctx is cancelled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down server", "error", err)
		}

		that.closeConnections()
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// upgradeToWebSocket - upgrades the connection to WebSocket and serves one session on it.
func (that *Server) upgradeToWebSocket(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeToWebSocket")

	sessionID, header := that.sessionCookie(req)

	conn, err := that.upgrader.Upgrade(writer, req, header)
	if err != nil {
		// the upgrader has already answered with an HTTP error
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	that.track(conn)
	defer that.untrack(conn)

	conn.SetReadLimit(maxMessageSize)

	sess := &session{
		id:   sessionID,
		conn: conn,
		game: that.newGame(sessionID),
	}

	log.Info("WebSocket connection established", "session", sessionID)

	if err = that.handleMessages(req.Context(), sess); err != nil {
		log.Error("error handling messages", "session", sessionID, "error", err)
	}

	log.Info("WebSocket connection closed", "session", sessionID)
}

// handleMessages - processes messages from the client until the connection closes.
func (that *Server) handleMessages(ctx context.Context, sess *session) error {
	log := that.logger.With("method", "handleMessages", "session", sess.id)

	for {
		_, reqBody, err := sess.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}

			return fmt.Errorf("failed to read message: %w", err)
		}

		var message Message
		if err = json.Unmarshal(reqBody, &message); err != nil {
			log.Debug("failed to unmarshal message", "error", err)

			if err = that.sendErrorResponse(sess, actionError, "malformed message"); err != nil {
				return err
			}

			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Debug("unknown action", "action", message.Action)

			if err = that.sendErrorResponse(sess, message.Action, "unknown action"); err != nil {
				return err
			}

			continue
		}

		if err = handler(ctx, sess, &message); err != nil {
			return fmt.Errorf("failed to process %s: %w", message.Action, err)
		}
	}
}

// sessionCookie returns the session id from the request cookie, or a new one
// together with the header that sets it. The id labels the connection only;
// a reconnect with the same id still gets a new game.
func (that *Server) sessionCookie(req *http.Request) (string, http.Header) {
	log := that.logger.With("method", "sessionCookie")

	cookie, err := req.Cookie(sessionCookie)
	if err == nil && cookie.Value != "" {
		log.Debug("session cookie found", "cookie", cookie.Value)
		return cookie.Value, nil
	}

	cookie = &http.Cookie{
		Name:    sessionCookie,
		Value:   uuid.NewString(),
		Expires: time.Now().Add(24 * time.Hour),
		Path:    "/ws",
	}

	log.Debug("session cookie not found, new one created", "cookie", cookie.Value)

	header := http.Header{}
	header.Add("Set-Cookie", cookie.String())

	return cookie.Value, header
}

func (that *Server) track(conn *websocket.Conn) {
	that.connectionsMutex.Lock()
	defer that.connectionsMutex.Unlock()

	that.connections[conn] = struct{}{}
}

func (that *Server) untrack(conn *websocket.Conn) {
	that.connectionsMutex.Lock()
	delete(that.connections, conn)
	that.connectionsMutex.Unlock()

	_ = conn.Close()
}

func (that *Server) closeConnections() {
	that.connectionsMutex.Lock()
	defer that.connectionsMutex.Unlock()

	for conn := range that.connections {
		_ = conn.Close()
	}
}
