package main

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"influBack/internal/models"
)

const (
	readLimit          = 1 << 20
	readDeadline       = 120 * time.Second
	writeDeadline      = 5 * time.Second
	pingInterval       = 15 * time.Second
	firstHelloDeadline = 30 * time.Second
)

type directMsg struct {
	userID int
	msg    models.ChatMessage
}

type unreg struct {
	userID int
	conn   *websocket.Conn
}

type client struct {
	id     int
	socket *websocket.Conn
}

// Hub owns every live websocket connection. The clients map is touched only
// inside Run; presence is mirrored into a mutex-guarded set so HTTP handlers
// can ask IsOnline without going through the hub goroutine.
type Hub struct {
	clients    map[int]*websocket.Conn
	direct     chan directMsg
	register   chan client
	unregister chan unreg

	mu     sync.RWMutex
	online map[int]struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[int]*websocket.Conn),
		direct:     make(chan directMsg, 16),
		register:   make(chan client),
		unregister: make(chan unreg),
		online:     make(map[int]struct{}),
	}
}

// Deliver implements services.Broadcaster. Offline recipients are dropped
// here; the message service falls back to a stored notification for them.
func (h *Hub) Deliver(userID int, msg models.ChatMessage) {
	select {
	case h.direct <- directMsg{userID: userID, msg: msg}:
	default:
		log.Printf("ws direct queue full, dropping message for user=%d", userID)
	}
}

func (h *Hub) IsOnline(userID int) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.online[userID]
	return ok
}

func (h *Hub) setOnline(userID int, on bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if on {
		h.online[userID] = struct{}{}
	} else {
		delete(h.online, userID)
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			// one socket per user, newest wins
			if old, ok := h.clients[c.id]; ok && old != nil && old != c.socket {
				_ = old.Close()
			}
			h.clients[c.id] = c.socket
			h.setOnline(c.id, true)
			log.Printf("WS register user=%d", c.id)

		case u := <-h.unregister:
			if cur, ok := h.clients[u.userID]; ok && cur == u.conn {
				_ = cur.Close()
				delete(h.clients, u.userID)
				h.setOnline(u.userID, false)
				log.Printf("WS unregister user=%d", u.userID)
			}

		case dm := <-h.direct:
			if conn, ok := h.clients[dm.userID]; ok {
				_ = conn.SetWriteDeadline(time.Now().Add(writeDeadline))
				if err := conn.WriteJSON(dm.msg); err != nil {
					log.Printf("direct send error to=%d: %v", dm.userID, err)
					_ = conn.Close()
					delete(h.clients, dm.userID)
					h.setOnline(dm.userID, false)
				}
			}
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin:       func(r *http.Request) bool { return true },
	ReadBufferSize:    1024,
	WriteBufferSize:   1024,
	EnableCompression: true,
}

// WebSocketHandler upgrades the connection after JWT auth. The first frame
// from the client must be { "userId": <int> } matching the authenticated user.
func (app *application) WebSocketHandler(w http.ResponseWriter, r *http.Request) {
	authedID, _ := r.Context().Value("user_id").(int)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}

	conn.SetReadLimit(readLimit)
	conn.SetReadDeadline(time.Now().Add(firstHelloDeadline))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readDeadline))
		return nil
	})

	var hello struct {
		UserID int `json:"userId"`
	}
	if err := conn.ReadJSON(&hello); err != nil || hello.UserID == 0 || hello.UserID != authedID {
		log.Println("invalid hello payload:", err)
		_ = writeClose(conn, websocket.ClosePolicyViolation, "hello required")
		_ = conn.Close()
		return
	}
	conn.SetReadDeadline(time.Now().Add(readDeadline))

	app.hub.register <- client{id: hello.UserID, socket: conn}

	go pingLoop(app.hub, conn, hello.UserID)
	go app.readMessages(conn, hello.UserID)
}

func pingLoop(h *Hub, conn *websocket.Conn, uid int) {
	t := time.NewTicker(pingInterval)
	defer t.Stop()
	for range t.C {
		// WriteControl is safe alongside the hub goroutine's data writes.
		if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeDeadline)); err != nil {
			_ = writeClose(conn, websocket.CloseGoingAway, "ping error")
			h.unregister <- unreg{userID: uid, conn: conn}
			return
		}
	}
}

func (app *application) readMessages(conn *websocket.Conn, userID int) {
	defer func() {
		app.hub.unregister <- unreg{userID: userID, conn: conn}
		_ = conn.Close()
	}()

	for {
		var frame struct {
			RoomID int    `json:"room_id"`
			Text   string `json:"text"`
		}
		if err := conn.ReadJSON(&frame); err != nil {
			log.Println("read json error:", err)
			_ = writeClose(conn, websocket.CloseNormalClosure, "read error")
			return
		}

		// SendMessage fans the stored row out to both participants
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		_, err := app.messageService.SendMessage(ctx, userID, frame.RoomID, frame.Text)
		cancel()
		if err != nil {
			log.Printf("ws send message room=%d user=%d: %v", frame.RoomID, userID, err)
			continue
		}
	}
}

func writeClose(conn *websocket.Conn, code int, reason string) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeDeadline))
	return conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(code, reason),
		time.Now().Add(writeDeadline),
	)
}
