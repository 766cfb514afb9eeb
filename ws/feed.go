package ws

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// StatusEvent คือ event ที่กระจายให้ admin dashboard ตอนสถานะ issue เปลี่ยน
type StatusEvent struct {
	SubmissionID uint      `json:"submissionId"`
	OldStatus    string    `json:"oldStatus"`
	NewStatus    string    `json:"newStatus"`
	ChangedAt    time.Time `json:"changedAt"`
}

// FeedHub เป็นศูนย์กลาง broadcast event ไปยังทุก connection ที่เปิดอยู่
type FeedHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan StatusEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

func NewFeedHub() *FeedHub {
	return &FeedHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan StatusEvent, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

// คอยฟัง register/unregister/broadcast ตลอดเวลา
func (h *FeedHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if h.clients[conn] {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(ev); err != nil {
					log.Println("feed write failed, dropping client:", err)
					delete(h.clients, conn)
					conn.Close()
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast ไม่ block ผู้เรียก ถ้า buffer เต็มก็ทิ้ง event
func (h *FeedHub) Broadcast(ev StatusEvent) {
	select {
	case h.broadcast <- ev:
	default:
		log.Println("feed buffer full, dropping status event")
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// HandleFeed upgrade เป็น websocket แล้วค้างไว้จนฝั่ง client ปิด
func (h *FeedHub) HandleFeed(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("websocket upgrade failed:", err)
		return
	}
	h.register <- conn

	// อ่านทิ้งเพื่อรอ close frame (feed เป็นขาออกอย่างเดียว)
	go func() {
		defer func() { h.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
