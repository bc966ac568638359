// Score Viewer - Real-time speech score display
// Consumes scored-speech events from Kafka and displays them via WebSocket
// in a browser dashboard.
package main

import (
	"context"
	"embed"
	"encoding/json"
	"flag"
	"io/fs"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/segmentio/kafka-go"
)

//go:embed static/*
var staticFiles embed.FS

// ScoreReport mirrors the service's scored report payload.
type ScoreReport struct {
	TranscribedText    string  `json:"transcribedText"`
	ClarityScore       float64 `json:"clarityScore"`
	FluencyScore       float64 `json:"fluencyScore"`
	PaceWPM            float64 `json:"paceWpm"`
	FillerWordsCount   int     `json:"fillerWordsCount"`
	Confidence         float64 `json:"confidence"`
	PronunciationScore float64 `json:"pronunciationScore"`
}

// ScoredEvent represents a speech-scored message from Kafka.
type ScoredEvent struct {
	EventType     string      `json:"eventType"`
	InteractionID string      `json:"interactionId"`
	TenantID      string      `json:"tenantId"`
	SegmentID     string      `json:"segmentId"`
	Timestamp     int64       `json:"timestamp"`
	Report        ScoreReport `json:"report"`
}

// Hub manages WebSocket connections
type Hub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan ScoredEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.RWMutex
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

func newHub() *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan ScoredEvent, 100),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()
			log.Printf("Client connected. Total: %d", len(h.clients))

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()
			log.Printf("Client disconnected. Total: %d", len(h.clients))

		case event := <-h.broadcast:
			// Evicting a dead client mutates the map, so collect failures
			// under the read lock and delete under the write lock.
			var dead []*websocket.Conn
			h.mu.RLock()
			for conn := range h.clients {
				if err := conn.WriteJSON(event); err != nil {
					log.Printf("Write error: %v", err)
					dead = append(dead, conn)
				}
			}
			h.mu.RUnlock()

			if len(dead) > 0 {
				h.mu.Lock()
				for _, conn := range dead {
					conn.Close()
					delete(h.clients, conn)
				}
				h.mu.Unlock()
			}
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for local dev
	},
}

func wsHandler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("WebSocket upgrade error: %v", err)
			return
		}
		hub.register <- conn

		// Keep connection alive, handle disconnects
		go func() {
			defer func() {
				hub.unregister <- conn
			}()
			for {
				_, _, err := conn.ReadMessage()
				if err != nil {
					break
				}
			}
		}()
	}
}

func consumeKafka(ctx context.Context, hub *Hub, brokers, topic string) {
	// Use partition reader without consumer group (works better through port-forward)
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:   strings.Split(brokers, ","),
		Topic:     topic,
		Partition: 0, // Read from partition 0 only (simplest for demo)
		MinBytes:  1,
		MaxBytes:  10e6,
	})
	defer reader.Close()

	// Start from the latest offset (only show new messages)
	reader.SetOffsetAt(ctx, time.Now().Add(-1*time.Hour)) // Last hour of messages

	log.Printf("Consuming from Kafka topic: %s partition 0 (last hour)", topic)

	for {
		select {
		case <-ctx.Done():
			return
		default:
			msg, err := reader.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				log.Printf("Kafka read error on %s: %v", topic, err)
				time.Sleep(time.Second)
				continue
			}

			var event ScoredEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				log.Printf("JSON unmarshal error: %v", err)
				continue
			}

			log.Printf("Received %s: clarity=%.1f fluency=%.1f %q (segment: %s)",
				event.EventType, event.Report.ClarityScore, event.Report.FluencyScore,
				truncate(event.Report.TranscribedText, 40), event.SegmentID)
			hub.broadcast <- event
		}
	}
}

func main() {
	port := flag.String("port", "8081", "HTTP server port")
	brokers := flag.String("brokers", "localhost:9092", "Kafka brokers (comma-separated)")
	topicScored := flag.String("topic-scored", "interaction.speech.scored", "Scored speech topic")
	flag.Parse()

	hub := newHub()
	go hub.run()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumeKafka(ctx, hub, *brokers, *topicScored)

	// Serve static files
	staticFS, _ := fs.Sub(staticFiles, "static")
	http.Handle("/", http.FileServer(http.FS(staticFS)))

	// WebSocket endpoint
	http.HandleFunc("/ws", wsHandler(hub))

	log.Printf("Score Viewer starting on http://localhost:%s", *port)
	log.Printf("   Kafka brokers: %s", *brokers)
	log.Printf("   Topic: %s", *topicScored)

	if err := http.ListenAndServe(":"+*port, nil); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
