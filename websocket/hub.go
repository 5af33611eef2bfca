package websocket

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"github.com/waliuddin1105/crowdfund/models"
)

// Event is the wire shape pushed to connected clients when ledger state
// changes.
type Event struct {
	Type       string  `json:"type"`
	CampaignID string  `json:"campaign_id"`
	Title      string  `json:"title,omitempty"`
	Amount     float64 `json:"amount,omitempty"`
	Raised     float64 `json:"raised"`
	Goal       float64 `json:"goal"`
	Status     string  `json:"status"`
}

type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
}

// Hub fans ledger events out to every connected client. It satisfies the
// payment service's EventPublisher without the service knowing about
// websockets.
type Hub struct {
	mu         sync.RWMutex
	clients    map[uuid.UUID]*websocket.Conn
	Register   chan *Client
	Unregister chan *Client
	events     chan Event
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]*websocket.Conn),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		events:     make(chan Event, 64),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			log.Printf("Client registered: %s", client.UserID)
			h.mu.Lock()
			h.clients[client.UserID] = client.Conn
			h.mu.Unlock()
		case client := <-h.Unregister:
			log.Printf("Client unregistered: %s", client.UserID)
			h.mu.Lock()
			if conn, ok := h.clients[client.UserID]; ok && conn == client.Conn {
				delete(h.clients, client.UserID)
			}
			h.mu.Unlock()
		case event := <-h.events:
			h.broadcast(event)
		}
	}
}

func (h *Hub) broadcast(event Event) {
	h.mu.RLock()
	var stale []uuid.UUID
	for userID, conn := range h.clients {
		if err := conn.WriteJSON(event); err != nil {
			log.Printf("Error sending event to client %s: %v", userID, err)
			conn.Close()
			stale = append(stale, userID)
		}
	}
	h.mu.RUnlock()

	if len(stale) > 0 {
		h.mu.Lock()
		for _, userID := range stale {
			delete(h.clients, userID)
		}
		h.mu.Unlock()
	}
}

func (h *Hub) publish(event Event) {
	select {
	case h.events <- event:
	default:
		log.Println("Event channel full, dropping ledger event")
	}
}

func (h *Hub) PublishDonationCompleted(donation models.Donation, campaign models.Campaign) {
	h.publish(Event{
		Type:       "donation_completed",
		CampaignID: campaign.ID.String(),
		Title:      campaign.Title,
		Amount:     donation.Amount,
		Raised:     campaign.RaisedAmount,
		Goal:       campaign.GoalAmount,
		Status:     string(campaign.Status),
	})
}

func (h *Hub) PublishCampaignCompleted(campaign models.Campaign) {
	h.publish(Event{
		Type:       "campaign_completed",
		CampaignID: campaign.ID.String(),
		Title:      campaign.Title,
		Raised:     campaign.RaisedAmount,
		Goal:       campaign.GoalAmount,
		Status:     string(campaign.Status),
	})
}
