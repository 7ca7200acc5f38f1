package hub

import (
	"encoding/json"
	"sync"

	"github.com/AlpianPPLG/workvibe/internal/models"
)

// Views a client can subscribe to. A roster mutation is delivered to every
// view it is visible in, so a members page and a teams page connected at
// the same time converge without a reload.
const (
	ViewMembers = "members"
	ViewTeams   = "teams"
	ViewInvited = "invited"
)

func AllViews() []string {
	return []string{ViewMembers, ViewTeams, ViewInvited}
}

func ValidView(view string) bool {
	switch view {
	case ViewMembers, ViewTeams, ViewInvited:
		return true
	}
	return false
}

type Event struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

type MemberEventData struct {
	Member models.Member `json:"member"`
}

type MemberDeletedData struct {
	MemberID string `json:"member_id"`
}

type Client struct {
	ID    string
	Views map[string]bool
	Send  chan []byte
}

type Hub struct {
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	broadcast  chan *viewMessage
	mu         sync.RWMutex
}

type viewMessage struct {
	Views []string
	Event Event
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *viewMessage, 256),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(client.Send)
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.Event)
			for _, client := range h.clients {
				if !watchesAny(client, msg.Views) {
					continue
				}
				select {
				case client.Send <- data:
				default:
					// Client buffer full, skip
				}
			}
			h.mu.RUnlock()
		}
	}
}

func watchesAny(client *Client, views []string) bool {
	for _, v := range views {
		if client.Views[v] {
			return true
		}
	}
	return false
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

func (h *Hub) Subscribe(clientID, view string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if client, ok := h.clients[clientID]; ok {
		client.Views[view] = true
	}
}

func (h *Hub) Unsubscribe(clientID, view string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if client, ok := h.clients[clientID]; ok {
		delete(client.Views, view)
	}
}

// visibleViews reports which views a record with the given status shows up
// in: invited members belong to the invited and teams views, everyone else
// to the members and teams views.
func visibleViews(status string) []string {
	if status == models.StatusInvited {
		return []string{ViewInvited, ViewTeams}
	}
	return []string{ViewMembers, ViewTeams}
}

func (h *Hub) BroadcastMemberAdded(m models.Member) {
	h.broadcast <- &viewMessage{
		Views: visibleViews(m.Status),
		Event: Event{Type: "member_added", Data: MemberEventData{Member: m}},
	}
}

func (h *Hub) BroadcastMemberInvited(m models.Member) {
	h.broadcast <- &viewMessage{
		Views: []string{ViewInvited, ViewTeams},
		Event: Event{Type: "member_invited", Data: MemberEventData{Member: m}},
	}
}

// BroadcastMemberUpdated goes to every view: an update can move a record
// between views, and the stale side needs to hear about it too.
func (h *Hub) BroadcastMemberUpdated(m models.Member) {
	h.broadcast <- &viewMessage{
		Views: AllViews(),
		Event: Event{Type: "member_updated", Data: MemberEventData{Member: m}},
	}
}

func (h *Hub) BroadcastMemberDeleted(memberID string) {
	h.broadcast <- &viewMessage{
		Views: AllViews(),
		Event: Event{Type: "member_deleted", Data: MemberDeletedData{MemberID: memberID}},
	}
}
