package handlers

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"

	"github.com/AlpianPPLG/workvibe/internal/hub"
)

type EventsHandler struct {
	hub HubInterface
}

func NewEventsHandler(h HubInterface) *EventsHandler {
	return &EventsHandler{hub: h}
}

// Connect opens a server-sent event stream. The optional views query
// parameter is a comma-separated list of views to watch; it defaults to
// all of them.
func (h *EventsHandler) Connect(c *drift.Context) {
	views := hub.AllViews()
	if raw := c.Query.Get("views"); raw != "" {
		views = views[:0]
		for _, v := range strings.Split(raw, ",") {
			v = strings.TrimSpace(v)
			if !hub.ValidView(v) {
				c.BadRequest(fmt.Sprintf("unknown view: %s", v))
				return
			}
			views = append(views, v)
		}
	}

	sseCtx := c.SSE()

	clientID := uuid.New().String()
	client := &hub.Client{
		ID:    clientID,
		Views: make(map[string]bool, len(views)),
		Send:  make(chan []byte, 256),
	}
	for _, v := range views {
		client.Views[v] = true
	}

	h.hub.Register(client)
	defer h.hub.Unregister(client)

	if err := sseCtx.SendJSON(map[string]string{
		"type":      "connected",
		"client_id": clientID,
	}, "system", ""); err != nil {
		return
	}

	done := make(chan struct{})
	go func() {
		<-c.Request.Context().Done()
		close(done)
	}()

	for {
		select {
		case msg, ok := <-client.Send:
			if !ok {
				return
			}
			if err := sseCtx.Send(string(msg), "message", ""); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

// Subscribe adds a view to an already connected client's watch set.
func (h *EventsHandler) Subscribe(c *drift.Context) {
	clientID := c.Param("clientId")
	if clientID == "" {
		c.BadRequest("client_id is required")
		return
	}
	view := c.Param("view")
	if !hub.ValidView(view) {
		c.BadRequest("unknown view")
		return
	}

	h.hub.Subscribe(clientID, view)

	_ = c.JSON(200, map[string]string{
		"message": fmt.Sprintf("subscribed to %s", view),
	})
}

// Unsubscribe removes a view from a connected client's watch set.
func (h *EventsHandler) Unsubscribe(c *drift.Context) {
	clientID := c.Param("clientId")
	if clientID == "" {
		c.BadRequest("client_id is required")
		return
	}
	view := c.Param("view")
	if !hub.ValidView(view) {
		c.BadRequest("unknown view")
		return
	}

	h.hub.Unsubscribe(clientID, view)

	_ = c.JSON(200, map[string]string{
		"message": fmt.Sprintf("unsubscribed from %s", view),
	})
}
