package handlers

import (
	"strings"

	"github.com/m1z23r/drift/pkg/drift"

	"github.com/AlpianPPLG/workvibe/internal/models"
	"github.com/AlpianPPLG/workvibe/pkg/dto"
)

type InviteHandler struct {
	roster RosterServiceInterface
	hub    HubInterface
}

func NewInviteHandler(roster RosterServiceInterface, hub HubInterface) *InviteHandler {
	return &InviteHandler{roster: roster, hub: hub}
}

// Create registers a pending invitation. The invitee has no profile yet, so
// the display name falls back to the email local part when not supplied.
func (h *InviteHandler) Create(c *drift.Context) {
	var req dto.InviteMemberRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Email == "" {
		c.BadRequest("email is required")
		return
	}
	if !emailPattern.MatchString(req.Email) {
		c.BadRequest("invalid email address")
		return
	}
	if req.Role != "" && !models.ValidRole(req.Role) {
		c.BadRequest("invalid role")
		return
	}

	name := req.Name
	if name == "" {
		name = strings.Split(req.Email, "@")[0]
	}
	role := req.Role
	if role == "" {
		role = models.RoleMember
	}

	member := h.roster.AddInvited(c.Request.Context(), models.Member{
		Name:  name,
		Email: req.Email,
		Role:  role,
	})
	h.hub.BroadcastMemberInvited(*member)

	_ = c.JSON(201, member)
}

// List returns pending invitations only.
func (h *InviteHandler) List(c *drift.Context) {
	_ = c.JSON(200, h.roster.InvitedMembers(c.Request.Context()))
}

// Accept promotes a pending invitation to an active member.
func (h *InviteHandler) Accept(c *drift.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	existing, ok := h.roster.Get(ctx, id)
	if !ok || existing.Status != models.StatusInvited {
		c.NotFound("invite not found")
		return
	}

	status := models.StatusActive
	member, ok := h.roster.Update(ctx, id, models.MemberPatch{Status: &status})
	if !ok {
		c.NotFound("invite not found")
		return
	}
	h.hub.BroadcastMemberUpdated(*member)

	_ = c.JSON(200, member)
}

// Delete revokes a pending invitation. Only invited records can be revoked
// through this endpoint; regular members go through the member handler.
func (h *InviteHandler) Delete(c *drift.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	existing, ok := h.roster.Get(ctx, id)
	if !ok || existing.Status != models.StatusInvited {
		c.NotFound("invite not found")
		return
	}

	if !h.roster.Delete(ctx, id) {
		c.NotFound("invite not found")
		return
	}
	h.hub.BroadcastMemberDeleted(id)

	_ = c.JSON(200, map[string]string{"status": "revoked"})
}
