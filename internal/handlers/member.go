package handlers

import (
	"regexp"

	"github.com/m1z23r/drift/pkg/drift"

	"github.com/AlpianPPLG/workvibe/internal/models"
	"github.com/AlpianPPLG/workvibe/pkg/dto"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type MemberHandler struct {
	roster RosterServiceInterface
	hub    HubInterface
}

func NewMemberHandler(roster RosterServiceInterface, hub HubInterface) *MemberHandler {
	return &MemberHandler{roster: roster, hub: hub}
}

// List returns active roster members, pending invitations excluded.
func (h *MemberHandler) List(c *drift.Context) {
	_ = c.JSON(200, h.roster.Members(c.Request.Context()))
}

// ListAll returns the whole roster, invitations included.
func (h *MemberHandler) ListAll(c *drift.Context) {
	_ = c.JSON(200, h.roster.AllMembers(c.Request.Context()))
}

func (h *MemberHandler) Get(c *drift.Context) {
	member, ok := h.roster.Get(c.Request.Context(), c.Param("id"))
	if !ok {
		c.NotFound("member not found")
		return
	}
	_ = c.JSON(200, member)
}

func (h *MemberHandler) Create(c *drift.Context) {
	var req dto.CreateMemberRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Name == "" {
		c.BadRequest("name is required")
		return
	}
	if req.Email != "" && !emailPattern.MatchString(req.Email) {
		c.BadRequest("invalid email address")
		return
	}
	if req.Role != "" && !models.ValidRole(req.Role) {
		c.BadRequest("invalid role")
		return
	}
	if req.Status != "" && !models.ValidStatus(req.Status) {
		c.BadRequest("invalid status")
		return
	}

	in := models.Member{
		Name:       req.Name,
		Email:      req.Email,
		Nickname:   req.Nickname,
		Role:       req.Role,
		Status:     req.Status,
		Position:   req.Position,
		Department: req.Department,
		Phone:      req.Phone,
		Bio:        req.Bio,
		Avatar:     req.Avatar,
		Skills:     req.Skills,
	}
	if req.Projects != nil {
		in.Projects = *req.Projects
	}

	member := h.roster.Add(c.Request.Context(), in)
	h.hub.BroadcastMemberAdded(*member)

	_ = c.JSON(201, member)
}

func (h *MemberHandler) Update(c *drift.Context) {
	var req dto.UpdateMemberRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Email != nil && !emailPattern.MatchString(*req.Email) {
		c.BadRequest("invalid email address")
		return
	}
	if req.Role != nil && !models.ValidRole(*req.Role) {
		c.BadRequest("invalid role")
		return
	}
	if req.Status != nil && !models.ValidStatus(*req.Status) {
		c.BadRequest("invalid status")
		return
	}

	member, ok := h.roster.Update(c.Request.Context(), c.Param("id"), models.MemberPatch{
		Name:       req.Name,
		Email:      req.Email,
		Nickname:   req.Nickname,
		Role:       req.Role,
		Status:     req.Status,
		Position:   req.Position,
		Department: req.Department,
		Phone:      req.Phone,
		Bio:        req.Bio,
		Avatar:     req.Avatar,
		Skills:     req.Skills,
		Projects:   req.Projects,
	})
	if !ok {
		c.NotFound("member not found")
		return
	}
	h.hub.BroadcastMemberUpdated(*member)

	_ = c.JSON(200, member)
}

func (h *MemberHandler) Delete(c *drift.Context) {
	id := c.Param("id")
	if !h.roster.Delete(c.Request.Context(), id) {
		c.NotFound("member not found")
		return
	}
	h.hub.BroadcastMemberDeleted(id)

	_ = c.JSON(200, map[string]string{"status": "deleted"})
}
