package handlers

import (
	"github.com/m1z23r/drift/pkg/drift"

	"github.com/AlpianPPLG/workvibe/internal/models"
	"github.com/AlpianPPLG/workvibe/pkg/dto"
)

type TeamHandler struct {
	roster RosterServiceInterface
}

func NewTeamHandler(roster RosterServiceInterface) *TeamHandler {
	return &TeamHandler{roster: roster}
}

// Members returns the flattened team view: every record, invitations
// included, with projects normalized to a count.
func (h *TeamHandler) Members(c *drift.Context) {
	_ = c.JSON(200, h.roster.TeamMembers(c.Request.Context()))
}

// Stats aggregates roster counts by status and role.
func (h *TeamHandler) Stats(c *drift.Context) {
	all := h.roster.AllMembers(c.Request.Context())

	stats := dto.TeamStatsResponse{Total: len(all)}
	for _, m := range all {
		switch m.Status {
		case models.StatusActive:
			stats.Active++
		case models.StatusInactive:
			stats.Inactive++
		case models.StatusAway:
			stats.Away++
		case models.StatusInvited:
			stats.Invited++
		}
		if m.Role == models.RoleAdmin {
			stats.Admins++
		}
	}

	_ = c.JSON(200, stats)
}
