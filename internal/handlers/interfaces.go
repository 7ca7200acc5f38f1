package handlers

import (
	"context"

	"github.com/AlpianPPLG/workvibe/internal/hub"
	"github.com/AlpianPPLG/workvibe/internal/models"
)

// RosterServiceInterface defines the methods used by handlers from RosterService
type RosterServiceInterface interface {
	Add(ctx context.Context, in models.Member) *models.Member
	AddInvited(ctx context.Context, in models.Member) *models.Member
	Update(ctx context.Context, id string, patch models.MemberPatch) (*models.Member, bool)
	Delete(ctx context.Context, id string) bool
	Get(ctx context.Context, id string) (*models.Member, bool)
	Members(ctx context.Context) []models.Member
	TeamMembers(ctx context.Context) []models.TeamMember
	InvitedMembers(ctx context.Context) []models.Member
	AllMembers(ctx context.Context) []models.Member
}

// HubInterface defines the methods used by handlers from the Hub
type HubInterface interface {
	Register(client *hub.Client)
	Unregister(client *hub.Client)
	Subscribe(clientID, view string)
	Unsubscribe(clientID, view string)
	BroadcastMemberAdded(m models.Member)
	BroadcastMemberInvited(m models.Member)
	BroadcastMemberUpdated(m models.Member)
	BroadcastMemberDeleted(memberID string)
}
