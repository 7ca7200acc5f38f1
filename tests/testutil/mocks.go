package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/AlpianPPLG/workvibe/internal/hub"
	"github.com/AlpianPPLG/workvibe/internal/models"
)

// MockRosterService mocks the RosterService
type MockRosterService struct {
	mock.Mock
}

func (m *MockRosterService) Add(ctx context.Context, in models.Member) *models.Member {
	args := m.Called(ctx, in)
	return args.Get(0).(*models.Member)
}

func (m *MockRosterService) AddInvited(ctx context.Context, in models.Member) *models.Member {
	args := m.Called(ctx, in)
	return args.Get(0).(*models.Member)
}

func (m *MockRosterService) Update(ctx context.Context, id string, patch models.MemberPatch) (*models.Member, bool) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*models.Member), args.Bool(1)
}

func (m *MockRosterService) Delete(ctx context.Context, id string) bool {
	args := m.Called(ctx, id)
	return args.Bool(0)
}

func (m *MockRosterService) Get(ctx context.Context, id string) (*models.Member, bool) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*models.Member), args.Bool(1)
}

func (m *MockRosterService) Members(ctx context.Context) []models.Member {
	args := m.Called(ctx)
	return args.Get(0).([]models.Member)
}

func (m *MockRosterService) TeamMembers(ctx context.Context) []models.TeamMember {
	args := m.Called(ctx)
	return args.Get(0).([]models.TeamMember)
}

func (m *MockRosterService) InvitedMembers(ctx context.Context) []models.Member {
	args := m.Called(ctx)
	return args.Get(0).([]models.Member)
}

func (m *MockRosterService) AllMembers(ctx context.Context) []models.Member {
	args := m.Called(ctx)
	return args.Get(0).([]models.Member)
}

// MockHub mocks the event hub
type MockHub struct {
	mock.Mock
}

func (m *MockHub) Register(client *hub.Client) {
	m.Called(client)
}

func (m *MockHub) Unregister(client *hub.Client) {
	m.Called(client)
}

func (m *MockHub) Subscribe(clientID, view string) {
	m.Called(clientID, view)
}

func (m *MockHub) Unsubscribe(clientID, view string) {
	m.Called(clientID, view)
}

func (m *MockHub) BroadcastMemberAdded(member models.Member) {
	m.Called(member)
}

func (m *MockHub) BroadcastMemberInvited(member models.Member) {
	m.Called(member)
}

func (m *MockHub) BroadcastMemberUpdated(member models.Member) {
	m.Called(member)
}

func (m *MockHub) BroadcastMemberDeleted(memberID string) {
	m.Called(memberID)
}
