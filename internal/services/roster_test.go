package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AlpianPPLG/workvibe/internal/mirror"
	"github.com/AlpianPPLG/workvibe/internal/models"
)

// brokenMirror fails every operation. Used to verify the roster survives a
// dead storage backend.
type brokenMirror struct{}

func (brokenMirror) Load(context.Context) ([]models.Member, error) {
	return nil, errors.New("storage unavailable")
}

func (brokenMirror) Save(context.Context, []models.Member) error {
	return errors.New("storage unavailable")
}

func (brokenMirror) Close() {}

func newTestRoster(t *testing.T) (*RosterService, *mirror.MemoryMirror) {
	t.Helper()
	m := mirror.NewMemory()
	return NewRosterService(context.Background(), m, zap.NewNop()), m
}

func TestAddAssignsDefaults(t *testing.T) {
	svc, _ := newTestRoster(t)

	got := svc.Add(context.Background(), models.Member{
		Name:  "John Smith",
		Email: "john.smith@example.com",
		Role:  models.RoleMember,
	})

	require.NotNil(t, got)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "John Smith", got.Nickname)
	assert.Equal(t, models.StatusActive, got.Status)
	assert.False(t, got.JoinDate.IsZero())
	assert.False(t, got.LastActive.IsZero())
	assert.Contains(t, got.Avatar, "ui-avatars.com")

	// defaults survive the copy handed back to callers
	assert.NotNil(t, got.Skills)
	assert.Empty(t, got.Skills)
	assert.NotNil(t, got.Projects.Refs)
}

func TestAddKeepsCallerStatus(t *testing.T) {
	svc, _ := newTestRoster(t)

	got := svc.Add(context.Background(), models.Member{
		Name:   "Jane",
		Email:  "jane@example.com",
		Status: models.StatusAway,
	})

	assert.Equal(t, models.StatusAway, got.Status)
}

func TestAddGeneratesUniqueIDs(t *testing.T) {
	svc, _ := newTestRoster(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		m := svc.Add(ctx, models.Member{Name: "n", Email: ""})
		assert.False(t, seen[m.ID], "duplicate id %s", m.ID)
		seen[m.ID] = true
	}
}

func TestAddMergesOnDuplicateEmail(t *testing.T) {
	svc, _ := newTestRoster(t)
	ctx := context.Background()

	first := svc.Add(ctx, models.Member{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Position: "Engineer",
	})
	merged := svc.Add(ctx, models.Member{
		Name:  "Jane D.",
		Email: "JANE@EXAMPLE.COM",
		Phone: "555-0100",
	})

	assert.Equal(t, first.ID, merged.ID)
	assert.Equal(t, "Jane D.", merged.Name)
	assert.Equal(t, "555-0100", merged.Phone)
	assert.Equal(t, "Engineer", merged.Position)
	assert.Len(t, svc.AllMembers(ctx), 1)
}

func TestAddInvited(t *testing.T) {
	svc, _ := newTestRoster(t)
	ctx := context.Background()

	got := svc.AddInvited(ctx, models.Member{
		Name:  "New Hire",
		Email: "new.hire@example.com",
		// status supplied by the caller must not survive
		Status: models.StatusActive,
	})

	assert.Equal(t, models.StatusInvited, got.Status)
	assert.True(t, strings.HasPrefix(got.ID, InviteIDPrefix))
	assert.Equal(t, "New Hire", got.Nickname)
}

func TestAddInvitedMergesOnDuplicateEmail(t *testing.T) {
	svc, _ := newTestRoster(t)
	ctx := context.Background()

	existing := svc.Add(ctx, models.Member{Name: "Jane", Email: "jane@example.com"})
	invited := svc.AddInvited(ctx, models.Member{Email: "jane@example.com"})

	assert.Equal(t, existing.ID, invited.ID)
	assert.Equal(t, models.StatusInvited, invited.Status)
	assert.Len(t, svc.AllMembers(ctx), 1)
}

func TestUpdateUnknownIDIsNoOp(t *testing.T) {
	svc, _ := newTestRoster(t)

	got, ok := svc.Update(context.Background(), "missing", models.MemberPatch{})

	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestUpdateRefreshesLastActive(t *testing.T) {
	svc, _ := newTestRoster(t)
	ctx := context.Background()

	m := svc.Add(ctx, models.Member{Name: "Jane", Email: "jane@example.com"})
	position := "Senior Designer"
	updated, ok := svc.Update(ctx, m.ID, models.MemberPatch{Position: &position})

	require.True(t, ok)
	assert.Equal(t, "Senior Designer", updated.Position)
	assert.True(t, updated.LastActive.After(m.LastActive))

	// untouched fields stay put
	assert.Equal(t, m.JoinDate, updated.JoinDate)
	assert.Equal(t, m.Name, updated.Name)
	assert.Equal(t, m.Email, updated.Email)
}

func TestUpdateEmailRederivesNickname(t *testing.T) {
	svc, _ := newTestRoster(t)
	ctx := context.Background()

	m := svc.Add(ctx, models.Member{Name: "Jane", Email: "jane@example.com"})
	email := "jane.doe@example.com"
	updated, ok := svc.Update(ctx, m.ID, models.MemberPatch{Email: &email})

	require.True(t, ok)
	assert.Equal(t, "Jane Doe", updated.Nickname)
}

func TestUpdateEmailWithExplicitNickname(t *testing.T) {
	svc, _ := newTestRoster(t)
	ctx := context.Background()

	m := svc.Add(ctx, models.Member{Name: "Jane", Email: "jane@example.com"})
	email := "jane.doe@example.com"
	nick := "JD"
	updated, ok := svc.Update(ctx, m.ID, models.MemberPatch{Email: &email, Nickname: &nick})

	require.True(t, ok)
	assert.Equal(t, "JD", updated.Nickname)
}

func TestDelete(t *testing.T) {
	svc, _ := newTestRoster(t)
	ctx := context.Background()

	a := svc.Add(ctx, models.Member{Name: "A", Email: "a@example.com"})
	b := svc.Add(ctx, models.Member{Name: "B", Email: "b@example.com"})
	c := svc.Add(ctx, models.Member{Name: "C", Email: "c@example.com"})

	assert.True(t, svc.Delete(ctx, b.ID))
	assert.False(t, svc.Delete(ctx, b.ID))

	all := svc.AllMembers(ctx)
	require.Len(t, all, 2)
	assert.Equal(t, a.ID, all[0].ID)
	assert.Equal(t, c.ID, all[1].ID)

	// index stays consistent after the in-place removal
	got, ok := svc.Get(ctx, c.ID)
	require.True(t, ok)
	assert.Equal(t, "C", got.Name)
}

func TestProjections(t *testing.T) {
	svc, _ := newTestRoster(t)
	ctx := context.Background()

	svc.Add(ctx, models.Member{Name: "Active", Email: "active@example.com"})
	svc.Add(ctx, models.Member{Name: "Away", Email: "away@example.com", Status: models.StatusAway})
	svc.AddInvited(ctx, models.Member{Name: "Pending", Email: "pending@example.com"})

	members := svc.Members(ctx)
	require.Len(t, members, 2)
	for _, m := range members {
		assert.NotEqual(t, models.StatusInvited, m.Status)
	}

	invited := svc.InvitedMembers(ctx)
	require.Len(t, invited, 1)
	assert.Equal(t, "Pending", invited[0].Name)

	team := svc.TeamMembers(ctx)
	assert.Len(t, team, 3)

	// members and invitedMembers partition allMembers by id
	ids := make(map[string]bool)
	for _, m := range members {
		ids[m.ID] = true
	}
	for _, m := range invited {
		ids[m.ID] = true
	}
	all := svc.AllMembers(ctx)
	require.Len(t, all, 3)
	for _, m := range all {
		assert.True(t, ids[m.ID])
	}
}

func TestProjectionsReturnCopies(t *testing.T) {
	svc, _ := newTestRoster(t)
	ctx := context.Background()

	m := svc.Add(ctx, models.Member{Name: "Jane", Email: "jane@example.com", Skills: []string{"go"}})

	members := svc.Members(ctx)
	require.Len(t, members, 1)
	members[0].Name = "Mutated"
	members[0].Skills[0] = "mutated"

	got, ok := svc.Get(ctx, m.ID)
	require.True(t, ok)
	assert.Equal(t, "Jane", got.Name)
	assert.Equal(t, []string{"go"}, got.Skills)
}

func TestHydrationRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := mirror.NewMemory()

	svc := NewRosterService(ctx, store, zap.NewNop())
	added := svc.Add(ctx, models.Member{Name: "Jane", Email: "jane@example.com", Skills: []string{"go"}})
	svc.AddInvited(ctx, models.Member{Email: "pending@example.com"})

	reloaded := NewRosterService(ctx, store, zap.NewNop())
	all := reloaded.AllMembers(ctx)
	require.Len(t, all, 2)
	assert.Equal(t, added.ID, all[0].ID)
	assert.Equal(t, "Jane", all[0].Name)
	assert.Equal(t, models.StatusInvited, all[1].Status)
}

func TestHydrationFillsMissingDefaults(t *testing.T) {
	ctx := context.Background()
	store := mirror.NewMemory()
	require.NoError(t, store.Save(ctx, []models.Member{
		{ID: "legacy-1", Email: "old.record@example.com"},
	}))

	svc := NewRosterService(ctx, store, zap.NewNop())

	got, ok := svc.Get(ctx, "legacy-1")
	require.True(t, ok)
	assert.Equal(t, "Old Record", got.Nickname)
	assert.Equal(t, models.StatusActive, got.Status)
	assert.NotEmpty(t, got.Avatar)
	assert.NotNil(t, got.Skills)
}

func TestHydrationUnreadableSnapshotStartsEmpty(t *testing.T) {
	svc := NewRosterService(context.Background(), brokenMirror{}, zap.NewNop())
	assert.Empty(t, svc.AllMembers(context.Background()))
}

func TestMutationsSurviveSaveFailure(t *testing.T) {
	ctx := context.Background()
	svc := NewRosterService(ctx, brokenMirror{}, zap.NewNop())

	m := svc.Add(ctx, models.Member{Name: "Jane", Email: "jane@example.com"})

	got, ok := svc.Get(ctx, m.ID)
	require.True(t, ok)
	assert.Equal(t, "Jane", got.Name)
	assert.Len(t, svc.AllMembers(ctx), 1)
}
