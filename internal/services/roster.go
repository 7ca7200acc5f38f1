package services

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/AlpianPPLG/workvibe/internal/identity"
	"github.com/AlpianPPLG/workvibe/internal/mirror"
	"github.com/AlpianPPLG/workvibe/internal/models"
)

// InviteIDPrefix marks records created through the invitation flow so they
// stay recognizable as invitation-sourced.
const InviteIDPrefix = "invite-"

// RosterService owns the canonical member list. All mutations are
// serialized under one mutex, mirrored to durable storage after every
// change, and never leave the list half-applied. The in-memory list stays
// authoritative even when a mirror write fails.
type RosterService struct {
	mu      sync.Mutex
	members []models.Member
	index   map[string]int
	mirror  mirror.Mirror
	logger  *zap.Logger
	lastID  int64
}

// NewRosterService hydrates the roster from the mirror. Records written by
// older snapshots pass through the same defaulting as freshly added ones;
// an absent or unreadable snapshot means an empty roster, not a failure.
func NewRosterService(ctx context.Context, m mirror.Mirror, logger *zap.Logger) *RosterService {
	s := &RosterService{
		members: []models.Member{},
		index:   make(map[string]int),
		mirror:  m,
		logger:  logger,
	}

	loaded, err := m.Load(ctx)
	if err != nil {
		logger.Warn("roster snapshot unreadable, starting empty", zap.Error(err))
		return s
	}
	now := time.Now().UTC()
	for _, member := range loaded {
		if member.ID == "" {
			member.ID = s.nextID("")
		}
		identity.FillDefaults(&member, now)
		if i, ok := s.index[member.ID]; ok {
			s.members[i] = member
			continue
		}
		s.index[member.ID] = len(s.members)
		s.members = append(s.members, member)
	}
	if len(s.members) > 0 {
		logger.Info("roster hydrated", zap.Int("members", len(s.members)))
	}
	return s
}

// nextID returns a wall-clock-millisecond id, nudged forward when the clock
// has not advanced since the previous one.
func (s *RosterService) nextID(prefix string) string {
	now := time.Now().UnixMilli()
	if now <= s.lastID {
		now = s.lastID + 1
	}
	s.lastID = now
	return prefix + strconv.FormatInt(now, 10)
}

// touch returns a lastActive strictly later than prev even when the clock
// has not moved between two mutations.
func touch(prev time.Time) time.Time {
	now := time.Now().UTC()
	if !now.After(prev) {
		now = prev.Add(time.Millisecond)
	}
	return now
}

// Add creates a member with generated id and resolved defaults. Status is
// taken from the input, defaulting to active. When a member with the same
// email already exists (case-insensitive) the new fields are merged into
// the existing record instead of creating a duplicate.
func (s *RosterService) Add(ctx context.Context, in models.Member) *models.Member {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.findByEmailLocked(in.Email); ok {
		s.mergeLocked(i, in)
		s.persistLocked(ctx)
		out := s.members[i].Clone()
		return &out
	}

	in.ID = s.nextID("")
	now := time.Now().UTC()
	in.JoinDate = now
	in.LastActive = now
	identity.FillDefaults(&in, now)

	s.index[in.ID] = len(s.members)
	s.members = append(s.members, in)
	s.persistLocked(ctx)

	out := in.Clone()
	return &out
}

// AddInvited is Add with status forced to invited and a distinguishing id
// prefix. Invited records show up in the teams and invited-only
// projections but not in the members projection.
func (s *RosterService) AddInvited(ctx context.Context, in models.Member) *models.Member {
	s.mu.Lock()
	defer s.mu.Unlock()

	in.Status = models.StatusInvited
	if i, ok := s.findByEmailLocked(in.Email); ok {
		s.mergeLocked(i, in)
		s.persistLocked(ctx)
		out := s.members[i].Clone()
		return &out
	}

	in.ID = s.nextID(InviteIDPrefix)
	now := time.Now().UTC()
	in.JoinDate = now
	in.LastActive = now
	identity.FillDefaults(&in, now)

	s.index[in.ID] = len(s.members)
	s.members = append(s.members, in)
	s.persistLocked(ctx)

	out := in.Clone()
	return &out
}

// Update shallow-merges the patch into the record and always refreshes
// lastActive. A changed email without an explicit nickname re-derives the
// nickname. Unknown ids are a no-op, reported by the second return value,
// never an error: callers routinely race updates against stale references.
func (s *RosterService) Update(ctx context.Context, id string, patch models.MemberPatch) (*models.Member, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	m := &s.members[i]

	if patch.Name != nil {
		m.Name = *patch.Name
	}
	if patch.Email != nil {
		m.Email = *patch.Email
		if patch.Nickname == nil {
			m.Nickname = identity.Nickname(*patch.Email)
		}
	}
	if patch.Nickname != nil {
		m.Nickname = *patch.Nickname
	}
	if patch.Role != nil {
		m.Role = *patch.Role
	}
	if patch.Status != nil {
		m.Status = *patch.Status
	}
	if patch.Position != nil {
		m.Position = *patch.Position
	}
	if patch.Department != nil {
		m.Department = *patch.Department
	}
	if patch.Phone != nil {
		m.Phone = *patch.Phone
	}
	if patch.Bio != nil {
		m.Bio = *patch.Bio
	}
	if patch.Avatar != nil {
		m.Avatar = *patch.Avatar
	}
	if patch.Skills != nil {
		m.Skills = append([]string(nil), (*patch.Skills)...)
	}
	if patch.Projects != nil {
		m.Projects = *patch.Projects
	}
	m.LastActive = touch(m.LastActive)

	s.persistLocked(ctx)

	out := m.Clone()
	return &out, true
}

// Delete removes the record in place, preserving the relative order of the
// remaining entries. Returns whether anything was actually removed.
func (s *RosterService) Delete(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return false
	}
	s.members = append(s.members[:i], s.members[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.members); j++ {
		s.index[s.members[j].ID] = j
	}
	s.persistLocked(ctx)
	return true
}

// Get returns a copy of the record, or false when the id is unknown.
func (s *RosterService) Get(_ context.Context, id string) (*models.Member, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	out := s.members[i].Clone()
	return &out, true
}

// Members is the primary projection: every record except pending
// invitations.
func (s *RosterService) Members(_ context.Context) []models.Member {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Member{}
	for _, m := range s.members {
		if m.Status != models.StatusInvited {
			out = append(out, m.Clone())
		}
	}
	return out
}

// TeamMembers is the display-oriented projection for the teams view: all
// records, invited included, flattened with projects normalized to a
// count.
func (s *RosterService) TeamMembers(_ context.Context) []models.TeamMember {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.TeamMember, len(s.members))
	for i, m := range s.members {
		out[i] = m.TeamRecord()
	}
	return out
}

// InvitedMembers returns only pending invitations.
func (s *RosterService) InvitedMembers(_ context.Context) []models.Member {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Member{}
	for _, m := range s.members {
		if m.Status == models.StatusInvited {
			out = append(out, m.Clone())
		}
	}
	return out
}

// AllMembers returns the canonical list, unfiltered, in insertion order.
func (s *RosterService) AllMembers(_ context.Context) []models.Member {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Member, len(s.members))
	for i, m := range s.members {
		out[i] = m.Clone()
	}
	return out
}

func (s *RosterService) findByEmailLocked(email string) (int, bool) {
	if email == "" {
		return 0, false
	}
	lower := strings.ToLower(email)
	for i, m := range s.members {
		if strings.ToLower(m.Email) == lower {
			return i, true
		}
	}
	return 0, false
}

// mergeLocked applies last-write-wins per supplied field onto an existing
// record, keeping its id and joinDate.
func (s *RosterService) mergeLocked(i int, in models.Member) {
	m := &s.members[i]
	if in.Name != "" {
		m.Name = in.Name
	}
	if in.Email != "" {
		m.Email = in.Email
	}
	if in.Nickname != "" {
		m.Nickname = in.Nickname
	}
	if in.Role != "" {
		m.Role = in.Role
	}
	if in.Status != "" {
		m.Status = in.Status
	}
	if in.Position != "" {
		m.Position = in.Position
	}
	if in.Department != "" {
		m.Department = in.Department
	}
	if in.Phone != "" {
		m.Phone = in.Phone
	}
	if in.Bio != "" {
		m.Bio = in.Bio
	}
	if in.Avatar != "" {
		m.Avatar = in.Avatar
	}
	if in.Skills != nil {
		m.Skills = append([]string(nil), in.Skills...)
	}
	if !in.Projects.IsZero() {
		m.Projects = in.Projects
	}
	m.LastActive = touch(m.LastActive)
}

// persistLocked mirrors the whole snapshot. A failed write is logged and
// otherwise ignored: the in-memory roster stays authoritative for the rest
// of the session.
func (s *RosterService) persistLocked(ctx context.Context) {
	if err := s.mirror.Save(ctx, s.members); err != nil {
		s.logger.Error("failed to persist roster snapshot", zap.Error(err))
	}
}
