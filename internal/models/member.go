package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Member roles
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
	RoleGuest  = "guest"
)

// Member statuses. Invited members are pending invitations; nothing promotes
// them to active automatically, only an explicit update does.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusInvited  = "invited"
	StatusAway     = "away"
)

func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleMember, RoleGuest:
		return true
	}
	return false
}

func ValidStatus(status string) bool {
	switch status {
	case StatusActive, StatusInactive, StatusInvited, StatusAway:
		return true
	}
	return false
}

// ProjectRef is a structured project assignment on a member.
type ProjectRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}

// Projects tolerates both persisted representations of a member's projects:
// a bare count written by older snapshots and a list of project references
// written by the team view. Whichever representation was loaded is the one
// written back out.
type Projects struct {
	Refs []ProjectRef
	N    int
}

// Count normalizes either representation to a number of projects.
func (p Projects) Count() int {
	if p.Refs != nil {
		return len(p.Refs)
	}
	return p.N
}

// IsZero reports whether the field was never set in either representation.
func (p Projects) IsZero() bool {
	return p.Refs == nil && p.N == 0
}

func (p Projects) MarshalJSON() ([]byte, error) {
	if p.Refs != nil {
		return json.Marshal(p.Refs)
	}
	return json.Marshal(p.N)
}

func (p *Projects) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*p = Projects{N: n}
		return nil
	}
	var refs []ProjectRef
	if err := json.Unmarshal(data, &refs); err == nil {
		if refs == nil {
			refs = []ProjectRef{}
		}
		*p = Projects{Refs: refs}
		return nil
	}
	// null or anything unrecognized resets to the empty count form
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid projects value: %w", err)
	}
	if raw == nil {
		*p = Projects{}
		return nil
	}
	return fmt.Errorf("invalid projects value: %s", data)
}

// Member is the canonical roster record. Field names match the persisted
// snapshot layout, so older snapshots stay readable.
type Member struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Nickname   string    `json:"nickname"`
	Role       string    `json:"role"`
	Status     string    `json:"status"`
	Position   string    `json:"position"`
	Department string    `json:"department"`
	Phone      string    `json:"phone"`
	JoinDate   time.Time `json:"joinDate"`
	LastActive time.Time `json:"lastActive"`
	Avatar     string    `json:"avatar"`
	Bio        string    `json:"bio"`
	Skills     []string  `json:"skills"`
	Projects   Projects  `json:"projects"`
}

// Clone returns a copy that shares no mutable state with the receiver.
// Empty slices stay empty, not nil, so the persisted and serialized
// representations survive the copy.
func (m Member) Clone() Member {
	out := m
	if m.Skills != nil {
		out.Skills = make([]string, len(m.Skills))
		copy(out.Skills, m.Skills)
	}
	if m.Projects.Refs != nil {
		out.Projects.Refs = make([]ProjectRef, len(m.Projects.Refs))
		copy(out.Projects.Refs, m.Projects.Refs)
	}
	return out
}

// TeamMember is the flattened, display-oriented record the team view
// exposes: projects normalized to a count, skills never nil.
type TeamMember struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Nickname   string    `json:"nickname"`
	Role       string    `json:"role"`
	Status     string    `json:"status"`
	Phone      string    `json:"phone"`
	JoinDate   time.Time `json:"joinDate"`
	LastActive time.Time `json:"lastActive"`
	Avatar     string    `json:"avatar"`
	Skills     []string  `json:"skills"`
	Projects   int       `json:"projects"`
}

// TeamRecord reshapes the member for the team view.
func (m Member) TeamRecord() TeamMember {
	skills := make([]string, len(m.Skills))
	copy(skills, m.Skills)
	return TeamMember{
		ID:         m.ID,
		Name:       m.Name,
		Email:      m.Email,
		Nickname:   m.Nickname,
		Role:       m.Role,
		Status:     m.Status,
		Phone:      m.Phone,
		JoinDate:   m.JoinDate,
		LastActive: m.LastActive,
		Avatar:     m.Avatar,
		Skills:     skills,
		Projects:   m.Projects.Count(),
	}
}

// MemberPatch is a partial update; nil fields are left untouched.
type MemberPatch struct {
	Name       *string
	Email      *string
	Nickname   *string
	Role       *string
	Status     *string
	Position   *string
	Department *string
	Phone      *string
	Bio        *string
	Avatar     *string
	Skills     *[]string
	Projects   *Projects
}
