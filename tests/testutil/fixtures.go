package testutil

import (
	"fmt"
	"time"

	"github.com/AlpianPPLG/workvibe/internal/models"
)

// Fixtures provides factory methods for creating test data
type Fixtures struct {
	counter int
}

// NewFixtures creates a new fixtures factory
func NewFixtures() *Fixtures {
	return &Fixtures{}
}

// Member creates a test member with default values
func (f *Fixtures) Member(opts ...MemberOption) models.Member {
	f.counter++

	now := time.Now().UTC()
	m := models.Member{
		ID:         fmt.Sprintf("%d", now.UnixMilli()+int64(f.counter)),
		Name:       fmt.Sprintf("Test Member %d", f.counter),
		Email:      fmt.Sprintf("member%d@example.com", f.counter),
		Nickname:   fmt.Sprintf("Member%d", f.counter),
		Role:       models.RoleMember,
		Status:     models.StatusActive,
		JoinDate:   now,
		LastActive: now,
		Avatar:     "https://ui-avatars.com/api/?name=Test&background=random",
		Skills:     []string{},
	}

	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// MemberOption configures a test member
type MemberOption func(*models.Member)

// WithID sets the member's id
func WithID(id string) MemberOption {
	return func(m *models.Member) {
		m.ID = id
	}
}

// WithEmail sets the member's email
func WithEmail(email string) MemberOption {
	return func(m *models.Member) {
		m.Email = email
	}
}

// WithName sets the member's name
func WithName(name string) MemberOption {
	return func(m *models.Member) {
		m.Name = name
	}
}

// WithRole sets the member's role
func WithRole(role string) MemberOption {
	return func(m *models.Member) {
		m.Role = role
	}
}

// WithStatus sets the member's status
func WithStatus(status string) MemberOption {
	return func(m *models.Member) {
		m.Status = status
	}
}

// Invited marks the member as a pending invitation
func Invited() MemberOption {
	return func(m *models.Member) {
		m.Status = models.StatusInvited
		m.ID = "invite-" + m.ID
	}
}

// WithSkills sets the member's skills
func WithSkills(skills ...string) MemberOption {
	return func(m *models.Member) {
		m.Skills = skills
	}
}

// WithProjects sets the member's project references
func WithProjects(refs ...models.ProjectRef) MemberOption {
	return func(m *models.Member) {
		m.Projects = models.Projects{Refs: refs}
	}
}
