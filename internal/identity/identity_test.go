package identity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AlpianPPLG/workvibe/internal/models"
)

func TestNickname(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{"simple local part", "john@example.com", "John"},
		{"dot separated", "jane.doe@example.com", "Jane Doe"},
		{"underscore separated", "mary_ann@example.com", "Mary Ann"},
		{"digits kept", "dev42@example.com", "Dev42"},
		{"mixed separators", "a.b-c_d@example.com", "A B C D"},
		{"uppercase preserved", "JOHN.SMITH@example.com", "JOHN SMITH"},
		{"empty email", "", "user"},
		{"no local part", "@example.com", "user"},
		{"separators only", "._-@example.com", "user"},
		{"no at sign", "plainstring", "Plainstring"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Nickname(tt.email))
		})
	}
}

func TestNicknameTruncation(t *testing.T) {
	got := Nickname("extraordinarily.long.address@example.com")
	assert.LessOrEqual(t, len(got), 15)
	assert.Equal(t, "Extraordinarily", got)
}

func TestAvatarURL(t *testing.T) {
	assert.Equal(t,
		"https://ui-avatars.com/api/?name=John&background=random",
		AvatarURL("John"))
	assert.Equal(t,
		"https://ui-avatars.com/api/?name=Jane%20Doe&background=random",
		AvatarURL("Jane Doe"))
	assert.Equal(t,
		"https://ui-avatars.com/api/?name=A%26B&background=random",
		AvatarURL("A&B"))
}

func TestFillDefaults(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	m := models.Member{Name: "John Smith", Email: "john.smith@example.com"}
	FillDefaults(&m, now)

	assert.Equal(t, "John Smith", m.Nickname)
	assert.Equal(t, models.StatusActive, m.Status)
	assert.Equal(t, now, m.JoinDate)
	assert.Equal(t, now, m.LastActive)
	assert.NotNil(t, m.Skills)
	assert.Empty(t, m.Skills)
	assert.Equal(t, "https://ui-avatars.com/api/?name=John%20Smith&background=random", m.Avatar)
}

func TestFillDefaultsDerivesNicknameFromEmail(t *testing.T) {
	now := time.Now().UTC()

	m := models.Member{Email: "jane.doe@example.com"}
	FillDefaults(&m, now)

	assert.Equal(t, "Jane Doe", m.Nickname)
	assert.Contains(t, m.Avatar, "Jane%20Doe")
}

func TestFillDefaultsPreservesExplicitValues(t *testing.T) {
	now := time.Now().UTC()
	joined := now.Add(-24 * time.Hour)

	m := models.Member{
		Email:    "jane@example.com",
		Nickname: "JD",
		Status:   models.StatusAway,
		Avatar:   "https://cdn.example.com/jane.png",
		JoinDate: joined,
		Skills:   []string{"go"},
	}
	FillDefaults(&m, now)

	assert.Equal(t, "JD", m.Nickname)
	assert.Equal(t, models.StatusAway, m.Status)
	assert.Equal(t, "https://cdn.example.com/jane.png", m.Avatar)
	assert.Equal(t, joined, m.JoinDate)
	assert.Equal(t, []string{"go"}, m.Skills)
}
