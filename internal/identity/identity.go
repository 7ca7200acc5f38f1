// Package identity derives display defaults for roster members: nicknames
// from email addresses and placeholder avatar URLs from display names. All
// functions are pure; the avatar URL is never fetched here.
package identity

import (
	"net/url"
	"strings"
	"time"

	"github.com/AlpianPPLG/workvibe/internal/models"
)

const avatarEndpoint = "https://ui-avatars.com/api/"

// Nickname derives a display nickname from an email address: the local part
// is split on non-alphanumeric separators, each token title-cased, rejoined
// with spaces and truncated to 15 characters. Falls back to "user" when
// nothing usable remains.
func Nickname(email string) string {
	if email == "" {
		return "user"
	}
	local := email
	if i := strings.IndexByte(email, '@'); i >= 0 {
		local = email[:i]
	}
	mapped := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return ' '
	}, local)

	words := strings.Split(mapped, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	nick := strings.TrimSpace(strings.Join(words, " "))
	if len(nick) > 15 {
		nick = nick[:15]
	}
	if nick == "" {
		return "user"
	}
	return nick
}

// AvatarURL formats a placeholder avatar image URL for a display name.
func AvatarURL(display string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(display), "+", "%20")
	return avatarEndpoint + "?name=" + escaped + "&background=random"
}

// FillDefaults completes a member record in place so that it satisfies the
// roster invariants: non-empty nickname and avatar, timestamps set, skills
// and projects never nil, status defaulted to active. This is the single
// defaulting point; records written by older snapshots pass through it on
// load, new records pass through it on create.
func FillDefaults(m *models.Member, now time.Time) {
	if m.Nickname == "" {
		m.Nickname = Nickname(m.Email)
	}
	if m.Status == "" {
		m.Status = models.StatusActive
	}
	if m.JoinDate.IsZero() {
		m.JoinDate = now
	}
	if m.LastActive.IsZero() {
		m.LastActive = now
	}
	if m.Skills == nil {
		m.Skills = []string{}
	}
	if m.Projects.IsZero() {
		m.Projects.Refs = []models.ProjectRef{}
	}
	if m.Avatar == "" {
		display := m.Nickname
		if display == "" {
			display = m.Name
		}
		m.Avatar = AvatarURL(display)
	}
}
