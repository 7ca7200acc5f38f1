package dto

import "github.com/AlpianPPLG/workvibe/internal/models"

type CreateMemberRequest struct {
	Name       string           `json:"name"`
	Email      string           `json:"email"`
	Nickname   string           `json:"nickname"`
	Role       string           `json:"role"`
	Status     string           `json:"status"`
	Position   string           `json:"position"`
	Department string           `json:"department"`
	Phone      string           `json:"phone"`
	Bio        string           `json:"bio"`
	Avatar     string           `json:"avatar"`
	Skills     []string         `json:"skills"`
	Projects   *models.Projects `json:"projects"`
}

// UpdateMemberRequest is a partial update; absent fields leave the record
// untouched, which is why everything is a pointer.
type UpdateMemberRequest struct {
	Name       *string          `json:"name"`
	Email      *string          `json:"email"`
	Nickname   *string          `json:"nickname"`
	Role       *string          `json:"role"`
	Status     *string          `json:"status"`
	Position   *string          `json:"position"`
	Department *string          `json:"department"`
	Phone      *string          `json:"phone"`
	Bio        *string          `json:"bio"`
	Avatar     *string          `json:"avatar"`
	Skills     *[]string        `json:"skills"`
	Projects   *models.Projects `json:"projects"`
}

type InviteMemberRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type TeamStatsResponse struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
	Away     int `json:"away"`
	Invited  int `json:"invited"`
	Admins   int `json:"admins"`
}
