package models

import (
	"fmt"
	"time"
)

// UserProfile is the identity and aggregate record returned by the user query.
// Read-only once fetched; nothing in the service mutates it.
type UserProfile struct {
	ID           int       `json:"id"`
	Login        string    `json:"login"`
	Attrs        UserAttrs `json:"attrs"`
	Campus       string    `json:"campus"`
	Labels       []Label   `json:"labels"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	AuditRatio   float64   `json:"auditRatio"`
	TotalUp      float64   `json:"totalUp"`
	TotalUpBonus float64   `json:"totalUpBonus"`
	TotalDown    float64   `json:"totalDown"`
}

type UserAttrs struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Gender      string `json:"gender"`
	Nationality string `json:"nationality"`
}

type Label struct {
	LabelID   int    `json:"labelId"`
	LabelName string `json:"labelName"`
}

// LabelName returns the first cohort label, or "" for unlabeled users.
func (u UserProfile) LabelName() string {
	if len(u.Labels) == 0 {
		return ""
	}
	return u.Labels[0].LabelName
}

func (u UserProfile) FullName() string {
	return fmt.Sprintf("%s %s", u.Attrs.FirstName, u.Attrs.LastName)
}

type LoginRequest struct {
	Identifier string `json:"identifier"`
	Secret     string `json:"secret"`
}

// Session is the server-side handle for a stored platform token.
type Session struct {
	ID        string    `json:"session_id"`
	ExpiresAt time.Time `json:"expires_at"`
}
