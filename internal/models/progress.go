package models

import (
	"encoding/json"
	"time"
)

// Group is the set of collaborators on a unit of work. A missing or malformed
// group degrades to a singleton "meself" team rather than failing the load.
type Group struct {
	Members []GroupMember `json:"members"`
}

type GroupMember struct {
	UserLogin string `json:"userLogin"`
}

// UnmarshalJSON tolerates a malformed members field so one bad group record
// cannot abort decoding a whole query result.
func (g *Group) UnmarshalJSON(data []byte) error {
	var raw struct {
		Members json.RawMessage `json:"members"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	var members []GroupMember
	if err := json.Unmarshal(raw.Members, &members); err != nil {
		return nil
	}
	g.Members = members
	return nil
}

// Teammates returns the collaborator logins, falling back to "meself" for
// solo work or groups without usable members.
func (g *Group) Teammates() []string {
	if g == nil || len(g.Members) == 0 {
		return []string{"meself"}
	}
	logins := make([]string, len(g.Members))
	for i, m := range g.Members {
		logins[i] = m.UserLogin
	}
	return logins
}

// ProgressItem is an ungraded, unfinished unit of work.
type ProgressItem struct {
	ID        int       `json:"id"`
	EventID   int       `json:"eventId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Path      string    `json:"path"`
	Group     *Group    `json:"group"`
}

// CompletedItem is a finished, graded unit of work in the user's home event.
type CompletedItem struct {
	ObjectID  int       `json:"objectId"`
	Path      string    `json:"path"`
	CreatedAt time.Time `json:"createdAt"`
	Group     *Group    `json:"group"`
}

// XPEntry is a single xp transaction scoped to one event.
type XPEntry struct {
	ObjectID  int       `json:"objectId"`
	Path      string    `json:"path"`
	Amount    int       `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuditEntry is a peer-review transaction of type "up" or "down".
type AuditEntry struct {
	Attrs     AuditAttrs `json:"attrs"`
	Type      string     `json:"type"`
	ObjectID  int        `json:"objectId"`
	Path      string     `json:"path"`
	Amount    int        `json:"amount"`
	CreatedAt time.Time  `json:"createdAt"`
}

type AuditAttrs struct {
	AuditID int64 `json:"auditId"`
}

// SkillEntry is the highest-amount transaction for one skill category.
type SkillEntry struct {
	ObjectID  int       `json:"objectId"`
	EventID   int       `json:"eventId"`
	Type      string    `json:"type"`
	Amount    int       `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
}
