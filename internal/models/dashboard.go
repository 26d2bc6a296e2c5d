package models

// Dashboard is the full profile payload: per-user text fields, the four
// rendered SVG documents, and the three tabular side panels. It is assembled
// fresh on every request; nothing is cached between page loads.
type Dashboard struct {
	User    UserInfo `json:"user"`
	Charts  ChartSet `json:"charts"`
	Tables  TableSet `json:"tables"`
	Notices []string `json:"notices,omitempty"`
}

// UserInfo carries the formatted identity fields shown above the charts.
type UserInfo struct {
	ID          int     `json:"id"`
	Login       string  `json:"login"`
	Campus      string  `json:"campus"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Gender      string  `json:"gender"`
	Nationality string  `json:"nationality"`
	AuditRatio  float64 `json:"audit_ratio"`
}

// ChartSet holds one SVG document per visualization container.
type ChartSet struct {
	Timeline string `json:"timeline"`
	XP       string `json:"xp"`
	Ratio    string `json:"ratio"`
	Skills   string `json:"skills"`
}

type TableSet struct {
	XP     []XPRow    `json:"xp"`
	Audits []AuditRow `json:"audits"`
	Skills []SkillRow `json:"skills"`
}

type XPRow struct {
	Path   string `json:"path"`
	Amount string `json:"amount"`
	Date   string `json:"date"`
}

type AuditRow struct {
	AuditID string `json:"audit_id"`
	Type    string `json:"type"`
	Path    string `json:"path"`
	Amount  int    `json:"amount"`
	Down    bool   `json:"down"`
}

type SkillRow struct {
	Name   string `json:"name"`
	Amount int    `json:"amount"`
}
