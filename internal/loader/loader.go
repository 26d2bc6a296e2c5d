// Package loader orchestrates the three profile queries in dependency order
// and reshapes the results for rendering.
package loader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/AllenLeeyn/graphql/internal/models"
	"github.com/AllenLeeyn/graphql/internal/platform"
)

// API is the slice of the platform client the loader needs.
type API interface {
	Execute(ctx context.Context, token, query string) (json.RawMessage, error)
}

// Result carries everything the renderers need for one page view. Notices
// hold user-facing messages for sections that failed to load; the rest of
// the page still renders.
type Result struct {
	User      models.UserProfile
	Wip       []models.ProgressItem
	Completed []models.CompletedItem
	XP        []models.XPEntry
	Audits    []models.AuditEntry
	Skills    []models.SkillEntry
	Notices   []string
}

type Loader struct {
	api API
}

func New(api API) *Loader {
	return &Loader{api: api}
}

// Load runs the three queries strictly in order: user+wip first, then the
// event-scoped project history, then skills. Only a first-step failure fails
// the whole load; later steps degrade to notices and empty sections.
func (l *Loader) Load(ctx context.Context, token string) (*Result, error) {
	data, err := l.api.Execute(ctx, token, platform.UserInfoQuery)
	if err != nil {
		return nil, err
	}

	var step1 struct {
		User []models.UserProfile  `json:"user"`
		Wip  []models.ProgressItem `json:"wip"`
	}
	if err := json.Unmarshal(data, &step1); err != nil {
		return nil, fmt.Errorf("unreadable user payload: %w", err)
	}
	if len(step1.User) == 0 {
		return nil, errors.New("user record missing from response")
	}

	result := &Result{User: step1.User[0], Wip: step1.Wip}

	// The earliest in-progress item pins the home event. Without one there
	// is no event id to scope the project queries by, so those sections
	// are skipped rather than treated as a fatal error.
	if len(step1.Wip) == 0 {
		result.Notices = append(result.Notices, "No work in progress: project sections are unavailable.")
	} else {
		l.loadProjects(ctx, token, step1.Wip[0].EventID, result)
	}

	l.loadSkills(ctx, token, result)

	return result, nil
}

func (l *Loader) loadProjects(ctx context.Context, token string, eventID int, result *Result) {
	data, err := l.api.Execute(ctx, token, platform.ProjectQuery(eventID))
	if err != nil {
		result.Notices = append(result.Notices, err.Error())
		return
	}

	var step2 struct {
		Completed []models.CompletedItem `json:"completed"`
		XP        []models.XPEntry       `json:"xp_view"`
		Audits    []models.AuditEntry    `json:"audits"`
	}
	if err := json.Unmarshal(data, &step2); err != nil {
		result.Notices = append(result.Notices, "Project history could not be read.")
		return
	}

	result.Completed = step2.Completed
	result.XP = step2.XP
	result.Audits = step2.Audits
}

func (l *Loader) loadSkills(ctx context.Context, token string, result *Result) {
	data, err := l.api.Execute(ctx, token, platform.SkillQuery)
	if err != nil {
		result.Notices = append(result.Notices, err.Error())
		return
	}

	var step3 struct {
		Skills []models.SkillEntry `json:"skills"`
	}
	if err := json.Unmarshal(data, &step3); err != nil {
		result.Notices = append(result.Notices, "Skills could not be read.")
		return
	}

	result.Skills = dedupeSkills(step3.Skills)
}

// dedupeSkills keeps one entry per skill category. The query's distinct_on
// already guarantees this; a duplicate-tolerant pass keeps the larger amount
// regardless of what the server sends.
func dedupeSkills(skills []models.SkillEntry) []models.SkillEntry {
	if len(skills) == 0 {
		return skills
	}
	seen := make(map[string]int, len(skills))
	out := make([]models.SkillEntry, 0, len(skills))
	for _, s := range skills {
		if i, ok := seen[s.Type]; ok {
			if s.Amount > out[i].Amount {
				out[i] = s
			}
			continue
		}
		seen[s.Type] = len(out)
		out = append(out, s)
	}
	return out
}
