// Package goal defines the layered goal records (yearly, quarterly, weekly).
package goal

import (
	"fmt"
	"strings"
)

// Horizon selects which flat storage key a goal lives under.
type Horizon string

const (
	Yearly    Horizon = "yearly"
	Quarterly Horizon = "quarterly"
	Weekly    Horizon = "weekly"
)

var validHorizons = []Horizon{Yearly, Quarterly, Weekly}

func ValidateHorizon(h Horizon) error {
	for _, v := range validHorizons {
		if h == v {
			return nil
		}
	}
	return fmt.Errorf("invalid horizon %q: must be one of yearly, quarterly, weekly", h)
}

// CurrentSchema is the version written on new goal records.
const CurrentSchema = 2

// Goal is a single intention at one planning horizon. Quarter applies to
// quarterly goals, Step and WeekStart to weekly ones.
type Goal struct {
	ID        string  `json:"id"`
	Text      string  `json:"text"`
	Completed bool    `json:"completed"`
	Horizon   Horizon `json:"horizon,omitempty"`
	Quarter   int     `json:"quarter,omitempty"`
	Step      int     `json:"step,omitempty"`
	WeekStart string  `json:"weekStartDate,omitempty"`
	Schema    int     `json:"schema,omitempty"`
}

// New returns an unstored goal for the given horizon.
func New(horizon Horizon, text string) *Goal {
	return &Goal{
		Text:    text,
		Horizon: horizon,
		Schema:  CurrentSchema,
	}
}

func (g *Goal) Validate() error {
	if g.ID == "" {
		return fmt.Errorf("goal id is required")
	}
	if strings.TrimSpace(g.Text) == "" {
		return fmt.Errorf("goal text is required")
	}
	if err := ValidateHorizon(g.Horizon); err != nil {
		return err
	}
	if g.Horizon == Quarterly && (g.Quarter < 1 || g.Quarter > 4) {
		return fmt.Errorf("quarterly goal quarter must be 1..4, got %d", g.Quarter)
	}
	return nil
}

// IncompleteTexts filters a goal list down to the unfinished goal text,
// in order. It feeds the suggestion prompt context.
func IncompleteTexts(goals []*Goal) []string {
	texts := make([]string, 0, len(goals))
	for _, g := range goals {
		if g == nil || g.Completed {
			continue
		}
		if t := strings.TrimSpace(g.Text); t != "" {
			texts = append(texts, t)
		}
	}
	return texts
}
