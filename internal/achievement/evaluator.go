// Package achievement decides which locked achievements a user has just
// earned. Rules are a fixed table over a snapshot of the user's stats; the
// evaluator never touches storage.
package achievement

import (
	"time"

	"github.com/mlukichev/clicker-backend/internal/game"
	"github.com/mlukichev/clicker-backend/internal/model"
)

// Stats is the snapshot a rule is tested against.
type Stats struct {
	Score           int64
	TotalProduction int64
	HasUpgrade      bool
}

type Rule func(Stats) bool

var rules = map[game.AchievementKind]Rule{
	game.AchievementFirstClick:    func(s Stats) bool { return s.Score >= 1 },
	game.AchievementHundredClicks: func(s Stats) bool { return s.Score >= 100 },
	game.AchievementFirstUpgrade:  func(s Stats) bool { return s.HasUpgrade },
	game.AchievementThousand:      func(s Stats) bool { return s.Score >= 1000 },
	game.AchievementAutomation:    func(s Stats) bool { return s.TotalProduction >= 10 },
	game.AchievementMillionaire:   func(s Stats) bool { return s.Score >= 1_000_000 },
}

// NewStats derives the snapshot from the user's current state.
func NewStats(u *model.User, upgrades []model.Upgrade, totalProduction int64) Stats {
	hasUpgrade := false
	for i := range upgrades {
		if upgrades[i].Level > 0 {
			hasUpgrade = true
			break
		}
	}
	return Stats{Score: u.Score, TotalProduction: totalProduction, HasUpgrade: hasUpgrade}
}

// Evaluate tests every still-locked achievement against its rule, unlocks
// the ones that pass (stamping achieved_at = now in place) and returns them.
// Rows with no matching rule stay locked. Already-unlocked rows must not be
// passed in; unlocking is monotonic either way.
func Evaluate(locked []*model.Achievement, stats Stats, now time.Time) []*model.Achievement {
	var unlocked []*model.Achievement
	for _, a := range locked {
		if a.IsUnlocked {
			continue
		}
		kind, ok := game.AchievementKindByName(a.Name)
		if !ok {
			continue
		}
		rule, ok := rules[kind]
		if !ok || !rule(stats) {
			continue
		}
		a.Unlock(now)
		unlocked = append(unlocked, a)
	}
	return unlocked
}
