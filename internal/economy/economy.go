// Package economy is the pure game arithmetic: idle score accrual, upgrade
// cost/production curves and the purchase/activation state transitions. It
// does no I/O; callers pass the current time explicitly and persist results.
package economy

import (
	"errors"
	"math"
	"time"

	"github.com/mlukichev/clicker-backend/internal/model"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrAlreadyOwned      = errors.New("skin already owned")
	ErrNotOwned          = errors.New("skin not owned")
)

// ApplyIdleProduction credits score earned since the user's last update and
// advances last_update to now. Fractional production is truncated, no
// remainder carries over; negative elapsed time (clock skew) counts as zero.
// last_update always advances, even at zero rate, so the same interval is
// never credited twice. Returns the amount earned.
func ApplyIdleProduction(u *model.User, perSecond int64, now time.Time) int64 {
	elapsed := now.Sub(u.LastUpdate).Seconds()
	if elapsed < 0 {
		elapsed = 0
	}
	earned := int64(float64(perSecond) * elapsed)
	u.Score += earned
	u.LastUpdate = now
	return earned
}

// CurrentCost is base_cost * multiplier^level, truncated to an integer.
func CurrentCost(up *model.Upgrade) int64 {
	return int64(float64(up.BaseCost) * math.Pow(up.CostMultiplier, float64(up.Level)))
}

// CurrentProduction is base_production * level.
func CurrentProduction(up *model.Upgrade) int64 {
	return up.BaseProduction * int64(up.Level)
}

// TotalProduction sums current production over all of a user's upgrades,
// in score units per second.
func TotalProduction(ups []model.Upgrade) int64 {
	var total int64
	for i := range ups {
		total += CurrentProduction(&ups[i])
	}
	return total
}

// PurchaseUpgrade deducts the current cost and raises the level by one.
// The first successful purchase stamps purchased_at. On failure nothing
// changes.
func PurchaseUpgrade(u *model.User, up *model.Upgrade, now time.Time) error {
	cost := CurrentCost(up)
	if u.Score < cost {
		return ErrInsufficientFunds
	}
	u.Score -= cost
	up.Level++
	if up.PurchasedAt == nil {
		t := now
		up.PurchasedAt = &t
	}
	return nil
}

// PurchaseSkin deducts the base cost and stamps acquired_at. Buying a skin
// twice fails with ErrAlreadyOwned. On failure nothing changes.
func PurchaseSkin(u *model.User, s *model.Skin, now time.Time) error {
	if s.IsOwned() {
		return ErrAlreadyOwned
	}
	if u.Score < s.BaseCost {
		return ErrInsufficientFunds
	}
	u.Score -= s.BaseCost
	t := now
	s.AcquiredAt = &t
	return nil
}

// ActivateSkin makes target the only active skin in the set. target must
// point into skins and must already be owned.
func ActivateSkin(skins []model.Skin, target *model.Skin) error {
	if !target.IsOwned() {
		return ErrNotOwned
	}
	for i := range skins {
		skins[i].IsActive = false
	}
	target.IsActive = true
	return nil
}
