package economy

import (
	"testing"
	"time"

	"github.com/mlukichev/clicker-backend/internal/model"
)

func ts(sec int64) time.Time {
	return time.Unix(sec, 0)
}

func TestCurrentCost(t *testing.T) {
	tests := []struct {
		name  string
		base  int64
		mult  float64
		level int
		want  int64
	}{
		{"level zero is base", 15, 1.15, 0, 15},
		{"level one", 15, 1.15, 1, 17},
		{"level two", 15, 1.15, 2, 19},
		{"flat multiplier", 100, 1.0, 7, 100},
		{"big base", 10000, 1.15, 1, 11500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			up := &model.Upgrade{BaseCost: tt.base, CostMultiplier: tt.mult, Level: tt.level}
			if got := CurrentCost(up); got != tt.want {
				t.Fatalf("got=%d want=%d", got, tt.want)
			}
		})
	}
}

func TestCurrentCostMonotonic(t *testing.T) {
	up := &model.Upgrade{BaseCost: 15, CostMultiplier: 1.15}
	prev := CurrentCost(up)
	for lvl := 1; lvl <= 30; lvl++ {
		up.Level = lvl
		cur := CurrentCost(up)
		if cur <= prev {
			t.Fatalf("cost not strictly increasing at level %d: %d <= %d", lvl, cur, prev)
		}
		prev = cur
	}
}

func TestApplyIdleProduction(t *testing.T) {
	tests := []struct {
		name       string
		perSecond  int64
		last       time.Time
		now        time.Time
		wantEarned int64
	}{
		{"zero rate earns nothing", 0, ts(100), ts(200), 0},
		{"one per second", 1, ts(100), ts(200), 100},
		{"fraction truncates", 3, ts(100), ts(102).Add(500 * time.Millisecond), 7},
		{"no elapsed time", 5, ts(100), ts(100), 0},
		{"clock went backwards", 5, ts(200), ts(100), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &model.User{Score: 10, LastUpdate: tt.last}
			earned := ApplyIdleProduction(u, tt.perSecond, tt.now)
			if earned != tt.wantEarned {
				t.Fatalf("earned=%d want=%d", earned, tt.wantEarned)
			}
			if u.Score != 10+tt.wantEarned {
				t.Fatalf("score=%d want=%d", u.Score, 10+tt.wantEarned)
			}
			if !u.LastUpdate.Equal(tt.now) {
				t.Fatalf("last_update not advanced: %v", u.LastUpdate)
			}
		})
	}
}

func TestApplyIdleProductionTwiceIsNoExtra(t *testing.T) {
	u := &model.User{LastUpdate: ts(0)}
	now := ts(60)
	ApplyIdleProduction(u, 2, now)
	if u.Score != 120 {
		t.Fatalf("first pass score=%d want=120", u.Score)
	}
	if earned := ApplyIdleProduction(u, 2, now); earned != 0 {
		t.Fatalf("second pass earned=%d want=0", earned)
	}
	if u.Score != 120 {
		t.Fatalf("second pass changed score to %d", u.Score)
	}
}

func TestPurchaseUpgrade(t *testing.T) {
	now := ts(500)

	t.Run("exact cost succeeds", func(t *testing.T) {
		u := &model.User{Score: 15}
		up := &model.Upgrade{BaseCost: 15, CostMultiplier: 1.15}
		if err := PurchaseUpgrade(u, up, now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.Score != 0 || up.Level != 1 {
			t.Fatalf("score=%d level=%d", u.Score, up.Level)
		}
		if up.PurchasedAt == nil || !up.PurchasedAt.Equal(now) {
			t.Fatalf("purchased_at not stamped")
		}
	})

	t.Run("one short fails and changes nothing", func(t *testing.T) {
		u := &model.User{Score: 14}
		up := &model.Upgrade{BaseCost: 15, CostMultiplier: 1.15}
		if err := PurchaseUpgrade(u, up, now); err != ErrInsufficientFunds {
			t.Fatalf("err=%v want=ErrInsufficientFunds", err)
		}
		if u.Score != 14 || up.Level != 0 || up.PurchasedAt != nil {
			t.Fatalf("state changed on failed purchase")
		}
	})

	t.Run("repeat purchase keeps first timestamp", func(t *testing.T) {
		first := ts(100)
		u := &model.User{Score: 100}
		up := &model.Upgrade{BaseCost: 15, CostMultiplier: 1.15, Level: 1, PurchasedAt: &first}
		if err := PurchaseUpgrade(u, up, now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !up.PurchasedAt.Equal(first) {
			t.Fatalf("purchased_at moved to %v", up.PurchasedAt)
		}
	})
}

func TestPurchaseSkin(t *testing.T) {
	now := ts(500)

	t.Run("success stamps acquired_at", func(t *testing.T) {
		u := &model.User{Score: 1000}
		s := &model.Skin{BaseCost: 1000}
		if err := PurchaseSkin(u, s, now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.Score != 0 || !s.IsOwned() {
			t.Fatalf("score=%d owned=%v", u.Score, s.IsOwned())
		}
	})

	t.Run("insufficient funds", func(t *testing.T) {
		u := &model.User{Score: 999}
		s := &model.Skin{BaseCost: 1000}
		if err := PurchaseSkin(u, s, now); err != ErrInsufficientFunds {
			t.Fatalf("err=%v", err)
		}
		if u.Score != 999 || s.IsOwned() {
			t.Fatalf("state changed on failed purchase")
		}
	})

	t.Run("repurchase rejected", func(t *testing.T) {
		owned := ts(100)
		u := &model.User{Score: 5000}
		s := &model.Skin{BaseCost: 1000, AcquiredAt: &owned}
		if err := PurchaseSkin(u, s, now); err != ErrAlreadyOwned {
			t.Fatalf("err=%v want=ErrAlreadyOwned", err)
		}
		if u.Score != 5000 {
			t.Fatalf("score deducted on rejected repurchase")
		}
	})
}

func TestActivateSkin(t *testing.T) {
	owned := ts(100)
	newSet := func() []model.Skin {
		return []model.Skin{
			{ID: 1, AcquiredAt: &owned, IsActive: true},
			{ID: 2, AcquiredAt: &owned},
			{ID: 3},
		}
	}

	t.Run("switches the single active skin", func(t *testing.T) {
		skins := newSet()
		if err := ActivateSkin(skins, &skins[1]); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		active := 0
		for i := range skins {
			if skins[i].IsActive {
				active++
				if skins[i].ID != 2 {
					t.Fatalf("wrong skin active: %d", skins[i].ID)
				}
			}
		}
		if active != 1 {
			t.Fatalf("active count=%d want=1", active)
		}
	})

	t.Run("unowned skin rejected", func(t *testing.T) {
		skins := newSet()
		if err := ActivateSkin(skins, &skins[2]); err != ErrNotOwned {
			t.Fatalf("err=%v want=ErrNotOwned", err)
		}
		if !skins[0].IsActive {
			t.Fatalf("previous active skin lost its flag on failed activation")
		}
	})
}

func TestTotalProduction(t *testing.T) {
	ups := []model.Upgrade{
		{BaseProduction: 1, Level: 3},
		{BaseProduction: 5, Level: 2},
		{BaseProduction: 20, Level: 0},
	}
	if got := TotalProduction(ups); got != 13 {
		t.Fatalf("got=%d want=13", got)
	}
}
