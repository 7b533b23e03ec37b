package actor

import (
	"testing"

	"pgregory.net/rapid"
)

// Any sequence of damage, heals and cap changes keeps health in range and
// fires NoHealth exactly once per drop to zero.
func TestStatsInvariantsHoldUnderRandomOps(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s, err := NewStats(rapid.IntRange(1, 10).Draw(t, "max"))
		if err != nil {
			t.Fatalf("NewStats: %v", err)
		}

		fired := 0
		s.OnNoHealth(func() { fired++ })
		drops := 0

		ops := rapid.SliceOfN(rapid.IntRange(0, 2), 1, 40).Draw(t, "ops")
		for i, op := range ops {
			before := s.Health()
			switch op {
			case 0:
				s.Damage(rapid.IntRange(-2, 6).Draw(t, "damage"))
			case 1:
				s.SetHealth(before + rapid.IntRange(0, 4).Draw(t, "heal"))
			case 2:
				if err := s.SetMaxHealth(rapid.IntRange(1, 10).Draw(t, "newMax")); err != nil {
					t.Fatalf("SetMaxHealth: %v", err)
				}
			}
			if before > 0 && s.Health() == 0 {
				drops++
			}

			if s.Health() < 0 || s.Health() > s.MaxHealth() {
				t.Fatalf("op %d: health %d outside [0, %d]", i, s.Health(), s.MaxHealth())
			}
			if fired != drops {
				t.Fatalf("op %d: NoHealth fired %d times for %d drops", i, fired, drops)
			}
			if s.Depleted() != (s.Health() == 0) {
				t.Fatalf("op %d: depleted=%v at health %d", i, s.Depleted(), s.Health())
			}
		}
	})
}
