package actor

// Stats tracks health for one actor. Health is always within [0, MaxHealth].
//
// NoHealth handlers run once per life: the first time health reaches zero.
// Further damage while at zero is absorbed silently. Raising health above
// zero again re-arms the notification.
type Stats struct {
	health    int
	maxHealth int
	depleted  bool

	onHealthChanged    []func(health int)
	onMaxHealthChanged []func(maxHealth int)
	onNoHealth         []func()
}

// NewStats returns stats at full health.
func NewStats(maxHealth int) (*Stats, error) {
	if maxHealth <= 0 {
		return nil, ErrInvalidMaxHealth
	}
	return &Stats{health: maxHealth, maxHealth: maxHealth}, nil
}

func (s *Stats) Health() int    { return s.health }
func (s *Stats) MaxHealth() int { return s.maxHealth }

// Depleted reports whether the no-health notification has fired.
func (s *Stats) Depleted() bool { return s.depleted }

func (s *Stats) OnHealthChanged(fn func(health int)) {
	s.onHealthChanged = append(s.onHealthChanged, fn)
}

func (s *Stats) OnMaxHealthChanged(fn func(maxHealth int)) {
	s.onMaxHealthChanged = append(s.onMaxHealthChanged, fn)
}

func (s *Stats) OnNoHealth(fn func()) {
	s.onNoHealth = append(s.onNoHealth, fn)
}

// SetHealth clamps value into [0, MaxHealth] and notifies on change.
func (s *Stats) SetHealth(value int) {
	if value < 0 {
		value = 0
	}
	if value > s.maxHealth {
		value = s.maxHealth
	}

	old := s.health
	s.health = value
	if value != old {
		for _, fn := range s.onHealthChanged {
			fn(value)
		}
	}

	if value > 0 {
		s.depleted = false
		return
	}
	if s.depleted {
		return
	}
	s.depleted = true
	for _, fn := range s.onNoHealth {
		fn()
	}
}

// Damage lowers health by amount. Non-positive amounts are ignored.
func (s *Stats) Damage(amount int) {
	if amount <= 0 {
		return
	}
	s.SetHealth(s.health - amount)
}

// SetMaxHealth changes the cap and clamps current health under it.
func (s *Stats) SetMaxHealth(value int) error {
	if value <= 0 {
		return ErrInvalidMaxHealth
	}
	s.maxHealth = value
	for _, fn := range s.onMaxHealthChanged {
		fn(value)
	}
	if s.health > value {
		s.SetHealth(value)
	}
	return nil
}

// Refill restores health to max.
func (s *Stats) Refill() {
	s.SetHealth(s.maxHealth)
}
