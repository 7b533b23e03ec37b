package components

import (
	"github.com/automoto/actionrpg/actor"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// InvincibilityListener is told when a hurtbox's invincibility window opens
// and closes.
type InvincibilityListener interface {
	OnInvincibilityStarted()
	OnInvincibilityEnded()
}

// HurtboxData is the receiving side of combat. A hitbox lands once when it
// starts overlapping; Overlapping remembers who is already inside.
type HurtboxData struct {
	Attachment
	Side string // tags.Resolv*Hurtbox

	Invincible  float64 // seconds left, 0 when vulnerable
	Overlapping map[*resolv.Object]bool

	OnHit    func(hit actor.Hit)
	Listener InvincibilityListener
}

// IsInvincible reports whether hits are currently ignored.
func (h *HurtboxData) IsInvincible() bool {
	return h.Invincible > 0
}

// StartInvincibility opens the invincibility window. While it is open the
// hurtbox stops tracking overlaps, so anything still inside when it closes
// lands again.
func (h *HurtboxData) StartInvincibility(seconds float64) {
	if seconds <= 0 {
		return
	}
	wasInvincible := h.IsInvincible()
	h.Invincible = seconds
	clear(h.Overlapping)
	if !wasInvincible && h.Listener != nil {
		h.Listener.OnInvincibilityStarted()
	}
}

// Tick counts the window down by delta.
func (h *HurtboxData) Tick(delta float64) {
	if !h.IsInvincible() {
		return
	}
	h.Invincible -= delta
	if h.Invincible > 0 {
		return
	}
	h.Invincible = 0
	if h.Listener != nil {
		h.Listener.OnInvincibilityEnded()
	}
}

var Hurtbox = donburi.NewComponentType[HurtboxData]()
