package input

import (
	"github.com/gdamore/tcell/v2"

	"termpong/core"
	"termpong/engine"
	"termpong/event"
)

// Handler maps terminal key events to game actions
// Movement keys queue paddle steps; the paddle system applies them on
// the next tick, so terminal key auto-repeat drives continuous motion
type Handler struct {
	gameCtx *engine.GameContext
}

// NewHandler creates an input handler
func NewHandler(gameCtx *engine.GameContext) *Handler {
	return &Handler{gameCtx: gameCtx}
}

// HandleEvent processes a single terminal event
// Returns false when the game should exit
func (h *Handler) HandleEvent(ev tcell.Event) bool {
	keyEv, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}

	switch keyEv.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false

	case tcell.KeyUp:
		h.queueStep(core.SideRight, -1)
		return true

	case tcell.KeyDown:
		h.queueStep(core.SideRight, 1)
		return true

	case tcell.KeyRune:
		return h.handleRune(keyEv.Rune())
	}

	return true
}

func (h *Handler) handleRune(r rune) bool {
	switch r {
	case 'w', 'W':
		h.queueStep(core.SideLeft, -1)
	case 's', 'S':
		h.queueStep(core.SideLeft, 1)
	case 'q', 'Q':
		h.gameCtx.TogglePaddleMode(core.SideLeft)
	case 'p', 'P':
		h.gameCtx.TogglePaddleMode(core.SideRight)
	case ' ':
		h.gameCtx.TogglePause()
	case 'm', 'M':
		h.toggleMute()
	}
	return true
}

// queueStep records a movement request; steps queued during pause are dropped
func (h *Handler) queueStep(side core.Side, delta int) {
	if h.gameCtx.IsPaused() {
		return
	}
	h.gameCtx.QueuePaddleStep(side, delta)
}

func (h *Handler) toggleMute() {
	audio, ok := engine.GetResource[*engine.AudioResource](h.gameCtx.World.Resources)
	if !ok || audio.Player == nil {
		return
	}
	audio.Player.ToggleMute()

	h.gameCtx.World.RunSafe(func() {
		h.gameCtx.World.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{
			Sound: core.SoundToggle,
		})
	})
}
