package obj

import (
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/milk9111/zoomboard/board"
)

// CuePlayer renders the board's sound cues. The tones are synthesized
// once at startup, so the binary ships no audio assets. It satisfies
// board.Audio.
type CuePlayer struct {
	players map[board.Cue]*audio.Player
	volume  func() (level float64, muted bool)
}

// NewCuePlayer builds one player per cue on ctx, which must run at
// sampleRate. volume is polled on every Play so settings changes take
// effect immediately.
func NewCuePlayer(ctx *audio.Context, volume func() (float64, bool)) *CuePlayer {
	tones := map[board.Cue][]byte{
		board.CueJump:     sweepTone(880, 440, 0.12),
		board.CueSlide:    sweepTone(220, 660, 0.35),
		board.CueInteract: sweepTone(1320, 1320, 0.05),
	}

	players := make(map[board.Cue]*audio.Player, len(tones))
	for cue, pcm := range tones {
		players[cue] = ctx.NewPlayerFromBytes(pcm)
	}
	return &CuePlayer{players: players, volume: volume}
}

// Play restarts the cue's player. Unknown cues and muted settings play
// nothing.
func (c *CuePlayer) Play(cue board.Cue) {
	p, ok := c.players[cue]
	if !ok {
		return
	}
	level, muted := c.volume()
	if muted {
		return
	}
	p.SetVolume(level)
	if err := p.Rewind(); err != nil {
		return
	}
	p.Play()
}
