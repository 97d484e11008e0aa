package invaders

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/entity"
)

const hudRows = 1

// spriteArt is the terminal rendition of a sprite sheet.
type spriteArt struct {
	frames int
	art    [][]string
	color  core.Color
}

func buildArt(cfg config.InvadersConfig) map[string]spriteArt {
	out := make(map[string]spriteArt, len(cfg.Sprites))
	for name, sc := range cfg.Sprites {
		out[name] = spriteArt{
			frames: max(sc.Frames, 1),
			art:    sc.Art,
			color:  core.ParseColor(sc.Color),
		}
	}
	return out
}

// rows returns the glyph rows for an animation frame, spreading the art
// entries evenly over the sheet's frames.
func (a spriteArt) rows(frame int) []string {
	if len(a.art) == 0 {
		return []string{"?"}
	}
	i := frame * len(a.art) / a.frames
	return a.art[core.Clamp(i, 0, len(a.art)-1)]
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}
	if g.sim == nil {
		return
	}

	g.renderSprites(dst, g.draws)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// renderSprites maps playfield coordinates onto the cells below the HUD.
// Each sprite's glyphs are centered on its horizontal middle.
func (g *Game) renderSprites(dst *core.Screen, draws []entity.DrawCall) {
	field := g.cfg.Field()
	sx := field.Width / float64(dst.Width())
	sy := field.Height / float64(dst.Height()-hudRows)

	for _, d := range draws {
		a, ok := g.art[d.SpriteID]
		if !ok {
			continue
		}
		cx := int(math.Floor((d.X + d.W/2) / sx))
		cy := hudRows + int(math.Floor(d.Y/sy))
		for i, line := range a.rows(d.Frame) {
			dst.DrawTextColored(cx-len([]rune(line))/2, cy+i, line, a.color)
		}
	}
}

// renderHUD draws the level, each player's score and lives, and the mute flag.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawHLine(0, 0, dst.Width(), ' ')

	levelText := fmt.Sprintf("Level %d", g.sim.Level())
	dst.DrawText(1, 0, levelText)

	parts := make([]string, 0, len(g.slots))
	for _, s := range g.slots {
		parts = append(parts, fmt.Sprintf("P%d %d ♥%d", s.id, g.sim.PlayerScore(s.name), g.sim.PlayerLives(s.name)))
	}
	dst.DrawTextCentered(0, strings.Join(parts, "   "))

	if g.sim.SoundMuted() {
		dst.DrawText(dst.Width()-len("[muted]")-1, 0, "[muted]")
	}
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.sim.GameOver():
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.sim.TotalScore())
		g.drawCenteredBox(dst, "GAME OVER", subtitle)
	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.FillRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
