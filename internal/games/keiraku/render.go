package keiraku

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/keiraku-bomber/internal/core"
	"github.com/vovakirdan/keiraku-bomber/internal/games/keiraku/sim"
)

// Layout constants. Each grid cell is two terminal columns wide.
const (
	cellW     = 2
	hudHeight = 2
	panelW    = 16
	fuseBlink = 500 * time.Millisecond
)

// glyph is the two-column picture of one cell.
type glyph struct {
	text  string
	color core.Color
}

var (
	glyphSolid     = glyph{"██", core.ColorGray}
	glyphBreakable = glyph{"▒▒", core.ColorBrown}
	glyphNormal    = glyph{"()", core.ColorYellow}
	glyphContainer = glyph{"[]", core.ColorBrightYellow}
	glyphPlayer    = glyph{"@@", core.ColorBrightCyan}
	glyphMoxa      = glyph{"%%", core.ColorOrange}
	glyphBlast     = glyph{"░░", core.ColorBrightRed}
)

var rainbow = []core.Color{
	core.ColorRed, core.ColorOrange, core.ColorYellow, core.ColorGreen,
	core.ColorBlue, core.ColorMagenta, core.ColorPink,
}

var enemyGlyphs = map[sim.EnemyKind]glyph{
	sim.EnemyWind:   {"ww", core.ColorBlue},
	sim.EnemyHeat:   {"hh", core.ColorRed},
	sim.EnemyPlague: {"pp", core.ColorMagenta},
	sim.EnemyCold:   {"cc", core.ColorBrightBlue},
	sim.EnemyDamp:   {"dd", core.ColorCyan},
}

var herbGlyphs = map[sim.Herb]glyph{
	sim.HerbMugwort:   {"Mu", core.ColorYellow},
	sim.HerbGinger:    {"Gi", core.ColorOrange},
	sim.HerbSalt:      {"Sa", core.ColorRed},
	sim.HerbAconite:   {"Ac", core.ColorMagenta},
	sim.HerbEphedra:   {"Ep", core.ColorBlue},
	sim.HerbAngelica:  {"An", core.ColorPink},
	sim.HerbFullPower: {"$$", core.ColorBrightYellow},
}

// viewport is the window of grid cells that fits on screen.
type viewport struct {
	x, y       int // screen origin of the map
	ox, oy     int // first visible grid cell
	cols, rows int
}

func (v viewport) visible(p core.Point) bool {
	return p.X >= v.ox && p.X < v.ox+v.cols && p.Y >= v.oy && p.Y < v.oy+v.rows
}

func (v viewport) draw(dst *core.Screen, p core.Point, gl glyph) {
	if !v.visible(p) {
		return
	}
	dst.DrawTextColored(v.x+(p.X-v.ox)*cellW, v.y+(p.Y-v.oy), gl.text, gl.color)
}

// camera centres the view on the player when the grid does not fit.
func camera(screenW, screenH int, player core.Point) viewport {
	v := viewport{y: hudHeight}
	v.cols = core.Clamp((screenW-panelW)/cellW, 1, sim.GridSize)
	v.rows = core.Clamp(screenH-hudHeight, 1, sim.GridSize)
	v.ox = core.Clamp(player.X-v.cols/2, 0, sim.GridSize-v.cols)
	v.oy = core.Clamp(player.Y-v.rows/2, 0, sim.GridSize-v.rows)
	return v
}

// Render draws the current snapshot.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sim == nil {
		return
	}
	snap := g.sim.Snapshot()
	Draw(dst, snap)

	switch {
	case g.complete:
		drawOverlay(dst, "Campaign complete!", fmt.Sprintf("Final score: %d", snap.Score))
	case g.err != nil && snap.Status == sim.StatusIdle.String():
		drawOverlay(dst, "Stage failed to generate", "Press R to try again")
	default:
		DrawOverlay(dst, snap)
	}
}

// Draw renders the HUD, the map and the side panel of a snapshot.
func Draw(dst *core.Screen, snap sim.Snapshot) {
	v := camera(dst.Width(), dst.Height(), snap.Player)
	drawHUD(dst, snap)
	drawMap(dst, v, snap)
	drawPanel(dst, v.x+v.cols*cellW+1, snap)
}

// DrawOverlay draws the message box for a won, failed or paused stage.
func DrawOverlay(dst *core.Screen, snap sim.Snapshot) {
	switch snap.Status {
	case sim.StatusWon.String():
		drawOverlay(dst, "Stage clear!", "Press Enter to continue")
	case sim.StatusFailed.String():
		drawOverlay(dst, "Game over", "Press R to retry")
	default:
		if snap.Paused {
			drawOverlay(dst, "Paused", "Press P to continue")
		}
	}
}

func drawHUD(dst *core.Screen, snap sim.Snapshot) {
	stars := strings.Repeat("*", snap.Difficulty)
	hud := fmt.Sprintf(" %s  %s  Stage %d/%d  Score: %d", snap.StageName, stars, snap.StageIndex+1, snap.StageCount, snap.Score)
	if snap.Mode == sim.ModeFree.String() {
		hud += "  [free]"
	}
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

func drawMap(dst *core.Screen, v viewport, snap sim.Snapshot) {
	blink := int(snap.Now / (200 * time.Millisecond))

	for y := v.oy; y < v.oy+v.rows; y++ {
		for x := v.ox; x < v.ox+v.cols; x++ {
			p := core.Pt(x, y)
			switch snap.Grid.At(p) {
			case sim.SolidWall:
				v.draw(dst, p, glyphSolid)
			case sim.BreakableWall, sim.NodeHidden:
				v.draw(dst, p, glyphBreakable)
			case sim.NodeNormal:
				v.draw(dst, p, glyphNormal)
			case sim.NodeSpecial:
				v.draw(dst, p, glyph{"<>", rainbow[blink%len(rainbow)]})
			}
		}
	}

	for _, c := range snap.Containers {
		gl := glyphContainer
		if c.Payload == sim.HerbFullPower {
			gl.color = rainbow[blink%len(rainbow)]
		}
		v.draw(dst, c.Pos, gl)
	}
	for _, it := range snap.Items {
		v.draw(dst, it.Pos, herbGlyphs[it.Payload])
	}
	for _, e := range snap.Explosives {
		gl := glyphMoxa
		if e.Fuse < fuseBlink && blink%2 == 0 {
			gl.color = core.ColorBrightRed
		}
		v.draw(dst, e.Pos, gl)
	}
	for _, x := range snap.Explosions {
		v.draw(dst, x.Pos, glyphBlast)
	}
	for _, p := range snap.Projectiles {
		text := "--"
		if p.Dir.DX == 0 {
			text = "||"
		}
		v.draw(dst, p.Pos, glyph{text, core.ColorBrightWhite})
	}
	for _, e := range snap.Enemies {
		v.draw(dst, e.Pos, enemyGlyphs[e.Kind])
	}
	v.draw(dst, snap.Player, glyphPlayer)
}

func drawPanel(dst *core.Screen, x int, snap sim.Snapshot) {
	if x >= dst.Width() {
		return
	}
	lines := []struct {
		text  string
		color core.Color
	}{
		{snap.NeedleTitle, core.ColorBrightWhite},
		{fmt.Sprintf("Reach   %d", snap.Power.Reach), core.ColorDefault},
		{snap.MoxaTitle, core.ColorOrange},
		{fmt.Sprintf("Blast   %d", snap.Power.Blast), core.ColorDefault},
		{fmt.Sprintf("Pattern %s", snap.Pattern), core.ColorDefault},
		{fmt.Sprintf("Speed   %d", snap.Power.Speed), core.ColorDefault},
		{fmt.Sprintf("Moxa    %d/%d", len(snap.Explosives), snap.Power.MaxExplosives), core.ColorDefault},
		{"", core.ColorDefault},
		{fmt.Sprintf("Enemies %d", len(snap.Enemies)), core.ColorRed},
		{fmt.Sprintf("Tsubo   %d", len(snap.Opened)), core.ColorYellow},
		{fmt.Sprintf("Herbs   %d", len(snap.Acquired)), core.ColorGreen},
	}
	y := hudHeight
	for _, l := range lines {
		dst.DrawTextColored(x, y, l.text, l.color)
		y++
	}

	if n := snap.Notice; n != nil {
		y++
		dst.DrawTextColored(x, y, n.Title, core.ColorBrightYellow)
		dst.DrawTextColored(x, y+1, n.Detail, core.ColorYellow)
		y += 2
	}

	y++
	for _, help := range []string{"WASD move", "Space moxa", "IJKL needle", "P pause"} {
		dst.DrawTextColored(x, y, help, core.ColorGray)
		y++
	}
}

// drawOverlay draws a centered two-line message box.
func drawOverlay(dst *core.Screen, line1, line2 string) {
	w := core.Max(len([]rune(line1)), len([]rune(line2))) + 4
	h := 5
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorGray)
}
