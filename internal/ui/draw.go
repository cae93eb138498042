package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"brainrot-spire/internal/deck"
	"brainrot-spire/internal/generate"
)

var (
	styleText    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTitle   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 215, 0)).Bold(true)
	styleCursor  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.NewRGBColor(255, 215, 0))
	styleGood    = tcell.StyleDefault.Foreground(tcell.ColorLime)
	styleBad     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleInfo    = tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	styleEnemy   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 100, 100))
	styleVisited = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
)

var title = cases.Title(language.English)

// label turns an identifier such as "battle_block" into "Battle Block".
func label(id string) string {
	return title.String(strings.ReplaceAll(id, "_", " "))
}

// gradeColor tints card and equipment names by rarity.
func gradeColor(g deck.Grade) tcell.Style {
	switch g {
	case deck.GradeUncommon:
		return tcell.StyleDefault.Foreground(tcell.NewRGBColor(80, 220, 100))
	case deck.GradeRare:
		return tcell.StyleDefault.Foreground(tcell.NewRGBColor(80, 160, 255))
	case deck.GradeEpic:
		return tcell.StyleDefault.Foreground(tcell.NewRGBColor(190, 110, 255))
	case deck.GradeLegendary:
		return tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 160, 40))
	}
	return styleText
}

// nodeGlyphs is the emoji drawn for each node type on the path map.
var nodeGlyphs = map[generate.NodeType]string{
	generate.NodeStart:      "🏁",
	generate.NodeBattle:     "⚔",
	generate.NodeShop:       "🛒",
	generate.NodeEvent:      "❓",
	generate.NodeCamp:       "🔥",
	generate.NodeShrine:     "⛩",
	generate.NodeBlacksmith: "🔨",
	generate.NodeBoss:       "💀",
}

// putText writes s starting at (x, y) and returns the column after it. Wide
// runes take two columns and zero-width runes are dropped. Output stops at
// the right edge of the screen.
func putText(scr tcell.Screen, x, y int, s string, st tcell.Style) int {
	sw, _ := scr.Size()
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > sw {
			break
		}
		scr.SetContent(x, y, r, nil, st)
		if w == 2 {
			scr.SetContent(x+1, y, ' ', nil, st)
		}
		x += w
	}
	return x
}

// centerText writes s horizontally centered on row y.
func centerText(scr tcell.Screen, y int, s string, st tcell.Style) {
	sw, _ := scr.Size()
	x := (sw - runewidth.StringWidth(s)) / 2
	if x < 0 {
		x = 0
	}
	putText(scr, x, y, s, st)
}

func hline(scr tcell.Screen, y int) {
	sw, _ := scr.Size()
	for x := 0; x < sw; x++ {
		scr.SetContent(x, y, '─', nil, styleDim)
	}
}

// bar renders a fixed-width meter such as [#####-----].
func bar(cur, total, width int) string {
	if total <= 0 || width <= 0 {
		return ""
	}
	filled := max(0, min(width, cur*width/total))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
