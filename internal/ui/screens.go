package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"brainrot-spire/assets"
	"brainrot-spire/internal/battle"
	"brainrot-spire/internal/game"
	"brainrot-spire/internal/generate"
)

const bodyTop = 2

// Draw renders the whole frame for the current snapshot.
func (a *App) Draw() {
	scr := a.screen
	scr.Clear()
	a.drawHeader()

	s := a.state
	switch {
	case s == nil:
		a.drawBossSelect("Choose your first boss", a.engine.Content().Bosses)
	case s.Status.Terminal() && !s.ShowVictoryEffect:
		a.drawEnd()
	case a.mode == modeItems:
		a.drawItems()
	case a.mode == modeEquip:
		a.drawEquip()
	default:
		switch s.Status {
		case game.StatusMenu:
			a.drawBossSelect("Choose your next boss", a.bossChoices())
		case game.StatusPath:
			a.drawPath()
		case game.StatusBattle, game.StatusVictory:
			a.drawBattle()
		case game.StatusEvent:
			a.drawEvent()
		case game.StatusShop:
			a.drawShop()
		case game.StatusCamp:
			a.drawRestSite("🔥 Campfire", fmt.Sprintf("Rest by the fire and recover %d HP.", a.engine.Rules().CampHeal))
		case game.StatusShrine:
			a.drawRestSite("⛩ Shrine", "Pray for a blessing.")
		case game.StatusBlacksmith:
			a.drawRestSite("🔨 Blacksmith", "Reforge one of your cards into a stronger version.")
		case game.StatusStart:
			a.drawRestSite("🏁 Start", "The path stretches ahead.")
		}
	}

	if s != nil && s.LastReward != nil && !s.ShowVictoryEffect && !s.Status.Terminal() {
		a.drawReward(s.LastReward)
	}
	a.drawFooter()
	scr.Show()
}

func (a *App) drawHeader() {
	x := putText(a.screen, 0, 0, "BRAINROT SPIRE", styleTitle)
	if a.name != "" {
		x = putText(a.screen, x+2, 0, a.name, styleInfo)
	}
	if s := a.state; s != nil && s.Player != nil {
		p := s.Player
		x = putText(a.screen, x+2, 0, fmt.Sprintf("HP %d/%d", p.Health, p.MaxHealth), styleGood)
		x = putText(a.screen, x+2, 0, fmt.Sprintf("Gold %d", p.Gold), styleInfo)
		stage := fmt.Sprintf("Bosses %d/%d", s.BossesDefeated(), a.engine.Rules().BossesToWin)
		if s.CurrentBoss != nil {
			stage += "  vs " + s.CurrentBoss.Name
		}
		putText(a.screen, x+2, 0, stage, styleText)
	}
	hline(a.screen, 1)
}

func (a *App) drawFooter() {
	_, h := a.screen.Size()
	if a.msg != "" {
		putText(a.screen, 0, h-2, a.msg, styleBad)
	}
	putText(a.screen, 0, h-1, a.help(), styleDim)
}

func (a *App) help() string {
	s := a.state
	switch {
	case s == nil || s.Status == game.StatusMenu:
		return "↑/↓ choose  Enter fight  q quit"
	case s.ShowVictoryEffect:
		return "Enter continue"
	case s.Status.Terminal():
		return "Enter new run  q quit"
	case s.LastReward != nil:
		return "Enter dismiss"
	case a.mode != modeMain:
		return "↑/↓ choose  Enter use  Esc close"
	}
	switch s.Status {
	case game.StatusPath:
		return "↑/↓ choose  Enter preview/confirm  Esc cancel  i items  g gear  q quit"
	case game.StatusBattle:
		return "↑/↓ or 1-9 card  Enter play  e end turn  i items  q quit"
	case game.StatusShop:
		return "↑/↓ choose  Enter buy  i items  g gear  Esc leave"
	case game.StatusEvent:
		return "↑/↓ choose  Enter pick"
	}
	return "Enter act  Esc leave  q quit"
}

func (a *App) list(y int, lines []string, styles []tcell.Style) {
	for i, line := range lines {
		st := styleText
		if styles != nil {
			st = styles[i]
		}
		prefix := fmt.Sprintf(" %d. ", i+1)
		if i == a.cursor {
			st = styleCursor
			prefix = fmt.Sprintf("▶%d. ", i+1)
		}
		putText(a.screen, 2, y+i, prefix+line, st)
	}
}

func (a *App) drawBossSelect(heading string, bosses []battle.Foe) {
	centerText(a.screen, bodyTop+1, heading, styleTitle)
	lines := make([]string, len(bosses))
	for i, b := range bosses {
		lines[i] = fmt.Sprintf("%s %-26s HP %d", assets.Glyphs[b.ID], b.Name, b.Health)
	}
	a.list(bodyTop+3, lines, nil)
	if a.cursor < len(bosses) {
		b := bosses[a.cursor]
		y := bodyTop + 4 + len(bosses)
		putText(a.screen, 2, y, b.Description, styleDim)
		if b.Reward != nil {
			putText(a.screen, 2, y+1, "Reward: "+b.Reward.Name+" ("+b.Reward.Summary+")", styleInfo)
		}
	}
}

// drawPath shows the node graph with the boss at the top and the start row at
// the bottom, plus the list of reachable nodes on the right.
func (a *App) drawPath() {
	s := a.state
	p := s.Path
	height := p.Height()
	_, sh := a.screen.Size()
	cur := 0
	if n := s.CurrentNode(); n != nil {
		cur = n.Y
	}
	cam := newCamera(height-1-cur, sh-bodyTop-2, height)
	for y := 0; y < height; y++ {
		line, ok := cam.toScreen(height - 1 - y)
		if !ok {
			continue
		}
		row := bodyTop + line
		putText(a.screen, 0, row, fmt.Sprintf("%2d", y), styleDim)
		for _, n := range p.Row(y) {
			st := styleDim
			switch {
			case n.ID == p.CurrentNode:
				st = styleGood
			case n.ID == s.Preview:
				st = styleCursor
			case n.Visited:
				st = styleVisited
			case n.Available:
				st = styleText
			}
			glyph := nodeGlyphs[n.Type]
			if n.ID == p.CurrentNode {
				glyph = "@"
			}
			putText(a.screen, 4+n.X*6, row, glyph, st)
		}
	}

	nodes := a.availableNodes()
	lines := make([]string, len(nodes))
	for i, n := range nodes {
		lines[i] = nodeGlyphs[n.Type] + " " + label(string(n.Type)) + a.nodeDetail(n)
	}
	x := 4 + 6*a.engine.Rules().Path.MaxWidth
	putText(a.screen, x, bodyTop, "Next stop:", styleTitle)
	for i, line := range lines {
		st := styleText
		if i == a.cursor {
			st = styleCursor
		}
		putText(a.screen, x, bodyTop+1+i, fmt.Sprintf("%d. %s", i+1, line), st)
	}
	if pv := s.PreviewNode(); pv != nil {
		putText(a.screen, x, bodyTop+2+len(lines), "Enter again to travel to the "+label(string(pv.Type))+".", styleInfo)
	}
}

func (a *App) nodeDetail(n *generate.Node) string {
	switch {
	case n.Foe != nil:
		return fmt.Sprintf(" (%s, %d HP)", n.Foe.Name, n.Foe.Health)
	case n.Event != nil:
		return " (" + n.Event.Title + ")"
	}
	return ""
}

func (a *App) drawBattle() {
	s := a.state
	b := s.Battle
	if b == nil {
		return
	}
	p := s.Player
	foe := b.Enemy
	y := bodyTop
	putText(a.screen, 2, y, fmt.Sprintf("%s %s", assets.Glyphs[foe.ID], foe.Name), styleEnemy)
	putText(a.screen, 2, y+1, fmt.Sprintf("HP %s %d/%d  Block %d  Str %d",
		bar(foe.CurrentHealth, foe.Health, 20), max(0, foe.CurrentHealth), foe.Health, foe.Block, foe.Strength), styleEnemy)
	if in := foe.Intent; in != nil && !foe.Defeated() {
		intent := "Intends: " + in.Name
		if in.Damage > 0 {
			intent += fmt.Sprintf(" (%d damage)", in.Damage+foe.Strength)
		}
		if in.Effect != "" {
			intent += " [" + in.Effect + "]"
		}
		putText(a.screen, 2, y+2, intent, styleInfo)
	}

	y += 4
	putText(a.screen, 2, y, fmt.Sprintf("You  HP %s %d/%d  Block %d  Str %d  Energy %d/%d  Turn %d",
		bar(p.Health, p.MaxHealth, 20), p.Health, p.MaxHealth, p.Block, p.Strength, p.Energy, p.MaxEnergy, b.Turn), styleGood)
	putText(a.screen, 2, y+1, fmt.Sprintf("Draw %d  Discard %d", len(p.Draw), len(p.Discard)), styleDim)

	y += 3
	lines := make([]string, len(p.Hand))
	styles := make([]tcell.Style, len(p.Hand))
	for i, c := range p.Hand {
		name := c.Name
		if c.Upgraded {
			name += "+"
		}
		lines[i] = fmt.Sprintf("[%d] %-18s %s", a.engine.CardCost(s, i), name, c.Description)
		styles[i] = gradeColor(c.Grade)
	}
	a.list(y, lines, styles)

	_, h := a.screen.Size()
	logTop := y + len(lines) + 1
	if room := h - 3 - logTop; room > 0 {
		start := max(0, len(b.Log)-room)
		for i, entry := range b.Log[start:] {
			putText(a.screen, 2, logTop+i, entry.Message, logStyle(entry))
		}
	}

	if s.ShowVictoryEffect {
		a.drawBanner("⭐ VICTORY ⭐", foe.Name+" is defeated!")
	}
}

func logStyle(e battle.LogEntry) tcell.Style {
	switch {
	case e.Type == battle.LogHeal:
		return styleGood
	case e.Type == battle.LogDamage && e.Target == battle.PartyPlayer:
		return styleBad
	case e.Source == battle.PartySystem:
		return styleDim
	}
	return styleText
}

func (a *App) drawEvent() {
	ev := a.state.Event
	if ev == nil {
		return
	}
	centerText(a.screen, bodyTop+1, "❓ "+ev.Title, styleTitle)
	putText(a.screen, 2, bodyTop+3, ev.Description, styleText)
	lines := make([]string, len(ev.Options))
	for i, o := range ev.Options {
		lines[i] = o.Text
	}
	a.list(bodyTop+5, lines, nil)
}

func (a *App) drawShop() {
	p := a.state.Player
	centerText(a.screen, bodyTop+1, "🛒 Shop", styleTitle)
	shelf := a.engine.Content().Shop
	lines := make([]string, len(shelf))
	styles := make([]tcell.Style, len(shelf))
	for i, e := range shelf {
		lines[i] = fmt.Sprintf("%-22s %4dg  %s", e.Name, e.Price, label(string(e.Kind)))
		switch {
		case e.Kind == assets.ShopEquipment && p.Owns(e.EquipmentID):
			lines[i] += " (owned)"
			styles[i] = styleVisited
		case e.Price > p.Gold:
			styles[i] = styleDim
		case e.Kind == assets.ShopCard:
			styles[i] = gradeColor(e.Card.Grade)
		default:
			styles[i] = styleText
		}
	}
	a.list(bodyTop+3, lines, styles)
}

func (a *App) drawRestSite(heading, blurb string) {
	centerText(a.screen, bodyTop+2, heading, styleTitle)
	centerText(a.screen, bodyTop+4, blurb, styleText)
	centerText(a.screen, bodyTop+6, "Press Enter", styleInfo)
}

func (a *App) drawItems() {
	items := a.state.Player.Items
	putText(a.screen, 2, bodyTop, "Items", styleTitle)
	if len(items) == 0 {
		putText(a.screen, 2, bodyTop+2, "Your bag is empty.", styleDim)
		return
	}
	lines := make([]string, len(items))
	styles := make([]tcell.Style, len(items))
	inBattle := a.state.Status == game.StatusBattle
	for i, it := range items {
		lines[i] = fmt.Sprintf("%-18s x%d  %s", it.Name, it.Quantity, it.Description)
		styles[i] = styleText
		if inBattle && !it.UsableInBattle {
			styles[i] = styleDim
		}
	}
	a.list(bodyTop+2, lines, styles)
}

func (a *App) drawEquip() {
	p := a.state.Player
	putText(a.screen, 2, bodyTop, fmt.Sprintf("Gear  (deck: %d cards)", len(p.Deck)), styleTitle)
	lines := make([]string, len(p.Equipment))
	styles := make([]tcell.Style, len(p.Equipment))
	for i, eq := range p.Equipment {
		mark := " "
		if equippedIn(p.Equipped, eq) {
			mark = "*"
		}
		lines[i] = fmt.Sprintf("%s %-8s %-22s %d cards", mark, label(string(eq.Slot)), eq.Name, eq.CardCount())
		styles[i] = gradeColor(eq.Grade)
	}
	a.list(bodyTop+2, lines, styles)
}

func (a *App) drawReward(r *game.Reward) {
	a.drawBanner(r.Name, r.Description)
}

// drawBanner draws a boxed two-line message in the middle of the screen.
func (a *App) drawBanner(heading, text string) {
	w, h := a.screen.Size()
	width := min(w-4, max(len(text), len(heading))+6)
	if width < 4 {
		return
	}
	x0 := (w - width) / 2
	y0 := h/2 - 2
	edge := "+" + strings.Repeat("-", width-2) + "+"
	blank := "|" + strings.Repeat(" ", width-2) + "|"
	putText(a.screen, x0, y0, edge, styleInfo)
	for y := y0 + 1; y <= y0+3; y++ {
		putText(a.screen, x0, y, blank, styleInfo)
	}
	putText(a.screen, x0, y0+4, edge, styleInfo)
	centerText(a.screen, y0+1, heading, styleTitle)
	centerText(a.screen, y0+3, text, styleText)
}

func (a *App) drawEnd() {
	s := a.state
	if s.Status == game.StatusVictory {
		centerText(a.screen, bodyTop+2, "[VICTORY]", styleGood)
		centerText(a.screen, bodyTop+4, fmt.Sprintf("All %d bosses fell before you.", s.BossesDefeated()), styleText)
	} else {
		centerText(a.screen, bodyTop+2, "[DEFEAT]", styleBad)
		cause := "The spire claims another climber."
		if s.Battle != nil {
			cause = "Slain by " + s.Battle.Enemy.Name + "."
		}
		centerText(a.screen, bodyTop+4, cause, styleText)
	}
	p := s.Player
	centerText(a.screen, bodyTop+6, fmt.Sprintf("Bosses %d  Gold %d  Deck %d  Perks %d",
		s.BossesDefeated(), p.Gold, len(p.Deck), len(p.Perks)), styleInfo)
}
