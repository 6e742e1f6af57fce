package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/truco/application"
	"github.com/luca-patrignani/truco/domain/truco"
)

// tableAnnouncer narrates a match on the terminal. A quiet one only shows
// the score of every hand and the winner.
type tableAnnouncer struct {
	quiet bool
}

func newTableAnnouncer(quiet bool) *tableAnnouncer {
	return &tableAnnouncer{quiet: quiet}
}

func (a *tableAnnouncer) OpeningPlayer(p truco.Player) {
	if a.quiet {
		return
	}
	pterm.DefaultSection.Printfln("New hand, %s opens", pterm.LightCyan(p.Name))
}

func (a *tableAnnouncer) CardPlayed(p truco.Player, c truco.Card) {
	if a.quiet {
		return
	}
	pterm.Info.Printfln("%s plays %s", pterm.LightCyan(p.Name), cardLabel(c))
}

func (a *tableAnnouncer) TrickResolved(trick int, outcome truco.Outcome) {
	if a.quiet {
		return
	}
	if outcome == truco.OutcomeTie {
		pterm.Info.Printfln("Trick %d is tied", trick)
		return
	}
	pterm.Info.Printfln("Trick %d goes to side %s", trick, outcome)
}

func (a *tableAnnouncer) TrucoProposed(proposer truco.Player, proposed truco.WagerLevel) {
	if a.quiet {
		return
	}
	pterm.Warning.Printfln("%s shouts %s!", pterm.LightCyan(proposer.Name), wagerLabel(proposed))
}

func (a *tableAnnouncer) TrucoAnswered(responder truco.Player, r truco.Response, proposed truco.WagerLevel) {
	if a.quiet {
		return
	}
	switch r {
	case truco.Accept:
		pterm.Info.Printfln("%s accepts %s", pterm.LightCyan(responder.Name), wagerLabel(proposed))
	case truco.Concede:
		pterm.Info.Printfln("%s runs from %s", pterm.LightCyan(responder.Name), wagerLabel(proposed))
	case truco.Reraise:
		pterm.Info.Printfln("%s raises again", pterm.LightCyan(responder.Name))
	}
}

func (a *tableAnnouncer) Concession(conceder, winner truco.Player, points int) {
	if a.quiet {
		return
	}
	pterm.Warning.Printfln("%s ran away, %s takes %d", pterm.LightCyan(conceder.Name), pterm.LightCyan(winner.Name), points)
}

func (a *tableAnnouncer) HandScore(result truco.HandResult, winner truco.Player) {
	pterm.Success.Println(handLine(result, winner))
}

func (a *tableAnnouncer) MatchScore(pa, pb truco.Player) {
	if a.quiet {
		return
	}
	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{{Data: scoreBox(pa)}, {Data: scoreBox(pb)}},
	}).Render()
}

func (a *tableAnnouncer) MatchWinner(w *truco.Player) {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	var text string
	if w == nil {
		text = "No winner"
	} else {
		text = pterm.Sprintf("%s wins with %d points", pterm.LightCyan(w.Name), w.Score)
	}
	pbox.WithTitle(pterm.LightGreen("|MATCH OVER|")).WithTitleTopCenter().Println(text)
}

// cardLabel colours the name of c by suit: hearts and diamonds in red.
func cardLabel(c truco.Card) string {
	name := c.Name()
	switch {
	case strings.HasSuffix(name, "♥"), strings.HasSuffix(name, "♦"),
		strings.HasSuffix(name, "h"), strings.HasSuffix(name, "d"):
		return pterm.LightRed(name)
	default:
		return pterm.LightWhite(name)
	}
}

func wagerLabel(w truco.WagerLevel) string {
	return pterm.LightYellow(strings.ToUpper(w.String()))
}

func handLine(result truco.HandResult, winner truco.Player) string {
	line := fmt.Sprintf("Hand %d: %s scores %d", result.Number, winner.Name, result.Points)
	switch {
	case result.Conceded:
		line += " (opponent ran)"
	case result.TieBroken:
		line += " (tie broken)"
	}
	return line
}

func scoreBox(p truco.Player) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	return pbox.WithTitle(p.Name).WithTitleTopLeft().Sprintf("Score: %d / %d", p.Score, truco.WinningScore)
}

func renderSummary(cfg application.Config, reports []application.MatchReport) {
	wins := map[string]int{}
	data := pterm.TableData{{"Match", "Winner", cfg.Players[0].Name, cfg.Players[1].Name, "Hands"}}
	for i, r := range reports {
		wins[r.Winner]++
		data = append(data, []string{
			fmt.Sprint(i + 1), r.Winner, fmt.Sprint(r.Scores[0]), fmt.Sprint(r.Scores[1]), fmt.Sprint(r.Hands),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	pterm.Info.Printfln("%s won %d, %s won %d",
		cfg.Players[0].Name, wins[cfg.Players[0].Name], cfg.Players[1].Name, wins[cfg.Players[1].Name])
}
