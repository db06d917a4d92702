package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/games"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/stadiums"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/teams"
)

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}

func renderPlayers(out io.Writer, items []players.Summary) error {
	tw := newTable(out)
	fmt.Fprintln(tw, "ID\tNAME\tTEAM\tPOSITION\tHEIGHT\tWEIGHT")
	for _, p := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Team, p.Position, p.Height, p.Weight)
	}
	return tw.Flush()
}

func renderStadiums(out io.Writer, items []stadiums.Stadium) error {
	tw := newTable(out)
	fmt.Fprintln(tw, "NAME\tTEAM\tLOCATION\tCAPACITY\tOPENED\tIMAGE")
	for _, s := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\n", s.Name, s.Team, s.Location, s.Capacity, s.Opened, s.ImageURL)
	}
	return tw.Flush()
}

func renderScores(out io.Writer, items []games.Game) error {
	tw := newTable(out)
	fmt.Fprintln(tw, "DATE\tHOME\tAWAY\tRESULT")
	for _, g := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", g.Date, teamLabel(g.HomeTeam()), teamLabel(g.AwayTeam()), g.FinalResult)
	}
	return tw.Flush()
}

// teamLabel prefixes the name with initials when the team has no logo to show.
func teamLabel(ref teams.Ref) string {
	if ref.LogoURL == "" {
		return fmt.Sprintf("[%s] %s", ref.Initials(), ref.Name)
	}
	return ref.Name
}
