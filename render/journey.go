package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tubenet/network"
)

// Journey prints one point-to-point answer under title.
func (p *Printer) Journey(title string, j *network.Journey) error {
	if ok, err := p.encode(j); ok {
		return err
	}

	lines := []string{titleStyle.Render(fmt.Sprintf("%s: %s → %s", title, j.Source, j.Target))}
	if !j.Reachable {
		lines = append(lines, warnStyle.Render("no route: stations are not connected"))
		return p.println(lines...)
	}
	lines = append(lines, journeyBody(j)...)

	return p.println(lines...)
}

func journeyBody(j *network.Journey) []string {
	lines := []string{"  " + strings.Join(j.Path, " → ")}
	for _, leg := range j.Legs {
		line := ""
		if leg.Line != "" {
			line = labelStyle.Render(" [" + leg.Line + "]")
		}
		lines = append(lines, fmt.Sprintf("    %s - %s  %s%s", leg.From, leg.To, minutes(leg.Minutes), line))
	}
	lines = append(lines,
		"  "+field("total", minutes(j.TotalMinutes)),
		"  "+field("stops", j.TotalStops),
	)

	return lines
}

// Backbone prints the essential and closable connections.
func (p *Printer) Backbone(bb *network.Backbone) error {
	if ok, err := p.encode(bb); ok {
		return err
	}

	lines := []string{titleStyle.Render(fmt.Sprintf("Backbone (%d essential)", len(bb.Essential)))}
	for _, c := range bb.Essential {
		lines = append(lines, "  "+connection(c))
	}
	lines = append(lines, titleStyle.Render(fmt.Sprintf("Closable (%d)", len(bb.Closable))))
	if len(bb.Closable) == 0 {
		lines = append(lines, labelStyle.Render("  none: every connection is essential"))
	}
	for _, c := range bb.Closable {
		lines = append(lines, "  "+warnStyle.Render(connection(c)))
	}
	if len(bb.Critical) > 0 {
		lines = append(lines, titleStyle.Render(fmt.Sprintf("Critical (%d)", len(bb.Critical))))
		for _, c := range bb.Critical {
			lines = append(lines, "  "+connection(c))
		}
	}
	lines = append(lines, boxStyle.Render(strings.Join([]string{
		field("backbone minutes", bb.TotalWeight),
		field("closable minutes", bb.ClosableWeight),
		field("components", bb.Components),
	}, "\n")))

	return p.println(lines...)
}

func connection(c network.Connection) string {
	s := fmt.Sprintf("%s - %s  %s", c.A, c.B, minutes(c.Weight))
	if c.Line != "" {
		s += " [" + c.Line + "]"
	}

	return s
}

// Impacts prints backbone-only versus full-network comparisons.
func (p *Printer) Impacts(impacts []*network.Impact) error {
	if impacts == nil {
		impacts = []*network.Impact{}
	}
	if ok, err := p.encode(impacts); ok {
		return err
	}
	if len(impacts) == 0 {
		return p.println(labelStyle.Render("no journey relies on a closable connection"))
	}

	var lines []string
	for _, im := range impacts {
		lines = append(lines, impactLines(im)...)
	}

	return p.println(lines...)
}

func impactLines(im *network.Impact) []string {
	lines := []string{titleStyle.Render(fmt.Sprintf("%s → %s", im.Full.Source, im.Full.Target))}
	if !im.Full.Reachable {
		return append(lines, warnStyle.Render("  no route: stations are not connected"))
	}
	lines = append(lines, labelStyle.Render("  full network"))
	lines = append(lines, journeyBody(im.Full)...)
	lines = append(lines, labelStyle.Render("  backbone only"))
	lines = append(lines, journeyBody(im.Backbone)...)
	lines = append(lines, "  "+field("extra", fmt.Sprintf("%s (%.1f%%)", minutes(im.ExtraMinutes), im.ExtraPercent)))
	for _, c := range im.ClosedOnRoute {
		lines = append(lines, "  "+warnStyle.Render("closed: "+connection(c)))
	}

	return lines
}

// Overview prints graph sizes and the islands of the network.
func (p *Printer) Overview(ov *network.Overview) error {
	if ok, err := p.encode(ov); ok {
		return err
	}

	s := ov.Stats
	lines := []string{
		titleStyle.Render("Network"),
		"  " + field("stations", s.VertexCount),
		"  " + field("connections", s.EdgeCount),
		"  " + field("total minutes", s.TotalWeight),
		"  " + field("isolated", s.IsolatedCount),
		"  " + field("max degree", s.MaxDegree),
		"  " + field("islands", len(ov.Islands)),
	}
	if len(ov.Islands) > 1 {
		for i, island := range ov.Islands {
			lines = append(lines, warnStyle.Render(fmt.Sprintf("    #%d (%d): %s", i+1, len(island), strings.Join(island, ", "))))
		}
	}

	return p.println(lines...)
}
