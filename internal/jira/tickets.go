package jira

import (
	"fmt"

	"github.com/bjulian5/menubar/internal/bitbar"
)

// Ticket is one issue assigned to the user
type Ticket struct {
	Name   string
	Status string
	Href   string
}

// StatusGroup is the set of tickets sharing a workflow status
type StatusGroup struct {
	Status  string
	Tickets []Ticket
}

// GroupByStatus groups tickets by status, ordering groups by first appearance
func GroupByStatus(tickets []Ticket) []StatusGroup {
	index := make(map[string]int)
	var groups []StatusGroup
	for _, t := range tickets {
		i, ok := index[t.Status]
		if !ok {
			i = len(groups)
			index[t.Status] = i
			groups = append(groups, StatusGroup{Status: t.Status})
		}
		groups[i].Tickets = append(groups[i].Tickets, t)
	}
	return groups
}

// Lines renders the ticket queue
func Lines(tickets []Ticket, p bitbar.Palette) []bitbar.Line {
	lines := []bitbar.Line{
		{Text: fmt.Sprintf("!%d", len(tickets))},
		{Text: bitbar.Separator},
	}
	for _, g := range GroupByStatus(tickets) {
		lines = append(lines, bitbar.Line{Text: g.Status, Attrs: bitbar.Attrs{bitbar.Color(p.Subtitle), bitbar.Size(12)}})
		for _, t := range g.Tickets {
			lines = append(lines, bitbar.Line{Text: t.Name, Attrs: bitbar.Attrs{bitbar.Href(t.Href)}})
		}
		lines = append(lines, bitbar.Line{Text: bitbar.Separator})
	}
	return lines
}
