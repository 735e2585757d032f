package review

// Groups partitions records into the three disjoint display groups.
// Every group keeps source order.
type Groups struct {
	Snoozed []Record
	Active  []Record
	Outbox  []Record
}

// Group drops excluded records and partitions the rest
func Group(records []Record) Groups {
	var g Groups
	for _, r := range records {
		switch {
		case r.Excluded:
			continue
		case r.Snoozed:
			g.Snoozed = append(g.Snoozed, r)
		case r.InOutbox:
			g.Outbox = append(g.Outbox, r)
		default:
			g.Active = append(g.Active, r)
		}
	}
	return g
}
