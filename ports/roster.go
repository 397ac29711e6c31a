package ports

import "simlab/domain/election"

// RosterPort supplies the election roster from an external tabular source
// (spreadsheet, CSV export). Implementations validate shape, not semantics;
// the domain Roster.Validate call happens in the service layer.
type RosterPort interface {
	ReadRoster() (election.Roster, error)
}
