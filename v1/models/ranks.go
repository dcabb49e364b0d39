package models

import (
	"log/slog"
	"sort"
)

// RosterSpec binds one roster to its table, defaults, rank vocabulary and
// admin rank set. All roster-specific behavior hangs off one of the three
// package-level specs so the priority tables cannot drift between call sites.
type RosterSpec struct {
	Name            string
	Table           string
	IDPrefix        string
	DefaultRank     string
	DefaultDivision string
	RankPriority    map[string]int
	CommandRanks    []string
}

// DirectoryRoster is the authoritative roster of all accounts known to the
// system. Its priority table spans every rank a directory member can hold,
// including the SWAT ranks members keep while seconded to SWAT. "Senior
// Officer" is 4 and "Corporal" is 6; the gap at 5 is a retired rank slot.
var DirectoryRoster = RosterSpec{
	Name:            "directory",
	Table:           "users",
	IDPrefix:        "usr_",
	DefaultRank:     "Cadet",
	DefaultDivision: "Police Department",
	RankPriority: map[string]int{
		"Officer":                   1,
		"Officer First Class":       2,
		"Officer Second Class":      3,
		"Senior Officer":            4,
		"Corporal":                  6,
		"Lance Corporal":            7,
		"Senior Corporal":           8,
		"SWAT Officer":              9,
		"SWAT Corporal":             10,
		"SWAT Sergeant":             11,
		"SWAT Lieutenant":           12,
		"SWAT Captain":              13,
		"SWAT Commander":            14,
		"Sergeant":                  15,
		"Staff Sergeant":            16,
		"Master Sergeant":           17,
		"Lieutenant":                18,
		"Major":                     19,
		"Captain":                   20,
		"Commander":                 21,
		"Assistant Chief Of Police": 22,
		"Deputy Chief Of Police":    23,
		"Chief Of Police":           24,
	},
}

// SwatRoster members authorize on their SWAT rank, not on a directory tier.
var SwatRoster = RosterSpec{
	Name:            "swat",
	Table:           "swat_members",
	IDPrefix:        "swt_",
	DefaultRank:     "SWAT Tryout",
	DefaultDivision: "Swat Department",
	RankPriority: map[string]int{
		"SWAT Tryout":     1,
		"SWAT Officer":    2,
		"SWAT Corporal":   3,
		"SWAT Sergeant":   4,
		"SWAT Lieutenant": 5,
		"SWAT Captain":    6,
		"SWAT Commander":  7,
	},
	CommandRanks: []string{"SWAT Sergeant", "SWAT Lieutenant", "SWAT Captain", "SWAT Commander"},
}

// InternalAffairsRoster mirrors SwatRoster for the IA division.
var InternalAffairsRoster = RosterSpec{
	Name:            "internal-affairs",
	Table:           "ia_agents",
	IDPrefix:        "ia_",
	DefaultRank:     "IA-Trial Agent",
	DefaultDivision: "Internal Affairs",
	RankPriority: map[string]int{
		"IA-Trial Agent":  1,
		"IA-Agent":        2,
		"IA-Senior Agent": 3,
		"IA-Supervisor":   4,
		"IA-Director":     5,
	},
	CommandRanks: []string{"IA-Supervisor", "IA-Director"},
}

// PriorityOf returns the display priority of a rank. Unrecognized and legacy
// rank strings sort last with priority 0.
func (s *RosterSpec) PriorityOf(rank string) int {
	return s.RankPriority[rank]
}

// IsCommandRank reports whether rank grants admin access to this roster
func (s *RosterSpec) IsCommandRank(rank string) bool {
	for _, r := range s.CommandRanks {
		if r == rank {
			return true
		}
	}
	return false
}

// SortForDisplay orders accounts by descending rank priority. The sort is
// stable: entries sharing a priority (commonly 0 for unrecognized ranks)
// keep their input order.
func (s *RosterSpec) SortForDisplay(accounts []Account) {
	unknown := map[string]bool{}
	for _, a := range accounts {
		if _, ok := s.RankPriority[a.Rank]; !ok && a.Rank != "" {
			unknown[a.Rank] = true
		}
	}
	for rank := range unknown {
		slog.Warn("unrecognized rank in roster listing, sorting last", "roster", s.Name, "rank", rank)
	}

	sort.SliceStable(accounts, func(i, j int) bool {
		return s.PriorityOf(accounts[i].Rank) > s.PriorityOf(accounts[j].Rank)
	})
}
