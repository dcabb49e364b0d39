package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriorityOf(t *testing.T) {
	assert.Equal(t, 24, DirectoryRoster.PriorityOf("Chief Of Police"))
	assert.Equal(t, 1, DirectoryRoster.PriorityOf("Officer"))
	assert.Equal(t, 7, SwatRoster.PriorityOf("SWAT Commander"))
	assert.Equal(t, 5, InternalAffairsRoster.PriorityOf("IA-Director"))
}

func TestPriorityOfUnknownRankIsZero(t *testing.T) {
	assert.Equal(t, 0, DirectoryRoster.PriorityOf("Grand Admiral"))
	assert.Equal(t, 0, DirectoryRoster.PriorityOf(""))
	// legacy rank strings sort last rather than erroring
	assert.Equal(t, 0, SwatRoster.PriorityOf("SWAT Recruit"))
}

func TestSortForDisplayDescending(t *testing.T) {
	accounts := []Account{
		{Username: "rookie", Rank: "Cadet"},
		{Username: "chief", Rank: "Chief Of Police"},
		{Username: "sarge", Rank: "Sergeant"},
		{Username: "beat", Rank: "Officer"},
	}
	DirectoryRoster.SortForDisplay(accounts)

	for i := 1; i < len(accounts); i++ {
		prev := DirectoryRoster.PriorityOf(accounts[i-1].Rank)
		cur := DirectoryRoster.PriorityOf(accounts[i].Rank)
		assert.GreaterOrEqual(t, prev, cur, "listing must be non-increasing in priority")
	}
	assert.Equal(t, "chief", accounts[0].Username)
}

func TestSortForDisplayStableOnTies(t *testing.T) {
	// Cadet and unrecognized ranks all carry priority 0 and must keep
	// their input order.
	accounts := []Account{
		{Username: "a", Rank: "Cadet"},
		{Username: "b", Rank: "Old Rank"},
		{Username: "c", Rank: "Cadet"},
		{Username: "top", Rank: "Major"},
		{Username: "d", Rank: ""},
	}
	DirectoryRoster.SortForDisplay(accounts)

	assert.Equal(t, "top", accounts[0].Username)
	rest := []string{accounts[1].Username, accounts[2].Username, accounts[3].Username, accounts[4].Username}
	assert.Equal(t, []string{"a", "b", "c", "d"}, rest)
}

func TestIsCommandRank(t *testing.T) {
	assert.True(t, SwatRoster.IsCommandRank("SWAT Sergeant"))
	assert.True(t, SwatRoster.IsCommandRank("SWAT Commander"))
	assert.False(t, SwatRoster.IsCommandRank("SWAT Tryout"))
	assert.False(t, SwatRoster.IsCommandRank("Sergeant"))

	assert.True(t, InternalAffairsRoster.IsCommandRank("IA-Director"))
	assert.False(t, InternalAffairsRoster.IsCommandRank("IA-Agent"))
}
