package services

import (
	"sync"
	"testing"

	apierrors "github.com/society-rp/staff-portal/pkg/errors"
	"github.com/society-rp/staff-portal/v1/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetReturnsZeroViewWhenAbsent(t *testing.T) {
	cadets := NewCadetService(SetupTestDB(t))

	entry, err := cadets.Get("no-such-id")
	require.NoError(t, err)
	assert.Equal(t, "no-such-id", entry.DiscordID)
	assert.Zero(t, entry.Arrests)
	assert.Zero(t, entry.RideAlongs)
	assert.Zero(t, entry.Warrants)
	assert.Zero(t, entry.Fines)
	assert.Zero(t, entry.Heists)
}

func TestEnsureIsIdempotent(t *testing.T) {
	db := SetupTestDB(t)
	cadets := NewCadetService(db)

	require.NoError(t, cadets.Ensure("123"))
	require.NoError(t, cadets.Ensure("123"))

	var count int64
	require.NoError(t, db.Model(&models.CadetEntry{}).Where("discord_id = ?", "123").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestEnsureUnderConcurrentCreation(t *testing.T) {
	db := SetupTestDB(t)
	cadets := NewCadetService(db)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, cadets.Ensure("123"))
		}()
	}
	wg.Wait()

	var count int64
	require.NoError(t, db.Model(&models.CadetEntry{}).Where("discord_id = ?", "123").Count(&count).Error)
	assert.Equal(t, int64(1), count, "concurrent provisioning must yield exactly one entry")
}

func TestUpdateTouchesOnlyProvidedCounters(t *testing.T) {
	db := SetupTestDB(t)
	cadets := NewCadetService(db)

	require.NoError(t, cadets.Ensure("123"))
	arrests := 3
	_, err := cadets.Update("123", &models.UpdateCadetRequest{Arrests: &arrests})
	require.NoError(t, err)

	fines := 5
	updated, err := cadets.Update("123", &models.UpdateCadetRequest{Fines: &fines})
	require.NoError(t, err)

	assert.Equal(t, 5, updated.Fines)
	assert.Equal(t, 3, updated.Arrests)
	assert.Zero(t, updated.RideAlongs)
	assert.Zero(t, updated.Warrants)
	assert.Zero(t, updated.Heists)
}

func TestUpdateMissingEntry(t *testing.T) {
	cadets := NewCadetService(SetupTestDB(t))

	fines := 5
	_, err := cadets.Update("missing", &models.UpdateCadetRequest{Fines: &fines})
	assert.True(t, apierrors.IsType(err, apierrors.ErrorTypeNotFound))
}

func TestUpdateRejectsNegativeCounters(t *testing.T) {
	cadets := NewCadetService(SetupTestDB(t))

	require.NoError(t, cadets.Ensure("123"))
	heists := -2
	_, err := cadets.Update("123", &models.UpdateCadetRequest{Heists: &heists})
	assert.True(t, apierrors.IsType(err, apierrors.ErrorTypeValidation))
}

func TestListWithUsernames(t *testing.T) {
	db := SetupTestDB(t)
	cadets := NewCadetService(db)
	directory := NewRosterService(db, &models.DirectoryRoster, cadets)

	account, err := directory.Create(&models.CreateAccountRequest{Username: "Alice", DiscordID: "123"})
	require.NoError(t, err)
	require.NoError(t, cadets.Ensure("orphaned"))

	records, err := cadets.ListWithUsernames()
	require.NoError(t, err)
	require.Len(t, records, 2)

	byID := map[string]string{}
	for _, rec := range records {
		byID[rec.DiscordID] = rec.Username
	}
	assert.Equal(t, "Alice", byID["123"])
	assert.Equal(t, "Unknown", byID["orphaned"])

	// deleting the account leaves the ledger entry behind as Unknown
	require.NoError(t, directory.Delete(account.ID))
	records, err = cadets.ListWithUsernames()
	require.NoError(t, err)
	byID = map[string]string{}
	for _, rec := range records {
		byID[rec.DiscordID] = rec.Username
	}
	assert.Equal(t, "Unknown", byID["123"])
}
