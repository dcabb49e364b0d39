package services

import (
	"errors"

	apierrors "github.com/society-rp/staff-portal/pkg/errors"
	"github.com/society-rp/staff-portal/v1/models"
	"gorm.io/gorm"
)

// CadetService handles the cadet progress ledger. Entries are addressed by
// Discord ID throughout.
type CadetService struct {
	db *gorm.DB
}

// NewCadetService creates a new cadet service
func NewCadetService(db *gorm.DB) *CadetService {
	return &CadetService{db: db}
}

// Ensure guarantees exactly one entry exists for the Discord ID, creating an
// all-zero one if absent. The Discord ID is the primary key, so a concurrent
// duplicate create loses the race and resolves to the existing row.
func (s *CadetService) Ensure(discordID string) error {
	entry := models.CadetEntry{DiscordID: discordID}
	err := s.db.Where("discord_id = ?", discordID).FirstOrCreate(&entry).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	if err != nil {
		return apierrors.InternalError("failed to provision cadet entry", err)
	}
	return nil
}

// Get returns the entry for a Discord ID, or an all-zero view when none
// exists. It never fails on absence.
func (s *CadetService) Get(discordID string) (*models.CadetEntry, error) {
	var entry models.CadetEntry
	err := s.db.Where("discord_id = ?", discordID).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.CadetEntry{DiscordID: discordID}, nil
	}
	if err != nil {
		return nil, apierrors.InternalError("failed to load cadet entry", err)
	}
	return &entry, nil
}

// Update applies a partial counter update. Nil counters are left untouched.
func (s *CadetService) Update(discordID string, req *models.UpdateCadetRequest) (*models.CadetEntry, error) {
	var entry models.CadetEntry
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("discord_id = ?", discordID).First(&entry).Error; err != nil {
			return err
		}

		counters := []struct {
			value *int
			dst   *int
		}{
			{req.Arrests, &entry.Arrests},
			{req.RideAlongs, &entry.RideAlongs},
			{req.Warrants, &entry.Warrants},
			{req.Fines, &entry.Fines},
			{req.Heists, &entry.Heists},
		}
		for _, c := range counters {
			if c.value == nil {
				continue
			}
			if *c.value < 0 {
				return apierrors.ValidationError("counters must not be negative")
			}
			*c.dst = *c.value
		}

		return tx.Save(&entry).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierrors.NotFoundError("cadet entry not found")
	}
	if err != nil {
		if _, ok := apierrors.AsAPIError(err); ok {
			return nil, err
		}
		return nil, apierrors.InternalError("failed to update cadet entry", err)
	}
	return &entry, nil
}

// ListWithUsernames returns every entry joined with the owning directory
// account's username for the admin listing. Entries whose account has been
// deleted show as "Unknown".
func (s *CadetService) ListWithUsernames() ([]models.CadetRecord, error) {
	var entries []models.CadetEntry
	if err := s.db.Find(&entries).Error; err != nil {
		return nil, apierrors.InternalError("failed to list cadet entries", err)
	}

	var accounts []models.Account
	if err := s.db.Table(models.DirectoryRoster.Table).Find(&accounts).Error; err != nil {
		return nil, apierrors.InternalError("failed to load directory accounts", err)
	}
	usernames := make(map[string]string, len(accounts))
	for _, a := range accounts {
		usernames[a.DiscordID] = a.Username
	}

	records := make([]models.CadetRecord, 0, len(entries))
	for _, e := range entries {
		username, ok := usernames[e.DiscordID]
		if !ok {
			username = "Unknown"
		}
		records = append(records, models.CadetRecord{CadetEntry: e, Username: username})
	}
	return records, nil
}
