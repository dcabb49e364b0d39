package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	apierrors "github.com/society-rp/staff-portal/pkg/errors"
	"github.com/society-rp/staff-portal/v1/models"
	"gorm.io/gorm"
)

// RosterService handles CRUD over one roster table. All three rosters share
// the Account shape, so one service type bound to a RosterSpec serves the
// directory, SWAT and Internal Affairs alike.
type RosterService struct {
	db     *gorm.DB
	spec   *models.RosterSpec
	cadets *CadetService
}

// NewRosterService creates a roster service. cadets is only set for the
// directory roster, where every new account provisions a cadet entry.
func NewRosterService(db *gorm.DB, spec *models.RosterSpec, cadets *CadetService) *RosterService {
	return &RosterService{db: db, spec: spec, cadets: cadets}
}

// Spec returns the roster's spec
func (s *RosterService) Spec() *models.RosterSpec {
	return s.spec
}

func (s *RosterService) table() *gorm.DB {
	return s.db.Table(s.spec.Table)
}

// Create inserts a new account, applying the roster's schema defaults to
// unspecified fields. Username and DiscordID must be unique in the roster.
func (s *RosterService) Create(req *models.CreateAccountRequest) (*models.Account, error) {
	username := strings.TrimSpace(req.Username)
	discordID := strings.TrimSpace(req.DiscordID)
	if username == "" {
		return nil, apierrors.ValidationError("username is required")
	}
	if discordID == "" {
		return nil, apierrors.ValidationError("discordId is required")
	}
	if req.Strikes < 0 {
		return nil, apierrors.ValidationError("strikes must not be negative")
	}

	var existing int64
	if err := s.table().Where("username = ? OR discord_id = ?", username, discordID).Count(&existing).Error; err != nil {
		return nil, apierrors.InternalError("failed to check for existing account", err)
	}
	if existing > 0 {
		return nil, apierrors.ConflictError(fmt.Sprintf("an account with that username or Discord ID already exists in the %s roster", s.spec.Name))
	}

	account := models.Account{
		ID:        s.spec.IDPrefix + uuid.NewString(),
		Username:  username,
		DiscordID: discordID,
		Rank:      req.Rank,
		Status:    req.Status,
		SteamID:   req.SteamID,
		Strikes:   req.Strikes,
		Division:  req.Division,
		Tier:      req.Tier,
	}
	if account.Rank == "" {
		account.Rank = s.spec.DefaultRank
	}
	if account.Status == "" {
		account.Status = "Active"
	}
	if account.Division == "" {
		account.Division = s.spec.DefaultDivision
	}
	if account.Tier == "" {
		account.Tier = models.DefaultTier
	}

	if err := s.table().Create(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierrors.ConflictError(fmt.Sprintf("an account with that username or Discord ID already exists in the %s roster", s.spec.Name))
		}
		return nil, apierrors.InternalError("failed to create account", err)
	}

	if s.cadets != nil {
		if err := s.cadets.Ensure(account.DiscordID); err != nil {
			return nil, err
		}
	}

	return &account, nil
}

// Get retrieves one account by its ID
func (s *RosterService) Get(id string) (*models.Account, error) {
	var account models.Account
	err := s.table().Where("id = ?", id).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierrors.NotFoundError("account not found")
	}
	if err != nil {
		return nil, apierrors.InternalError("failed to load account", err)
	}
	return &account, nil
}

// FindByDiscordID retrieves one account by the member's Discord ID
func (s *RosterService) FindByDiscordID(discordID string) (*models.Account, error) {
	var account models.Account
	err := s.table().Where("discord_id = ?", discordID).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierrors.NotFoundError("account not found")
	}
	if err != nil {
		return nil, apierrors.InternalError("failed to load account", err)
	}
	return &account, nil
}

// List returns the roster sorted for display, most senior rank first
func (s *RosterService) List() ([]models.Account, error) {
	var accounts []models.Account
	if err := s.table().Find(&accounts).Error; err != nil {
		return nil, apierrors.InternalError("failed to list roster", err)
	}
	s.spec.SortForDisplay(accounts)
	return accounts, nil
}

// Update applies a partial update. Nil fields are left untouched; pointed-to
// empty strings overwrite. The read-modify-write runs in one transaction.
func (s *RosterService) Update(id string, req *models.UpdateAccountRequest) (*models.Account, error) {
	var account models.Account
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Table(s.spec.Table).Where("id = ?", id).First(&account).Error; err != nil {
			return err
		}

		if req.Username != nil {
			account.Username = *req.Username
		}
		if req.DiscordID != nil {
			account.DiscordID = *req.DiscordID
		}
		if req.Rank != nil {
			account.Rank = *req.Rank
		}
		if req.Status != nil {
			account.Status = *req.Status
		}
		if req.SteamID != nil {
			account.SteamID = *req.SteamID
		}
		if req.Strikes != nil {
			if *req.Strikes < 0 {
				return apierrors.ValidationError("strikes must not be negative")
			}
			account.Strikes = *req.Strikes
		}
		if req.Division != nil {
			account.Division = *req.Division
		}
		if req.AvatarURL != nil {
			account.AvatarURL = *req.AvatarURL
		}
		if req.Tier != nil {
			account.Tier = *req.Tier
		}

		return tx.Table(s.spec.Table).Save(&account).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierrors.NotFoundError("account not found")
	}
	if err != nil {
		if _, ok := apierrors.AsAPIError(err); ok {
			return nil, err
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierrors.ConflictError("an account with that username or Discord ID already exists")
		}
		return nil, apierrors.InternalError("failed to update account", err)
	}
	return &account, nil
}

// Delete removes an account. Deletion is strict: a missing id is NotFound.
// Cadet entries and guides authored by the account are never cascaded.
func (s *RosterService) Delete(id string) error {
	result := s.table().Where("id = ?", id).Delete(&models.Account{})
	if result.Error != nil {
		return apierrors.InternalError("failed to delete account", result.Error)
	}
	if result.RowsAffected == 0 {
		return apierrors.NotFoundError("account not found")
	}
	return nil
}

// RefreshLogin updates the stored username and avatar from a fresh identity
// provider profile. Returns NotFound when the Discord ID is not provisioned,
// which callers surface as an access denial.
func (s *RosterService) RefreshLogin(discordID, username, avatarURL string) (*models.Account, error) {
	account, err := s.FindByDiscordID(discordID)
	if err != nil {
		return nil, err
	}
	account.Username = username
	account.AvatarURL = avatarURL
	if err := s.table().Save(account).Error; err != nil {
		return nil, apierrors.InternalError("failed to refresh account profile", err)
	}
	return account, nil
}

// Stats summarizes the roster for the home page
func (s *RosterService) Stats() (*models.DirectoryStats, error) {
	var stats models.DirectoryStats
	if err := s.table().Count(&stats.TotalAccounts).Error; err != nil {
		return nil, apierrors.InternalError("failed to count accounts", err)
	}
	if err := s.table().Where("status = ?", "Active").Count(&stats.ActiveAccounts).Error; err != nil {
		return nil, apierrors.InternalError("failed to count active accounts", err)
	}
	if err := s.table().Distinct("division").Count(&stats.TotalDivisions).Error; err != nil {
		return nil, apierrors.InternalError("failed to count divisions", err)
	}
	return &stats, nil
}
