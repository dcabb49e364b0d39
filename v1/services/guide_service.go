package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	apierrors "github.com/society-rp/staff-portal/pkg/errors"
	"github.com/society-rp/staff-portal/v1/models"
	"gorm.io/gorm"
)

// GuideService handles the guide library
type GuideService struct {
	db *gorm.DB
}

// NewGuideService creates a new guide service
func NewGuideService(db *gorm.DB) *GuideService {
	return &GuideService{db: db}
}

// Create stores a new guide authored by the given account
func (s *GuideService) Create(req *models.CreateGuideRequest, createdBy string) (*models.Guide, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apierrors.ValidationError("title is required")
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, apierrors.ValidationError("content is required")
	}

	guide := models.Guide{
		ID:        "gde_" + uuid.NewString(),
		Title:     req.Title,
		Content:   req.Content,
		IsPublic:  req.IsPublic,
		CreatedBy: createdBy,
	}
	if err := s.db.Create(&guide).Error; err != nil {
		return nil, apierrors.InternalError("failed to create guide", err)
	}
	return &guide, nil
}

// Get retrieves one guide, enforcing visibility for unauthenticated callers
func (s *GuideService) Get(id string, authenticated bool) (*models.Guide, error) {
	var guide models.Guide
	err := s.db.Where("id = ?", id).First(&guide).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierrors.NotFoundError("guide not found")
	}
	if err != nil {
		return nil, apierrors.InternalError("failed to load guide", err)
	}
	if !guide.VisibleTo(authenticated) {
		return nil, apierrors.ForbiddenError("this guide is restricted to members")
	}
	return &guide, nil
}

// List returns the guides visible to the caller. Anonymous callers only see
// public guides.
func (s *GuideService) List(authenticated bool) ([]models.Guide, error) {
	query := s.db.Model(&models.Guide{})
	if !authenticated {
		query = query.Where("is_public = ?", true)
	}
	var guides []models.Guide
	if err := query.Find(&guides).Error; err != nil {
		return nil, apierrors.InternalError("failed to list guides", err)
	}
	return guides, nil
}
