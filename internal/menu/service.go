package menu

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type Storage interface {
	Upload(ctx context.Context, key string, file multipart.File) (string, error)
}

type Service struct {
	repo    Repository
	storage Storage
}

func NewService(repo Repository, storage Storage) *Service {
	return &Service{repo: repo, storage: storage}
}

// --------------------------------------------------
// Customer menu reads
// --------------------------------------------------

func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	return s.repo.ListCategories(ctx, true)
}

func (s *Service) ListAvailableItems(ctx context.Context, categoryID string) ([]MenuItem, error) {
	return s.repo.ListItems(ctx, categoryID, true)
}

func (s *Service) GetItemDetail(ctx context.Context, itemID string) (*ItemDetail, error) {
	return s.repo.GetItemDetail(ctx, itemID)
}

// --------------------------------------------------
// Admin: categories
// --------------------------------------------------

func (s *Service) CreateCategory(ctx context.Context, c *Category) error {
	if c.Name == "" {
		return errors.New("category name is required")
	}
	return s.repo.CreateCategory(ctx, c)
}

func (s *Service) UpdateCategory(ctx context.Context, c *Category) error {
	if c.ID == "" || c.Name == "" {
		return errors.New("category id and name are required")
	}
	return s.repo.UpdateCategory(ctx, c)
}

func (s *Service) ListAllCategories(ctx context.Context) ([]Category, error) {
	return s.repo.ListCategories(ctx, false)
}

// --------------------------------------------------
// Admin: items
// --------------------------------------------------

func (s *Service) CreateItem(ctx context.Context, item *MenuItem) error {
	if item.Name == "" || item.CategoryID == "" {
		return errors.New("item name and category are required")
	}
	if item.Price.IsNegative() {
		return errors.New("price cannot be negative")
	}
	return s.repo.CreateItem(ctx, item)
}

func (s *Service) UpdateItem(ctx context.Context, item *MenuItem) error {
	if item.ID == "" {
		return errors.New("item id is required")
	}
	if item.Price.IsNegative() {
		return errors.New("price cannot be negative")
	}
	return s.repo.UpdateItem(ctx, item)
}

func (s *Service) SetItemAvailability(ctx context.Context, itemID string, available bool) error {
	return s.repo.SetItemAvailability(ctx, itemID, available)
}

func (s *Service) DeleteItem(ctx context.Context, itemID string) error {
	return s.repo.DeleteItem(ctx, itemID)
}

func (s *Service) ListAllItems(ctx context.Context, categoryID string) ([]MenuItem, error) {
	return s.repo.ListItems(ctx, categoryID, false)
}

// --------------------------------------------------
// Admin: item image upload
// --------------------------------------------------

var allowedImageExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

func (s *Service) UploadItemImage(
	ctx context.Context,
	itemID string,
	file multipart.File,
	filename string,
) (string, error) {

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImageExt[ext] {
		return "", errors.New("image type not allowed")
	}

	key := fmt.Sprintf(
		"menu-items/%s/%s%s",
		itemID,
		uuid.New().String(),
		ext,
	)

	url, err := s.storage.Upload(ctx, key, file)
	if err != nil {
		return "", err
	}

	if err := s.repo.SetItemImage(ctx, itemID, url); err != nil {
		return "", err
	}

	return url, nil
}

// --------------------------------------------------
// Admin: modifiers
// --------------------------------------------------

func (s *Service) CreateModifierGroup(ctx context.Context, g *ModifierGroup) error {
	if g.MenuItemID == "" || g.Name == "" {
		return errors.New("group name and menu item are required")
	}
	if g.SelectionType != SelectionSingle && g.SelectionType != SelectionMultiple {
		return errors.New("selection_type must be single or multiple")
	}
	if g.MinSelections < 0 || g.MaxSelections < 0 {
		return errors.New("selection bounds cannot be negative")
	}
	if g.MaxSelections > 0 && g.MinSelections > g.MaxSelections {
		return errors.New("min_selections cannot exceed max_selections")
	}
	return s.repo.CreateModifierGroup(ctx, g)
}

func (s *Service) CreateModifierOption(ctx context.Context, o *ModifierOption) error {
	if o.GroupID == "" || o.Name == "" {
		return errors.New("option name and group are required")
	}
	return s.repo.CreateModifierOption(ctx, o)
}

func (s *Service) DeleteModifierGroup(ctx context.Context, groupID string) error {
	return s.repo.DeleteModifierGroup(ctx, groupID)
}
