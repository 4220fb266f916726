package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/anshpaul/paymentApp-backend/internal/domain/entities"
	"github.com/anshpaul/paymentApp-backend/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrMissingCampaignImage = errors.New("campaign image is required")
	ErrInvalidCampaignID    = errors.New("invalid campaign id")
	ErrCampaignNotFound     = errors.New("campaign not found")
)

// ICampaignUseCase exposes campaign item management (the upload flow).
//
// Donation aggregates on campaigns are read-only here; they only move via the
// verification flow.

type ICampaignUseCase interface {
	CreateCampaign(ctx context.Context, in CreateCampaignInput) (entities.CampaignItem, error)
	ListCampaigns(ctx context.Context) ([]entities.CampaignItem, error)
	UpdateCampaignInfo(ctx context.Context, id, title, description string) (entities.CampaignItem, error)
	DeleteCampaign(ctx context.Context, id string) error
}

type CreateCampaignInput struct {
	Title       string
	Description string
	Image       io.Reader
	ImageName   string
	ContentType string
}

type CampaignUseCase struct {
	repo    interfaces.ICampaignRepository
	storage interfaces.IImageStorage
}

var _ ICampaignUseCase = (*CampaignUseCase)(nil)

func NewCampaignUseCase(repo interfaces.ICampaignRepository, storage interfaces.IImageStorage) *CampaignUseCase {
	return &CampaignUseCase{repo: repo, storage: storage}
}

func (u *CampaignUseCase) CreateCampaign(ctx context.Context, in CreateCampaignInput) (entities.CampaignItem, error) {
	if in.Image == nil {
		log.Printf("[upload][usecase] missing image title=%q", in.Title)
		return entities.CampaignItem{}, ErrMissingCampaignImage
	}

	key := "uploads/" + uuid.NewString() + strings.ToLower(path.Ext(in.ImageName))
	url, err := u.storage.Upload(ctx, key, in.ContentType, in.Image)
	if err != nil {
		log.Printf("[upload][usecase] image upload failed key=%s err=%v", key, err)
		return entities.CampaignItem{}, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}

	item := entities.CampaignItem{
		ID:          uuid.NewString(),
		ImageURL:    url,
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		CreatedAt:   time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, item)
	if err != nil {
		log.Printf("[upload][usecase] campaign persist failed id=%s err=%v", item.ID, err)
		return entities.CampaignItem{}, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}
	log.Printf("[upload][usecase] campaign created id=%s title=%q", created.ID, created.Title)
	return created, nil
}

func (u *CampaignUseCase) ListCampaigns(ctx context.Context) ([]entities.CampaignItem, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}
	// Latest first.
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (u *CampaignUseCase) UpdateCampaignInfo(ctx context.Context, id, title, description string) (entities.CampaignItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CampaignItem{}, ErrInvalidCampaignID
	}

	updated, err := u.repo.UpdateInfoByID(ctx, id, strings.TrimSpace(title), strings.TrimSpace(description))
	if err != nil {
		return entities.CampaignItem{}, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}
	if updated.ID == "" {
		return entities.CampaignItem{}, ErrCampaignNotFound
	}
	return updated, nil
}

func (u *CampaignUseCase) DeleteCampaign(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidCampaignID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}
	if existing.ID == "" {
		return ErrCampaignNotFound
	}

	if err := u.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}
	log.Printf("[upload][usecase] campaign deleted id=%s", id)
	return nil
}
