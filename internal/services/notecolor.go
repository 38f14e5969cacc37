package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/calebwray/ideawell-backend/internal/logger"
	"github.com/calebwray/ideawell-backend/internal/normalization"
	"github.com/calebwray/ideawell-backend/internal/repos"
	"github.com/calebwray/ideawell-backend/internal/types"
)

// DefaultNoteColors is the legacy built-in palette served when the user has
// not defined any colors of their own.
var DefaultNoteColors = []*types.NoteColor{
	{Name: "Yellow", Color: "#FEF3C7"},
	{Name: "Green", Color: "#D1FAE5"},
	{Name: "Blue", Color: "#DBEAFE"},
	{Name: "Pink", Color: "#FCE7F3"},
	{Name: "Purple", Color: "#EDE9FE"},
	{Name: "Gray", Color: "#F3F4F6"},
}

type NoteColorService interface {
	// List returns the user's palette, or the built-in one when empty.
	List(ctx context.Context, userID uuid.UUID) ([]*types.NoteColor, error)
	Create(ctx context.Context, userID uuid.UUID, name, color string) (*types.NoteColor, error)
	Update(ctx context.Context, userID, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type noteColorService struct {
	db            *gorm.DB
	log           *logger.Logger
	noteColorRepo repos.NoteColorRepo
}

func NewNoteColorService(db *gorm.DB, log *logger.Logger, noteColorRepo repos.NoteColorRepo) NoteColorService {
	return &noteColorService{
		db:            db,
		log:           log.With("service", "NoteColorService"),
		noteColorRepo: noteColorRepo,
	}
}

func (ns *noteColorService) List(ctx context.Context, userID uuid.UUID) ([]*types.NoteColor, error) {
	rows, err := ns.noteColorRepo.ListByUser(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	return PaletteOrDefault(rows), nil
}

// PaletteOrDefault substitutes the built-in palette for an empty user palette.
func PaletteOrDefault(rows []*types.NoteColor) []*types.NoteColor {
	if len(rows) > 0 {
		return rows
	}
	return DefaultNoteColors
}

func (ns *noteColorService) Create(ctx context.Context, userID uuid.UUID, name, color string) (*types.NoteColor, error) {
	name = normalization.TrimInput(name)
	if name == "" {
		return nil, fmt.Errorf("color name is required")
	}
	parsed, err := normalization.ParseHexColor(color)
	if err != nil {
		return nil, err
	}
	rows, err := ns.noteColorRepo.Create(ctx, nil, []*types.NoteColor{{UserID: userID, Name: name, Color: parsed}})
	if err != nil {
		return nil, err
	}
	return rows[0], nil
}

func (ns *noteColorService) Update(ctx context.Context, userID, id uuid.UUID, fields map[string]interface{}) error {
	if v, ok := fields["name"]; ok {
		name, _ := v.(string)
		name = normalization.TrimInput(name)
		if name == "" {
			return fmt.Errorf("color name is required")
		}
		fields["name"] = name
	}
	if v, ok := fields["color"]; ok {
		raw, _ := v.(string)
		parsed, err := normalization.ParseHexColor(raw)
		if err != nil {
			return err
		}
		fields["color"] = parsed
	}
	return ns.noteColorRepo.UpdateFields(ctx, nil, id, userID, fields)
}

func (ns *noteColorService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return ns.noteColorRepo.Delete(ctx, nil, id, userID)
}
