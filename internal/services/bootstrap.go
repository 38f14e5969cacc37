package services

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/calebwray/ideawell-backend/internal/ideaview"
	"github.com/calebwray/ideawell-backend/internal/logger"
	"github.com/calebwray/ideawell-backend/internal/repos"
	"github.com/calebwray/ideawell-backend/internal/types"
)

// Bootstrap is the one-shot payload a client loads on startup: every
// collection plus the idea stats.
type Bootstrap struct {
	Ideas        []*types.Idea            `json:"ideas"`
	IdeaTags     []*types.IdeaTag         `json:"idea_tags"`
	ContentTypes []*types.ContentType     `json:"content_types"`
	Platforms    []*types.Platform        `json:"platforms"`
	Tags         []*types.Tag             `json:"tags"`
	QuickLinks   []*types.QuickLink       `json:"quick_links"`
	Notes        []*types.SystemNote      `json:"notes"`
	Templates    []*types.ContentTemplate `json:"templates"`
	NoteColors   []*types.NoteColor       `json:"note_colors"`
	Stats        *ideaview.Stats          `json:"stats"`
}

type BootstrapService interface {
	Load(ctx context.Context, userID uuid.UUID) (*Bootstrap, error)
}

type bootstrapService struct {
	db            *gorm.DB
	log           *logger.Logger
	ideaRepo      repos.IdeaRepo
	ideaTagRepo   repos.IdeaTagRepo
	ctRepo        repos.ContentTypeRepo
	platformRepo  repos.PlatformRepo
	tagRepo       repos.TagRepo
	quickLinkRepo repos.QuickLinkRepo
	noteRepo      repos.SystemNoteRepo
	templateRepo  repos.ContentTemplateRepo
	noteColorRepo repos.NoteColorRepo
}

func NewBootstrapService(
	db *gorm.DB,
	log *logger.Logger,
	ideaRepo repos.IdeaRepo,
	ideaTagRepo repos.IdeaTagRepo,
	ctRepo repos.ContentTypeRepo,
	platformRepo repos.PlatformRepo,
	tagRepo repos.TagRepo,
	quickLinkRepo repos.QuickLinkRepo,
	noteRepo repos.SystemNoteRepo,
	templateRepo repos.ContentTemplateRepo,
	noteColorRepo repos.NoteColorRepo,
) BootstrapService {
	return &bootstrapService{
		db:            db,
		log:           log.With("service", "BootstrapService"),
		ideaRepo:      ideaRepo,
		ideaTagRepo:   ideaTagRepo,
		ctRepo:        ctRepo,
		platformRepo:  platformRepo,
		tagRepo:       tagRepo,
		quickLinkRepo: quickLinkRepo,
		noteRepo:      noteRepo,
		templateRepo:  templateRepo,
		noteColorRepo: noteColorRepo,
	}
}

// Load fetches every collection concurrently; each fetch writes a distinct
// field so no locking is needed.
func (bs *bootstrapService) Load(ctx context.Context, userID uuid.UUID) (*Bootstrap, error) {
	out := &Bootstrap{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		ideas, err := bs.ideaRepo.ListByUser(gctx, nil, userID)
		if err != nil {
			return err
		}
		out.Ideas = ideas
		out.Stats = ideaview.ComputeStats(ideas)

		ideaIDs := make([]uuid.UUID, 0, len(ideas))
		for _, idea := range ideas {
			ideaIDs = append(ideaIDs, idea.ID)
		}
		joins, err := bs.ideaTagRepo.ListByIdeaIDs(gctx, nil, ideaIDs)
		if err != nil {
			return err
		}
		out.IdeaTags = joins
		return nil
	})
	g.Go(func() error {
		rows, err := bs.ctRepo.ListByUser(gctx, nil, userID)
		out.ContentTypes = rows
		return err
	})
	g.Go(func() error {
		rows, err := bs.platformRepo.ListByUser(gctx, nil, userID)
		out.Platforms = rows
		return err
	})
	g.Go(func() error {
		rows, err := bs.tagRepo.ListByUser(gctx, nil, userID)
		out.Tags = rows
		return err
	})
	g.Go(func() error {
		rows, err := bs.quickLinkRepo.ListByUser(gctx, nil, userID)
		out.QuickLinks = rows
		return err
	})
	g.Go(func() error {
		rows, err := bs.noteRepo.ListByUser(gctx, nil, userID)
		out.Notes = rows
		return err
	})
	g.Go(func() error {
		rows, err := bs.templateRepo.ListByUser(gctx, nil, userID)
		out.Templates = rows
		return err
	})
	g.Go(func() error {
		rows, err := bs.noteColorRepo.ListByUser(gctx, nil, userID)
		out.NoteColors = PaletteOrDefault(rows)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
