package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/calebwray/ideawell-backend/internal/config"
	"github.com/calebwray/ideawell-backend/internal/logger"
	"github.com/calebwray/ideawell-backend/internal/repos"
	"github.com/calebwray/ideawell-backend/internal/types"
)

// newIdeaServiceDB backs the service with an in-memory sqlite database. The
// production schema leans on Postgres uuid defaults, so the tables are
// declared here with sqlite equivalents.
func newIdeaServiceDB(t *testing.T) (IdeaService, *gorm.DB) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("unwrap db: %v", err)
	}
	// A second pooled connection would see an empty :memory: database.
	sqlDB.SetMaxOpenConns(1)

	ddl := []string{
		`CREATE TABLE idea (
			id text PRIMARY KEY,
			user_id text NOT NULL,
			title text NOT NULL,
			description text,
			content text,
			content_type_id text,
			platform_id text,
			priority text NOT NULL DEFAULT 'none',
			status text NOT NULL DEFAULT 'developing',
			is_timely boolean NOT NULL DEFAULT false,
			scheduled_date datetime,
			source text,
			next_action text,
			energy_level text,
			time_estimate text,
			created_at datetime NOT NULL,
			updated_at datetime NOT NULL
		)`,
		`CREATE TABLE tag (
			id text PRIMARY KEY,
			user_id text NOT NULL,
			name text NOT NULL,
			color text NOT NULL DEFAULT '#808080',
			created_at datetime NOT NULL,
			updated_at datetime NOT NULL
		)`,
		`CREATE TABLE idea_tag (
			id text PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
			idea_id text NOT NULL,
			tag_id text NOT NULL,
			created_at datetime NOT NULL,
			UNIQUE (idea_id, tag_id)
		)`,
	}
	for _, stmt := range ddl {
		if err := gdb.Exec(stmt).Error; err != nil {
			t.Fatalf("create table: %v", err)
		}
	}

	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	svc := NewIdeaService(
		gdb,
		log,
		repos.NewIdeaRepo(gdb, log),
		repos.NewIdeaTagRepo(gdb, log),
		NewWebhookSink(config.WebhookConfig{}, log, nil),
	)
	return svc, gdb
}

func seedTag(t *testing.T, gdb *gorm.DB, userID uuid.UUID, name string) uuid.UUID {
	t.Helper()
	tag := &types.Tag{ID: uuid.New(), UserID: userID, Name: name}
	if err := gdb.Create(tag).Error; err != nil {
		t.Fatalf("seed tag %q: %v", name, err)
	}
	return tag.ID
}

func sameIDSet(got, want []uuid.UUID) bool {
	if len(got) != len(want) {
		return false
	}
	set := make(map[uuid.UUID]struct{}, len(want))
	for _, id := range want {
		set[id] = struct{}{}
	}
	for _, id := range got {
		if _, ok := set[id]; !ok {
			return false
		}
	}
	return true
}

func TestReplaceTagsSwapsWholeSet(t *testing.T) {
	svc, gdb := newIdeaServiceDB(t)
	ctx := context.Background()
	userID := uuid.New()

	t1 := seedTag(t, gdb, userID, "hooks")
	t2 := seedTag(t, gdb, userID, "shorts")
	t3 := seedTag(t, gdb, userID, "longform")

	created, err := svc.Create(ctx, userID, &types.Idea{Title: "Video: intro"}, []uuid.UUID{t1, t2})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := svc.GetTagIDs(ctx, userID, created.ID)
	if err != nil {
		t.Fatalf("get tags: %v", err)
	}
	if !sameIDSet(got, []uuid.UUID{t1, t2}) {
		t.Fatalf("initial tag set = %v", got)
	}

	if err := svc.ReplaceTags(ctx, userID, created.ID, []uuid.UUID{t3}); err != nil {
		t.Fatalf("replace: %v", err)
	}
	got, err = svc.GetTagIDs(ctx, userID, created.ID)
	if err != nil {
		t.Fatalf("get tags: %v", err)
	}
	if !sameIDSet(got, []uuid.UUID{t3}) {
		t.Fatalf("after replace, tag set = %v, want exactly [%v]", got, t3)
	}

	if err := svc.ReplaceTags(ctx, userID, created.ID, nil); err != nil {
		t.Fatalf("clear: %v", err)
	}
	got, err = svc.GetTagIDs(ctx, userID, created.ID)
	if err != nil {
		t.Fatalf("get tags: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("empty replacement should clear the set, got %v", got)
	}
}

func TestArchiveClearsScheduledDate(t *testing.T) {
	svc, _ := newIdeaServiceDB(t)
	ctx := context.Background()
	userID := uuid.New()

	when := time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)
	created, err := svc.Create(ctx, userID, &types.Idea{
		Title:         "Launch recap",
		Status:        types.StatusScheduled,
		ScheduledDate: &when,
	}, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ScheduledDate == nil {
		t.Fatal("scheduled date not stored")
	}

	archived, err := svc.Archive(ctx, userID, created.ID)
	if err != nil {
		t.Fatalf("archive: %v", err)
	}
	if archived.Status != types.StatusArchived {
		t.Fatalf("status = %q", archived.Status)
	}
	if archived.ScheduledDate != nil {
		t.Fatalf("archive must null the scheduled date, got %v", archived.ScheduledDate)
	}
}
