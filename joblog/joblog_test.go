package joblog

import (
	"context"
	"strings"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

func TestRecordAndRecent(t *testing.T) {
	store := OpenMemory(t)
	ctx := context.Background()

	store.Record(ctx, &Run{
		Filename:   "brochure.pdf",
		SizeBytes:  1024,
		Status:     "success",
		DurationMs: 42,
		CreatedAt:  time.Unix(1000, 0),
	})
	store.Record(ctx, &Run{
		Filename:   "broken.pdf",
		SizeBytes:  10,
		Status:     "error",
		Error:      "document is not a parseable PDF",
		DurationMs: 3,
		CreatedAt:  time.Unix(2000, 0),
	})

	runs, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	// Newest first.
	if runs[0].Filename != "broken.pdf" {
		t.Errorf("runs[0].Filename = %q, want broken.pdf", runs[0].Filename)
	}
	if runs[0].Error != "document is not a parseable PDF" {
		t.Errorf("runs[0].Error = %q", runs[0].Error)
	}
	if runs[1].Status != "success" || runs[1].Error != "" {
		t.Errorf("runs[1] = %+v", runs[1])
	}
}

func TestRecordFillsDefaults(t *testing.T) {
	store := OpenMemory(t)
	ctx := context.Background()

	r := &Run{Filename: "a.pdf", Status: "success"}
	store.Record(ctx, r)

	if !strings.HasPrefix(r.RunID, "run_") {
		t.Errorf("RunID = %q, want run_ prefix", r.RunID)
	}
	if r.CreatedAt.IsZero() {
		t.Error("CreatedAt not filled")
	}
}

func TestRecentLimit(t *testing.T) {
	store := OpenMemory(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		store.Record(ctx, &Run{
			Filename:  "f.pdf",
			Status:    "success",
			CreatedAt: time.Unix(int64(1000+i), 0),
		})
	}

	runs, err := store.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("got %d runs, want 3", len(runs))
	}
}

func TestWithIDGenerator(t *testing.T) {
	store := OpenMemory(t, WithIDGenerator(func() string { return "run_fixed" }))
	ctx := context.Background()

	r := &Run{Filename: "a.pdf", Status: "success"}
	store.Record(ctx, r)
	if r.RunID != "run_fixed" {
		t.Errorf("RunID = %q, want run_fixed", r.RunID)
	}
}
