package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nexus.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestProgressRepo_LoadEmpty(t *testing.T) {
	s := openTestStore(t)

	data, err := s.ProgressRepo().Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if data != nil {
		t.Fatalf("fresh database should have no record, got %+v", data)
	}
}

func TestProgressRepo_SaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.ProgressRepo()

	in := &ProgressData{
		UnlockedLevel: 4,
		LevelWins:     map[int]int{1: 3, 2: 4, 3: 2},
		TotalScore:    5150,
		SeenPuzzles:   []string{"q1", "q2"},
		Medals:        map[int]string{1: "GOLD", 2: "SILVER"},
	}
	if err := repo.Save(ctx, in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.UnlockedLevel != 4 || out.TotalScore != 5150 {
		t.Errorf("scalars lost: %+v", out)
	}
	if out.LevelWins[2] != 4 || out.Medals[1] != "GOLD" {
		t.Errorf("maps lost: %+v", out)
	}
	if len(out.SeenPuzzles) != 2 || out.SeenPuzzles[0] != "q1" {
		t.Errorf("window lost: %v", out.SeenPuzzles)
	}
}

func TestProgressRepo_SaveOverwrites(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.ProgressRepo()

	repo.Save(ctx, &ProgressData{UnlockedLevel: 1, TotalScore: 100})
	repo.Save(ctx, &ProgressData{UnlockedLevel: 2, TotalScore: 900})

	out, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.UnlockedLevel != 2 || out.TotalScore != 900 {
		t.Errorf("upsert did not overwrite: %+v", out)
	}
}

func TestProgressRepo_LoadFillsMissingFields(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// Simulate a record written before seenPuzzles and medals existed.
	_, err := s.DB().ExecContext(ctx,
		`INSERT INTO progress (key, data) VALUES (?, ?)`,
		ProgressKey, `{"unlockedLevel":3,"levelWins":{"1":3},"totalScore":2100}`,
	)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	out, err := s.ProgressRepo().Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.UnlockedLevel != 3 || out.LevelWins[1] != 3 {
		t.Errorf("unexpected record: %+v", out)
	}
	if out.SeenPuzzles == nil || out.Medals == nil {
		t.Error("missing fields must default to empty, not nil")
	}
}

func TestStore_Reset(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	s.ProgressRepo().Save(ctx, &ProgressData{UnlockedLevel: 5})
	if err := s.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	out, err := s.ProgressRepo().Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out != nil {
		t.Fatalf("record survived reset: %+v", out)
	}
}

func TestEventRepo_AppendAndSummarize(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	events := []LLMRequestEventData{
		{SessionID: "s1", Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "puzzle-gen", InputTokens: 120, OutputTokens: 60, LatencyMs: 800, Success: true},
		{SessionID: "s1", Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "puzzle-gen", InputTokens: 130, OutputTokens: 0, LatencyMs: 300, Success: false, ErrorMessage: "rate limited"},
		{SessionID: "s1", Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "answer-check", InputTokens: 80, OutputTokens: 20, LatencyMs: 500, Success: true},
	}
	for _, ev := range events {
		if err := repo.AppendLLMRequest(ctx, ev); err != nil {
			t.Fatalf("AppendLLMRequest: %v", err)
		}
	}

	usage, err := repo.LLMUsage(ctx)
	if err != nil {
		t.Fatalf("LLMUsage: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("got %d purpose groups, want 2", len(usage))
	}

	// Ordered by purpose: answer-check first.
	if usage[0].Purpose != "answer-check" || usage[0].Requests != 1 || usage[0].Failures != 0 {
		t.Errorf("answer-check summary: %+v", usage[0])
	}
	gen := usage[1]
	if gen.Purpose != "puzzle-gen" || gen.Requests != 2 || gen.Failures != 1 {
		t.Errorf("puzzle-gen summary: %+v", gen)
	}
	if gen.InputTokens != 250 || gen.OutputTokens != 60 {
		t.Errorf("puzzle-gen tokens: %+v", gen)
	}
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nexus.db")
	ctx := context.Background()

	s1, err := Open(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	s1.ProgressRepo().Save(ctx, &ProgressData{UnlockedLevel: 7})
	s1.Close()

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()

	out, err := s2.ProgressRepo().Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out == nil || out.UnlockedLevel != 7 {
		t.Fatalf("record lost across reopen: %+v", out)
	}
}
