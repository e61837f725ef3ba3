package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/example/journeymap/internal/models"
	"github.com/example/journeymap/internal/ports/secondary"
)

type snapshotFixture struct {
	service *SnapshotServiceImpl
	store   *mockSnapshotStore
	files   map[string]*mockSnapshotStore
}

func newTestSnapshotService(state *models.AppState) *snapshotFixture {
	f := &snapshotFixture{
		store: newMockSnapshotStore(state),
		files: make(map[string]*mockSnapshotStore),
	}
	open := func(path string) secondary.SnapshotStore {
		file, ok := f.files[path]
		if !ok {
			file = newMockSnapshotStore(nil)
			f.files[path] = file
		}
		return file
	}
	f.service = NewSnapshotService(f.store, open, testLogger())
	f.service.newID = sequentialIDs()
	f.service.now = func() time.Time { return demoTime }
	return f
}

func TestImport(t *testing.T) {
	f := newTestSnapshotService(nil)
	f.files["in.json"] = newMockSnapshotStore(demoState())

	stats, err := f.service.Import(context.Background(), "in.json")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if f.store.saved == nil {
		t.Fatal("expected store to be saved")
	}
	if stats.Clients != 1 || stats.Journeys != 3 || stats.Phases != 6 {
		t.Errorf("unexpected stats %+v", stats)
	}
}

func TestImport_ReadError(t *testing.T) {
	f := newTestSnapshotService(nil)
	bad := newMockSnapshotStore(nil)
	bad.loadErr = errors.New("invalid json")
	f.files["bad.json"] = bad

	_, err := f.service.Import(context.Background(), "bad.json")
	if !errors.Is(err, bad.loadErr) {
		t.Errorf("expected wrapped read error, got %v", err)
	}
	if f.store.saved != nil {
		t.Error("store must not be touched when the file cannot be read")
	}
}

func TestDump(t *testing.T) {
	f := newTestSnapshotService(demoState())

	stats, err := f.service.Dump(context.Background(), "out.json")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	out := f.files["out.json"]
	if out == nil || out.saved == nil {
		t.Fatal("expected snapshot file to be written")
	}
	if len(out.saved.Opportunities) != stats.Opportunities {
		t.Errorf("stats disagree with written snapshot: %+v", stats)
	}
}

func TestDump_WriteError(t *testing.T) {
	f := newTestSnapshotService(demoState())
	out := newMockSnapshotStore(nil)
	out.saveErr = errors.New("permission denied")
	f.files["out.json"] = out

	_, err := f.service.Dump(context.Background(), "out.json")
	if !errors.Is(err, out.saveErr) {
		t.Errorf("expected wrapped write error, got %v", err)
	}
}

func TestSeedDemo(t *testing.T) {
	f := newTestSnapshotService(nil)

	stats, err := f.service.SeedDemo(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := statsOf(demoState())
	if *stats != *want {
		t.Errorf("expected %+v, got %+v", want, stats)
	}
	if f.store.saved.Clients[0].CreatedAt != demoTime {
		t.Errorf("expected injected clock to be used")
	}
}

func TestSeedDemo_SaveError(t *testing.T) {
	f := newTestSnapshotService(nil)
	f.store.saveErr = errors.New("locked")

	_, err := f.service.SeedDemo(context.Background())
	if !errors.Is(err, f.store.saveErr) {
		t.Errorf("expected wrapped save error, got %v", err)
	}
}
