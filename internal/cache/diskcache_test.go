package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

func newTestCache(t *testing.T) *DiskCache {
	t.Helper()
	return &DiskCache{dir: t.TempDir()}
}

func TestSumIsDeterministicAndContentSensitive(t *testing.T) {
	a := Sum([]byte("module foo;"))
	b := Sum([]byte("module foo;"))
	if a != b {
		t.Fatalf("Sum of identical content must match")
	}
	c := Sum([]byte("module bar;"))
	if a == c {
		t.Fatalf("Sum of different content must not collide")
	}
}

func TestPutThenGetRoundTrips(t *testing.T) {
	c := newTestCache(t)
	key := Sum([]byte("unit-a"))
	want := Payload{UnitName: "unit-a", DiagText: "no errors", HadError: false}

	if err := c.Put(key, want); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, ok, err := c.Get(key)
	if err != nil || !ok {
		t.Fatalf("Get() = (%+v, %v, %v), want a hit", got, ok, err)
	}
	if got.UnitName != want.UnitName || got.DiagText != want.DiagText || got.HadError != want.HadError {
		t.Fatalf("Get() = %+v, want %+v", got, want)
	}
	if got.Schema != schemaVersion {
		t.Errorf("Get() schema = %d, want %d", got.Schema, schemaVersion)
	}
}

func TestGetMissReportsFalseNotError(t *testing.T) {
	c := newTestCache(t)
	_, ok, err := c.Get(Sum([]byte("never-written")))
	if err != nil {
		t.Fatalf("Get on a missing key returned an error: %v", err)
	}
	if ok {
		t.Fatalf("Get on a missing key reported a hit")
	}
}

func TestGetRejectsStaleSchema(t *testing.T) {
	c := newTestCache(t)
	key := Sum([]byte("unit-stale"))
	if err := c.Put(key, Payload{UnitName: "unit-stale"}); err != nil {
		t.Fatalf("Put: %v", err)
	}

	// Put always stamps the current schemaVersion, so to simulate an older
	// on-disk format, encode a payload with a mismatched schema directly,
	// bypassing Put's stamping.
	p := c.pathFor(key)
	f, err := os.Create(p)
	if err != nil {
		t.Fatalf("creating stale entry: %v", err)
	}
	if err := msgpack.NewEncoder(f).Encode(&Payload{Schema: schemaVersion + 1, UnitName: "unit-stale"}); err != nil {
		t.Fatalf("encoding stale entry: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("closing stale entry: %v", err)
	}

	_, ok, err := c.Get(key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatalf("Get must reject an entry written by a newer/older schema version")
	}
}

func TestPutOverwritesPriorEntry(t *testing.T) {
	c := newTestCache(t)
	key := Sum([]byte("unit-b"))
	if err := c.Put(key, Payload{UnitName: "first"}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := c.Put(key, Payload{UnitName: "second"}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, ok, err := c.Get(key)
	if err != nil || !ok {
		t.Fatalf("Get: (%+v, %v, %v)", got, ok, err)
	}
	if got.UnitName != "second" {
		t.Fatalf("Get().UnitName = %q, want %q (overwrite must replace, not merge)", got.UnitName, "second")
	}
}

func TestNilDiskCacheIsANoOp(t *testing.T) {
	var c *DiskCache
	if err := c.Put(Sum([]byte("x")), Payload{UnitName: "x"}); err != nil {
		t.Fatalf("Put on nil cache must succeed trivially, got %v", err)
	}
	_, ok, err := c.Get(Sum([]byte("x")))
	if err != nil || ok {
		t.Fatalf("Get on nil cache = (_, %v, %v), want (_, false, nil)", ok, err)
	}
}

func TestPathForNestsUnderUnitsDir(t *testing.T) {
	c := newTestCache(t)
	key := Sum([]byte("z"))
	p := c.pathFor(key)
	if filepath.Dir(p) != filepath.Join(c.dir, "units") {
		t.Fatalf("pathFor() = %q, want it nested under %q", p, filepath.Join(c.dir, "units"))
	}
	if filepath.Ext(p) != ".mp" {
		t.Fatalf("pathFor() = %q, want a .mp extension", p)
	}
}
