package postable_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/cgt/postable"
)

func hashString(s string) uint64 {
	var h uint64 = 14695981039346656037
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= 1099511628211
	}
	return h
}

func TestGetInsertRoundtrip(t *testing.T) {
	tbl := postable.New[string, int](hashString)
	if _, ok := tbl.Get("a"); ok {
		t.Fatal("expected miss on empty table")
	}
	tbl.Insert("a", 1)
	v, ok := tbl.Get("a")
	if !ok || v != 1 {
		t.Fatalf("Get(a) = %v, %v, want 1, true", v, ok)
	}
}

func TestInsertIdempotentSameValue(t *testing.T) {
	tbl := postable.New[string, int](hashString)
	tbl.Insert("a", 1)
	tbl.Insert("a", 1) // must not panic
	if v, _ := tbl.Get("a"); v != 1 {
		t.Fatalf("Get(a) = %d, want 1", v)
	}
}

func TestInsertConflictPanics(t *testing.T) {
	tbl := postable.New[string, int](hashString)
	tbl.Insert("a", 1)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on conflicting Insert")
		}
	}()
	tbl.Insert("a", 2)
}

func TestGetOrInsertComputesOnce(t *testing.T) {
	tbl := postable.New[string, int](hashString)
	calls := 0
	compute := func() int { calls++; return 42 }
	v1 := tbl.GetOrInsert("k", compute)
	v2 := tbl.GetOrInsert("k", compute)
	if v1 != 42 || v2 != 42 {
		t.Fatalf("got %d, %d, want 42, 42", v1, v2)
	}
	if calls != 1 {
		t.Errorf("compute called %d times, want 1", calls)
	}
}

func TestConcurrentInsertsDistinctKeys(t *testing.T) {
	tbl := postable.New[string, int](hashString, postable.WithShardCount(4))
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			tbl.Insert(string(rune('a'+i%26))+string(rune(i)), i)
		}()
	}
	wg.Wait()
	if tbl.Len() == 0 {
		t.Fatal("expected entries after concurrent inserts")
	}
}

func TestWithShardCountRejectsNonPositive(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-positive shard count")
		}
	}()
	postable.WithShardCount(0)
}
