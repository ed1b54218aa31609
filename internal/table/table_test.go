package table

import "testing"

func TestSetGet(t *testing.T) {
	tbl := New[int, string, int]()

	if _, ok := tbl.Get(1, "a"); ok {
		t.Fatal("empty table should have no entries")
	}

	prev, had := tbl.Set(1, "a", 10)
	if had {
		t.Errorf("first Set should report no prior value, got %d", prev)
	}

	v, ok := tbl.Get(1, "a")
	if !ok || v != 10 {
		t.Fatalf("Get(1, a) = %d, %v, want 10, true", v, ok)
	}

	prev, had = tbl.Set(1, "a", 20)
	if !had || prev != 10 {
		t.Fatalf("overwrite Set should report prior value 10, got %d, %v", prev, had)
	}
}

func TestSetOr(t *testing.T) {
	tbl := New[int, string, []int]()

	tbl.SetOr(1, "a", []int{1}, func(cur *[]int) {
		*cur = append(*cur, 1)
	})
	v, _ := tbl.Get(1, "a")
	if len(v) != 1 || v[0] != 1 {
		t.Fatalf("seed not stored, got %v", v)
	}

	tbl.SetOr(1, "a", []int{99}, func(cur *[]int) {
		*cur = append(*cur, 2)
	})
	v, _ = tbl.Get(1, "a")
	if len(v) != 2 || v[1] != 2 {
		t.Fatalf("mutate not applied to existing value, got %v", v)
	}
}

func TestRowAndIterate(t *testing.T) {
	tbl := New[int, string, int]()
	tbl.Set(1, "a", 1)
	tbl.Set(1, "b", 2)
	tbl.Set(2, "a", 3)

	row := tbl.Row(1)
	if len(row) != 2 || row["a"] != 1 || row["b"] != 2 {
		t.Fatalf("Row(1) = %v, want {a:1 b:2}", row)
	}

	if row := tbl.Row(99); len(row) != 0 {
		t.Fatalf("Row of absent key should be empty, got %v", row)
	}

	entries := tbl.Iterate()
	if len(entries) != 3 {
		t.Fatalf("Iterate should yield 3 entries, got %d", len(entries))
	}
}
