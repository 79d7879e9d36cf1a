package avl

import (
	"math/rand"
	"sort"
	"testing"
)

type setTestCase struct {
	Name          string
	InitialKeys   []string
	KeysToInsert  []string
	KeysToDelete  []string
	ExpectedOrder []string
}

func TestSetOperations(t *testing.T) {
	testCases := []setTestCase{
		{
			Name:          "Simple Insertion",
			KeysToInsert:  []string{"apple", "banana", "cherry"},
			ExpectedOrder: []string{"apple", "banana", "cherry"},
		},
		{
			Name:          "Insertion with Balancing (Right-Heavy)",
			InitialKeys:   []string{"apple"},
			KeysToInsert:  []string{"banana", "cherry"},
			ExpectedOrder: []string{"apple", "banana", "cherry"},
		},
		{
			Name:          "Deletion with Balancing (Left-Heavy)",
			InitialKeys:   []string{"cherry", "banana", "apple"},
			KeysToDelete:  []string{"cherry"},
			ExpectedOrder: []string{"apple", "banana"},
		},
		{
			Name:          "Mixed Operations",
			InitialKeys:   []string{"dog", "cat"},
			KeysToInsert:  []string{"elephant", "bird"},
			KeysToDelete:  []string{"cat"},
			ExpectedOrder: []string{"bird", "dog", "elephant"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			s := NewOrdered[string]()
			for _, k := range tc.InitialKeys {
				s.Insert(k)
			}
			for _, k := range tc.KeysToInsert {
				s.Insert(k)
			}
			for _, k := range tc.KeysToDelete {
				s.Erase(k)
			}
			checkInvariants[string, uint](t, s.root, s.less)
			got := s.Keys()
			if !equalSlices(got, tc.ExpectedOrder) {
				t.Errorf("Keys() = %v; want %v", got, tc.ExpectedOrder)
			}
			if s.Size() != len(tc.ExpectedOrder) {
				t.Errorf("Size() = %d; want %d", s.Size(), len(tc.ExpectedOrder))
			}
		})
	}
}

// S1 — Wirth's example insertion sequence.
func TestSetWirthInsertionSequence(t *testing.T) {
	s := NewOrdered[int]()
	keys := []int{8, 9, 11, 15, 19, 20, 21, 7, 3, 2, 1, 5, 6, 4, 13, 14, 10, 12, 14, 17, 16, 18}
	for _, k := range keys {
		s.Insert(k)
	}
	checkInvariants[int, uint](t, s.root, s.less)

	if s.Size() != 21 {
		t.Fatalf("Size() = %d; want 21", s.Size())
	}
	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21}
	if !equalSlices(s.Keys(), want) {
		t.Fatalf("Keys() = %v; want %v", s.Keys(), want)
	}
	if got := height(s.root); got > 5 {
		t.Fatalf("height = %d; want <= 5", got)
	}
	if s.Count(14) != 2 {
		t.Fatalf("Count(14) = %d; want 2 (one duplicate insertion)", s.Count(14))
	}
}

// S2 — full erase of S1's sequence, in the same order.
func TestSetWirthFullErase(t *testing.T) {
	s := NewOrdered[int]()
	keys := []int{8, 9, 11, 15, 19, 20, 21, 7, 3, 2, 1, 5, 6, 4, 13, 14, 10, 12, 14, 17, 16, 18}
	for _, k := range keys {
		s.Insert(k)
	}

	var firstFourteen, secondFourteen bool
	seenFourteen := false
	for _, k := range keys {
		removed := s.Erase(k)
		if k == 14 {
			if !seenFourteen {
				firstFourteen = removed
				seenFourteen = true
			} else {
				secondFourteen = removed
			}
		}
		checkInvariants[int, uint](t, s.root, s.less)
	}

	if firstFourteen {
		t.Fatalf("first erase of duplicate key 14 should return false (its count drops from 2 to 1)")
	}
	if !secondFourteen {
		t.Fatalf("second erase of duplicate key 14 should return true (its count reaches 0)")
	}
	if s.Size() != 0 {
		t.Fatalf("Size() = %d; want 0", s.Size())
	}
	if !s.Empty() {
		t.Fatalf("Empty() = false; want true")
	}
	if s.root != nil {
		t.Fatalf("root should be nil after full erase")
	}
}

// S5 — missing-key erase on an empty tree.
func TestSetEraseMissingKeyOnEmpty(t *testing.T) {
	s := NewOrdered[int]()
	if s.Erase(0) {
		t.Fatalf("Erase on empty tree should return false")
	}
	if s.Size() != 0 {
		t.Fatalf("Size() = %d; want 0", s.Size())
	}
}

func TestSetEmptyBoundary(t *testing.T) {
	s := NewOrdered[int]()
	if s.Contains(1) {
		t.Fatalf("Contains on empty tree should be false")
	}
	if got := s.Keys(); len(got) != 0 {
		t.Fatalf("Keys() on empty tree = %v; want empty", got)
	}
	if s.Size() != 0 {
		t.Fatalf("Size() = %d; want 0", s.Size())
	}
}

func TestSetDuplicateCountRoundTrip(t *testing.T) {
	s := NewOrdered[string]()
	for i := 0; i < 5; i++ {
		s.Insert("x")
	}
	if s.Size() != 1 {
		t.Fatalf("Size() = %d; want 1", s.Size())
	}
	for i := 0; i < 4; i++ {
		if s.Erase("x") {
			t.Fatalf("erase %d of 5 should not physically remove yet", i+1)
		}
	}
	if !s.Contains("x") {
		t.Fatalf("key should still be present after 4 of 5 erases")
	}
	if !s.Erase("x") {
		t.Fatalf("fifth erase should physically remove the key")
	}
	if s.Contains("x") {
		t.Fatalf("key should be gone after 5 of 5 erases")
	}
	if !s.Empty() {
		t.Fatalf("set should be empty")
	}
}

func TestSetInsertThenEraseReturnsToEmpty(t *testing.T) {
	s := NewOrdered[int]()
	s.Insert(42)
	if !s.Erase(42) {
		t.Fatalf("Erase should return true for a present key")
	}
	if !s.Empty() {
		t.Fatalf("set should be empty after insert-then-erase")
	}
	if s.Erase(42) {
		t.Fatalf("second Erase of the same key should return false")
	}
}

func TestSetGetKeysAscendingForRandomPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	keys := rng.Perm(500)
	s := NewOrdered[int]()
	for _, k := range keys {
		s.Insert(k)
	}
	checkInvariants[int, uint](t, s.root, s.less)

	got := s.Keys()
	if len(got) != s.Size() {
		t.Fatalf("len(Keys()) = %d; want Size() = %d", len(got), s.Size())
	}
	for i := 1; i < len(got); i++ {
		if got[i-1] >= got[i] {
			t.Fatalf("Keys() not strictly ascending at index %d: %d >= %d", i, got[i-1], got[i])
		}
	}
	want := append([]int(nil), keys...)
	sort.Ints(want)
	if !equalSlices(got, want) {
		t.Fatalf("Keys() does not match sorted input")
	}
	if h := height(s.root); h > maxHeightFor(s.Size()) {
		t.Fatalf("height %d exceeds bound %d for size %d", h, maxHeightFor(s.Size()), s.Size())
	}
}

// S3 — random insert/erase against a large distinct key set, checking
// invariants between every consecutive operation.
func TestSetRandomInsertEraseMaintainsInvariants(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large randomized AVL check in -short mode")
	}
	rng := rand.New(rand.NewSource(99))
	const n = 10000
	keys := rng.Perm(n)

	s := NewOrdered[int]()
	for _, k := range keys {
		if !s.Insert(k) {
			t.Fatalf("Insert(%d) should report a new key", k)
		}
		checkInvariants[int, uint](t, s.root, s.less)
	}
	if s.Size() != n {
		t.Fatalf("Size() = %d; want %d", s.Size(), n)
	}

	order := rng.Perm(n)
	for _, i := range order {
		k := keys[i]
		if !s.Erase(k) {
			t.Fatalf("Erase(%d) should report the key was present", k)
		}
		checkInvariants[int, uint](t, s.root, s.less)
	}
	if !s.Empty() {
		t.Fatalf("set should be empty after erasing every key")
	}
}

func equalSlices[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func height[K any, P any](n *node[K, P]) int {
	if n == nil {
		return 0
	}
	lh, rh := height(n.left), height(n.right)
	if lh > rh {
		return lh + 1
	}
	return rh + 1
}
