package models

import (
	"reflect"
	"testing"
)

func TestContains(t *testing.T) {
	set := []string{"a", "b", "c"}

	if !Contains(set, "b") {
		t.Fatalf("expected set to contain b")
	}
	if Contains(set, "d") {
		t.Fatalf("did not expect set to contain d")
	}
	if Contains(nil, "a") {
		t.Fatalf("nil set must not contain anything")
	}
}

func TestToggleMembershipAdds(t *testing.T) {
	set := []string{"song1", "song2"}

	out, added := ToggleMembership(set, "song3")
	if !added {
		t.Fatalf("expected song3 to be added")
	}
	want := []string{"song1", "song2", "song3"}
	if !reflect.DeepEqual(out, want) {
		t.Fatalf("got %v, want %v", out, want)
	}
}

func TestToggleMembershipRemovesPreservingOrder(t *testing.T) {
	set := []string{"song1", "song2", "song3"}

	out, added := ToggleMembership(set, "song2")
	if added {
		t.Fatalf("expected song2 to be removed")
	}
	want := []string{"song1", "song3"}
	if !reflect.DeepEqual(out, want) {
		t.Fatalf("got %v, want %v", out, want)
	}
}

func TestToggleMembershipDoesNotMutateInput(t *testing.T) {
	set := []string{"a", "b"}

	ToggleMembership(set, "c")
	ToggleMembership(set, "a")

	if !reflect.DeepEqual(set, []string{"a", "b"}) {
		t.Fatalf("input slice was mutated: %v", set)
	}
}

func TestToggleMembershipTwiceRestoresSet(t *testing.T) {
	set := []string{"x", "y"}

	once, added := ToggleMembership(set, "z")
	if !added {
		t.Fatalf("first toggle should add")
	}
	twice, added := ToggleMembership(once, "z")
	if added {
		t.Fatalf("second toggle should remove")
	}
	if !reflect.DeepEqual(twice, set) {
		t.Fatalf("toggle pair did not restore set: got %v, want %v", twice, set)
	}
}

func TestToggleMembershipEmptySet(t *testing.T) {
	out, added := ToggleMembership(nil, "only")
	if !added || !reflect.DeepEqual(out, []string{"only"}) {
		t.Fatalf("got %v added=%v", out, added)
	}
}

func TestAppendUniqueSkipsExistingAndRequestDuplicates(t *testing.T) {
	set := []string{"s1"}

	out := AppendUnique(set, "s2", "s1", "s3", "s2")
	want := []string{"s1", "s2", "s3"}
	if !reflect.DeepEqual(out, want) {
		t.Fatalf("got %v, want %v", out, want)
	}
}

func TestAppendUniqueIsIdempotent(t *testing.T) {
	set := []string{"a", "b"}

	once := AppendUnique(set, "c", "d")
	twice := AppendUnique(once, "c", "d")
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("second append changed the set: %v vs %v", once, twice)
	}
}
