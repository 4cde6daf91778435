package testing

import (
	"reflect"
	"testing"
)

// AssertEqual asserts that values are deeply equal.
func AssertEqual[T any](t testing.TB, a, b T) {
	t.Helper()

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected '%v' to be equal to '%v'", a, b)
	}
}

// AssertTrue asserts that a condition holds.
func AssertTrue(t testing.TB, ok bool, msg string) {
	t.Helper()

	if !ok {
		t.Fatalf("expected true: %s", msg)
	}
}

// AssertPanics asserts that f panics with the message want.
func AssertPanics(t testing.TB, want string, f func()) {
	t.Helper()

	defer func() {
		t.Helper()

		r := recover()
		if r == nil {
			t.Fatalf("expected panic '%s'", want)
		}

		if msg, ok := r.(string); !ok || msg != want {
			t.Fatalf("expected panic '%s', got '%v'", want, r)
		}
	}()

	f()
}
