package validate

import (
	"strings"
	"testing"
)

func TestOwnerID(t *testing.T) {
	valid := []string{"u1", "student_42", "abc-def"}
	for _, v := range valid {
		if err := OwnerID(v); err != nil {
			t.Errorf("OwnerID(%q): %v", v, err)
		}
	}
	invalid := []string{"", "Has Upper", "space id", strings.Repeat("a", 65), "semi;colon"}
	for _, v := range invalid {
		if err := OwnerID(v); err == nil {
			t.Errorf("OwnerID(%q): want error", v)
		}
	}
}

func TestTitle(t *testing.T) {
	if err := Title("My deck"); err != nil {
		t.Errorf("Title: %v", err)
	}
	if err := Title("   "); err == nil {
		t.Error("Title blank: want error")
	}
	if err := Title(strings.Repeat("x", 101)); err == nil {
		t.Error("Title long: want error")
	}
}

func TestMessageText(t *testing.T) {
	if err := MessageText("hello"); err != nil {
		t.Errorf("MessageText: %v", err)
	}
	if err := MessageText(""); err == nil {
		t.Error("MessageText empty: want error")
	}
	if err := MessageText(strings.Repeat("x", 2001)); err == nil {
		t.Error("MessageText long: want error")
	}
}
