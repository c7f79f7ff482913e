package utils

import (
	"testing"
)

func TestPageURL(t *testing.T) {
	if got := PageURL("Dashboard", nil); got != "/Dashboard" {
		t.Errorf("Expected /Dashboard, got %s", got)
	}

	if got := PageURL("Explore", map[string]string{}); got != "/Explore" {
		t.Errorf("Expected /Explore, got %s", got)
	}

	got := PageURL("Messages", map[string]string{"thread": "a-b"})
	if got != "/Messages?thread=a-b" {
		t.Errorf("Expected /Messages?thread=a-b, got %s", got)
	}
}

func TestPageURLOrdersParams(t *testing.T) {
	got := PageURL("Explore", map[string]string{
		"specialty": "yoga",
		"city":      "Recife",
	})
	if got != "/Explore?city=Recife&specialty=yoga" {
		t.Errorf("Expected deterministic param order, got %s", got)
	}
}

func TestPageURLEscapesValues(t *testing.T) {
	got := PageURL("Explore", map[string]string{"q": "personal trainer"})
	if got != "/Explore?q=personal+trainer" {
		t.Errorf("Expected escaped query, got %s", got)
	}
}
