package service

import (
	"strings"
	"testing"
)

func TestChat_EchoesMessage(t *testing.T) {
	tutorService := NewTutorService()

	response := tutorService.Chat("I like math")

	if !strings.HasPrefix(response, "AI Tutor: ") {
		t.Errorf("Expected tutor prefix, got %q", response)
	}
	if !strings.Contains(response, `"I like math"`) {
		t.Errorf("Expected message echoed in reply, got %q", response)
	}
	if !strings.Contains(response, "Try to expand") {
		t.Errorf("Expected expansion prompt, got %q", response)
	}
}

func TestCorrectGrammar_CollapsesWhitespaceAndCapitalizes(t *testing.T) {
	tutorService := NewTutorService()

	corrected, suggestions := tutorService.CorrectGrammar("  hello   world  ")

	if corrected != "Hello world" {
		t.Errorf("Expected 'Hello world', got %q", corrected)
	}

	if len(suggestions) != 1 {
		t.Fatalf("Expected 1 suggestion, got %d", len(suggestions))
	}
	if suggestions[0].Original != "  hello   world  " {
		t.Errorf("Expected original preserved, got %q", suggestions[0].Original)
	}
	if suggestions[0].Corrected != corrected {
		t.Errorf("Expected suggestion correction %q, got %q", corrected, suggestions[0].Corrected)
	}
}

func TestCorrectGrammar_EmptyText(t *testing.T) {
	tutorService := NewTutorService()

	corrected, suggestions := tutorService.CorrectGrammar("   ")

	if corrected != "" {
		t.Errorf("Expected empty correction, got %q", corrected)
	}
	if len(suggestions) != 1 {
		t.Errorf("Expected 1 suggestion, got %d", len(suggestions))
	}
}

func TestCorrectGrammar_AlreadyClean(t *testing.T) {
	tutorService := NewTutorService()

	corrected, _ := tutorService.CorrectGrammar("This is fine.")

	if corrected != "This is fine." {
		t.Errorf("Expected text unchanged, got %q", corrected)
	}
}
