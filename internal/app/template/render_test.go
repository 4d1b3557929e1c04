package template

import (
	"testing"

	"github.com/aalvaropc/advent/internal/domain"
)

func TestRenderStringSingleVar(t *testing.T) {
	out, err := RenderString("Hello {{name}}", map[string]string{"name": "Ada"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Hello Ada" {
		t.Fatalf("expected replaced string, got %q", out)
	}
}

func TestRenderStringMultipleVars(t *testing.T) {
	out, err := RenderString("{{greet}}, {{name}}!", map[string]string{
		"greet": "Hi",
		"name":  "Sam",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Hi, Sam!" {
		t.Fatalf("expected replaced string, got %q", out)
	}
}

func TestRenderStringMissingVar(t *testing.T) {
	_, err := RenderString("Hello {{name}}", map[string]string{})
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestRenderStringMalformed(t *testing.T) {
	for _, in := range []string{"Hello {{name", "Hello {{ }}"} {
		if _, err := RenderString(in, map[string]string{"name": "x"}); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestRenderStringTrimsKey(t *testing.T) {
	out, err := RenderString("Included pairs: {{ count }}", map[string]string{"count": "2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Included pairs: 2" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRenderAnswer(t *testing.T) {
	msg, err := RenderAnswer(domain.PartAnswer{
		Value:    "CMZ",
		Template: "The top crates in the supply are: {{tops}}.",
		Vars:     domain.Vars{"tops": "CMZ"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg != "The top crates in the supply are: CMZ." {
		t.Fatalf("unexpected message %q", msg)
	}

	bare, err := RenderAnswer(domain.PartAnswer{Value: "42"})
	if err != nil || bare != "42" {
		t.Fatalf("expected bare value, got %q (%v)", bare, err)
	}
}
