package service

import (
	"bytes"
	"strings"
	"testing"
)

func TestPDFRendererProducesPDF(t *testing.T) {
	r := NewPDFRenderer()

	data, pages, err := r.Render("nda", "This Agreement is made between the parties.")
	if err != nil {
		t.Fatalf("Failed to render: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("Expected output to start with PDF magic bytes")
	}
	if pages != 1 {
		t.Errorf("Expected short contract on 1 page, got %d", pages)
	}
}

func TestPDFRendererDeterministic(t *testing.T) {
	r := NewPDFRenderer()
	content := strings.Repeat("The parties agree to the terms set out in this section. ", 80)

	first, firstPages, err := r.Render("service", content)
	if err != nil {
		t.Fatalf("Failed to render: %v", err)
	}
	second, secondPages, err := r.Render("service", content)
	if err != nil {
		t.Fatalf("Failed to render: %v", err)
	}

	if firstPages != secondPages {
		t.Errorf("Expected identical page counts, got %d and %d", firstPages, secondPages)
	}
	if !bytes.Equal(first, second) {
		t.Error("Expected identical input to yield identical bytes")
	}
}

func TestPDFRendererPagination(t *testing.T) {
	r := NewPDFRenderer()

	// A4 is 297mm tall; with a 20mm margin and 7mm line advance, well over
	// (297-2*20)/7 wrapped lines must spill onto a second page
	var sb strings.Builder
	for i := 0; i < 60; i++ {
		sb.WriteString("Clause: each party shall perform its obligations.\n")
	}

	_, pages, err := r.Render("employment", sb.String())
	if err != nil {
		t.Fatalf("Failed to render: %v", err)
	}
	if pages < 2 {
		t.Errorf("Expected more than one page for %d body lines, got %d", 60, pages)
	}
}

func TestPDFRendererEmptyBody(t *testing.T) {
	r := NewPDFRenderer()

	data, pages, err := r.Render("nda", "")
	if err != nil {
		t.Fatalf("Failed to render empty body: %v", err)
	}
	if pages != 1 {
		t.Errorf("Expected 1 page for empty body, got %d", pages)
	}
	if len(data) == 0 {
		t.Error("Expected non-empty PDF")
	}
}

func TestPDFRendererUppercasesType(t *testing.T) {
	r := NewPDFRenderer()

	lower, _, err := r.Render("nda", "body")
	if err != nil {
		t.Fatalf("Failed to render: %v", err)
	}
	upper, _, err := r.Render("NDA", "body")
	if err != nil {
		t.Fatalf("Failed to render: %v", err)
	}

	// The heading is upper-cased before layout, so casing of the input type
	// must not change the rendered output
	if !bytes.Equal(lower, upper) {
		t.Error("Expected type casing to be normalized in the heading")
	}
}
