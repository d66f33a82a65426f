package invoice

import (
	"bytes"
	"testing"
	"time"

	"github.com/polkiloo/gophershop/internal/domain/model"
)

func TestRenderProducesPDF(t *testing.T) {
	renderer := NewPDFRenderer()
	doc := Document{
		Number:       42,
		CustomerName: "Jane Doe",
		Address:      "12 Long Street, Cairo",
		Country:      "Egypt",
		Items: []model.OrderItem{
			{ProductID: 1, Name: "mug", Quantity: 2, ItemPrice: 50, TotalPrice: 100},
			{ProductID: 2, Name: "poster", Quantity: 1, ItemPrice: 20, TotalPrice: 20},
		},
		Subtotal: 120,
		Paid:     120,
		IssuedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	content, err := renderer.Render(doc)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(content) == 0 {
		t.Fatal("expected non-empty document")
	}
	if !bytes.HasPrefix(content, []byte("%PDF")) {
		t.Fatalf("expected PDF header, got %q", content[:8])
	}
}

func TestRenderEmptyItems(t *testing.T) {
	renderer := NewPDFRenderer()
	content, err := renderer.Render(Document{Number: 1, IssuedAt: time.Now()})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(content, []byte("%PDF")) {
		t.Fatal("expected PDF header")
	}
}
