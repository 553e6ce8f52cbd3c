package reconcile

import (
	"testing"
)

func TestExtractPendingItem(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantMatch bool
		wantID    string
		wantQty   int
		wantPrice float64
	}{
		{
			name:      "standard confirmation",
			text:      "You want 1 Black Logo Hoodie in size L. That will be 1499 rupees",
			wantMatch: true,
			wantID:    "black_logo_hoodie",
			wantQty:   1,
			wantPrice: 1499,
		},
		{
			name:      "multi quantity",
			text:      "Great! You want 2 Navy Blue T-Shirt in size M. That will be 1498 rupees total.",
			wantMatch: true,
			wantID:    "navy_blue_t-shirt",
			wantQty:   2,
			wantPrice: 1498,
		},
		{
			name:      "case insensitive",
			text:      "YOU WANT 1 Grey Zip Hoodie IN SIZE XL. That will be 1799 RUPEES",
			wantMatch: true,
			wantID:    "grey_zip_hoodie",
			wantQty:   1,
			wantPrice: 1799,
		},
		{
			name:      "no size clause",
			text:      "You want 1 Stoneware Coffee Mug. That will be 800 rupees",
			wantMatch: false,
		},
		{
			name:      "no price",
			text:      "You want 1 Black Logo Hoodie in size L. Should I add it?",
			wantMatch: false,
		},
		{
			name:      "unrelated message",
			text:      "Sure, here are some options",
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, ok := ExtractPendingItem(tt.text)
			if ok != tt.wantMatch {
				t.Fatalf("match = %v, want %v", ok, tt.wantMatch)
			}
			if !ok {
				return
			}
			if item.ID != tt.wantID {
				t.Errorf("ID = %q, want %q", item.ID, tt.wantID)
			}
			if item.Quantity != tt.wantQty {
				t.Errorf("Quantity = %d, want %d", item.Quantity, tt.wantQty)
			}
			if item.UnitPrice != tt.wantPrice {
				t.Errorf("UnitPrice = %v, want %v", item.UnitPrice, tt.wantPrice)
			}
		})
	}
}

func TestExtractAddedItems(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantCount int
		wantID    string
		wantQty   int
		wantPrice float64
	}{
		{
			name:      "direct add template",
			text:      "Perfect! I've added Classic Mug to your cart for 650 rupees.",
			wantCount: 1,
			wantID:    "classic_mug",
			wantQty:   1,
			wantPrice: 650,
		},
		{
			name:      "combined confirm and add",
			text:      "You want 2 Black Baseball Cap in size M, I've added them. That will be 998 rupees",
			wantCount: 1,
			wantID:    "black_baseball_cap",
			wantQty:   2,
			wantPrice: 998,
		},
		{
			name:      "bare acknowledgement",
			text:      "I've added that to your cart.",
			wantCount: 0,
		},
		{
			name:      "unrelated message",
			text:      "Would you like to see more products?",
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := ExtractAddedItems(tt.text)
			if len(items) != tt.wantCount {
				t.Fatalf("count = %d, want %d", len(items), tt.wantCount)
			}
			if tt.wantCount == 0 {
				return
			}
			if items[0].ID != tt.wantID {
				t.Errorf("ID = %q, want %q", items[0].ID, tt.wantID)
			}
			if items[0].Quantity != tt.wantQty {
				t.Errorf("Quantity = %d, want %d", items[0].Quantity, tt.wantQty)
			}
			if items[0].UnitPrice != tt.wantPrice {
				t.Errorf("UnitPrice = %v, want %v", items[0].UnitPrice, tt.wantPrice)
			}
		})
	}
}

func TestExtractOrderLines(t *testing.T) {
	text := "Your order: 1 x Black Logo Hoodie (size M): INR 1499, 2 x Ceramic Espresso Cup: ₹ 1300. Thank you!"

	lines := ExtractOrderLines(text)
	if len(lines) != 2 {
		t.Fatalf("count = %d, want 2", len(lines))
	}

	if lines[0].ID != "black_logo_hoodie" || lines[0].Quantity != 1 || lines[0].UnitPrice != 1499 {
		t.Errorf("line 0 = %+v", lines[0])
	}
	// Unit price derived from the line total.
	if lines[1].ID != "ceramic_espresso_cup" || lines[1].Quantity != 2 || lines[1].UnitPrice != 650 {
		t.Errorf("line 1 = %+v", lines[1])
	}

	if got := ExtractOrderLines("no receipt lines here"); len(got) != 0 {
		t.Errorf("expected no lines, got %d", len(got))
	}
}

func TestExtractOrderCodeAndTotal(t *testing.T) {
	text := "Your order ORD-20260901-7F3A has been created successfully, total: 2149"

	if code := ExtractOrderCode(text); code != "ORD-20260901-7F3A" {
		t.Errorf("code = %q", code)
	}
	if total := ExtractOrderTotal(text); total != 2149 {
		t.Errorf("total = %v", total)
	}

	if code := ExtractOrderCode("order confirmed, thank you"); code != "" {
		t.Errorf("expected empty code, got %q", code)
	}
	if total := ExtractOrderTotal("order confirmed, thank you"); total != 0 {
		t.Errorf("expected zero total, got %v", total)
	}
	if total := ExtractOrderTotal("Total INR 1499.50 charged"); total != 1499.50 {
		t.Errorf("total = %v", total)
	}
}

func TestNormalizeLineID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Black Logo Hoodie", "black_logo_hoodie"},
		{"  Blue   Travel  Mug ", "_blue_travel_mug_"},
		{"mug", "mug"},
	}
	for _, tt := range tests {
		if got := NormalizeLineID(tt.in); got != tt.want {
			t.Errorf("NormalizeLineID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
