package catalog

import "testing"

func TestListNoFilterReturnsFullCatalog(t *testing.T) {
	got := List(nil)
	if len(got) != len(products) {
		t.Fatalf("len = %d, want %d", len(got), len(products))
	}
}

func TestListFilters(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"by category", Filter{Category: "mug"}, 5},
		{"category is case insensitive", Filter{Category: "MUG"}, 5},
		{"by color", Filter{Color: "blue"}, 5},
		{"by max price", Filter{MaxPrice: 700}, 5},
		{"combined", Filter{Category: "hoodie", Color: "black"}, 1},
		{"no match", Filter{Category: "hoodie", MaxPrice: 100}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := List(&tt.filter)
			if len(got) != tt.want {
				t.Fatalf("len = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestListAppliesAllConstraintsTogether(t *testing.T) {
	got := List(&Filter{Category: "bag", Color: "brown", MaxPrice: 2500})
	if len(got) != 1 || got[0].ID != "bag-004" {
		t.Fatalf("got %+v", got)
	}
}

func TestFindByID(t *testing.T) {
	p, ok := FindByID("tshirt-003")
	if !ok || p.Name != "Black Graphic Tee" {
		t.Fatalf("got %+v, ok=%v", p, ok)
	}
	if _, ok := FindByID("nope-999"); ok {
		t.Fatal("expected miss for unknown id")
	}
}
