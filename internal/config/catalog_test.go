package config

import (
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()
	if len(catalog) != 8 {
		t.Fatalf("expected 8 default products, got %d", len(catalog))
	}
	if err := validateCatalog(catalog); err != nil {
		t.Fatalf("default catalog must validate: %v", err)
	}
	if catalog[0].Name != "Milk Tea" || catalog[0].Price != 45000 {
		t.Fatalf("unexpected first product %+v", catalog[0])
	}
}

func TestValidateCatalog(t *testing.T) {
	cases := []struct {
		name    string
		catalog []CatalogProduct
		wantErr bool
	}{
		{"empty", nil, true},
		{"zero id", []CatalogProduct{{ID: 0, Name: "Tea", Price: 1}}, true},
		{"blank name", []CatalogProduct{{ID: 1, Name: "  ", Price: 1}}, true},
		{"negative price", []CatalogProduct{{ID: 1, Name: "Tea", Price: -1}}, true},
		{"duplicate id", []CatalogProduct{
			{ID: 1, Name: "Tea", Price: 1},
			{ID: 1, Name: "Other", Price: 2},
		}, true},
		{"valid", []CatalogProduct{{ID: 1, Name: "Tea", Price: 1}}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateCatalog(tc.catalog)
			if tc.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestCatalogHolderReloadNotifies(t *testing.T) {
	holder := &CatalogHolder{}
	holder.current.Store(DefaultCatalog())

	var got []CatalogProduct
	holder.OnReload(func(catalog []CatalogProduct) {
		got = catalog
	})

	updated := []CatalogProduct{{ID: 1, Name: "Tea", Price: 1}}
	holder.current.Store(updated)
	holder.notify(updated)

	if len(got) != 1 || got[0].Name != "Tea" {
		t.Fatalf("reload callback not invoked with updated catalog: %+v", got)
	}
	if len(holder.Get()) != 1 {
		t.Fatalf("expected holder to serve updated catalog")
	}
}
