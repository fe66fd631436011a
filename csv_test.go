package stock

import (
	"testing"
	"time"
)

func TestExportFilename(t *testing.T) {
	day := time.Date(2026, time.August, 25, 14, 30, 0, 0, time.UTC)
	if got := ExportFilename(day); got != "konsut_stock_2026-08-25.csv" {
		t.Errorf("ExportFilename() = %q", got)
	}
}

func TestEncodeCSV(t *testing.T) {
	c := NewCatalog()
	c[Products] = []StockItem{
		{ID: "P0001", Name: "Gigabit Router", Category: Products, Quantity: 10, PriceKsh: 8500, PriceUSD: 65.38, Description: "Dual-band"},
	}
	c[Services] = []StockItem{
		{ID: "S0001", Name: "Network Installation", Category: Services, Quantity: 1, PriceKsh: 15000},
	}

	want := CSVHeader + "\n" +
		`"products","Gigabit Router",10,8500,65.38,"Dual-band"` + "\n" +
		`"services","Network Installation",1,15000,0,""` + "\n"
	if got := EncodeCSV(c); got != want {
		t.Errorf("EncodeCSV() =\n%s\nwant:\n%s", got, want)
	}
}

func TestDecodeCSV(t *testing.T) {
	testCases := []struct {
		name string
		text string
		want []StockItem
	}{
		{
			name: "quoted row",
			text: `"products","Router",2,5000,40,"desc"`,
			want: []StockItem{{Name: "Router", Category: Products, Quantity: 2, PriceKsh: 5000, PriceUSD: 40, Description: "desc"}},
		},
		{
			name: "unquoted row with spaces",
			text: ` services , Network Audit , 1 , 20000 , 153.85 , `,
			want: []StockItem{{Name: "Network Audit", Category: Services, Quantity: 1, PriceKsh: 20000, PriceUSD: 153.85}},
		},
		{
			name: "header is dropped",
			text: "Category,Name,Quantity,PriceKsh,PriceUSD,Description\nproducts,Camera,3,4500,34.62,",
			want: []StockItem{{Name: "Camera", Category: Products, Quantity: 3, PriceKsh: 4500, PriceUSD: 34.62}},
		},
		{
			name: "first data line without name marker is kept",
			text: "products,Camera,3,4500,34.62,",
			want: []StockItem{{Name: "Camera", Category: Products, Quantity: 3, PriceKsh: 4500, PriceUSD: 34.62}},
		},
		{
			name: "blank lines are skipped",
			text: "\nproducts,Switch,1,2000,15.38,\n\n\nmob,Crane Hire,1,30000,230.77,\n",
			want: []StockItem{
				{Name: "Switch", Category: Products, Quantity: 1, PriceKsh: 2000, PriceUSD: 15.38},
				{Name: "Crane Hire", Category: Mobilization, Quantity: 1, PriceKsh: 30000, PriceUSD: 230.77},
			},
		},
		{
			name: "short row gets defaults",
			text: "products",
			want: []StockItem{{Name: "Unknown Item", Category: Products, Quantity: 1}},
		},
		{
			name: "unparseable numbers get defaults",
			text: "services,Support,many,free,,ongoing",
			want: []StockItem{{Name: "Support", Category: Services, Quantity: 1, Description: "ongoing"}},
		},
		{
			name: "windows line endings",
			text: "products,Router,1,8500,65.38,\r\nservices,Install,1,15000,115.38,\r\n",
			want: []StockItem{
				{Name: "Router", Category: Products, Quantity: 1, PriceKsh: 8500, PriceUSD: 65.38},
				{Name: "Install", Category: Services, Quantity: 1, PriceKsh: 15000, PriceUSD: 115.38},
			},
		},
		{
			name: "free-form category labels",
			text: "Mobilization Costs,Freight,1,5000,38.46,\nSERVICES,Audit,1,1000,7.69,\nwhatever,Cable,1,100,0.77,",
			want: []StockItem{
				{Name: "Freight", Category: Mobilization, Quantity: 1, PriceKsh: 5000, PriceUSD: 38.46},
				{Name: "Audit", Category: Services, Quantity: 1, PriceKsh: 1000, PriceUSD: 7.69},
				{Name: "Cable", Category: Products, Quantity: 1, PriceKsh: 100, PriceUSD: 0.77},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := DecodeCSV(tc.text)
			if len(got) != len(tc.want) {
				t.Fatalf("decoded %d items, want %d", len(got), len(tc.want))
			}
			for i, w := range tc.want {
				g := got[i]
				if g.ID == "" {
					t.Errorf("item %d has no id", i)
				}
				g.ID = ""
				if g != w {
					t.Errorf("item %d = %+v, want %+v", i, g, w)
				}
			}
		})
	}
}

func TestDecodeCSV_Empty(t *testing.T) {
	for _, text := range []string{"", "\n\n", CSVHeader + "\n"} {
		if got := DecodeCSV(text); len(got) != 0 {
			t.Errorf("DecodeCSV(%q) = %d items, want 0", text, len(got))
		}
	}
}

func TestCSVRoundTrip(t *testing.T) {
	c := NewCatalog()
	c[Products] = []StockItem{
		{ID: "P0001", Name: "Gigabit Router", Category: Products, Quantity: 10, PriceKsh: 8500, PriceUSD: 65.38, Description: "Dual-band"},
		{ID: "P0002", Name: "CCTV Camera", Category: Products, Quantity: 12, PriceKsh: 4500, PriceUSD: 34.62},
	}
	c[Mobilization] = []StockItem{
		{ID: "M0001", Name: "Freight Charges", Category: Mobilization, Quantity: 1, PriceKsh: 5000, PriceUSD: 38.46},
	}

	got := DecodeCSV(EncodeCSV(c))

	want := make([]StockItem, 0, c.Size())
	for it := range c.All() {
		it.ID = ""
		want = append(want, it)
	}
	if len(got) != len(want) {
		t.Fatalf("round trip decoded %d items, want %d", len(got), len(want))
	}
	for i, w := range want {
		g := got[i]
		g.ID = ""
		if g != w {
			t.Errorf("item %d = %+v, want %+v", i, g, w)
		}
	}
}
