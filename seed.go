package stock

// seedCatalog builds the first-run catalog. It is used only when no catalog
// has ever been persisted, or when the persisted one is unreadable.
func seedCatalog() Catalog {
	c := NewCatalog()
	seed := func(cat Category, name string, qty, ksh, usd float64, desc string) {
		c[cat] = append(c[cat], StockItem{
			ID:          NewItemID(cat),
			Name:        name,
			Category:    cat,
			Quantity:    qty,
			PriceKsh:    ksh,
			PriceUSD:    usd,
			Description: desc,
		})
	}

	seed(Products, "Gigabit Router", 10, 8500, 65.38, "Dual-band office router")
	seed(Products, "Cat6 Cable Roll", 4, 12000, 92.31, "305m pure copper roll")
	seed(Products, "CCTV Camera", 12, 4500, 34.62, "2MP dome camera")

	seed(Mobilization, "Freight Charges", 1, 5000, 38.46, "Delivery to client site")
	seed(Mobilization, "Site Survey", 1, 8000, 61.54, "Pre-installation assessment")

	seed(Services, "Network Installation", 1, 15000, 115.38, "Structured cabling labour")
	seed(Services, "Annual Maintenance", 1, 25000, 192.31, "12-month support contract")

	return c
}
