package renderer

// CatalogView is the data behind the stock table report.
type CatalogView struct {
	Sections []Section
}

// Section is one category bucket of the table.
type Section struct {
	Title    string
	Rows     []Row
	Subtotal string
}

// Row is one rendered inventory line. All fields are preformatted strings.
type Row struct {
	ID          string
	Name        string
	Quantity    string
	PriceKsh    string
	PriceUSD    string
	Status      string
	Description string
}

// SummaryView is the data behind the totals report.
type SummaryView struct {
	Date     string
	Rows     []SummaryRow
	GrandKsh string
	GrandUSD string
	Count    int
	LowStock int
	Rate     string
}

// SummaryRow is one category line of the totals report.
type SummaryRow struct {
	Title string
	Count int
	Value string
}
