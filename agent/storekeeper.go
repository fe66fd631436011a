package agent

import (
	"context"
	"fmt"
	"strings"

	stock "github.com/wanjohialvins/Invoice-system-sub001"
	"github.com/wanjohialvins/Invoice-system-sub001/docs"
	"github.com/wanjohialvins/Invoice-system-sub001/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:        "Facilitator",
		Description: ``,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user runs a small installation business and keeps a stock book of products,
			mobilization costs and services. He is here primarily to get information about
			what he has in stock, what it is worth and what is running low.

			Devise a plan of questions to ask each expert and come up with the best response
			to the user's request. Prices are kept in Kenyan shillings with a US dollar
			equivalent derived from a fixed rate.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewStorekeeper creates the expert that reads the stock book stored under
// dir. It only ever reads; all edits go through the regular commands.
func NewStorekeeper(dir string) *Expert {

	lib := []Function{inventoryFunc(dir), summaryFunc(dir)}

	return &Expert{
		Name: "Storekeeper",
		Description: `This is the Storekeeper. He is in charge of reading the user's stock book.
		He can list what is in stock per category, report quantities and prices, and
		compute the total value of the stock.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a storekeeper in charge of the user's stock book.
				You know how to use the Tools to extract relevant information about the stock.
				You are part of a team of experts, yours is everything about the stock book.
				They might ask you questions in approximative language, figure out what they meant.

				Use the available tools to get information about the stock book
				  - the inventory per category
				  - the summary with totals and the currency rate
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func inventoryFunc(dir string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Inventory",
			Description: `Inventory lists the items in the stock book, per category,
			with their id, quantity, unit prices in Ksh and USD, and a low stock marker.
			`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"category": {
						Type: genai.TypeString,
						Description: `Restrict the listing to one category. All categories is the default.

						` + must(docs.GetTopic("categories")),
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of the stock book, one section per category.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			cats, err := parseCategories(args)
			if err != nil {
				return errResponse(id, "Inventory", err)
			}
			s := stock.Open(stock.NewDirStore(dir))
			return &genai.FunctionResponse{
				ID:   id,
				Name: "Inventory",
				Response: map[string]any{
					"output": renderer.CatalogMarkdown(s, cats...),
				},
			}
		},
	}
}

func summaryFunc(dir string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Summary",
			Description: `Summary reports the total stock value in Ksh and USD,
			the value per category, the number of items running low, and the
			currency rate in use.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted summary of the stock book.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			s := stock.Open(stock.NewDirStore(dir))
			return &genai.FunctionResponse{
				ID:   id,
				Name: "Summary",
				Response: map[string]any{
					"output": renderer.SummaryMarkdown(s),
				},
			}
		},
	}
}

func parseCategories(args map[string]any) ([]stock.Category, error) {
	icat, hasCat := args["category"]
	if !hasCat {
		return nil, nil
	}
	scat, ok := icat.(string)
	if !ok {
		return nil, fmt.Errorf("argument 'category' is not a string as expected but %T", icat)
	}
	if strings.TrimSpace(scat) == "" {
		return nil, nil
	}
	return []stock.Category{stock.ClassifyCategory(scat)}, nil
}
