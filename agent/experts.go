package agent

import (
	"context"
	"fmt"

	"github.com/hrinvest/carteira"
	"github.com/hrinvest/carteira/api"
	"github.com/hrinvest/carteira/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.
			The user is a client of HR Investimentos, a brokerage for court-ordered credit
			contracts (precatórios and RPVs). Answer in the user's language, usually
			Brazilian Portuguese.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand his portfolio: what he invested,
			what it will pay out and when. Check the portfolio first before answering
			questions about his contracts.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAdvisor returns the market expert. It grounds its answers with Google
// Search, so it is the one to ask about news, rates and regulation.
func NewAdvisor() *Expert {
	return &Expert{
		Name: "Advisor",
		Description: `This is an investment advisor specialized in the Brazilian market,
		well aware of court-ordered credits (precatórios, RPVs), interest rates and
		the institutions that trade them.
		Ask the Advisor whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in Brazilian fixed income and court-ordered credits.
			You can search and find about anything related to financial institutions,
			markets, court payment schedules and regulation. You leverage Google Search
			to ground your assertions in a solid truth.
				`}}},
		},
	}
}

// NewAnalyst returns the portfolio expert. It reads the user's clients and
// contracts through the API and answers with rendered figures.
func NewAnalyst(c *api.Client, user carteira.User) *Expert {
	lib := []Function{newDashboardFunc(c, user), newClientsFunc(c)}

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He is in charge of reading the user's clients and
		contracts. He can fetch the dashboard of any linked client to compute the relevant
		figures about the user's investments.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of the user's investment portfolio.
				You know how to use the Tools to extract relevant information about the
				user's clients and contracts. Pardon the user's approximative language
				and figure out what they meant.

				Use the available tools to get information about the portfolio
				  - list of linked clients
				  - the dashboard of a client, with its indicators and contracts
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

func newClientsFunc(c *api.Client) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Clients",
			Description: `Clients lists the clients linked to the user's account, with their id, name, type and document.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of the user's clients.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			clients, err := c.ListClients(ctx)
			if err != nil {
				return errResponse(id, "Clients", err)
			}
			return &genai.FunctionResponse{
				ID:   id,
				Name: "Clients",
				Response: map[string]any{
					"output": renderer.AdminClientsMarkdown(clients, nil),
				},
			}
		},
	}
}

func newDashboardFunc(c *api.Client, user carteira.User) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Dashboard",
			Description: `Dashboard renders the dashboard of one of the user's clients:
			the indicators (total invested, monthly rate, future profit, redemption) and
			the list of contracts with their projected profit.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"clientId": {
						Type:        genai.TypeNumber,
						Description: "The id of the client. Defaults to the first linked client. Use the Clients function to list the ids.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The client's dashboard as markdown.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			out, err := dashboard(ctx, c, user, args)
			if err != nil {
				return errResponse(id, "Dashboard", err)
			}
			return &genai.FunctionResponse{
				ID:       id,
				Name:     "Dashboard",
				Response: map[string]any{"output": out},
			}
		},
	}
}

func dashboard(ctx context.Context, c *api.Client, user carteira.User, args map[string]any) (string, error) {
	clients, err := c.ListClients(ctx)
	if err != nil {
		return "", fmt.Errorf("could not load clients: %w", err)
	}
	if len(clients) == 0 {
		return "", fmt.Errorf("no client linked to this account")
	}

	client := clients[0]
	if iid, ok := args["clientId"]; ok {
		fid, ok := iid.(float64)
		if !ok {
			return "", fmt.Errorf("argument 'clientId' is not a number as expected but %T", iid)
		}
		found := false
		for _, cl := range clients {
			if cl.ID == int64(fid) {
				client, found = cl, true
				break
			}
		}
		if !found {
			return "", fmt.Errorf("no linked client with id %d", int64(fid))
		}
	}

	contracts, err := c.MyContracts(ctx)
	if err != nil {
		return "", fmt.Errorf("could not load contracts: %w", err)
	}
	var own []carteira.Contract
	for _, ct := range contracts {
		if ct.ClientID == client.ID {
			own = append(own, ct)
		}
	}

	summary, err := c.DashboardSummary(ctx, client.ID)
	if err != nil {
		return "", fmt.Errorf("could not load summary: %w", err)
	}

	d := &renderer.Dashboard{
		User:      user,
		Client:    &client,
		Contracts: own,
		KPIs:      carteira.ComputeKPIs(own, summary),
		Bars:      carteira.MonthlyBars(own, summary),
	}
	return renderer.DashboardMarkdown(d), nil
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
