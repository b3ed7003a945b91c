package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

// maxToolRounds bounds the assistant's function-calling loop.
const maxToolRounds = 6

// Client wraps the Gemini API for the portal's four text-generation flows.
type Client struct {
	genai *genai.Client
	model string
}

func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("error while creating genai client: %w", err)
	}

	return &Client{genai: client, model: model}, nil
}

// GenerateAuctionDescription writes a short listing description from the item
// name and optional keywords.
func (c *Client) GenerateAuctionDescription(ctx context.Context, input AuctionDescriptionInput) (*AuctionDescriptionOutput, error) {
	prompt := fmt.Sprintf(auctionDescriptionPrompt, input.ItemName, input.Keywords)

	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"description": {
				Type:        genai.TypeString,
				Description: "A compelling, customer-facing description for the auction item.",
			},
		},
		Required: []string{"description"},
	}

	var out AuctionDescriptionOutput
	if err := c.generateJSON(ctx, prompt, schema, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// GenerateDelayReason phrases a customer-facing remark for a delayed or
// excepted shipment.
func (c *Client) GenerateDelayReason(ctx context.Context, input DelayReasonInput) (*DelayReasonOutput, error) {
	prompt := fmt.Sprintf(delayReasonPrompt,
		input.ShipmentId, input.CurrentStatus, input.Origin, input.Destination,
		input.CurrentLocation, input.ShippingCompany, input.ExceptionDescription)

	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"delayReason": {
				Type:        genai.TypeString,
				Description: "A possible reason for the shipment delay, suitable for customer communication.",
			},
		},
		Required: []string{"delayReason"},
	}

	var out DelayReasonOutput
	if err := c.generateJSON(ctx, prompt, schema, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// AnalyzeAuctionCSV validates and cleans raw CSV auction data, returning only
// rows that survived the given category list.
func (c *Client) AnalyzeAuctionCSV(ctx context.Context, csvData string, categories []string) (*CSVAnalysisOutput, error) {
	prompt := fmt.Sprintf(csvAnalysisPrompt, strings.Join(categories, ", "), csvData)

	rowSchema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":        {Type: genai.TypeString},
			"description": {Type: genai.TypeString},
			"category":    {Type: genai.TypeString, Enum: categories},
			"price":       {Type: genai.TypeNumber},
			"quantity":    {Type: genai.TypeInteger},
		},
		Required: []string{"name", "description", "category", "price", "quantity"},
	}
	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"summary":     {Type: genai.TypeString, Description: "A brief, one-sentence summary of the analysis."},
			"suggestions": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"cleanedData": {Type: genai.TypeArray, Items: rowSchema},
		},
		Required: []string{"summary", "suggestions", "cleanedData"},
	}

	var out CSVAnalysisOutput
	if err := c.generateJSON(ctx, prompt, schema, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Ask answers a question with the given tools available. The loop feeds tool
// results back to the model until it responds with plain text.
func (c *Client) Ask(ctx context.Context, systemPrompt, question string, tools []Tool) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
	}
	if len(tools) > 0 {
		config.Tools = []*genai.Tool{{FunctionDeclarations: declarations(tools)}}
	}

	byName := make(map[string]Tool, len(tools))
	for _, tool := range tools {
		byName[tool.Name] = tool
	}

	contents := []*genai.Content{genai.NewContentFromText(question, genai.RoleUser)}

	for round := 0; round < maxToolRounds; round++ {
		resp, err := c.genai.Models.GenerateContent(ctx, c.model, contents, config)
		if err != nil {
			return "", fmt.Errorf("error while generating content: %w", err)
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
			return "", fmt.Errorf("model returned no candidates")
		}

		calls := resp.FunctionCalls()
		if len(calls) == 0 {
			return resp.Text(), nil
		}

		contents = append(contents, resp.Candidates[0].Content)

		parts := make([]*genai.Part, 0, len(calls))
		for _, call := range calls {
			tool, ok := byName[call.Name]
			if !ok {
				parts = append(parts, genai.NewPartFromFunctionResponse(call.Name,
					map[string]any{"error": "unknown tool"}))
				continue
			}

			result, err := tool.Run(call.Args)
			if err != nil {
				result = map[string]any{"error": err.Error()}
			}
			parts = append(parts, genai.NewPartFromFunctionResponse(call.Name, result))
		}
		contents = append(contents, genai.NewContentFromParts(parts, genai.RoleUser))
	}

	return "", fmt.Errorf("model did not settle on an answer after %d tool rounds", maxToolRounds)
}

func (c *Client) generateJSON(ctx context.Context, prompt string, schema *genai.Schema, out any) error {
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}

	resp, err := c.genai.Models.GenerateContent(ctx, c.model, genai.Text(prompt), config)
	if err != nil {
		return fmt.Errorf("error while generating content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return fmt.Errorf("model returned an empty response")
	}

	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("error while decoding model response: %w", err)
	}

	return nil
}

func declarations(tools []Tool) []*genai.FunctionDeclaration {
	decls := make([]*genai.FunctionDeclaration, 0, len(tools))
	for _, tool := range tools {
		properties := make(map[string]*genai.Schema, len(tool.Params))
		for name, param := range tool.Params {
			properties[name] = &genai.Schema{
				Type:        schemaType(param.Type),
				Description: param.Description,
				Enum:        param.Enum,
			}
		}

		decls = append(decls, &genai.FunctionDeclaration{
			Name:        tool.Name,
			Description: tool.Description,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: properties,
				Required:   tool.Required,
			},
		})
	}

	return decls
}

func schemaType(t string) genai.Type {
	switch t {
	case "number":
		return genai.TypeNumber
	case "integer":
		return genai.TypeInteger
	case "boolean":
		return genai.TypeBoolean
	default:
		return genai.TypeString
	}
}
