package ai

// AuctionDescriptionInput asks for a customer-facing listing description.
type AuctionDescriptionInput struct {
	ItemName string
	Keywords string
}

type AuctionDescriptionOutput struct {
	Description string `json:"description"`
}

// DelayReasonInput carries the shipment context for a delay explanation.
type DelayReasonInput struct {
	ShipmentId           string
	CurrentStatus        string
	Origin               string
	Destination          string
	CurrentLocation      string
	ShippingCompany      string
	ExceptionDescription string
}

type DelayReasonOutput struct {
	DelayReason string `json:"delayReason"`
}

// CSVRow is one cleaned auction listing row.
type CSVRow struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

type CSVAnalysisOutput struct {
	Summary     string   `json:"summary"`
	Suggestions []string `json:"suggestions"`
	CleanedData []CSVRow `json:"cleanedData"`
}

// ToolParam describes one parameter of an assistant tool.
type ToolParam struct {
	Type        string // "string", "number", "integer", "boolean"
	Description string
	Enum        []string
}

// Tool is a function the assistant may call while answering. Run receives the
// arguments the model chose and returns a result map fed back to the model.
type Tool struct {
	Name        string
	Description string
	Params      map[string]ToolParam
	Required    []string
	Run         func(args map[string]any) (map[string]any, error)
}
