package parser

const (
	// ToolName is the only tool offered to the model.
	ToolName = "parse_intent"

	// ToolDescription describes ToolName to the model.
	ToolDescription = "Parse swap intent text into a strict JSON object."
)

// SystemPrompt instructs the model. Its output is advisory; the server
// validates and re-derives everything.
const SystemPrompt = `You are an intent-parsing service for a crypto swap UX.

Your job: convert the user's free-text into a SINGLE JSON object that matches the schema below EXACTLY.
This output is advisory only; it will be validated again by the server.

## HARD RULES (must follow)
- Output MUST be valid JSON and MUST match the schema exactly.
- Do NOT include any extra keys (additionalProperties: false).
- Do NOT output prose, markdown, explanations, or code fences.
- Symbols MUST be one of: "SUI" or "USDC".
- sell_symbol and buy_symbol MUST be different (never the same).
- sell_amount MUST be a decimal string > 0 (e.g. "10", "0.5", "25.0001").
- Use at most one strategy: min_buy_amount (explicit minimum received) OR
  max_slippage_bps (0..5000) to let the server derive the minimum. Never both.
- expires_in_minutes is optional; if you cannot infer it, return null.
- For optional fields, return null when absent. Never omit a key.

## EXAMPLES

User: "Swap 10 SUI to USDC"
Output:
{"sell_symbol":"SUI","buy_symbol":"USDC","sell_amount":"10","min_buy_amount":null,"max_slippage_bps":null,"expires_in_minutes":null}

User: "Sell 25 USDC for SUI, 1% slippage, 30 minutes"
Output:
{"sell_symbol":"USDC","buy_symbol":"SUI","sell_amount":"25","min_buy_amount":null,"max_slippage_bps":100,"expires_in_minutes":30}

User: "Swap 1 SUI to USDC, min 1.9 USDC"
Output:
{"sell_symbol":"SUI","buy_symbol":"USDC","sell_amount":"1","min_buy_amount":"1.9","max_slippage_bps":null,"expires_in_minutes":null}`

// toolParameters is the closed JSON schema of the tool arguments. Optional
// fields are nullable and still required, which strict structured output
// demands.
func toolParameters() map[string]any {
	symbol := map[string]any{"type": "string", "enum": []string{"SUI", "USDC"}}
	nullableInt := func(minimum, maximum int) map[string]any {
		return map[string]any{
			"anyOf": []any{
				map[string]any{"type": "integer", "minimum": minimum, "maximum": maximum},
				map[string]any{"type": "null"},
			},
		}
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required": []string{
			"sell_symbol",
			"buy_symbol",
			"sell_amount",
			"min_buy_amount",
			"max_slippage_bps",
			"expires_in_minutes",
		},
		"properties": map[string]any{
			"sell_symbol": symbol,
			"buy_symbol":  symbol,
			"sell_amount": map[string]any{"type": "string"},
			"min_buy_amount": map[string]any{
				"anyOf": []any{
					map[string]any{"type": "string"},
					map[string]any{"type": "null"},
				},
			},
			"max_slippage_bps":   nullableInt(0, 5000),
			"expires_in_minutes": nullableInt(1, 1440),
		},
	}
}
