package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/turbinehq/turbine"
	"github.com/turbinehq/turbine/client"
)

// demoJSONOutput asks for machine-readable output and pretty-prints the
// parsed result.
func demoJSONOutput(ctx context.Context, c *client.Client) {
	req := turbine.NewRequest(c.DefaultModel()).
		WithSystemPrompt("You are a geography assistant.").
		WithMessage(turbine.NewUserMessage(
			`List the 3 largest countries by area as a JSON object with a "countries" array of {"name", "area_km2"} objects.`)).
		WithOutputFormat(turbine.OutputJSON)

	resp, err := c.SendRequest(ctx, &req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(resp.Content), &parsed); err != nil {
		fmt.Fprintf(os.Stderr, "Model did not return valid JSON: %v\n", err)
		fmt.Println(resp.Content)
		return
	}

	pretty, _ := json.MarshalIndent(parsed, "", "  ")
	fmt.Println(string(pretty))
}

// demoParameters sends the same prompt at two temperatures to show the knob's
// effect.
func demoParameters(ctx context.Context, c *client.Client) {
	prompt := "Invent a name for a coffee shop on the moon. Name only."

	for _, temp := range []float64{0.0, 1.5} {
		req := turbine.NewRequest(c.DefaultModel()).
			WithMessage(turbine.NewUserMessage(prompt)).
			WithTemperature(temp).
			WithTopP(0.95).
			WithMaxTokens(64)

		resp, err := c.SendRequest(ctx, &req)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Printf("temperature=%.1f: %s\n", temp, resp.Content)
	}
}
