package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/turbinehq/turbine"
	"github.com/turbinehq/turbine/client"
	"github.com/turbinehq/turbine/model"
)

func main() {
	godotenv.Load()
	ctx := context.Background()

	providers := []struct {
		provider turbine.Provider
		model    string
		label    string
	}{
		{turbine.ProviderAnthropic, model.DefaultClaudeModel.String(), "Anthropic"},
		{turbine.ProviderOpenAI, model.DefaultGPTModel.String(), "OpenAI"},
		{turbine.ProviderGemini, model.DefaultGeminiModel.String(), "Gemini"},
		{turbine.ProviderGroq, model.DefaultGroqModel.String(), "Groq"},
	}

	ran := false
	for _, p := range providers {
		if os.Getenv(p.provider.EnvVar()) == "" {
			continue
		}
		ran = true
		fmt.Printf("=== %s (%s) ===\n", p.label, p.model)
		testProvider(ctx, p.provider, p.model)
		fmt.Println()
	}

	if !ran {
		fmt.Fprintln(os.Stderr, "No API keys found. Set OPENAI_API_KEY, ANTHROPIC_API_KEY, GEMINI_API_KEY, or GROQ_API_KEY.")
		os.Exit(1)
	}
}

func testProvider(ctx context.Context, provider turbine.Provider, modelName string) {
	c, err := client.New(client.Config{Provider: provider, DefaultModel: modelName})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
		return
	}

	resp, err := c.Send(ctx, "Say hello in 3 different languages, one per line.")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	fmt.Println(resp.Content)
	if resp.Usage != nil {
		fmt.Printf("[Tokens: %d in, %d out]\n", resp.Usage.InputTokens, resp.Usage.OutputTokens)
	}
}
