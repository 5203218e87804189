package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/turbinehq/turbine"
	"github.com/turbinehq/turbine/client"
	"github.com/turbinehq/turbine/model"
)

var reader = bufio.NewReader(os.Stdin)

func main() {
	godotenv.Load()
	ctx := context.Background()

	fmt.Println("╔════════════════════════════════════════╗")
	fmt.Println("║        turbine - LLM Client Demo       ║")
	fmt.Println("╚════════════════════════════════════════╝")
	fmt.Println()

	providers := []struct {
		provider turbine.Provider
		model    string
		label    string
	}{
		{turbine.ProviderAnthropic, model.DefaultClaudeModel.String(), "Anthropic (Claude)"},
		{turbine.ProviderOpenAI, model.DefaultGPTModel.String(), "OpenAI (GPT)"},
		{turbine.ProviderGemini, model.DefaultGeminiModel.String(), "Google (Gemini)"},
		{turbine.ProviderGroq, model.DefaultGroqModel.String(), "Groq (Llama)"},
	}

	var available []struct {
		provider turbine.Provider
		model    string
		label    string
	}

	fmt.Println("Available providers:")
	for _, p := range providers {
		if os.Getenv(p.provider.EnvVar()) != "" {
			fmt.Printf("  [%d] %s\n", len(available)+1, p.label)
			available = append(available, p)
		}
	}

	if len(available) == 0 {
		fmt.Println("  ✗ No API keys found. Set OPENAI_API_KEY, ANTHROPIC_API_KEY, GEMINI_API_KEY, or GROQ_API_KEY.")
		return
	}
	fmt.Println()

	var selected int
	if len(available) == 1 {
		fmt.Printf("Using %s (only available provider)\n", available[0].label)
	} else {
		fmt.Printf("Select provider [1-%d]: ", len(available))
		answer, _ := reader.ReadString('\n')
		fmt.Sscanf(strings.TrimSpace(answer), "%d", &selected)
		selected--
		if selected < 0 || selected >= len(available) {
			selected = 0
		}
		fmt.Printf("Using %s\n", available[selected].label)
	}
	fmt.Println()

	choice := available[selected]
	c, err := client.New(client.Config{
		Provider:     choice.provider,
		DefaultModel: choice.model,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
		os.Exit(1)
	}

	runMenu(ctx, c)
}
