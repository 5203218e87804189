package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/turbinehq/turbine"
	"github.com/turbinehq/turbine/client"
)

// demoChat runs a multi-turn conversation, carrying the full message history
// on every request.
func demoChat(ctx context.Context, c *client.Client) {
	fmt.Println("Multi-turn chat. Type 'done' to return to the menu.")

	var messages []turbine.Message
	for {
		fmt.Print("You: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "done" {
			return
		}

		messages = append(messages, turbine.NewUserMessage(line))

		req := turbine.NewRequest(c.DefaultModel()).WithMessages(messages)
		resp, err := c.SendRequest(ctx, &req)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		fmt.Printf("Assistant: %s\n", resp.Content)
		if resp.Usage != nil {
			fmt.Printf("[Tokens: %d in, %d out, %d total]\n",
				resp.Usage.InputTokens, resp.Usage.OutputTokens, resp.Usage.TotalTokens)
		}
		messages = append(messages, turbine.NewAssistantMessage(resp.Content))
	}
}

// demoSystemPrompt sends one question under a fixed persona.
func demoSystemPrompt(ctx context.Context, c *client.Client) {
	fmt.Print("Ask a question: ")
	line, err := reader.ReadString('\n')
	if err != nil {
		return
	}

	resp, err := c.SendWithSystem(ctx,
		"You are a laconic Spartan. Answer in one short sentence.",
		strings.TrimSpace(line))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Printf("Assistant: %s\n", resp.Content)
}
