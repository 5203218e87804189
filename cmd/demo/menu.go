package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/turbinehq/turbine/client"
)

// Demo represents a single demo with its metadata.
type Demo struct {
	Name        string
	Description string
	Run         func(ctx context.Context, c *client.Client)
}

// demos is the registry of all available demos.
var demos = []Demo{
	{Name: "chat", Description: "Multi-turn conversation with token counting", Run: demoChat},
	{Name: "system", Description: "System prompt persona", Run: demoSystemPrompt},
	{Name: "json", Description: "JSON output mode", Run: demoJSONOutput},
	{Name: "params", Description: "Sampling parameters (temperature, top_p)", Run: demoParameters},
}

func runMenu(ctx context.Context, c *client.Client) {
	for {
		fmt.Println("Demos:")
		for i, d := range demos {
			fmt.Printf("  [%d] %-8s %s\n", i+1, d.Name, d.Description)
		}
		fmt.Println("  [q] quit")
		fmt.Print("> ")

		answer, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		answer = strings.TrimSpace(answer)
		if answer == "q" || answer == "quit" {
			return
		}

		idx, err := strconv.Atoi(answer)
		if err != nil || idx < 1 || idx > len(demos) {
			// Also accept demo names.
			found := false
			for _, d := range demos {
				if d.Name == answer {
					fmt.Println()
					d.Run(ctx, c)
					fmt.Println()
					found = true
					break
				}
			}
			if !found {
				fmt.Println("Unknown choice.")
			}
			continue
		}

		fmt.Println()
		demos[idx-1].Run(ctx, c)
		fmt.Println()
	}
}
