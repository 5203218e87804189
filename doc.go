// Package turbine provides a unified request/response interface for LLM providers.
//
// The turbine library abstracts away provider-specific HTTP APIs, allowing you
// to write code once and switch between OpenAI (GPT), Anthropic (Claude),
// Google (Gemini), and Groq (Llama, Mixtral) with minimal changes.
//
// # Core Types
//
// The root package defines the provider-agnostic data model:
//
//   - [Request]: a builder-style chat request (model, messages, sampling parameters)
//   - [Response]: the normalized reply (content plus token usage)
//   - [Provider]: the closed set of supported providers
//   - [Translator]: the single-operation contract every provider backend satisfies
//
// Use the [github.com/turbinehq/turbine/client] package as the entry point
// for sending requests, and the [github.com/turbinehq/turbine/model] package
// for known model identifiers.
//
// # Basic Usage
//
// Send a simple message:
//
//	c, err := client.FromModel("openai/gpt-4o-mini")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := c.Send(ctx, "What is the capital of France?")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(resp.Content)
//
// # Full-Control Requests
//
// Build a request incrementally; each With* call returns an updated copy:
//
//	req := turbine.NewRequest("claude-sonnet-4-5").
//	    WithSystemPrompt("You are a terse assistant.").
//	    WithMessage(turbine.NewUserMessage("Explain ownership in one sentence.")).
//	    WithMaxTokens(200).
//	    WithTemperature(0.7)
//
//	resp, err := c.SendRequest(ctx, &req)
//
// # JSON Output
//
// Request structured output; each translator applies its provider's JSON
// convention (response_format directive, system-prompt instruction, or
// response MIME type) automatically:
//
//	req := turbine.NewRequest("gpt-4o-mini").
//	    WithMessage(turbine.NewUserMessage("List three primes as JSON.")).
//	    WithOutputFormat(turbine.OutputJSON)
//
// # Model Strings
//
// Model strings may carry an explicit "provider/model" prefix, or a bare name
// that is inferred from known patterns:
//
//	turbine.ResolveModel("openai/gpt-4o-mini")          // (ProviderOpenAI, "gpt-4o-mini")
//	turbine.ResolveModel("claude-3-5-sonnet-20241022")  // (ProviderAnthropic, ...)
//	turbine.ResolveModel("gemini-flash")                // (ProviderGemini, ...)
//
// # Errors
//
// Every failure surfaces as one of the typed errors in this package
// ([ValidationError], [UnknownProviderError], [CredentialMissingError],
// [NetworkError], [ProviderError], [ParseError]). Nothing is retried or
// swallowed internally; callers branch with errors.As or the Is* helpers.
package turbine
