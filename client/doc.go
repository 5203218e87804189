// Package client provides the unified entry point for sending requests to
// LLM providers.
//
// A Client binds one provider and one credential for its lifetime. Both
// fields are read-only after construction, so a single Client is safe for
// any number of concurrent sends with no locking; concurrent calls are fully
// independent and may complete in any order.
//
// # Basic Usage
//
// Construct from a model string; the provider is resolved automatically and
// the bare model name becomes the default model:
//
//	c, err := client.FromModel("anthropic/claude-sonnet-4-5")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := c.Send(ctx, "Explain ownership in one sentence.")
//
// The API key comes from the provider's environment variable
// ({PROVIDER}_API_KEY) unless supplied explicitly:
//
//	c, err := client.FromModelWithKey("openai/gpt-4o-mini", "sk-...")
//
// # Full Control
//
// Construct with an explicit Config and send a built Request:
//
//	c, err := client.New(client.Config{
//	    Provider: turbine.ProviderGemini,
//	    APIKey:   os.Getenv("GEMINI_API_KEY"),
//	})
//
//	req := turbine.NewRequest("gemini-2.5-flash").
//	    WithMessage(turbine.NewUserMessage("Hello!"))
//	resp, err := c.SendRequest(ctx, &req)
//
// The Client adds nothing to what the translator produced: no retries, no
// caching, no error translation. Failed sends surface the specific typed
// error from the turbine package.
package client
