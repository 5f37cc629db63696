// Package ai provides text-generation clients used by seedgen to synthesize
// test records.
//
// Every client implements Provider, a single prompt-in, text-out capability.
// The clients speak the providers' REST APIs directly and return the model's
// answer as trimmed text; interpreting that text is left to the caller.
//
// # Supported Providers
//
//   - Gemini (default, Google Generative Language API)
//   - OpenAI (GPT models)
//   - OpenRouter (OpenAI-compatible endpoint)
//   - Anthropic (Claude models)
//   - Ollama (local models)
//
// # Usage
//
//	provider, err := ai.NewProvider(&ai.Config{
//	    Provider: ai.ProviderGemini,
//	    APIKey:   key,
//	})
//	if err != nil {
//	    return err
//	}
//
//	text, err := provider.Complete(ctx, "Generate 3 users as a JSON array")
package ai
