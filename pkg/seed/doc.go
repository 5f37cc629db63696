// Package seed turns a record count and a field list into synthetic JSON test
// records produced by a text-generation model.
//
// The package covers the model-independent half of seedgen:
//   - Request parsing and normalization (ParseQuantity, ParseFields, NewRequest)
//   - Prompt construction (BuildPrompt)
//   - Response cleanup and validation (StripFences, Parse, Generate)
//   - Output disposition (Emit, WriteFile)
//
// # Usage
//
//	req, err := seed.NewRequest("3", "name, email")
//	if err != nil {
//	    return err
//	}
//
//	records, cleaned, err := seed.Generate(ctx, provider, seed.BuildPrompt(req))
//	if err != nil {
//	    return err
//	}
//
//	return seed.WriteFile("users.json", records)
//
// Any value with a Complete(ctx, prompt) method can stand in for the model.
package seed
