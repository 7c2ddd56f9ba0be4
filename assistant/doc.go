// Package assistant wraps the hosted generative-text model behind the
// FinanceFlow support chat.
//
// The wrapper is deliberately thin: it assembles a system prompt plus the
// concatenated chat history into a single prompt, posts it to the provider's
// generate endpoint, and returns the reply as free text. Conversation state
// is the caller's concern.
package assistant
