// Package gemini implements [vibe.ChatProvider] for the Google Gemini API.
//
// It wraps the google.golang.org/genai SDK. Each [vibe.Chat] it returns is
// a genai chat session, so conversation history lives with the SDK and
// every reply continues the same conversation.
package gemini
