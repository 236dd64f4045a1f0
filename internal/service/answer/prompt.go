package answer

import "fmt"

// systemInstruction pins the assistant persona and scope for every request.
const systemInstruction = "You are iChatrobo, the conversational search assistant for Binary Semantics. " +
	"Answer the user's query based only on the provided scraped website content. " +
	"Always produce a structured response."

// schemaHint spells the output contract out for providers that cannot enforce
// a response schema natively; the payload is decoded leniently either way.
const schemaHint = `Respond with a single JSON object and nothing else, matching exactly:
{
  "intro": "short introductory paragraph answering the query",
  "sections": [{"content": "a detailed point; <span class='font-bold text-gray-900'> may be used for emphasis"}],
  "related": [{"title": "...", "type": "Learn more" | "Download brochure" | "Case study", "image": "a relevant Unsplash image URL", "url": "a relevant URL from the website content"}],
  "suggestions": ["three follow-up questions the user can ask"]
}`

// buildUserPrompt combines the bounded corpus with the literal user query.
func buildUserPrompt(corpusText, query string) string {
	return fmt.Sprintf("Website Content:\n%s\n\nUser Query: %s\n\nProvide a structured response.", corpusText, query)
}
