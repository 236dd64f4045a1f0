package convo

// composerPlaceholder animates into the search bar on the empty widget.
const composerPlaceholder = "Ask, search, and explore with iChatrobo"

// chipSuggestions are the starter chips shown before the first turn. Chips
// submit through the same path as typed queries.
var chipSuggestions = []string{
	"Looking for smarter insurance with VISoF?",
	"Ready to optimize fleets with Fleetrobo?",
	"Streamlining compliance with GSTrobo?",
	"Exploring AI Products for growth?",
	"Planning digital transformation (DX)?",
	"Aiming to innovate with EdTech?",
}
