package normalize

// defaultNoiseWords is the compiled-in noise-word table, revision 3.
// Generic nouns, category words, and marketing filler that appear in listing
// titles but never distinguish one product from another. Matching is
// case-insensitive against cleaned tokens.
var defaultNoiseWords = []string{
	// generic nouns
	"series", "bundle", "set", "pack", "kit", "combo", "edition", "model",
	"stand", "bench", "cover", "bag", "case", "adapter", "cable", "pedal",
	"headphones", "accessories", "accessory",

	// category words
	"digital", "piano", "pianos", "keyboard", "keyboards", "synthesizer",
	"synth", "organ", "guitar", "amplifier", "amp", "drum", "drums",
	"module", "controller", "speaker", "monitor", "instrument",

	// marketing filler
	"new", "original", "official", "genuine", "premium", "deluxe",
	"portable", "professional", "sale", "offer", "special", "free",
	"shipping", "warranty", "stock", "item",

	// connective filler
	"the", "and", "with", "for", "incl", "including", "plus",
}
