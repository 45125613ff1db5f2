package catalog

// DefaultIcon is returned for ids and categories without an icon of their own.
const DefaultIcon = "cube"

// Tips is the contextual panel shown for the active category.
type Tips struct {
	Heading string
	Icon    string
	Lines   [3]string
}

// DefaultTips is shown for a category with no tips of its own.
var DefaultTips = Tips{
	Heading: "Choosing a small model",
	Icon:    DefaultIcon,
	Lines: [3]string{
		"Start from the smallest model that passes your own evaluation set.",
		"Quantize to 4-bit before reaching for a bigger checkpoint.",
		"Measure latency on the target device, not on your workstation.",
	},
}

var entryIcons = map[string]string{
	"openai":    "spark",
	"anthropic": "quill",
	"google":    "gem",
	"meta":      "infinity",
	"deepseek":  "whale",
	"qwen":      "cloud",
	"mistral":   "wind",
	"xai":       "bolt",
}

var categoryIcons = map[Category]string{
	CategoryLLM:    "chat",
	CategoryVision: "eye",
	CategoryRAG:    "search",
	CategoryAudio:  "mic",
	CategoryGenAI:  "palette",
}

var tips = map[Category]Tips{
	CategoryLLM: {
		Heading: "Running small language models",
		Icon:    "chat",
		Lines: [3]string{
			"Q4_K_M quantization keeps most quality at a quarter of the memory.",
			"Use llama.cpp or Ollama for CPU inference; MLX on Apple silicon.",
			"Keep prompts short: small models lose track of long instructions first.",
		},
	},
	CategoryVision: {
		Heading: "Deploying vision models at the edge",
		Icon:    "eye",
		Lines: [3]string{
			"Downscale inputs to the model's native resolution before encoding.",
			"Batch frames from video streams instead of sending every frame.",
			"Export to ONNX for portable CPU and mobile accelerator runtimes.",
		},
	},
	CategoryRAG: {
		Heading: "Building retrieval pipelines",
		Icon:    "search",
		Lines: [3]string{
			"Pair a small embedder for recall with a reranker for precision.",
			"Chunk documents at 256-512 tokens with a little overlap.",
			"Re-embed the whole corpus whenever you change embedding models.",
		},
	},
	CategoryAudio: {
		Heading: "Working with speech and audio",
		Icon:    "mic",
		Lines: [3]string{
			"Resample audio to 16 kHz mono before transcription.",
			"Use voice activity detection to skip silence and cut latency.",
			"Stream TTS output sentence by sentence for responsive playback.",
		},
	},
	CategoryGenAI: {
		Heading: "Generating images and media locally",
		Icon:    "palette",
		Lines: [3]string{
			"Distilled few-step samplers trade a little detail for big speedups.",
			"fp16 weights halve memory with no visible quality loss.",
			"Fix the seed while iterating on prompts to compare results fairly.",
		},
	},
}

// EntryIcon returns the icon token for a large-landscape entry id.
func EntryIcon(id string) string {
	if icon, ok := entryIcons[id]; ok {
		return icon
	}
	return DefaultIcon
}

// CategoryIcon returns the icon token for a category.
func CategoryIcon(c Category) string {
	if icon, ok := categoryIcons[c]; ok {
		return icon
	}
	return DefaultIcon
}

// IconFor picks the icon for an entry: per-category in categorised catalogs, per-id otherwise.
func IconFor(c *Catalog, e Entry) string {
	if c.categorised {
		return CategoryIcon(e.Category)
	}
	return EntryIcon(e.ID)
}

// TipsFor returns the tips panel for c, or DefaultTips when c has none.
func TipsFor(c Category) Tips {
	if t, ok := tips[c]; ok {
		return t
	}
	return DefaultTips
}
