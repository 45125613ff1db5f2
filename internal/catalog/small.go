package catalog

import "sync"

// Small returns the small/efficient-model landscape, partitioned by Category.
var Small = sync.OnceValue(func() *Catalog {
	return newCatalog("slm", true, smallEntries())
})

func smallEntries() []Entry {
	return []Entry{
		// Language
		{
			ID:           "phi",
			Name:         "Phi-3.5 mini",
			Organization: "Microsoft",
			Tags:         []string{"reasoning", "on-device", "128K"},
			Description:  "Textbook-quality training data lets a 3.8B model compete with much larger chat models.",
			Metrics:      Metrics{Params: "3.8B", Context: "128K", Memory: "~2.4 GB (Q4)"},
			Category:     CategoryLLM,
			Color:        "blue",
			FootprintGB:  2.4,
		},
		{
			ID:           "gemma",
			Name:         "Gemma 2 2B",
			Organization: "Google",
			Tags:         []string{"chat", "distilled", "open weights"},
			Description:  "Distilled from larger Gemini-era models; a strong default for laptops and phones.",
			Metrics:      Metrics{Params: "2.6B", Context: "8K", Memory: "~1.7 GB (Q4)"},
			Category:     CategoryLLM,
			Color:        "cyan",
			FootprintGB:  1.7,
		},
		{
			ID:           "qwen-small",
			Name:         "Qwen2.5 1.5B",
			Organization: "Alibaba Cloud",
			Tags:         []string{"multilingual", "coding", "math"},
			Description:  "Compact member of the Qwen2.5 family with surprisingly good code and math scores.",
			Metrics:      Metrics{Params: "1.5B", Context: "32K", Memory: "~1.1 GB (Q4)"},
			Category:     CategoryLLM,
			Color:        "red",
			FootprintGB:  1.1,
		},
		{
			ID:           "llama-small",
			Name:         "Llama 3.2 3B",
			Organization: "Meta",
			Tags:         []string{"edge", "tool calling", "128K"},
			Description:  "Pruned and distilled Llama built for on-device summarisation and agent tool calls.",
			Metrics:      Metrics{Params: "3.2B", Context: "128K", Memory: "~2.0 GB (Q4)"},
			Category:     CategoryLLM,
			Color:        "purple",
			FootprintGB:  2.0,
		},

		// Vision
		{
			ID:           "moondream",
			Name:         "Moondream 2",
			Organization: "vikhyatk",
			Tags:         []string{"captioning", "VQA", "edge"},
			Description:  "Tiny vision-language model for captions, visual Q&A and object pointing on CPU.",
			Metrics:      Metrics{Params: "1.9B", Context: "2K", Memory: "~1.3 GB"},
			Category:     CategoryVision,
			Color:        "yellow",
			FootprintGB:  1.3,
		},
		{
			ID:           "smolvlm",
			Name:         "SmolVLM",
			Organization: "Hugging Face",
			Tags:         []string{"multi-image", "documents", "open"},
			Description:  "Fully open VLM that handles interleaved images and text with a small memory budget.",
			Metrics:      Metrics{Params: "2.2B", Context: "16K", Memory: "~5 GB (bf16)"},
			Category:     CategoryVision,
			Color:        "orange",
			FootprintGB:  5,
		},
		{
			ID:           "florence",
			Name:         "Florence-2",
			Organization: "Microsoft",
			Tags:         []string{"OCR", "detection", "segmentation"},
			Description:  "Prompt-based vision foundation model covering OCR, grounding and detection in one network.",
			Metrics:      Metrics{Params: "0.23B-0.77B", Memory: "~1.5 GB"},
			Category:     CategoryVision,
			Color:        "blue",
			FootprintGB:  1.5,
		},

		// RAG & embeddings
		{
			ID:           "bge-small",
			Name:         "BGE small v1.5",
			Organization: "BAAI",
			Tags:         []string{"embeddings", "retrieval", "384-dim"},
			Description:  "Fast English embedding model that tops its size class on retrieval benchmarks.",
			Metrics:      Metrics{Params: "33M", Context: "512", Memory: "~130 MB"},
			Category:     CategoryRAG,
			Color:        "green",
			FootprintGB:  0.13,
		},
		{
			ID:           "nomic-embed",
			Name:         "nomic-embed-text v1.5",
			Organization: "Nomic AI",
			Tags:         []string{"embeddings", "matryoshka", "8K"},
			Description:  "Long-context open embedding model whose vectors can be truncated to trade size for recall.",
			Metrics:      Metrics{Params: "137M", Context: "8K", Memory: "~550 MB"},
			Category:     CategoryRAG,
			Color:        "purple",
			FootprintGB:  0.55,
		},
		{
			ID:           "bge-reranker",
			Name:         "BGE reranker v2 m3",
			Organization: "BAAI",
			Tags:         []string{"reranking", "multilingual", "cross-encoder"},
			Description:  "Cross-encoder that reorders retrieved passages before they reach the generator.",
			Metrics:      Metrics{Params: "568M", Context: "8K", Memory: "~2.2 GB"},
			Category:     CategoryRAG,
			Color:        "cyan",
			FootprintGB:  2.2,
		},

		// Audio
		{
			ID:           "whisper",
			Name:         "Whisper small",
			Organization: "OpenAI",
			Tags:         []string{"speech-to-text", "translation", "99 languages"},
			Description:  "Robust multilingual speech recognition that runs in real time on a laptop CPU.",
			Metrics:      Metrics{Params: "244M", Memory: "~1 GB"},
			Category:     CategoryAudio,
			Color:        "green",
			FootprintGB:  1,
		},
		{
			ID:           "moonshine",
			Name:         "Moonshine",
			Organization: "Useful Sensors",
			Tags:         []string{"speech-to-text", "streaming", "edge"},
			Description:  "Speech recognition sized for microcontrollers, with compute that scales with clip length.",
			Metrics:      Metrics{Params: "27M-61M", Memory: "~250 MB"},
			Category:     CategoryAudio,
			Color:        "yellow",
			FootprintGB:  0.25,
		},
		{
			ID:           "kokoro",
			Name:         "Kokoro",
			Organization: "hexgrad",
			Tags:         []string{"text-to-speech", "voices", "Apache-2.0"},
			Description:  "Lightweight text-to-speech model with natural prosody and dozens of voice packs.",
			Metrics:      Metrics{Params: "82M", Memory: "~350 MB"},
			Category:     CategoryAudio,
			Color:        "pink",
			FootprintGB:  0.35,
		},

		// Generative
		{
			ID:           "sd-turbo",
			Name:         "SD Turbo",
			Organization: "Stability AI",
			Tags:         []string{"text-to-image", "1-step", "distilled"},
			Description:  "Adversarially distilled diffusion model that produces an image in a single step.",
			Metrics:      Metrics{Params: "0.9B", Memory: "~3.5 GB"},
			Category:     CategoryGenAI,
			Color:        "orange",
			FootprintGB:  3.5,
		},
		{
			ID:           "sana",
			Name:         "Sana 0.6B",
			Organization: "NVIDIA",
			Tags:         []string{"text-to-image", "4K", "linear attention"},
			Description:  "Linear-attention diffusion transformer generating high-resolution images on a laptop GPU.",
			Metrics:      Metrics{Params: "0.6B", Memory: "~4 GB"},
			Category:     CategoryGenAI,
			Color:        "red",
			FootprintGB:  4,
		},
		{
			ID:           "musicgen",
			Name:         "MusicGen small",
			Organization: "Meta",
			Tags:         []string{"text-to-music", "melody", "32 kHz"},
			Description:  "Single-stage transformer that turns a text prompt into short music clips.",
			Metrics:      Metrics{Params: "300M", Memory: "~1.2 GB"},
			Category:     CategoryGenAI,
			Color:        "purple",
			FootprintGB:  1.2,
		},
	}
}
