package catalog

import "sync"

// Large returns the large-model landscape. Every entry is always visible.
var Large = sync.OnceValue(func() *Catalog {
	return newCatalog("llm", false, largeEntries())
})

func largeEntries() []Entry {
	return []Entry{
		{
			ID:           "openai",
			Name:         "GPT",
			Organization: "OpenAI",
			Tags:         []string{"GPT-4o", "o1", "o3-mini"},
			Description:  "General-purpose multimodal models with strong tool use and a separate line of reasoning models.",
			Metrics:      Metrics{Context: "128K", Params: "undisclosed", Rank: "Tier 1"},
			Color:        "green",
		},
		{
			ID:           "anthropic",
			Name:         "Claude",
			Organization: "Anthropic",
			Tags:         []string{"Claude 3.5 Sonnet", "Claude 3.5 Haiku", "Claude 3 Opus"},
			Description:  "Long-context assistants known for careful instruction following, coding and document analysis.",
			Metrics:      Metrics{Context: "200K", Params: "undisclosed", Rank: "Tier 1"},
			Color:        "orange",
		},
		{
			ID:           "google",
			Name:         "Gemini",
			Organization: "Google DeepMind",
			Tags:         []string{"Gemini 2.0 Flash", "Gemini 1.5 Pro", "Gemma"},
			Description:  "Natively multimodal family with million-token context windows and tight search integration.",
			Metrics:      Metrics{Context: "1M-2M", Params: "undisclosed", Rank: "Tier 1"},
			Color:        "blue",
		},
		{
			ID:           "meta",
			Name:         "Llama",
			Organization: "Meta",
			Tags:         []string{"Llama 3.3", "Llama 3.2", "Llama 3.1 405B"},
			Description:  "Open-weight models that anchor much of the open ecosystem of fine-tunes and runtimes.",
			Metrics:      Metrics{Context: "128K", Params: "1B-405B", Rank: "Tier 1"},
			Color:        "purple",
		},
		{
			ID:           "deepseek",
			Name:         "DeepSeek",
			Organization: "DeepSeek AI",
			Tags:         []string{"DeepSeek-V3", "DeepSeek-R1", "DeepSeek-Coder"},
			Description:  "Mixture-of-experts models trained at low cost, with an open reasoning model rivalling closed ones.",
			Metrics:      Metrics{Context: "128K", Params: "671B MoE (37B active)", Rank: "Tier 1"},
			Color:        "cyan",
		},
		{
			ID:           "qwen",
			Name:         "Qwen",
			Organization: "Alibaba Cloud",
			Tags:         []string{"Qwen2.5", "Qwen2.5-Coder", "QwQ"},
			Description:  "Broad open-weight family spanning 0.5B to 72B with strong multilingual and coding variants.",
			Metrics:      Metrics{Context: "128K", Params: "0.5B-72B", Rank: "Tier 1"},
			Color:        "red",
		},
		{
			ID:           "mistral",
			Name:         "Mistral",
			Organization: "Mistral AI",
			Tags:         []string{"Mistral Large", "Mixtral 8x22B", "Codestral"},
			Description:  "European lab shipping efficient dense and sparse models under both open and commercial licences.",
			Metrics:      Metrics{Context: "128K", Params: "7B-123B", Rank: "Tier 2"},
			Color:        "yellow",
		},
		{
			ID:           "xai",
			Name:         "Grok",
			Organization: "xAI",
			Tags:         []string{"Grok-2", "Grok-2 mini", "Grok-1"},
			Description:  "Conversational models with real-time access to posts on X and an open-sourced first generation.",
			Metrics:      Metrics{Context: "128K", Params: "314B (Grok-1)", Rank: "Tier 2"},
			Color:        "pink",
		},
	}
}
