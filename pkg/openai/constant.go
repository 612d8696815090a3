package openai

const (
	// DefaultModel is used when Config.Model is empty.
	DefaultModel = "gpt-4o-2024-08-06"

	// DefaultBaseURL is the OpenAI API endpoint.
	DefaultBaseURL = "https://api.openai.com/v1"

	// DeepSeekBaseURL is the DeepSeek OpenAI-compatible endpoint.
	DeepSeekBaseURL = "https://api.deepseek.com/v1"

	// QwenBaseURL is the DashScope OpenAI-compatible endpoint.
	QwenBaseURL = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
)

// BaseURLForProvider returns the preset endpoint of a provider name, or "".
func BaseURLForProvider(name string) string {
	switch name {
	case "openai":
		return DefaultBaseURL
	case "deepseek":
		return DeepSeekBaseURL
	case "qwen", "alibaba":
		return QwenBaseURL
	default:
		return ""
	}
}
