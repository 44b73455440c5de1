package registry

import "github.com/minhvu92/termpilot/internal/constants"

// BuiltinProfiles returns the default tool table. Users can extend or override
// it through the tools section of the config file.
func BuiltinProfiles() []ToolProfile {
	return []ToolProfile{
		{
			Name:        "claude",
			Binary:      "claude",
			Description: "Anthropic's Claude Code for terminal-based coding assistance",
			Homepage:    "https://www.anthropic.com/claude-code",
			DocsURL:     "https://docs.anthropic.com/en/docs/claude-code",
			AuthEnvVars: []string{"ANTHROPIC_API_KEY"},
			SetupURL:    "https://console.anthropic.com/",
			Guidance: []string{
				"Claude may require API key authentication on first use.",
				"Set: export ANTHROPIC_API_KEY=\"your-api-key\"",
			},
			Quirks:         LaunchQuirks{NoBrowserVar: "CLAUDE_NO_BROWSER"},
			SetupExitCodes: []int{1},
			Enabled:        true,
		},
		{
			Name:        "gemini",
			Binary:      "gemini",
			Description: "Google's Gemini CLI coding agent",
			Homepage:    "https://github.com/google-gemini/gemini-cli",
			DocsURL:     "https://github.com/google-gemini/gemini-cli#readme",
			AuthEnvVars: []string{"GEMINI_API_KEY", "GOOGLE_API_KEY"},
			SetupURL:    "https://aistudio.google.com/apikey",
			Guidance: []string{
				"Gemini may require Google Cloud authentication setup.",
				"Follow the authentication prompts if they appear.",
			},
			Quirks:         LaunchQuirks{NoBrowserVar: "GEMINI_NO_BROWSER"},
			SetupExitCodes: []int{41, 42},
			Enabled:        true,
		},
		{
			Name:        "qwen",
			Binary:      "qwen",
			Description: "Qwen Code coding assistant",
			Homepage:    "https://github.com/QwenLM/qwen-code",
			DocsURL:     "https://github.com/QwenLM/qwen-code#readme",
			AuthEnvVars: []string{"DASHSCOPE_API_KEY", "OPENAI_API_KEY"},
			SetupURL:    "https://dashscope.console.aliyun.com/",
			Guidance: []string{
				"Qwen may require initial configuration on first use.",
				"Follow any setup prompts that appear.",
			},
			Quirks:         LaunchQuirks{NoBrowserVar: "QWEN_NO_BROWSER"},
			SetupExitCodes: []int{41, 42},
			Enabled:        true,
		},
		{
			Name:        "opencode",
			Binary:      "opencode",
			Description: "OpenCode AI coding agent built for the terminal",
			Homepage:    "https://opencode.ai",
			DocsURL:     "https://opencode.ai/docs",
			Guidance: []string{
				"OpenCode is initializing the interactive environment.",
				"The input interface will be available momentarily.",
			},
			// OpenCode misses its input focus without a primed terminal and a
			// short pause after our last write.
			Quirks: LaunchQuirks{
				TerminalPriming: true,
				InitDelay:       constants.DefaultInitDelay,
			},
			Enabled: true,
		},
		{
			Name:        "llxprt",
			Binary:      "llxprt",
			Description: "LLxprt Code multi-provider AI coding assistant",
			Homepage:    "https://github.com/vybestack/llxprt-code",
			DocsURL:     "https://github.com/vybestack/llxprt-code#readme",
			Guidance: []string{
				"LLxprt Code is preparing the interactive interface.",
			},
			Enabled: true,
		},
		{
			Name:        "codex",
			Binary:      "codex",
			Description: "OpenAI Codex CLI coding agent that runs locally",
			Homepage:    "https://github.com/openai/codex",
			DocsURL:     "https://github.com/openai/codex#readme",
			AuthEnvVars: []string{"OPENAI_API_KEY"},
			SetupURL:    "https://platform.openai.com/",
			Guidance: []string{
				"OpenAI Codex may require API key authentication.",
				"Set: export OPENAI_API_KEY=\"your-api-key\"",
			},
			Quirks:         LaunchQuirks{NoBrowserVar: "CODEX_NO_BROWSER"},
			SetupExitCodes: []int{1},
			Enabled:        true,
		},
		{
			Name:        "crush",
			Binary:      "crush",
			Description: "Charm's Crush multi-model AI coding assistant",
			Homepage:    "https://github.com/charmbracelet/crush",
			DocsURL:     "https://github.com/charmbracelet/crush#readme",
			Guidance: []string{
				"Crush is initializing the development environment.",
			},
			Enabled: true,
		},
		{
			Name:        "aider",
			Binary:      "aider",
			Description: "Aider AI pair programming in your terminal",
			Homepage:    "https://aider.chat",
			DocsURL:     "https://aider.chat/docs/",
			AuthEnvVars: []string{"OPENAI_API_KEY", "ANTHROPIC_API_KEY"},
			SetupURL:    "https://aider.chat/docs/",
			Guidance: []string{
				"Aider may require API key setup for AI model access.",
				"Supports OpenAI, Anthropic, OpenRouter, and more.",
			},
			Enabled: true,
		},
	}
}
