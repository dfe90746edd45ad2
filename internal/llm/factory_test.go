package llm

import "testing"

func TestNewProvider_Disabled(t *testing.T) {
	provider, err := NewProvider(Config{Provider: ""})
	if err != nil {
		t.Fatalf("Expected no error for disabled provider, got %v", err)
	}
	if provider != nil {
		t.Error("Expected nil provider when disabled")
	}
}

func TestNewProvider_Unknown(t *testing.T) {
	if _, err := NewProvider(Config{Provider: "gpt-banana"}); err == nil {
		t.Fatal("Expected error for unknown provider")
	}
}

func TestNewProvider_OpenAIRequiresKey(t *testing.T) {
	if _, err := NewProvider(Config{Provider: "openai"}); err == nil {
		t.Fatal("Expected error without API key")
	}
	provider, err := NewProvider(Config{Provider: "openai", APIKey: "sk-test"})
	if err != nil {
		t.Fatalf("Expected provider with key, got %v", err)
	}
	if provider.Name() != "openai" {
		t.Errorf("Expected openai, got %s", provider.Name())
	}
}

func TestNewProvider_AnthropicAliases(t *testing.T) {
	for _, name := range []string{"anthropic", "claude"} {
		provider, err := NewProvider(Config{Provider: name, APIKey: "sk-ant-test"})
		if err != nil {
			t.Fatalf("Expected provider for %s, got %v", name, err)
		}
		if provider.Name() != "anthropic" {
			t.Errorf("Expected anthropic, got %s", provider.Name())
		}
	}
}

func TestNewProvider_OllamaNeedsNoKey(t *testing.T) {
	provider, err := NewProvider(Config{Provider: "ollama"})
	if err != nil {
		t.Fatalf("Expected ollama without key, got %v", err)
	}
	if provider.Name() != "ollama" {
		t.Errorf("Expected ollama, got %s", provider.Name())
	}
}
