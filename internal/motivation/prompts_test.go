package motivation

import "testing"

func TestPromptForWeekdays(t *testing.T) {
	// 2026-02-16 is a Monday; every weekday of that week must get a prompt.
	keys := []string{
		"2026-02-16", "2026-02-17", "2026-02-18", "2026-02-19",
		"2026-02-20", "2026-02-21", "2026-02-22",
	}
	seen := make(map[string]struct{})
	for _, key := range keys {
		prompt := PromptFor(key)
		if prompt == "" {
			t.Errorf("empty prompt for %s", key)
		}
		seen[prompt] = struct{}{}
	}
	if len(seen) < 6 {
		t.Errorf("expected at least 6 distinct prompts across a week, got %d", len(seen))
	}

	if PromptFor("garbage") != defaultPrompt {
		t.Error("bad date key should fall back to the default prompt")
	}
}
