package types

import "testing"

func TestFixedLinkTypeVocabulary(t *testing.T) {
	for _, lt := range []string{"LLM", "Biz Link", "Automation", "Multiple"} {
		if !IsFixedLinkType(lt) {
			t.Fatalf("%q should be a fixed link type", lt)
		}
	}
	// Anything else is a custom type and is stored verbatim.
	for _, lt := range []string{"Comedy", "llm", "", "biz link"} {
		if IsFixedLinkType(lt) {
			t.Fatalf("%q should not be a fixed link type", lt)
		}
	}
}
