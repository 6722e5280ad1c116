package router

import (
	"context"
	"strings"
)

// Classify returns the intent of the first rule with a keyword contained in
// the lowercased message, or IntentUnknown.
func (r *KeywordRouter) Classify(ctx context.Context, message string) RouterOutput {
	query := strings.ToLower(message)

	for i, rule := range r.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(query, kw) {
				r.l.Debugf(ctx, "%s: %q -> %s (rule %d, keyword %q)", LogPrefixClassify, message, rule.Intent, i+1, kw)
				return RouterOutput{Intent: rule.Intent, Rule: i + 1, Keyword: kw}
			}
		}
	}

	r.l.Debugf(ctx, "%s: %q -> %s", LogPrefixClassify, message, IntentUnknown)
	return RouterOutput{Intent: IntentUnknown}
}
