package router

import (
	"context"

	"porter-saathi/pkg/log"
)

// Router is the interface for intent classification
type Router interface {
	Classify(ctx context.Context, message string) RouterOutput
}

// KeywordRouter classifies queries with an ordered keyword rule table.
type KeywordRouter struct {
	rules []Rule
	l     log.Logger
}

// Ensure KeywordRouter implements Router interface
var _ Router = (*KeywordRouter)(nil)

// New creates a KeywordRouter over DefaultRules.
func New(l log.Logger) *KeywordRouter {
	return NewWithRules(DefaultRules, l)
}

// NewWithRules creates a KeywordRouter over a custom rule table.
func NewWithRules(rules []Rule, l log.Logger) *KeywordRouter {
	return &KeywordRouter{
		rules: rules,
		l:     l,
	}
}
