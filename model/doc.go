// Package model defines the generation client abstraction used by every
// reasoning strategy and collaboration topology.
//
// A Model turns a single prompt into a single reply. Implementations wrap
// provider SDKs (model/openai, model/anthropic) or provide scripted behavior
// for tests (MockModel). Failures are classified into a small closed set of
// sentinel errors so callers can branch on kind without knowing the provider.
package model
