// Package validate checks generated text against plain-language
// principles. The engine itself never validates output; callers run a
// Validator over the final text when their use case demands it.
package validate
