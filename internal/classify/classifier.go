// Package classify implements the fast-path intent matcher: a priority-ordered
// cascade of pure checker functions over normalized utterance text. The
// cascade order is a behavioral invariant; reordering categories changes
// outcomes for inputs that match more than one.
package classify

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/novavoice/nova-core/internal/domain"
)

const defaultCacheSize = 512

type checker func(u utterance) *domain.ClassificationResult

// Classifier runs the checker cascade. It holds no mutable state beyond the
// result cache, which is safe for concurrent use.
type Classifier struct {
	checkers []checker
	cache    *lru.Cache[string, domain.ClassificationResult]
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithCacheSize overrides the LRU result cache size. Size <= 0 disables
// caching.
func WithCacheSize(size int) Option {
	return func(c *Classifier) {
		c.cache = nil
		if size > 0 {
			c.cache, _ = lru.New[string, domain.ClassificationResult](size)
		}
	}
}

// New builds a Classifier. The resolver may be nil; app-name resolution then
// degrades to passing the raw extracted name through.
func New(resolver *AppResolver, opts ...Option) *Classifier {
	c := &Classifier{
		checkers: []checker{
			checkSystemToggles,
			checkSettings,
			checkDeviceInfo,
			checkFiles,
			checkSearch,
			checkQuickActions,
			checkCommunication,
			checkScreen,
			checkCamera,
			checkTimer,
			checkMusic,
			checkReminder,
			checkOpenApp(resolver),
			checkKnowledge,
		},
	}
	c.cache, _ = lru.New[string, domain.ClassificationResult](defaultCacheSize)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify maps raw input to a ClassificationResult. It never fails: blank
// input yields UNKNOWN with confidence 1.0 and anything no checker claims
// falls through to CONVERSATION with confidence 0.7.
func (c *Classifier) Classify(input string) domain.ClassificationResult {
	u := newUtterance(input)
	if u.norm == "" {
		return domain.ClassificationResult{Intent: domain.IntentUnknown, Confidence: 1.0}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(u.norm); ok {
			return cloneResult(cached)
		}
	}

	res := c.run(u)
	if c.cache != nil {
		c.cache.Add(u.norm, cloneResult(res))
	}
	return res
}

func (c *Classifier) run(u utterance) domain.ClassificationResult {
	for _, check := range c.checkers {
		if res := check(u); res != nil {
			return *res
		}
	}
	return domain.ClassificationResult{Intent: domain.IntentConversation, Confidence: 0.7}
}

// cloneResult copies the params map so cached entries are never aliased by
// callers.
func cloneResult(r domain.ClassificationResult) domain.ClassificationResult {
	if r.Params == nil {
		return r
	}
	params := make(map[string]string, len(r.Params))
	for k, v := range r.Params {
		params[k] = v
	}
	r.Params = params
	return r
}
