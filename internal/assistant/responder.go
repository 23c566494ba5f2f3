// Package assistant answers visitor questions about the site owner by matching
// keywords against an ordered table of canned replies.
package assistant

import "strings"

// Reply is what the widget shows for one question.
type Reply struct {
	Intent string `json:"intent"`
	Text   string `json:"text"`
	Link   *Link  `json:"link,omitempty"`
}

// Option customizes a Responder.
type Option func(*Responder)

// WithTarget overrides the URL of every link whose ref equals ref. An empty url
// keeps the default from the rule table.
func WithTarget(ref, url string) Option {
	return func(r *Responder) {
		if url != "" {
			r.targets[ref] = url
		}
	}
}

// Responder classifies free text into one of its rules. It holds no per-call
// state and is safe for concurrent use.
type Responder struct {
	rules   []Rule
	targets map[string]string
}

func New(rules []Rule, opts ...Option) (*Responder, error) {
	if err := validate(rules); err != nil {
		return nil, err
	}
	r := &Responder{targets: make(map[string]string)}
	for _, opt := range opts {
		opt(r)
	}
	r.rules = make([]Rule, len(rules))
	for i, rule := range rules {
		rule.Terms = append([]string(nil), rule.Terms...)
		for j, term := range rule.Terms {
			rule.Terms[j] = strings.ToLower(term)
		}
		if rule.Link != nil {
			link := *rule.Link
			if url, ok := r.targets[link.Ref]; ok && link.Ref != "" {
				link.URL = url
			}
			rule.Link = &link
		}
		r.rules[i] = rule
	}
	return r, nil
}

// Default builds a Responder over the embedded rule table.
func Default(opts ...Option) *Responder {
	r, err := New(DefaultRules(), opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Classify returns the reply of the first rule matching input, falling back to
// the final rule. It never fails.
func (r *Responder) Classify(input string) Reply {
	lowered := strings.ToLower(input)
	for _, rule := range r.rules {
		if rule.Matches(lowered) {
			return rule.reply()
		}
	}
	return r.rules[len(r.rules)-1].reply()
}

// Rules returns a copy of the rule table in priority order.
func (r *Responder) Rules() []Rule {
	out := make([]Rule, len(r.rules))
	for i, rule := range r.rules {
		rule.Terms = append([]string(nil), rule.Terms...)
		if rule.Link != nil {
			link := *rule.Link
			rule.Link = &link
		}
		out[i] = rule
	}
	return out
}

func (r Rule) reply() Reply {
	reply := Reply{Intent: r.ID, Text: r.Text}
	if r.Link != nil {
		link := *r.Link
		reply.Link = &link
	}
	return reply
}
