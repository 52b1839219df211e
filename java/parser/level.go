package parser

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

const DefaultSourceLevel = "21"

type feature struct {
	name       string
	constraint *semver.Constraints
	since      string
}

func newFeature(name, since string) feature {
	c, err := semver.NewConstraint(">= " + since)
	if err != nil {
		panic(err)
	}
	return feature{name: name, constraint: c, since: since}
}

var (
	featureExplicitTypeArgs = newFeature("explicit type arguments", "5")
	featureDiamond          = newFeature("diamond operator", "7")
	featureAnonymousDiamond = newFeature("diamond with anonymous class", "9")
)

type level struct {
	text    string
	version *semver.Version
}

// parseLevel accepts both the modern "17" form and the legacy "1.8" form.
func parseLevel(text string) (*level, error) {
	normalized := strings.TrimSpace(text)
	if rest, ok := strings.CutPrefix(normalized, "1."); ok {
		normalized = rest
	}
	v, err := semver.NewVersion(normalized)
	if err != nil {
		return nil, fmt.Errorf("invalid source level %q: %w", text, err)
	}
	return &level{text: text, version: v}, nil
}

// require fails when the configured level predates f. A parser driven
// without Finish has no level and accepts everything.
func (p *Parser) require(in Tokens, f feature) error {
	if p.level == nil || f.constraint.Check(p.level.version) {
		return nil
	}
	return fail(in, "%s requires source level %s or later (have %s)", f.name, f.since, p.level.text)
}

// NewGrammar returns a parser for driving Expression over pre-lexed tokens.
func NewGrammar(opts ...Option) (*Parser, error) {
	p := ParseExpression(nil, opts...)
	lvl, err := parseLevel(p.sourceLevel)
	if err != nil {
		return nil, err
	}
	p.level = lvl
	return p, nil
}
