package normalise

import (
	"regexp"
	"strings"
)

// issuerRules map instrument-name patterns to known issuer classes,
// evaluated in order; the first match wins. Sovereign and state paper
// come first so acronym collisions resolve towards them.
var issuerRules = []struct {
	re     *regexp.Regexp
	issuer string
}{
	{regexp.MustCompile(`\bGOI\b|\bG-?SEC\b|\bGOVT\b|GOVERNMENT OF INDIA`), "Government of India"},
	// DEVE?LOPMENT tolerates the common "Devlopment" misspelling.
	{regexp.MustCompile(`STATE DEVE?LOPMENT LOAN|\bSDL\b`), "State Government"},
	{regexp.MustCompile(`\bPFC\b|POWER FINANCE`), "Power Finance Corporation Ltd"},
	{regexp.MustCompile(`\bIRFC\b`), "Indian Railway Finance Corporation Ltd"},
	{regexp.MustCompile(`\bREC\b|RURAL ELECTRIFICATION`), "REC Ltd"},
	{regexp.MustCompile(`\bNABARD\b`), "NABARD"},
	{regexp.MustCompile(`\bSIDBI\b`), "SIDBI"},
	{regexp.MustCompile(`\bNHAI\b`), "NHAI"},
	{regexp.MustCompile(`\bHUDCO\b`), "HUDCO"},
	{regexp.MustCompile(`\bKFC\b|KERALA FINANCIAL`), "Kerala Financial Corporation"},
	{regexp.MustCompile(`AJMER VIDYUT|AVVNL`), "Ajmer Vidyut Vitran Nigam Ltd"},
	{regexp.MustCompile(`AP STATE BEVERAGES`), "AP State Beverages Corporation Ltd"},
	{regexp.MustCompile(`\bNHPC\b`), "NHPC Ltd"},
	{regexp.MustCompile(`\bNTPC\b`), "NTPC Ltd"},
	{regexp.MustCompile(`\bKSEB\b|KERALA STATE ELECTRICITY`), "Kerala State Electricity Board"},
}

var leadingAlphaRe = regexp.MustCompile(`^[A-Z&.\-\s()]+`)

// InferIssuer derives a human-readable issuer from an instrument name.
// When no rule matches, the leading run of alphabetic/punctuation
// characters serves as a coarse guess; otherwise empty.
func InferIssuer(instrument string) string {
	if instrument == "" {
		return ""
	}
	s := strings.ToUpper(instrument)

	for _, rule := range issuerRules {
		if rule.re.MatchString(s) {
			return rule.issuer
		}
	}

	return collapseSpaces(leadingAlphaRe.FindString(s))
}
