package normalise

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferIssuer_Rules(t *testing.T) {
	tests := []struct {
		instrument string
		want       string
	}{
		{"7.26% GOI 2033", "Government of India"},
		{"Government of India 2030", "Government of India"},
		{"6.54% G-Sec 2032", "Government of India"},
		{"8.21% Haryana SDL 2027", "State Government"},
		{"7.89% State Development Loan 2026", "State Government"},
		{"PFC Ltd NCD Series 205", "Power Finance Corporation Ltd"},
		{"Power Finance Corporation 2028", "Power Finance Corporation Ltd"},
		{"IRFC 7.33% 2027", "Indian Railway Finance Corporation Ltd"},
		{"REC 7.55% 2026", "REC Ltd"},
		{"NABARD Bonds 2027", "NABARD"},
		{"SIDBI 7.15% 2025", "SIDBI"},
		{"NHAI Taxable Bonds", "NHAI"},
		{"HUDCO 7.05% 2030", "HUDCO"},
		{"Kerala Financial Corporation SR I", "Kerala Financial Corporation"},
		{"Ajmer Vidyut Vitran Nigam SR-1", "Ajmer Vidyut Vitran Nigam Ltd"},
		{"AP State Beverages Corporation 2026", "AP State Beverages Corporation Ltd"},
		{"NHPC 7.5% 2031", "NHPC Ltd"},
		{"NTPC 6.99% 2030", "NTPC Ltd"},
		{"KSEB 8.00% 2029", "Kerala State Electricity Board"},
	}

	for _, tt := range tests {
		t.Run(tt.instrument, func(t *testing.T) {
			assert.Equal(t, tt.want, InferIssuer(tt.instrument))
		})
	}
}

func TestInferIssuer_LeadingAlphaFallback(t *testing.T) {
	// No rule matches: the leading alphabetic run is a coarse guess.
	assert.Equal(t, "ACME INFRA LTD.", InferIssuer("Acme Infra Ltd. 8.9% 2027"))
}

func TestInferIssuer_Empty(t *testing.T) {
	assert.Equal(t, "", InferIssuer(""))
	// Leading digits leave nothing to guess from.
	assert.Equal(t, "", InferIssuer("91 Day TBill"))
}
