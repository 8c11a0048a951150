package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nileshkr/creditsense/pkg/formulas"
)

func validProfile() Profile {
	return Profile{
		CreditScore: 750,
		Income:      100000,
		Loans: []Loan{
			{Type: "home", Lender: "HDFC Bank", Amount: 3000000, CurrentBalance: 2200000,
				EMI: 25000, InterestRate: 8.5, TenureMonths: 240, RemainingTenure: 180},
			{Type: "auto", Lender: "ICICI Bank", Amount: 800000, CurrentBalance: 300000,
				EMI: 15000, InterestRate: 9.5, TenureMonths: 60, RemainingTenure: 24},
		},
		CreditCards: []CreditCard{
			{Issuer: "HDFC Bank", Limit: 200000, Outstanding: 45000, MinimumDue: 2250},
			{Issuer: "SBI Card", Limit: 100000, Outstanding: 15000, MinimumDue: 750},
		},
		PaymentHistory: []int{0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0},
		Inquiries:      1,
	}
}

func TestProfileValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Profile)
		wantErr bool
	}{
		{name: "valid profile", mutate: func(p *Profile) {}, wantErr: false},
		{name: "score below floor", mutate: func(p *Profile) { p.CreditScore = 299 }, wantErr: true},
		{name: "score above ceiling", mutate: func(p *Profile) { p.CreditScore = 901 }, wantErr: true},
		{name: "score at floor", mutate: func(p *Profile) { p.CreditScore = 300 }, wantErr: false},
		{name: "score at ceiling", mutate: func(p *Profile) { p.CreditScore = 900 }, wantErr: false},
		{name: "negative income", mutate: func(p *Profile) { p.Income = -1 }, wantErr: true},
		{name: "zero income is a degenerate but valid state", mutate: func(p *Profile) { p.Income = 0 }, wantErr: false},
		{name: "negative inquiries", mutate: func(p *Profile) { p.Inquiries = -1 }, wantErr: true},
		{name: "loan with zero amount", mutate: func(p *Profile) { p.Loans[0].Amount = 0 }, wantErr: true},
		{name: "loan balance above principal", mutate: func(p *Profile) { p.Loans[0].CurrentBalance = p.Loans[0].Amount + 1 }, wantErr: true},
		{name: "loan with zero tenure", mutate: func(p *Profile) { p.Loans[1].TenureMonths = 0 }, wantErr: true},
		{name: "remaining tenure above tenure", mutate: func(p *Profile) { p.Loans[1].RemainingTenure = 100 }, wantErr: true},
		{name: "card with zero limit", mutate: func(p *Profile) { p.CreditCards[0].Limit = 0 }, wantErr: true},
		{name: "negative minimum due", mutate: func(p *Profile) { p.CreditCards[1].MinimumDue = -5 }, wantErr: true},
		{name: "negative payment flag", mutate: func(p *Profile) { p.PaymentHistory[0] = -1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, formulas.ErrInvalidInput))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProfileNormalize(t *testing.T) {
	p := Profile{CreditScore: 700, Income: 50000}
	p.Normalize()

	assert.NotNil(t, p.Loans)
	assert.NotNil(t, p.CreditCards)
	assert.NotNil(t, p.PaymentHistory)
	assert.NoError(t, p.Validate())
}

func TestProfileAggregates(t *testing.T) {
	p := validProfile()

	assert.InDelta(t, 40000, p.TotalEMI(), 1e-9)
	assert.InDelta(t, 3000, p.TotalMinimumDues(), 1e-9)
	assert.InDelta(t, 60000, p.TotalOutstanding(), 1e-9)
	assert.InDelta(t, 300000, p.TotalLimit(), 1e-9)
	assert.InDelta(t, 20.0, p.AggregateUtilization(), 1e-9)
	assert.InDelta(t, 1.0/12.0, p.LateFraction(), 1e-9)
}

func TestProfileLateFraction_EmptyHistory(t *testing.T) {
	p := Profile{CreditScore: 700, Income: 50000}
	assert.Equal(t, 0.0, p.LateFraction())
}

func TestProfileFingerprint(t *testing.T) {
	a := validProfile()
	b := validProfile()

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEmpty(t, a.Fingerprint())

	b.CreditScore = 751
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())

	// nil and empty slices fingerprint identically
	c := Profile{CreditScore: 700, Income: 50000}
	d := Profile{CreditScore: 700, Income: 50000, Loans: []Loan{}, CreditCards: []CreditCard{}, PaymentHistory: []int{}}
	assert.Equal(t, c.Fingerprint(), d.Fingerprint())
}
