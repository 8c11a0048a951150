package recommendations

// DefaultCatalog returns the built-in card catalog used to seed the
// catalog database on first start. Income requirements are monthly gross
// income; reward rates are headline percentages.
func DefaultCatalog() []CardCatalogEntry {
	return []CardCatalogEntry{
		{
			Name:           "HDFC Diners Club Black",
			Issuer:         "HDFC Bank",
			Category:       "travel",
			MinCreditScore: 750,
			MinIncome:      125000,
			AnnualFee:      10000,
			BenefitTags:    []string{"travel", "dining", "lounge", "golf"},
			RewardRate:     3.3,
		},
		{
			Name:           "SBI Card ELITE",
			Issuer:         "SBI Card",
			Category:       "travel",
			MinCreditScore: 720,
			MinIncome:      75000,
			AnnualFee:      4999,
			BenefitTags:    []string{"travel", "lounge", "movies"},
			RewardRate:     2.5,
		},
		{
			Name:           "Axis Atlas",
			Issuer:         "Axis Bank",
			Category:       "travel",
			MinCreditScore: 730,
			MinIncome:      90000,
			AnnualFee:      5000,
			BenefitTags:    []string{"travel", "lounge", "miles"},
			RewardRate:     4.0,
		},
		{
			Name:           "Amazon Pay ICICI",
			Issuer:         "ICICI Bank",
			Category:       "cashback",
			MinCreditScore: 650,
			MinIncome:      25000,
			AnnualFee:      0,
			BenefitTags:    []string{"cashback", "shopping", "online"},
			RewardRate:     5.0,
		},
		{
			Name:           "Axis ACE",
			Issuer:         "Axis Bank",
			Category:       "cashback",
			MinCreditScore: 650,
			MinIncome:      25000,
			AnnualFee:      499,
			BenefitTags:    []string{"cashback", "utilities"},
			RewardRate:     2.0,
		},
		{
			Name:           "HDFC Millennia",
			Issuer:         "HDFC Bank",
			Category:       "shopping",
			MinCreditScore: 700,
			MinIncome:      35000,
			AnnualFee:      1000,
			BenefitTags:    []string{"shopping", "cashback", "online"},
			RewardRate:     2.5,
		},
		{
			Name:           "Flipkart Axis",
			Issuer:         "Axis Bank",
			Category:       "shopping",
			MinCreditScore: 680,
			MinIncome:      25000,
			AnnualFee:      500,
			BenefitTags:    []string{"shopping", "cashback", "online"},
			RewardRate:     4.0,
		},
		{
			Name:           "BPCL SBI Card",
			Issuer:         "SBI Card",
			Category:       "fuel",
			MinCreditScore: 600,
			MinIncome:      20000,
			AnnualFee:      499,
			BenefitTags:    []string{"fuel", "cashback"},
			RewardRate:     4.25,
		},
		{
			Name:           "IndianOil Axis",
			Issuer:         "Axis Bank",
			Category:       "fuel",
			MinCreditScore: 620,
			MinIncome:      20000,
			AnnualFee:      500,
			BenefitTags:    []string{"fuel"},
			RewardRate:     4.0,
		},
		{
			Name:           "HDFC MoneyBack+",
			Issuer:         "HDFC Bank",
			Category:       "cashback",
			MinCreditScore: 600,
			MinIncome:      20000,
			AnnualFee:      500,
			BenefitTags:    []string{"cashback", "online"},
			RewardRate:     2.0,
		},
	}
}
