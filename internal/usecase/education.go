package usecase

import "SentientToken/internal/domain/models"

// educationTerms is the fixed glossary served by /api/education/terms.
var educationTerms = []models.EducationTerm{
	{
		Term:       "Market Cap",
		Definition: "The total value of all coins in circulation, calculated by multiplying the current price by the total supply.",
	},
	{
		Term:       "Volatility",
		Definition: "The degree of price fluctuation over time. Crypto markets are known for high volatility.",
	},
	{
		Term:       "HODL",
		Definition: "A strategy of holding onto cryptocurrency long-term, regardless of market fluctuations.",
	},
	{
		Term:       "DeFi",
		Definition: "Decentralized Finance - financial services built on blockchain technology without traditional intermediaries.",
	},
	{
		Term:       "Staking",
		Definition: "The process of participating in proof-of-stake consensus by locking up tokens to earn rewards.",
	},
}

// EducationTerms returns the glossary.
func EducationTerms() []models.EducationTerm {
	return educationTerms
}
