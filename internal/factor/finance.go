package factor

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/osse101/PropForecast_Go/internal/domain"
)

// Finance scores the balance of campaign money: support / (support + opposition)
func Finance(f *domain.Finance) domain.Factor {
	if f == nil {
		return neutral(domain.FactorFinance, "No campaign finance data available")
	}

	support := f.TotalSupport
	opposition := f.TotalOpposition
	total := support.Add(opposition)
	if !total.IsPositive() {
		return neutral(domain.FactorFinance, "No money has been reported on either side")
	}

	ratio := support.Div(total).InexactFloat64()
	return measured(domain.FactorFinance, ratio, domain.SourceCampaignFinance, describeFunding(support, opposition, ratio))
}

func describeFunding(support, opposition decimal.Decimal, ratio float64) string {
	switch {
	case ratio > PositiveThreshold:
		return fmt.Sprintf("Support outraises opposition ($%s vs $%s)", support.StringFixed(0), opposition.StringFixed(0))
	case ratio < NegativeThreshold:
		return fmt.Sprintf("Opposition outraises support ($%s vs $%s)", opposition.StringFixed(0), support.StringFixed(0))
	default:
		return fmt.Sprintf("Funding is roughly balanced ($%s vs $%s)", support.StringFixed(0), opposition.StringFixed(0))
	}
}
