package domain

import "github.com/shopspring/decimal"

// AccountTotals carries the raw debit/credit sums of one account over a range,
// as aggregated by the reporting repository.
type AccountTotals struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Nature      AccountNature   `json:"nature"`
	Category    AccountCategory `json:"category"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// StatementLine is one account line of a financial statement.
type StatementLine struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Amount      decimal.Decimal `json:"amount"`
}

// IncomeStatement (estado de resultados) over a period. Revenue keeps its
// sign (a negative total signals reversals); cost and expense lines are
// presented as positive magnitudes subtracted from revenue.
type IncomeStatement struct {
	RevenueLines []StatementLine `json:"revenueLines"`
	CostLines    []StatementLine `json:"costLines"`
	ExpenseLines []StatementLine `json:"expenseLines"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	TotalCost    decimal.Decimal `json:"totalCost"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	NetResult    decimal.Decimal `json:"netResult"`
}

// BalanceSheet (estado de situación patrimonial) as of a date. Diff is a
// diagnostic output: when the accounting equation does not hold the signed
// difference is reported as-is, never reconciled silently.
type BalanceSheet struct {
	AssetLines       []StatementLine `json:"assetLines"`
	LiabilityLines   []StatementLine `json:"liabilityLines"`
	EquityLines      []StatementLine `json:"equityLines"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
	EquationHolds    bool            `json:"equationHolds"`
	Diff             decimal.Decimal `json:"diff"`
}

// TrialBalanceRow is one row of a trial balance as of a date.
type TrialBalanceRow struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Category    AccountCategory `json:"category"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}
