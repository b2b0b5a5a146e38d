package game

// NetWorth aggregates every instrument into one signed valuation:
// cash + bank balances + investment principal + asset values, less the
// credit card balance and outstanding loan balances. A nil player is
// worth exactly zero.
func NetWorth(p *Player) float64 {
	if p == nil {
		return 0
	}
	total := p.Cash
	if p.BankAccount != nil {
		total += p.BankAccount.Balance
	}
	if p.SavingsAccount != nil {
		total += p.SavingsAccount.Balance
	}
	for _, inv := range p.Investments {
		total += inv.Amount
	}
	for _, a := range p.Assets {
		total += a.CurrentValue
	}
	if p.CreditCard != nil {
		total -= p.CreditCard.Balance
	}
	for _, l := range p.Loans {
		total -= l.CurrentBalance
	}
	return total
}
