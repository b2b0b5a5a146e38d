package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/sfwrprogclass/MoneySmarts/internal/game"
)

var (
	stdinReader = bufio.NewReader(os.Stdin)
	accent      = color.New(color.FgCyan, color.Bold)
	success     = color.New(color.FgGreen, color.Bold)
	warn        = color.New(color.FgYellow, color.Bold)
	danger      = color.New(color.FgRed, color.Bold)
	neutral     = color.New(color.FgHiWhite)
)

func printSuccess(msg string) {
	success.Println(msg)
}

func printWarn(msg string) {
	warn.Println(msg)
}

func printError(msg string) {
	danger.Println(msg)
}

func printInfo(msg string) {
	neutral.Println(msg)
}

func promptRequired(label string) (string, error) {
	for {
		fmt.Printf("%s: ", label)
		text, err := stdinReader.ReadString('\n')
		if err != nil {
			return "", err
		}
		text = strings.TrimSpace(text)
		if text != "" {
			return text, nil
		}
		printWarn(label + " is required.")
	}
}

func promptChoice(label string, options []string, defaultValue string) (string, error) {
	normalized := make(map[string]struct{}, len(options))
	for _, opt := range options {
		normalized[strings.ToLower(strings.TrimSpace(opt))] = struct{}{}
	}
	for {
		fmt.Printf("%s (%s) [%s]: ", label, strings.Join(options, "/"), defaultValue)
		text, err := stdinReader.ReadString('\n')
		if err != nil {
			return "", err
		}
		text = strings.ToLower(strings.TrimSpace(text))
		if text == "" {
			text = strings.ToLower(strings.TrimSpace(defaultValue))
		}
		if _, ok := normalized[text]; ok {
			return text, nil
		}
		printWarn("Invalid option. Please pick one of the listed values.")
	}
}

func promptYesNo(label string, defaultYes bool) (bool, error) {
	def := "n"
	if defaultYes {
		def = "y"
	}
	answer, err := promptChoice(label, []string{"y", "n"}, def)
	if err != nil {
		return false, err
	}
	return answer == "y", nil
}

func promptFloat(label string, min float64) (float64, error) {
	for {
		text, err := promptRequired(label)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			printWarn("Enter a valid number.")
			continue
		}
		if v <= min {
			printWarn(fmt.Sprintf("Value must be > %.2f", min))
			continue
		}
		return v, nil
	}
}

func promptInt(label string, min, max int) (int, error) {
	for {
		text, err := promptRequired(label)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(text)
		if err != nil {
			printWarn("Enter a whole number.")
			continue
		}
		if v < min || v > max {
			printWarn(fmt.Sprintf("Value must be between %d and %d.", min, max))
			continue
		}
		return v, nil
	}
}

func money(v float64) string {
	if v < 0 {
		return fmt.Sprintf("-$%.2f", -v)
	}
	return fmt.Sprintf("$%.2f", v)
}

func renderStatus(st game.StatusView) {
	accent.Printf("\n=== %s | Age %d | %s %d ===\n", st.PlayerName, st.Age, monthName(st.Month), st.Year)
	fmt.Printf("Cash: %s   Credit score: %d   Net worth: %s\n", money(st.Cash), st.CreditScore, money(st.NetWorth))
	if st.Job != "" {
		fmt.Printf("Job: %s (%s/yr)\n", st.Job, money(st.Salary))
	} else {
		fmt.Printf("Education: %s (no job)\n", st.Education)
	}
	if st.BankAccount != nil {
		fmt.Printf("Checking: %s", money(st.BankAccount.Balance))
		if st.Savings != nil {
			fmt.Printf("   Savings: %s", money(st.Savings.Balance))
		}
		fmt.Println()
	}
	if st.CreditCard != nil {
		fmt.Printf("Credit card: %s owed of %s limit\n", money(st.CreditCard.Balance), money(st.CreditCard.Limit))
	}
	for i, loan := range st.Loans {
		fmt.Printf("Loan %d: %s, %s left, %s/mo at %.1f%%\n",
			i, loan.Type, money(loan.CurrentBalance), money(loan.MonthlyPayment), loan.InterestRate*100)
	}
	for _, asset := range st.Assets {
		fmt.Printf("%s: %s (%s, worth %s)\n", asset.Type, asset.Name, asset.Condition, money(asset.CurrentValue))
	}
	for _, inv := range st.Investments {
		fmt.Printf("Investment: %s %s\n", inv.Type, money(inv.Amount))
	}
	for _, pol := range st.Insurance {
		if pol.Active {
			fmt.Printf("Insurance: %s (%s/mo, covers %s)\n", pol.Type, money(pol.Premium), money(pol.CoverageAmount))
		}
	}
	if st.FamilySize > 0 {
		fmt.Printf("Family: %d member(s)\n", st.FamilySize)
	}
}

func renderNotifications(notes []string) {
	for _, note := range notes {
		success.Printf("  * %s\n", note)
	}
}

func renderEvent(ev *game.RandomEvent) {
	if ev == nil {
		return
	}
	if ev.Delta >= 0 {
		success.Printf("\nEvent: %s (+%s)\n", ev.Description, money(ev.Delta))
	} else {
		danger.Printf("\nEvent: %s (%s)\n", ev.Description, money(ev.Delta))
	}
}

func renderQuests(views []game.QuestView) {
	accent.Println("\n--- Quests ---")
	for _, q := range views {
		mark := "[ ]"
		if q.Completed {
			mark = "[x]"
		}
		fmt.Printf("%s %s: %s (reward %s)\n", mark, q.Title, q.Description, money(q.RewardCash))
	}
}

func renderGameOver(sim *game.Sim) {
	accent.Println("\n=== Retirement ===")
	st := sim.Status()
	fmt.Printf("%s retired at age %d with a net worth of %s.\n", st.PlayerName, st.Age, money(st.NetWorth))
	completed := 0
	for _, q := range sim.QuestViews() {
		if q.Completed {
			completed++
		}
	}
	fmt.Printf("Quests completed: %d of %d\n", completed, len(sim.QuestViews()))
	switch {
	case st.NetWorth >= 1_000_000:
		success.Println("Outstanding. A millionaire retirement.")
	case st.NetWorth >= 100_000:
		success.Println("Well done. A comfortable retirement.")
	case st.NetWorth >= 0:
		printInfo("You made it to retirement in the black.")
	default:
		printError("You retired in debt. Rough ride.")
	}
}

func monthName(m int) string {
	names := []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	if m < 1 || m > 12 {
		return fmt.Sprintf("Month %d", m)
	}
	return names[m-1]
}
