package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sfwrprogclass/MoneySmarts/internal/config"
	"github.com/sfwrprogclass/MoneySmarts/internal/game"
	"github.com/sfwrprogclass/MoneySmarts/internal/store"
)

func main() {
	root := &cobra.Command{
		Use:          "smartz",
		Short:        "Money Smartz financial life simulator",
		SilenceUsage: true,
	}

	root.AddCommand(
		newPlayCmd(),
		newSavesCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newStore() (*store.FileStore, error) {
	cfg := config.LoadCLIFromEnv()
	return store.NewFileStore(cfg.SaveDir)
}

func newPlayCmd() *cobra.Command {
	var loadID string
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start or resume an interactive game",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadCLIFromEnv()
			gameCfg, err := config.LoadGameConfig(cfg.GameFile)
			if err != nil {
				return err
			}
			st, err := store.NewFileStore(cfg.SaveDir)
			if err != nil {
				return err
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

			var sim *game.Sim
			saveID := loadID
			if loadID != "" {
				snap, err := st.Load(cmd.Context(), loadID)
				if err != nil {
					return err
				}
				sim = game.New(snap.Player.Name, gameCfg, logger, nil, nil)
				if err := sim.Restore(snap); err != nil {
					return err
				}
				printSuccess(fmt.Sprintf("Welcome back, %s.", sim.Player.Name))
			} else {
				sim, saveID, err = newGame(gameCfg, logger)
				if err != nil {
					return err
				}
			}

			return gameLoop(cmd.Context(), sim, st, saveID)
		},
	}
	cmd.Flags().StringVar(&loadID, "load", "", "save id to resume")
	return cmd
}

func newSavesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "saves",
		Short: "List saved games",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := newStore()
			if err != nil {
				return err
			}
			saves, err := st.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(saves) == 0 {
				printInfo("No saved games.")
				return nil
			}
			for _, save := range saves {
				fmt.Printf("%-36s  %-20s  %s\n", save.ID, save.PlayerName, save.SavedAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}

func newGame(gameCfg game.Config, logger *slog.Logger) (*game.Sim, string, error) {
	accent.Println("=== MONEY SMARTZ: Financial Life Simulator ===")
	printInfo("You are 16, just got your driver's license, and your parents")
	printInfo("gave you some cash to start your financial journey.")

	name, err := promptRequired("Your name")
	if err != nil {
		return nil, "", err
	}
	sim := game.New(name, gameCfg, logger, nil, nil)

	open, err := promptYesNo("Open a checking account now", true)
	if err != nil {
		return nil, "", err
	}
	if open {
		deposit, err := promptFloat(fmt.Sprintf("Initial deposit (you have %s)", money(sim.Player.Cash)), 0)
		if err != nil {
			return nil, "", err
		}
		if err := sim.OpenBankAccount(game.Checking, deposit); err != nil {
			printError(err.Error())
		} else {
			printSuccess("Checking account opened.")
			card, err := promptYesNo("Get a debit card too", true)
			if err != nil {
				return nil, "", err
			}
			if card {
				if err := sim.IssueDebitCard(); err != nil {
					printError(err.Error())
				} else {
					printSuccess("Debit card issued.")
				}
			}
		}
	}
	renderNotifications(sim.DrainNotifications())
	return sim, strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "-")), nil
}

func gameLoop(ctx context.Context, sim *game.Sim, st *store.FileStore, saveID string) error {
	for !sim.GameOver {
		if pending := sim.PendingLifeEvent(); pending != nil {
			if err := resolveLifeEvent(sim, pending); err != nil {
				return err
			}
			continue
		}

		renderStatus(sim.Status())
		choice, err := promptChoice("Action", []string{
			"advance", "bank", "card", "loan", "invest", "insure", "claim", "repair", "mentor", "quests", "save", "quit",
		}, "advance")
		if err != nil {
			return err
		}

		switch choice {
		case "advance":
			if err := advanceMonth(sim); err != nil {
				return err
			}
		case "bank":
			bankMenu(sim)
		case "card":
			cardMenu(sim)
		case "loan":
			loanMenu(sim)
		case "invest":
			investMenu(sim)
		case "insure":
			insuranceMenu(sim)
		case "claim":
			claimMenu(sim)
		case "repair":
			repairMenu(sim)
		case "mentor":
			if sim.MetMentor {
				printInfo("You already know the mentor.")
			} else {
				sim.MeetMentor()
				printSuccess("You met a financial mentor at the community center.")
				renderNotifications(sim.DrainNotifications())
			}
		case "quests":
			renderQuests(sim.QuestViews())
		case "save":
			if err := st.Save(ctx, saveID, sim.Snapshot()); err != nil {
				printError("save failed: " + err.Error())
			} else {
				printSuccess("Saved as " + saveID + ".")
			}
		case "quit":
			yes, err := promptYesNo("Save before quitting", true)
			if err != nil {
				return err
			}
			if yes {
				if err := st.Save(ctx, saveID, sim.Snapshot()); err != nil {
					printError("save failed: " + err.Error())
				}
			}
			return nil
		}
	}

	renderGameOver(sim)
	return nil
}

func advanceMonth(sim *game.Sim) error {
	if err := sim.AdvanceMonth(); err != nil {
		if errors.Is(err, game.ErrGameOver) {
			return nil
		}
		return err
	}
	renderNotifications(sim.DrainNotifications())
	if sim.Chance(sim.Config().RandomEventChance) {
		renderEvent(sim.TriggerRandomEvent())
		renderNotifications(sim.DrainNotifications())
	}
	sim.CheckLifeStage()
	return nil
}

func resolveLifeEvent(sim *game.Sim, ev *game.LifeEvent) error {
	accent.Printf("\n=== %s ===\n", ev.Title)
	printInfo(ev.Description)

	switch ev.Kind {
	case game.LifeGraduation:
		choice, err := promptChoice("Path", []string{"college", "trade_school", "work"}, "college")
		if err != nil {
			return err
		}
		if err := sim.ResolveGraduation(game.GraduationChoice(choice)); err != nil {
			printError(err.Error())
		}
	case game.LifeJobOffer:
		for i, offer := range ev.JobOffers {
			fmt.Printf("%d) %s - %s/yr\n", i+1, offer.Title, money(offer.Salary))
		}
		pick, err := promptInt("Take which job", 1, len(ev.JobOffers))
		if err != nil {
			return err
		}
		if err := sim.ResolveJobOffer(pick - 1); err != nil {
			printError(err.Error())
		} else {
			printSuccess("You start next month.")
		}
	case game.LifeCarPurchase:
		if err := resolvePurchase(sim, ev, sim.ResolveCarPurchase, sim.DeclineCarPurchase); err != nil {
			return err
		}
	case game.LifeHousePurchase:
		if err := resolvePurchase(sim, ev, sim.ResolveHousePurchase, sim.DeclineHousePurchase); err != nil {
			return err
		}
	case game.LifeFamily:
		accept, err := promptYesNo("Start a family", true)
		if err != nil {
			return err
		}
		children := false
		if accept {
			children, err = promptYesNo("Have children", true)
			if err != nil {
				return err
			}
		}
		if err := sim.ResolveFamily(accept, children); err != nil {
			printError(err.Error())
		}
	}
	renderNotifications(sim.DrainNotifications())
	return nil
}

func resolvePurchase(sim *game.Sim, ev *game.LifeEvent, resolve func(int, game.PaymentMethod) error, decline func() error) error {
	for i, opt := range ev.Options {
		fmt.Printf("%d) %s - %s\n", i+1, opt.Name, money(opt.Value))
	}
	fmt.Println("0) Not right now")
	pick, err := promptInt("Choose", 0, len(ev.Options))
	if err != nil {
		return err
	}
	if pick == 0 {
		if err := decline(); err != nil {
			printError(err.Error())
		}
		return nil
	}
	method, err := promptChoice("Pay with", []string{"cash", "bank", "loan"}, "loan")
	if err != nil {
		return err
	}
	if err := resolve(pick-1, game.PaymentMethod(method)); err != nil {
		printError(err.Error())
	} else {
		printSuccess("Purchase complete.")
	}
	return nil
}

func bankMenu(sim *game.Sim) {
	choice, err := promptChoice("Bank", []string{"open", "savings", "deposit", "withdraw", "back"}, "back")
	if err != nil {
		return
	}
	switch choice {
	case "open":
		amount, err := promptFloat("Initial deposit", 0)
		if err != nil {
			return
		}
		report(sim.OpenBankAccount(game.Checking, amount), "Checking account opened.")
	case "savings":
		amount, err := promptFloat("Initial deposit", 0)
		if err != nil {
			return
		}
		report(sim.OpenSavingsAccount(amount), "Savings account opened.")
	case "deposit":
		amount, err := promptFloat("Amount", 0)
		if err != nil {
			return
		}
		report(sim.Deposit(amount), "Deposited.")
	case "withdraw":
		amount, err := promptFloat("Amount", 0)
		if err != nil {
			return
		}
		report(sim.Withdraw(amount), "Withdrawn.")
	}
	renderNotifications(sim.DrainNotifications())
}

func cardMenu(sim *game.Sim) {
	choice, err := promptChoice("Card", []string{"debit", "credit", "pay", "back"}, "back")
	if err != nil {
		return
	}
	switch choice {
	case "debit":
		report(sim.IssueDebitCard(), "Debit card issued.")
	case "credit":
		report(sim.ApplyForCreditCard(), "Credit card approved.")
	case "pay":
		if sim.Player.CreditCard == nil {
			printWarn("No credit card.")
			return
		}
		due := game.MinPaymentDue(sim.Player.CreditCard.Balance)
		printInfo(fmt.Sprintf("Balance %s, minimum due %s.", money(sim.Player.CreditCard.Balance), money(due)))
		amount, err := promptFloat("Payment", 0)
		if err != nil {
			return
		}
		report(sim.PayCreditCard(amount), "Payment made.")
	}
	renderNotifications(sim.DrainNotifications())
}

func loanMenu(sim *game.Sim) {
	if len(sim.Player.Loans) == 0 {
		printInfo("No loans.")
		return
	}
	for i, loan := range sim.Player.Loans {
		fmt.Printf("%d) %s - %s left at %.1f%%\n", i+1, loan.Type, money(loan.CurrentBalance), loan.InterestRate*100)
	}
	pick, err := promptInt("Pay extra on which loan", 1, len(sim.Player.Loans))
	if err != nil {
		return
	}
	amount, err := promptFloat("Extra payment", 0)
	if err != nil {
		return
	}
	report(sim.MakeExtraLoanPayment(pick-1, amount), "Extra payment applied.")
}

func investMenu(sim *game.Sim) {
	for _, opt := range game.InvestmentCatalog() {
		fmt.Printf("- %s (%.0f%%/yr, %s risk)\n", opt.Type, opt.ExpectedAnnualReturn*100, opt.Risk)
	}
	kind, err := promptChoice("Invest in", []string{"stock", "bond", "retirement"}, "stock")
	if err != nil {
		return
	}
	amount, err := promptFloat("Amount", 0)
	if err != nil {
		return
	}
	report(sim.Invest(kind, amount), "Invested.")
	renderNotifications(sim.DrainNotifications())
}

func insuranceMenu(sim *game.Sim) {
	for _, opt := range game.InsuranceCatalog() {
		fmt.Printf("- %s: %s/mo, covers %s (deductible %s)\n",
			opt.Type, money(opt.Premium), money(opt.CoverageAmount), money(opt.Deductible))
	}
	kind, err := promptChoice("Buy", []string{"car", "home", "health", "back"}, "back")
	if err != nil || kind == "back" {
		return
	}
	report(sim.PurchaseInsurance(kind), "Policy active.")
}

func claimMenu(sim *game.Sim) {
	if len(sim.Player.Insurance) == 0 {
		printInfo("No insurance policies.")
		return
	}
	kind, err := promptChoice("Claim against", []string{"car", "home", "health"}, "car")
	if err != nil {
		return
	}
	loss, err := promptFloat("Loss amount", 0)
	if err != nil {
		return
	}
	payout, err := sim.FileInsuranceClaim(kind, loss)
	if err != nil {
		printError(err.Error())
		return
	}
	printSuccess(fmt.Sprintf("Claim paid: %s.", money(payout)))
}

func repairMenu(sim *game.Sim) {
	if len(sim.Player.Assets) == 0 {
		printInfo("Nothing to repair.")
		return
	}
	for i, asset := range sim.Player.Assets {
		fmt.Printf("%d) %s %s - condition %s\n", i+1, asset.Type, asset.Name, asset.Condition)
	}
	pick, err := promptInt("Repair which", 1, len(sim.Player.Assets))
	if err != nil {
		return
	}
	cost, err := promptFloat("Repair budget", 0)
	if err != nil {
		return
	}
	report(sim.RepairAsset(pick-1, cost), "Repaired to good condition.")
}

func report(err error, okMsg string) {
	if err != nil {
		printError(err.Error())
		return
	}
	printSuccess(okMsg)
}
