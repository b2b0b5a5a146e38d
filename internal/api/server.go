package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/sfwrprogclass/MoneySmarts/internal/config"
	"github.com/sfwrprogclass/MoneySmarts/internal/game"
	"github.com/sfwrprogclass/MoneySmarts/internal/store"
)

// Server hosts simulation sessions over HTTP. Each session is one Sim
// keyed by a uuid; all mutation of a Sim happens under the server mutex
// because the engine itself is single-threaded.
type Server struct {
	cfg     config.ServerConfig
	gameCfg game.Config
	log     *slog.Logger
	store   store.Store
	mux     *chi.Mux

	mu       sync.Mutex
	sessions map[string]*game.Sim
}

func New(cfg config.ServerConfig, gameCfg game.Config, logger *slog.Logger, st store.Store) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		cfg:      cfg,
		gameCfg:  gameCfg,
		log:      logger,
		store:    st,
		mux:      chi.NewRouter(),
		sessions: make(map[string]*game.Sim),
	}
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) routes() {
	r := s.mux
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	r.Route("/v1", func(r chi.Router) {
		r.Post("/games", s.handleCreateGame)
		r.Get("/saves", s.handleListSaves)

		r.Route("/games/{id}", func(r chi.Router) {
			r.Get("/", s.handleStatus)
			r.Post("/advance", s.handleAdvance)
			r.Post("/decision", s.handleDecision)
			r.Post("/bank/open", s.handleBankOpen)
			r.Post("/bank/deposit", s.handleBankDeposit)
			r.Post("/bank/withdraw", s.handleBankWithdraw)
			r.Post("/cards/debit", s.handleDebitCard)
			r.Post("/cards/credit", s.handleCreditCard)
			r.Post("/cards/credit/pay", s.handleCreditPay)
			r.Post("/loans/{index}/pay", s.handleLoanPay)
			r.Post("/investments", s.handleInvest)
			r.Post("/insurance", s.handleInsurance)
			r.Post("/insurance/claim", s.handleInsuranceClaim)
			r.Post("/save", s.handleSave)
			r.Post("/load", s.handleLoad)
		})
	})
}

// session looks up the Sim for the request's {id}. The caller must hold
// s.mu for the lifetime of any use of the returned Sim.
func (s *Server) session(r *http.Request) (*game.Sim, string, error) {
	id := chi.URLParam(r, "id")
	sim, ok := s.sessions[id]
	if !ok {
		return nil, id, errSessionNotFound
	}
	return sim, id, nil
}

var errSessionNotFound = errors.New("game not found")

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var in struct {
		PlayerName string `json:"player_name"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(in.PlayerName) == "" {
		writeError(w, http.StatusBadRequest, "player_name is required")
		return
	}

	id := uuid.NewString()
	sim := game.New(strings.TrimSpace(in.PlayerName), s.gameCfg, s.log, nil, nil)

	s.mu.Lock()
	s.sessions[id] = sim
	status := sim.Status()
	s.mu.Unlock()

	s.log.Info("game created", "game_id", id, "player", in.PlayerName)
	writeJSON(w, http.StatusCreated, map[string]any{"id": id, "status": status})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sim, _, err := s.session(r)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, sim.Status())
}

func (s *Server) handleAdvance(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sim, id, err := s.session(r)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err := sim.AdvanceMonth(); err != nil {
		writeDomainError(w, err)
		return
	}

	var event *game.RandomEvent
	if sim.Chance(sim.Config().RandomEventChance) {
		event = sim.TriggerRandomEvent()
	}
	sim.CheckLifeStage()

	s.log.Info("month advanced", "game_id", id, "month", sim.Month, "year", sim.Year)
	writeJSON(w, http.StatusOK, map[string]any{
		"status": sim.Status(),
		"event":  event,
	})
}

func (s *Server) handleDecision(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Kind         game.LifeEventKind    `json:"kind"`
		Choice       game.GraduationChoice `json:"choice,omitempty"`
		Index        int                   `json:"index,omitempty"`
		Method       game.PaymentMethod    `json:"method,omitempty"`
		Accept       bool                  `json:"accept,omitempty"`
		WantChildren bool                  `json:"want_children,omitempty"`
		Decline      bool                  `json:"decline,omitempty"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sim, _, err := s.session(r)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	switch in.Kind {
	case game.LifeGraduation:
		err = sim.ResolveGraduation(in.Choice)
	case game.LifeJobOffer:
		err = sim.ResolveJobOffer(in.Index)
	case game.LifeCarPurchase:
		if in.Decline {
			err = sim.DeclineCarPurchase()
		} else {
			err = sim.ResolveCarPurchase(in.Index, in.Method)
		}
	case game.LifeHousePurchase:
		if in.Decline {
			err = sim.DeclineHousePurchase()
		} else {
			err = sim.ResolveHousePurchase(in.Index, in.Method)
		}
	case game.LifeFamily:
		err = sim.ResolveFamily(in.Accept, in.WantChildren)
	default:
		writeError(w, http.StatusBadRequest, "unknown decision kind")
		return
	}
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sim.Status())
}

func (s *Server) handleBankOpen(w http.ResponseWriter, r *http.Request) {
	var in struct {
		AccountType    game.AccountType `json:"account_type"`
		InitialDeposit float64          `json:"initial_deposit"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sim, _, err := s.session(r)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if in.AccountType == game.Savings && sim.Player.BankAccount != nil {
		err = sim.OpenSavingsAccount(in.InitialDeposit)
	} else {
		err = sim.OpenBankAccount(in.AccountType, in.InitialDeposit)
	}
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sim.Status())
}

func (s *Server) handleBankDeposit(w http.ResponseWriter, r *http.Request) {
	s.amountAction(w, r, func(sim *game.Sim, amount float64) error {
		return sim.Deposit(amount)
	})
}

func (s *Server) handleBankWithdraw(w http.ResponseWriter, r *http.Request) {
	s.amountAction(w, r, func(sim *game.Sim, amount float64) error {
		return sim.Withdraw(amount)
	})
}

func (s *Server) handleCreditPay(w http.ResponseWriter, r *http.Request) {
	s.amountAction(w, r, func(sim *game.Sim, amount float64) error {
		return sim.PayCreditCard(amount)
	})
}

// amountAction is the shared body of the handlers whose input is a single
// dollar amount.
func (s *Server) amountAction(w http.ResponseWriter, r *http.Request, fn func(*game.Sim, float64) error) {
	var in struct {
		Amount float64 `json:"amount"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sim, _, err := s.session(r)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err := fn(sim, in.Amount); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sim.Status())
}

func (s *Server) handleDebitCard(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sim, _, err := s.session(r)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err := sim.IssueDebitCard(); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sim.Status())
}

func (s *Server) handleCreditCard(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sim, _, err := s.session(r)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err := sim.ApplyForCreditCard(); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sim.Status())
}

func (s *Server) handleLoanPay(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad loan index")
		return
	}
	var in struct {
		Amount float64 `json:"amount"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sim, _, err := s.session(r)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err := sim.MakeExtraLoanPayment(index, in.Amount); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sim.Status())
}

func (s *Server) handleInvest(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Type   string  `json:"type"`
		Amount float64 `json:"amount"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sim, _, err := s.session(r)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err := sim.Invest(in.Type, in.Amount); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sim.Status())
}

func (s *Server) handleInsurance(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Type string `json:"type"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sim, _, err := s.session(r)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err := sim.PurchaseInsurance(in.Type); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sim.Status())
}

func (s *Server) handleInsuranceClaim(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Type string  `json:"type"`
		Loss float64 `json:"loss"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sim, _, err := s.session(r)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	payout, err := sim.FileInsuranceClaim(in.Type, in.Loss)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"payout": payout,
		"status": sim.Status(),
	})
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	sim, id, err := s.session(r)
	if err != nil {
		s.mu.Unlock()
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	snap := sim.Snapshot()
	s.mu.Unlock()

	if err := s.store.Save(r.Context(), id, snap); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.log.Info("game saved", "game_id", id)
	writeJSON(w, http.StatusOK, map[string]any{"saved": true, "id": id})
}

func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	snap, err := s.store.Load(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, store.ErrCorruptSave):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sim, ok := s.sessions[id]
	if !ok {
		sim = game.New(snap.Player.Name, s.gameCfg, s.log, nil, nil)
		s.sessions[id] = sim
	}
	if err := sim.Restore(snap); err != nil {
		writeDomainError(w, err)
		return
	}
	s.log.Info("game loaded", "game_id", id)
	writeJSON(w, http.StatusOK, sim.Status())
}

func (s *Server) handleListSaves(w http.ResponseWriter, r *http.Request) {
	saves, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"saves": saves})
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrInvalidAmount),
		errors.Is(err, game.ErrInvalidPayment),
		errors.Is(err, game.ErrDownPaymentShort),
		errors.Is(err, game.ErrUnknownChoice):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, game.ErrInsufficientFunds),
		errors.Is(err, game.ErrInsufficientBalance),
		errors.Is(err, game.ErrCreditLimitExceeded):
		writeError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, game.ErrNoBankAccount),
		errors.Is(err, game.ErrNoCreditCard),
		errors.Is(err, game.ErrLoanNotFound),
		errors.Is(err, game.ErrNoSuchInsurance),
		errors.Is(err, game.ErrNoPendingEvent):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, game.ErrHasBankAccount),
		errors.Is(err, game.ErrHasCreditCard),
		errors.Is(err, game.ErrHasDebitCard),
		errors.Is(err, game.ErrWrongPendingEvent),
		errors.Is(err, game.ErrGameOver):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, game.ErrTooYoungForCredit):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, game.ErrBadSnapshot):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func decodeJSON(r *http.Request, out any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"error": strings.TrimSpace(message)})
}
