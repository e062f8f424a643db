package atm

import (
	"fmt"

	apperrors "github.com/hypermedia-lab/lessons/internal/services/lessons/platform/errors"
	"github.com/hypermedia-lab/lessons/internal/services/lessons/platform/state"
)

// startingBalanceCents is the account balance after every reset.
const startingBalanceCents int64 = 100_000

type appState struct {
	CardInserted  bool
	Authenticated bool
	BalanceCents  int64
}

func freshState() *appState {
	return &appState{BalanceCents: startingBalanceCents}
}

type service struct {
	store *state.Store[*appState]
}

func newService() service {
	return service{store: state.NewStore(freshState)}
}

func (s service) register(registry *state.Registry) {
	registry.Add(s.store)
}

// login authenticates the session. It fails when no card is inserted; the
// PIN itself is accepted as-is, this machine only teaches the flow.
func (s service) login() (int64, error) {
	var (
		balance int64
		err     error
	)
	s.store.Do(func(st *appState) {
		if !st.CardInserted {
			err = apperrors.E(apperrors.KindPaymentRequired, "insert a card before entering a PIN")
			return
		}
		st.Authenticated = true
		balance = st.BalanceCents
	})
	return balance, err
}

// withdraw deducts cents from the balance. Overdrafts are refused and
// leave the balance untouched; withdrawing the exact balance is allowed.
func (s service) withdraw(cents int64) (int64, error) {
	var (
		balance int64
		err     error
	)
	s.store.Do(func(st *appState) {
		if cents > st.BalanceCents {
			err = apperrors.E(apperrors.KindForbidden,
				fmt.Sprintf("insufficient funds: balance is %s", formatCents(st.BalanceCents)))
			return
		}
		st.BalanceCents -= cents
		balance = st.BalanceCents
	})
	return balance, err
}

// balance returns the current balance; ok is false when the session is not
// authenticated.
func (s service) balance() (int64, bool) {
	var (
		balance       int64
		authenticated bool
	)
	s.store.Do(func(st *appState) {
		authenticated = st.Authenticated
		balance = st.BalanceCents
	})
	return balance, authenticated
}

// insertCard puts a card in the slot; any previous authentication is void.
func (s service) insertCard() {
	s.store.Do(func(st *appState) {
		st.CardInserted = true
		st.Authenticated = false
	})
}

// removeCard ends the session entirely, restoring the fresh snapshot.
func (s service) removeCard() {
	s.store.Reset()
}
