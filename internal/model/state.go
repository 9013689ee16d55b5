// Package model defines the state tree and entity types for the kaasi ledger.
package model

import (
	"sort"
	"strings"
)

// State is the complete in-memory state tree. It is owned by a single
// ledger session; operations take it explicitly rather than closing over
// package-level state.
type State struct {
	Transactions []Transaction `json:"transactions"`
	Accounts     []Account     `json:"accounts"`
	Categories   []string      `json:"categories"`
	Debts        []Debt        `json:"debts"`
	Receivables  []Receivable  `json:"receivables"`
	Installments []Installment `json:"installments"`
	CreditCard   CreditCard    `json:"creditCard"`
	Settings     Settings      `json:"settings"`
}

// Settings gates first-run configuration and display preferences.
type Settings struct {
	InitialSetupDone       bool   `json:"initialSetupDone"`
	ShowCCDashboardSection bool   `json:"showCcDashboardSection"`
	Theme                  string `json:"theme"`
}

// CreditCard is the single credit-card facility: a limit plus its
// charge history.
type CreditCard struct {
	Limit        float64                 `json:"limit"`
	Transactions []CreditCardTransaction `json:"transactions"`
}

// SentinelCategory can never be deleted and is restored on load if the
// category list was emptied.
const SentinelCategory = "Other"

// DefaultCategories is the canonical starting category list.
// DefaultState returns it sorted.
var DefaultCategories = []string{
	"Food & Dining",
	"Groceries",
	"Transportation",
	"Healthcare",
	"Personal Care",
	"Shopping",
	"Entertainment",
	"Education",
	"Gifts & Donations",
	"Travel",
	"Subscriptions & Memberships",
	"Bank Charges",
	SentinelCategory,
}

// DefaultState returns a fresh canonical empty state tree. Every call
// produces an independent copy; callers may mutate the result freely.
func DefaultState() *State {
	cats := make([]string, len(DefaultCategories))
	copy(cats, DefaultCategories)
	SortCategories(cats)

	return &State{
		Transactions: []Transaction{},
		Accounts:     DefaultAccounts(),
		Categories:   cats,
		Debts:        []Debt{},
		Receivables:  []Receivable{},
		Installments: []Installment{},
		CreditCard: CreditCard{
			Limit:        0,
			Transactions: []CreditCardTransaction{},
		},
		Settings: Settings{
			InitialSetupDone:       false,
			ShowCCDashboardSection: true,
			Theme:                  "dark",
		},
	}
}

// Account returns the account with the given id, or nil.
func (s *State) Account(id string) *Account {
	for i := range s.Accounts {
		if s.Accounts[i].ID == id {
			return &s.Accounts[i]
		}
	}
	return nil
}

// Transaction returns the transaction with the given id, or nil.
func (s *State) Transaction(id string) *Transaction {
	for i := range s.Transactions {
		if s.Transactions[i].ID == id {
			return &s.Transactions[i]
		}
	}
	return nil
}

// Debt returns the debt with the given id, or nil.
func (s *State) Debt(id string) *Debt {
	for i := range s.Debts {
		if s.Debts[i].ID == id {
			return &s.Debts[i]
		}
	}
	return nil
}

// Receivable returns the receivable with the given id, or nil.
func (s *State) Receivable(id string) *Receivable {
	for i := range s.Receivables {
		if s.Receivables[i].ID == id {
			return &s.Receivables[i]
		}
	}
	return nil
}

// Installment returns the installment plan with the given id, or nil.
func (s *State) Installment(id string) *Installment {
	for i := range s.Installments {
		if s.Installments[i].ID == id {
			return &s.Installments[i]
		}
	}
	return nil
}

// CCTransaction returns the credit-card transaction with the given id,
// or nil.
func (s *State) CCTransaction(id string) *CreditCardTransaction {
	for i := range s.CreditCard.Transactions {
		if s.CreditCard.Transactions[i].ID == id {
			return &s.CreditCard.Transactions[i]
		}
	}
	return nil
}

// HasCategory reports whether name is in the category list,
// case-insensitively.
func (s *State) HasCategory(name string) bool {
	for _, c := range s.Categories {
		if strings.EqualFold(c, name) {
			return true
		}
	}
	return false
}

// SortCategories sorts a category list for display: case-insensitive
// lexicographic, ties broken case-sensitively so the order is stable.
func SortCategories(cats []string) {
	sort.Slice(cats, func(i, j int) bool {
		li, lj := strings.ToLower(cats[i]), strings.ToLower(cats[j])
		if li != lj {
			return li < lj
		}
		return cats[i] < cats[j]
	})
}
