package schema

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cast"

	"github.com/aanjelos/kaasi/internal/common"
	"github.com/aanjelos/kaasi/internal/model"
)

// Decode turns a previously persisted blob into a fully repaired state.
// It always returns a usable state; the error is informational and set
// only when the blob was unparsable and had to be discarded (wrapped
// common.ErrMalformedData).
//
// Pipeline: parse to a dynamic map, Merge over the default skeleton so
// every expected key exists, decode section by section with per-section
// fallback to defaults, then Repair.
func Decode(raw []byte) (*model.State, error) {
	if len(raw) == 0 {
		return model.DefaultState(), nil
	}

	var loaded map[string]any
	if err := json.Unmarshal(raw, &loaded); err != nil {
		return model.DefaultState(), fmt.Errorf("%w: %v", common.ErrMalformedData, err)
	}

	merged := Merge(defaultSkeleton(), loaded)
	state := decodeSections(merged)
	Repair(state)
	return state, nil
}

// defaultSkeleton renders the default state as a dynamic map, the merge
// target that guarantees every expected top-level key exists even when
// the saved blob predates a schema addition.
func defaultSkeleton() map[string]any {
	raw, err := json.Marshal(model.DefaultState())
	if err != nil {
		panic(fmt.Sprintf("default state not serializable: %v", err))
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		panic(fmt.Sprintf("default state not round-trippable: %v", err))
	}
	return m
}

// decodeSections decodes each top-level section independently so one
// corrupted section cannot take the rest of the state down with it.
func decodeSections(merged map[string]any) *model.State {
	s := model.DefaultState()

	s.Transactions = decodeSlice[model.Transaction](merged["transactions"], "transactions")
	s.Debts = decodeSlice[model.Debt](merged["debts"], "debts")
	s.Receivables = decodeSlice[model.Receivable](merged["receivables"], "receivables")
	s.Installments = decodeSlice[model.Installment](merged["installments"], "installments")
	s.Accounts = decodeAccounts(merged["accounts"])
	s.Categories = decodeCategories(merged["categories"])
	s.CreditCard = decodeCreditCard(merged["creditCard"])
	s.Settings = decodeSettings(merged["settings"])

	return s
}

// decodeSlice decodes a collection element by element, dropping elements
// that do not decode instead of failing the section.
func decodeSlice[T any](v any, section string) []T {
	items, ok := v.([]any)
	if !ok {
		slog.Warn("collection was not an array, resetting", "section", section)
		return []T{}
	}

	out := make([]T, 0, len(items))
	for i, item := range items {
		raw, err := json.Marshal(item)
		if err != nil {
			continue
		}
		var t T
		if err := json.Unmarshal(raw, &t); err != nil {
			slog.Warn("dropping undecodable record", "section", section, "index", i, "error", err)
			continue
		}
		out = append(out, t)
	}
	return out
}

// decodeAccounts is lenient per field: a corrupted balance becomes 0 and
// a non-string name becomes empty (Repair restores the default name), so
// a single bad field never loses the whole account.
func decodeAccounts(v any) []model.Account {
	items, ok := v.([]any)
	if !ok {
		slog.Warn("accounts collection was not an array, resetting")
		return []model.Account{}
	}

	out := make([]model.Account, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		acc := model.Account{
			ID:   cast.ToString(obj["id"]),
			Name: cast.ToString(obj["name"]),
		}
		if bal, err := cast.ToFloat64E(obj["balance"]); err == nil {
			acc.Balance = bal
		} else {
			slog.Warn("account balance was not numeric, resetting to 0", "account", acc.ID)
		}
		out = append(out, acc)
	}
	return out
}

func decodeCategories(v any) []string {
	items, ok := v.([]any)
	if !ok {
		slog.Warn("categories collection was not an array, resetting")
		return []string{}
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if name, ok := item.(string); ok && name != "" {
			out = append(out, name)
		}
	}
	return out
}

func decodeCreditCard(v any) model.CreditCard {
	obj, ok := v.(map[string]any)
	if !ok {
		slog.Warn("creditCard was not an object, resetting")
		return model.CreditCard{Transactions: []model.CreditCardTransaction{}}
	}

	cc := model.CreditCard{
		Transactions: decodeSlice[model.CreditCardTransaction](obj["transactions"], "creditCard.transactions"),
	}
	if limit, err := cast.ToFloat64E(obj["limit"]); err == nil {
		cc.Limit = limit
	} else {
		slog.Warn("credit limit was not numeric, resetting to 0")
	}
	return cc
}

func decodeSettings(v any) model.Settings {
	defaults := model.DefaultState().Settings

	obj, ok := v.(map[string]any)
	if !ok {
		slog.Warn("settings was not an object, resetting to defaults")
		return defaults
	}

	// Keys already present keep their value, even if stale; only missing
	// keys are back-filled from defaults. Merge guarantees the defaults
	// are present, so a plain decode suffices here.
	s := defaults
	if v, exists := obj["initialSetupDone"]; exists {
		s.InitialSetupDone = cast.ToBool(v)
	}
	if v, exists := obj["showCcDashboardSection"]; exists {
		s.ShowCCDashboardSection = cast.ToBool(v)
	}
	if v, exists := obj["theme"]; exists {
		if theme := cast.ToString(v); theme != "" {
			s.Theme = theme
		}
	}
	return s
}
