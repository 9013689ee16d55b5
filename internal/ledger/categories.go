package ledger

import (
	"context"
	"strings"

	"github.com/aanjelos/kaasi/internal/common"
	"github.com/aanjelos/kaasi/internal/model"
)

// AddCategory appends a category, rejecting case-insensitive duplicates.
func (l *Ledger) AddCategory(ctx context.Context, name string) error {
	name, err := requireString("category", name)
	if err != nil {
		return err
	}
	if l.state.HasCategory(name) {
		return common.Invalidf("category", "%q already exists", name)
	}

	l.state.Categories = append(l.state.Categories, name)
	model.SortCategories(l.state.Categories)

	return l.persist(ctx)
}

// RenameCategory renames a category and cascades the change to every
// transaction referencing the old name. It returns the number of
// transactions updated.
func (l *Ledger) RenameCategory(ctx context.Context, oldName, newName string) (int, error) {
	newName, err := requireString("category", newName)
	if err != nil {
		return 0, err
	}

	idx := -1
	for i, c := range l.state.Categories {
		if c == oldName {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, common.NotFoundf("category", oldName)
	}
	if newName == oldName {
		return 0, nil
	}
	for _, c := range l.state.Categories {
		if c != oldName && strings.EqualFold(c, newName) {
			return 0, common.Invalidf("category", "%q already exists", newName)
		}
	}

	l.state.Categories[idx] = newName
	model.SortCategories(l.state.Categories)

	updated := 0
	for i := range l.state.Transactions {
		if l.state.Transactions[i].Category == oldName {
			l.state.Transactions[i].Category = newName
			updated++
		}
	}

	return updated, l.persist(ctx)
}

// DeleteCategory removes an unused category. The sentinel category can
// never be deleted, and neither can one still referenced by a
// transaction.
func (l *Ledger) DeleteCategory(ctx context.Context, name string) error {
	if strings.EqualFold(name, model.SentinelCategory) {
		return common.Invalidf("category", "the %q category cannot be deleted", model.SentinelCategory)
	}
	for i := range l.state.Transactions {
		if l.state.Transactions[i].Category == name {
			return common.Invalidf("category", "%q is in use; reassign its transactions first", name)
		}
	}

	found := false
	kept := l.state.Categories[:0]
	for _, c := range l.state.Categories {
		if c == name {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return common.NotFoundf("category", name)
	}
	l.state.Categories = kept

	return l.persist(ctx)
}
