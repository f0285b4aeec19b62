package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/kmlxly/splitit-app-sub001/internal/model"
)

func validateContext(ctx context.Context) error {
	if ctx == nil {
		return fmt.Errorf("context cannot be nil")
	}
	return ctx.Err()
}

func validateString(s, name string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%s cannot be empty", name)
	}
	return nil
}

func validateTransactions(transactions []model.Transaction) error {
	if len(transactions) == 0 {
		return fmt.Errorf("no transactions to commit")
	}
	for i, t := range transactions {
		if strings.TrimSpace(t.ID) == "" {
			return fmt.Errorf("transaction %d has no id", i)
		}
		if strings.TrimSpace(t.Title) == "" {
			return fmt.Errorf("transaction %s has no title", t.ID)
		}
	}
	return nil
}
