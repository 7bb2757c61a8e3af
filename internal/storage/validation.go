package storage

import (
	"context"
	"fmt"

	"budgeteer/internal/common"
)

func validateContext(ctx context.Context) error {
	if ctx == nil {
		return fmt.Errorf("context cannot be nil")
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	return nil
}

func validateString(value, name string) error {
	if value == "" {
		return fmt.Errorf("%s cannot be empty", name)
	}
	return nil
}

func validateAmount(amount float64, name string) error {
	if amount < 0 {
		return fmt.Errorf("%w: %s is %.2f", common.ErrNegativeAmount, name, amount)
	}
	return nil
}
