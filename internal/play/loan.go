package play

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/console-games/internal/apperror"
	"github.com/rocketscienceinc/console-games/internal/loan"
)

const (
	msgPrincipal      = "What is the loan amount in USD?\n"
	msgPrincipalRetry = "Please enter a valid loan amount (must be a positive integer).\n"
	msgDuration       = "What is the loan duration in years?\n"
	msgDurationRetry  = "Please enter a valid duration length (must be a positive integer).\n"
	msgAPR            = "Please enter the APR in percentage form.\n"
	msgAPRRetry       = "Please enter a non-negative numeric value.\n"
	msgAnother        = "Would you like to perform another calculation? (y/n)"
)

// Loan - monthly payment calculator. It keeps no match tally.
type Loan struct {
	*Shell
}

func NewLoan(shell *Shell) *Loan {
	return &Loan{Shell: shell}
}

// Run - calculates payments while the player answers "y". Closed input ends it quietly.
func (that *Loan) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("calculator interrupted: %w", err)
		}

		if err := that.calculate(); err != nil {
			return ignoreInputClosed(err)
		}

		answer, err := that.console.Prompt(msgAnother)
		if err != nil {
			return ignoreInputClosed(err)
		}

		if !strings.EqualFold(answer, "y") {
			return nil
		}
	}
}

func ignoreInputClosed(err error) error {
	if errors.Is(err, apperror.ErrInputClosed) {
		return nil
	}

	return err
}

func (that *Loan) calculate() error {
	principal, err := that.console.PositiveInt(msgPrincipal, msgPrincipalRetry)
	if err != nil {
		return err
	}

	years, err := that.console.PositiveInt(msgDuration, msgDurationRetry)
	if err != nil {
		return err
	}

	apr, err := that.console.NonNegativeFloat(msgAPR, msgAPRRetry)
	if err != nil {
		return err
	}

	request := loan.Loan{Principal: principal, Years: years, APR: apr}
	if err = request.Validate(); err != nil {
		return fmt.Errorf("failed to validate loan: %w", err)
	}

	payment := request.MonthlyPayment()
	that.logger.Debug("monthly payment", "principal", principal, "years", years, "apr", apr, "payment", payment)

	that.console.Printf("The monthly payment is %s\n", that.console.Money(payment))

	return nil
}
