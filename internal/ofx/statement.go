// Package ofx reads bank OFX/QFX statements so recorded spending can be
// imported into a budget category.
package ofx

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"
)

// Summary totals the transactions found in an OFX file. Debits and
// Credits are both reported as positive magnitudes.
type Summary struct {
	Debits       float64
	Credits      float64
	Transactions int
	Statements   int
}

var (
	severityRegex = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	tagFixRegex   = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// preprocess fixes common formatting issues in real-world OFX files:
// leading blank lines, mixed-case SEVERITY values, and SGML-style tags
// missing their closing bracket.
func preprocess(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)
	return tagFixRegex.ReplaceAllString(content, "$1>")
}

// ReadSummary parses an OFX/QFX statement and totals its transactions
// across all bank and credit card statements in the file.
func ReadSummary(reader io.Reader) (*Summary, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(preprocess(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	summary := &Summary{}

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok && stmt.BankTranList != nil {
			summary.Statements++
			for _, tx := range stmt.BankTranList.Transactions {
				summary.add(&tx)
			}
		}
	}

	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok && stmt.BankTranList != nil {
			summary.Statements++
			for _, tx := range stmt.BankTranList.Transactions {
				summary.add(&tx)
			}
		}
	}

	slog.Debug("parsed OFX statement",
		"statements", summary.Statements,
		"transactions", summary.Transactions,
		"debits", summary.Debits,
		"credits", summary.Credits)

	return summary, nil
}

// add accumulates one transaction. OFX reports money leaving the account
// as a negative amount.
func (s *Summary) add(tx *ofxgo.Transaction) {
	amount, _ := tx.TrnAmt.Float64()
	s.Transactions++
	if amount < 0 {
		s.Debits += -amount
	} else {
		s.Credits += amount
	}
}
