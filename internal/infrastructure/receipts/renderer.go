package receipts

import (
	"bytes"
	"html/template"
	"time"

	"github.com/vetbridge/payment-service/internal/domain"
)

var receiptTemplate = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html>
<body>
  <h2>VetBridge Payment Receipt</h2>
  <p>Receipt No: {{.Number}}</p>
  <p>Received from: {{.PayerName}}</p>
  <p>Amount: {{.Amount}}</p>
  <p>Purpose: {{.Purpose}}</p>
  <p>Date: {{.IssuedAt}}</p>
  <p>Transaction: {{.TransactionID}}</p>
  <p>Thank you for supporting our veterans.</p>
</body>
</html>
`))

type receiptData struct {
	Number        string
	PayerName     string
	Amount        string
	Purpose       string
	IssuedAt      string
	TransactionID string
}

// Render produces the receipt document for a paid transaction. The output
// depends only on the transaction state, the number and the issue time, so
// regeneration yields the same document.
func Render(tx *domain.Transaction, number string, issuedAt time.Time) (string, error) {
	var buf bytes.Buffer
	err := receiptTemplate.Execute(&buf, receiptData{
		Number:        number,
		PayerName:     tx.DisplayName(),
		Amount:        domain.FormatAmountMinor(tx.AmountMinor, tx.Currency),
		Purpose:       string(tx.Purpose),
		IssuedAt:      issuedAt.Format("02 Jan 2006"),
		TransactionID: tx.ID,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
