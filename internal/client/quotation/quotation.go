// Package quotation models the commercial quotation document. It is a local
// form: totals are computed client-side and nothing is submitted to the
// backend.
package quotation

import (
	"time"

	"github.com/avendano-dev/backoffice/internal/client/validate"
)

// Item is one quotation line.
type Item struct {
	Quantity    int     `validate:"required,gte=1"`
	Description string  `validate:"required"`
	UnitPrice   float64 `validate:"gte=0"`
}

// Total is the line total.
func (i Item) Total() float64 {
	return float64(i.Quantity) * i.UnitPrice
}

// Quotation is the full document.
type Quotation struct {
	ClientName    string `validate:"required"`
	ClientNIT     string
	ClientAddress string `validate:"required"`
	ClientPhone   string
	ClientEmail   string `validate:"required,email"`
	ClientCity    string

	Date         time.Time
	ValidityDays int `validate:"required,gte=1"`

	Items []Item `validate:"required,min=1,dive"`
	Notes string
}

// New returns a quotation with the form defaults: dated today, valid for 15
// days, city preset.
func New() *Quotation {
	return &Quotation{
		ClientCity:   "Santa Cruz",
		Date:         time.Now(),
		ValidityDays: 15,
	}
}

// AddItem appends a line to the quotation.
func (q *Quotation) AddItem(quantity int, description string, unitPrice float64) {
	q.Items = append(q.Items, Item{
		Quantity:    quantity,
		Description: description,
		UnitPrice:   unitPrice,
	})
}

// RemoveItem deletes the line at index; out-of-range indexes are ignored.
func (q *Quotation) RemoveItem(index int) {
	if index < 0 || index >= len(q.Items) {
		return
	}
	q.Items = append(q.Items[:index], q.Items[index+1:]...)
}

// Subtotal sums the line totals.
func (q *Quotation) Subtotal() float64 {
	var sum float64
	for _, item := range q.Items {
		sum += item.Total()
	}
	return sum
}

// Total equals the subtotal; no taxes or surcharges apply at this stage.
func (q *Quotation) Total() float64 {
	return q.Subtotal()
}

// Validate runs the pre-submit checks on the document and its lines.
func (q *Quotation) Validate() error {
	return validate.Struct(q)
}
