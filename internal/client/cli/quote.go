package cli

import (
	"context"
	"fmt"

	"github.com/avendano-dev/backoffice/internal/client/quotation"
)

// Quote walks the user through building a commercial quotation. The document
// is local only: totals are computed here and printed, nothing is sent to
// the backend.
func (a *App) Quote(ctx context.Context) error {
	q := quotation.New()

	var err error
	if q.ClientName, err = getSimpleText(a.reader, "Client name", a.out); err != nil {
		return err
	}
	if q.ClientEmail, err = getSimpleText(a.reader, "Client email", a.out); err != nil {
		return err
	}
	if q.ClientAddress, err = getSimpleText(a.reader, "Client address", a.out); err != nil {
		return err
	}
	if q.ClientNIT, err = getSimpleText(a.reader, "Client NIT (optional)", a.out); err != nil {
		return err
	}
	city, err := getSimpleText(a.reader, fmt.Sprintf("City [%s]", q.ClientCity), a.out)
	if err != nil {
		return err
	}
	if city != "" {
		q.ClientCity = city
	}
	if q.ValidityDays, err = GetInt(a.reader, "Validity days", q.ValidityDays, a.out); err != nil {
		return err
	}

	for {
		desc, err := getSimpleText(a.reader, "Item description (empty line to finish)", a.out)
		if err != nil {
			return err
		}
		if desc == "" {
			break
		}
		qty, err := GetInt(a.reader, "Quantity", 1, a.out)
		if err != nil {
			return err
		}
		price, err := GetFloat(a.reader, "Unit price", 0, a.out)
		if err != nil {
			return err
		}
		q.AddItem(qty, desc, price)
	}

	if err := q.Validate(); err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	a.printQuotation(q)
	return nil
}

func (a *App) printQuotation(q *quotation.Quotation) {
	fmt.Fprintf(a.out, "\nQuotation for %s <%s>\n", q.ClientName, q.ClientEmail)
	fmt.Fprintf(a.out, "%s, %s\n", q.ClientAddress, q.ClientCity)
	fmt.Fprintf(a.out, "Date %s, valid %d days\n\n", q.Date.Format("2006-01-02"), q.ValidityDays)

	for i, item := range q.Items {
		fmt.Fprintf(a.out, "%2d. %-40s %4d x %10.2f = %12.2f\n",
			i+1, item.Description, item.Quantity, item.UnitPrice, item.Total())
	}
	fmt.Fprintf(a.out, "%63s %12.2f\n", "Subtotal", q.Subtotal())
	fmt.Fprintf(a.out, "%63s %12.2f\n", "Total", q.Total())
}
