package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/avendano-dev/backoffice/internal/client/models"
	"github.com/avendano-dev/backoffice/internal/client/validate"
)

// Customers dispatches the "customers" subcommands.
func (a *App) Customers(ctx context.Context, args []string) error {
	if !a.requireAuth() {
		return nil
	}
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: customers list [search] | get <id> | create | me | activate <id> | deactivate <id> | delete <id>")
		return nil
	}

	switch args[0] {
	case "list":
		return a.customersList(ctx, strings.Join(args[1:], " "))
	case "get":
		id, ok := a.idArg(args[1:], "customers get <id>")
		if !ok {
			return nil
		}
		c, err := a.customers.Get(ctx, id)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return err
		}
		a.printCustomer(*c)
		return nil
	case "create":
		return a.customersCreate(ctx)
	case "me":
		c, err := a.customers.MyProfile(ctx)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return err
		}
		a.printCustomer(*c)
		return nil
	case "activate", "deactivate":
		id, ok := a.idArg(args[1:], "customers "+args[0]+" <id>")
		if !ok {
			return nil
		}
		c, err := a.customers.SetActive(ctx, id, args[0] == "activate")
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return err
		}
		fmt.Fprintf(a.out, "Customer %d active=%t\n", c.ID, c.IsActiveCustomer)
		return nil
	case "delete":
		id, ok := a.idArg(args[1:], "customers delete <id>")
		if !ok {
			return nil
		}
		if err := a.customers.Delete(ctx, id); err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return err
		}
		fmt.Fprintf(a.out, "Customer %d deleted.\n", id)
		return nil
	default:
		fmt.Fprintln(a.out, "Unknown customers subcommand:", args[0])
		return nil
	}
}

func (a *App) customersList(ctx context.Context, search string) error {
	page, err := a.customers.List(ctx, models.CustomerFilters{Search: search})
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	for _, c := range page.Results {
		fmt.Fprintf(a.out, "%4d  %-12s %-30s %-10s active=%t\n",
			c.ID, c.CustomerCode, c.DisplayName, c.CustomerType, c.IsActiveCustomer)
	}
	fmt.Fprintf(a.out, "%d of %d customers\n", len(page.Results), page.Count)
	return nil
}

func (a *App) customersCreate(ctx context.Context) error {
	in := models.CustomerCreate{}
	var err error
	if in.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	if in.Username, err = getSimpleText(a.reader, "Username", a.out); err != nil {
		return err
	}
	pw, err := getPassword(a.out)
	if err != nil {
		return err
	}
	in.Password = string(pw)
	if in.FirstName, err = getSimpleText(a.reader, "First name", a.out); err != nil {
		return err
	}
	if in.LastName, err = getSimpleText(a.reader, "Last name", a.out); err != nil {
		return err
	}
	if in.CustomerType, err = getSimpleText(a.reader, "Type (INDIVIDUAL|BUSINESS)", a.out); err != nil {
		return err
	}
	if in.CustomerType == "BUSINESS" {
		if in.CompanyName, err = getSimpleText(a.reader, "Company name", a.out); err != nil {
			return err
		}
		if in.TaxID, err = getSimpleText(a.reader, "Tax id", a.out); err != nil {
			return err
		}
	}

	if err := validate.Struct(in); err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	c, err := a.customers.Create(ctx, in)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	fmt.Fprintf(a.out, "Created customer %d (%s)\n", c.ID, c.CustomerCode)
	return nil
}

func (a *App) printCustomer(c models.Customer) {
	fmt.Fprintf(a.out, "%s <%s>\n", c.DisplayName, c.Email)
	fmt.Fprintf(a.out, "  id=%d code=%s type=%s active=%t\n",
		c.ID, c.CustomerCode, c.CustomerType, c.IsActiveCustomer)
	fmt.Fprintf(a.out, "  credit_limit=%.2f payment_terms=%d discount=%.1f%% credit_available=%t\n",
		c.CreditLimit, c.PaymentTerms, c.DiscountPercentage, c.HasCreditAvailable)
	if c.CompanyName != "" {
		fmt.Fprintf(a.out, "  company=%s tax_id=%s contact=%s\n", c.CompanyName, c.TaxID, c.ContactPerson)
	}
}
