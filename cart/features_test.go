package cart_test

import (
	"context"
	"fmt"
	"strconv"
	"testing"

	"github.com/cucumber/godog"

	"snackshop/cart"
	"snackshop/models"
)

type cartTestContext struct {
	engine  *cart.Engine
	catalog []models.Snack
}

func (c *cartTestContext) reset() {
	c.engine = cart.NewEngine()
	c.catalog = nil
}

func (c *cartTestContext) theCatalog(table *godog.Table) error {
	for i, row := range table.Rows {
		if i == 0 {
			continue // skip header
		}
		price, err := strconv.ParseFloat(row.Cells[2].Value, 64)
		if err != nil {
			return fmt.Errorf("invalid price %q: %w", row.Cells[2].Value, err)
		}
		c.catalog = append(c.catalog, models.Snack{
			ID:    row.Cells[0].Value,
			Name:  row.Cells[1].Value,
			Price: price,
		})
	}
	return nil
}

func (c *cartTestContext) anEmptyCart() error {
	if n := c.engine.Len(); n != 0 {
		return fmt.Errorf("expected empty cart, got %d lines", n)
	}
	return nil
}

func (c *cartTestContext) iAddSnack(id string) error {
	c.engine.AddItem(id)
	return nil
}

func (c *cartTestContext) iSetTheQuantityOfSnackTo(id string, quantity int) error {
	c.engine.UpdateQuantity(id, quantity)
	return nil
}

func (c *cartTestContext) iClearTheCart() error {
	c.engine.ClearCart()
	return nil
}

func (c *cartTestContext) theCartHasLines(n int) error {
	if got := c.engine.Len(); got != n {
		return fmt.Errorf("expected %d lines, got %d", n, got)
	}
	return nil
}

func (c *cartTestContext) snackHasQuantity(id string, quantity int) error {
	for _, item := range c.engine.Items() {
		if item.SnackID == id {
			if item.Quantity != quantity {
				return fmt.Errorf("expected quantity %d for snack %s, got %d", quantity, id, item.Quantity)
			}
			return nil
		}
	}
	return fmt.Errorf("snack %s is not in the cart", id)
}

func (c *cartTestContext) snackIsNotInTheCart(id string) error {
	for _, item := range c.engine.Items() {
		if item.SnackID == id {
			return fmt.Errorf("snack %s is still in the cart with quantity %d", id, item.Quantity)
		}
	}
	return nil
}

func (c *cartTestContext) theSummaryShows(items int, subtotal, tax, total string) error {
	s := c.engine.Summary(c.catalog)
	got := fmt.Sprintf("%d %.2f %.2f %.2f", s.ItemCount, s.Subtotal, s.Tax, s.Total)
	want := fmt.Sprintf("%d %s %s %s", items, subtotal, tax, total)
	if got != want {
		return fmt.Errorf("expected summary %q, got %q", want, got)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &cartTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^the catalog:$`, tc.theCatalog)
	ctx.Step(`^an empty cart$`, tc.anEmptyCart)

	// When steps
	ctx.Step(`^I add snack "([^"]*)"$`, tc.iAddSnack)
	ctx.Step(`^I set the quantity of snack "([^"]*)" to (-?\d+)$`, tc.iSetTheQuantityOfSnackTo)
	ctx.Step(`^I clear the cart$`, tc.iClearTheCart)

	// Then steps
	ctx.Step(`^the cart has (\d+) lines$`, tc.theCartHasLines)
	ctx.Step(`^snack "([^"]*)" has quantity (\d+)$`, tc.snackHasQuantity)
	ctx.Step(`^snack "([^"]*)" is not in the cart$`, tc.snackIsNotInTheCart)
	ctx.Step(`^the summary shows (\d+) items, subtotal (\d+\.\d{2}), tax (\d+\.\d{2}) and total (\d+\.\d{2})$`, tc.theSummaryShows)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/cart.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
