package reconcile

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ReferenceLabel parses the label of the item's reference (first) variant.
func ReferenceLabel(item TrackedItem, catalogItem CatalogItem) (VariantLabel, error) {
	if len(catalogItem.Variants) == 0 {
		return VariantLabel{}, &ParseError{Label: "", Err: ErrNoVariants}
	}
	return ParseLabelFor(catalogItem.Variants[0].Label, item.Symbol)
}

// PlanItem decides whether an item's catalog prices are stale relative to the market
// and, if so, computes the new price of every variant.
// It does NOT push anything; use ApplyItemPlan for that.
//
// The reference variant is stale when |price/markup - market*qty| > tolerance.
// Every variant label is parsed before any action is returned, so a single bad
// label yields a *ParseError and no actions at all.
func PlanItem(spec *Spec, item TrackedItem, catalogItem CatalogItem, market MarketPrice) (*ItemPlan, error) {
	ref, err := ReferenceLabel(item, catalogItem)
	if err != nil {
		return nil, err
	}

	plan := &ItemPlan{
		Item:      item,
		Reference: ref,
		Expected:  market.UnitPrice.Mul(ref.Quantity),
		Observed:  catalogItem.Variants[0].Price.Div(spec.Markup),
	}
	plan.Stale = plan.Observed.Sub(plan.Expected).Abs().GreaterThan(spec.Tolerance)
	if !plan.Stale {
		return plan, nil
	}

	actions := make([]PriceAction, 0, len(catalogItem.Variants))
	for _, v := range catalogItem.Variants {
		label, err := ParseLabelFor(v.Label, item.Symbol)
		if err != nil {
			return nil, err
		}
		actions = append(actions, PriceAction{
			VariantID: v.ID,
			Label:     v.Label,
			Quantity:  label.Quantity,
			OldPrice:  v.Price,
			NewPrice:  VariantPrice(market.UnitPrice, label.Quantity, spec.Markup, spec.PriceScale),
		})
	}
	plan.Actions = actions

	return plan, nil
}

// VariantPrice returns unitPrice × quantity × markup rounded half-up to scale decimal places.
func VariantPrice(unitPrice, quantity, markup decimal.Decimal, scale int32) decimal.Decimal {
	return unitPrice.Mul(quantity).Mul(markup).Round(scale)
}

// MinTolerance is the largest drift a converged price can show after rounding:
// half a unit of the last decimal place, seen through the markup. A smaller
// tolerance flags freshly written prices as stale again on the next tick.
func MinTolerance(markup decimal.Decimal, scale int32) decimal.Decimal {
	return decimal.New(5, -(scale + 1)).Div(markup)
}

// ApplyItemPlan pushes every planned price to the sink.
// A failed write is recorded on its action and does not stop the remaining ones.
// Returns the number of writes issued and the number that failed.
func ApplyItemPlan(ctx context.Context, sink CatalogItemSink, plan *ItemPlan, l *zap.Logger) (issued, failed int) {
	for i := range plan.Actions {
		action := &plan.Actions[i]

		issued++
		if err := sink.SetPrice(ctx, action.VariantID, action.NewPrice); err != nil {
			werr := &WriteError{VariantID: action.VariantID, Err: err}
			action.Error = werr.Error()
			failed++
			l.Warn("Variant price update failed",
				zap.String("variant_id", action.VariantID),
				zap.String("label", action.Label),
				zap.Error(werr),
			)
			continue
		}

		action.Applied = true
		l.Info("Variant price updated",
			zap.String("variant_id", action.VariantID),
			zap.String("label", action.Label),
			zap.String("old_price", action.OldPrice.String()),
			zap.String("new_price", action.NewPrice.String()),
		)
	}
	return issued, failed
}
