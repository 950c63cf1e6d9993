package draft

import "taskwizard/internal/core/domain/model/tariff"

// Item is the package of a send or errand order. Multi-stop orders describe their
// packages per stop; the item selectors still exist on the draft and still feed the quote.
type Item struct {
	ProductName string
	Description string
	Photo       PhotoRef
	Weight      tariff.WeightBracket
	Size        tariff.SizeBracket
	Insurance   bool
	ItemValue   string
}

func defaultItem() Item {
	return Item{
		Weight: tariff.DefaultWeight,
		Size:   tariff.DefaultSize,
	}
}

// ItemPatch carries a partial item update. Nil fields leave the item value untouched.
type ItemPatch struct {
	ProductName *string
	Description *string
	Photo       *PhotoRef
	Weight      *tariff.WeightBracket
	Size        *tariff.SizeBracket
	Insurance   *bool
	ItemValue   *string
}

func (p ItemPatch) apply(item Item) (Item, error) {
	if p.Weight != nil {
		if err := p.Weight.Validate(); err != nil {
			return Item{}, err
		}
	}
	if p.Size != nil {
		if err := p.Size.Validate(); err != nil {
			return Item{}, err
		}
	}

	merge(&item.ProductName, p.ProductName)
	merge(&item.Description, p.Description)
	merge(&item.Photo, p.Photo)
	merge(&item.Weight, p.Weight)
	merge(&item.Size, p.Size)
	merge(&item.Insurance, p.Insurance)
	merge(&item.ItemValue, p.ItemValue)
	return item, nil
}
