package localize

import (
	"context"
	"strings"

	"codeberg.org/snonux/gurume/internal/romaji"
)

// BatchTranslator translates a set of texts, mapping each unique input to
// its translation.
type BatchTranslator interface {
	TranslateBatch(ctx context.Context, texts []string) map[string]string
}

// Field is a shop text in its original and translated form.
type Field struct {
	Original   string
	Translated string
}

// LocalizedAmenity is an amenity with its English value and status.
type LocalizedAmenity struct {
	Label    string
	Original string
	Value    string
	Status   Status
}

// Card is the English rendition of a shop's detail view.
type Card struct {
	ID            string
	Name          string
	Romaji        string
	Genre         Field
	GenreCatch    Field
	Budget        string // price range, or the formatted average
	BudgetAverage string
	Station       string
	Catch         Field
	Address       Field
	Access        Field
	Open          Field
	Close         Field
	OtherMemo     Field
	Capacity      int
	PartyCapacity int
	Amenities     []LocalizedAmenity
	URL           string
}

// Localizer builds Cards from Shops.
type Localizer struct {
	translator BatchTranslator
}

// NewLocalizer creates a localizer that uses translator for free text.
func NewLocalizer(translator BatchTranslator) *Localizer {
	return &Localizer{translator: translator}
}

// Localize romanizes the shop name and translates its text fields in one
// batch. Amenity values found in ValueMap are looked up instead of
// translated.
func (l *Localizer) Localize(ctx context.Context, shop Shop) Card {
	amenities := shop.AmenityList()

	fields := []string{
		shop.GenreName, shop.GenreCatch,
		shop.Access, shop.Open, shop.Close, shop.Catch, shop.OtherMemo, shop.Address,
	}
	for _, a := range amenities {
		if !IsKnown(a.Value) {
			fields = append(fields, strings.TrimSpace(a.Value))
		}
	}

	texts := fields[:0]
	for _, f := range fields {
		if f != "" {
			texts = append(texts, f)
		}
	}

	translations := map[string]string{}
	if len(texts) > 0 {
		translations = l.translator.TranslateBatch(ctx, texts)
	}

	field := func(original string) Field {
		f := Field{Original: original, Translated: original}
		if t, ok := translations[original]; ok {
			f.Translated = t
		}
		return f
	}

	card := Card{
		ID:            shop.ID,
		Name:          shop.Name,
		Genre:         field(shop.GenreName),
		GenreCatch:    field(shop.GenreCatch),
		Budget:        BudgetLabel(shop.BudgetCode, shop.BudgetAverage),
		BudgetAverage: FormatBudgetAverage(shop.BudgetAverage),
		Station:       shop.StationName,
		Catch:         field(shop.Catch),
		Address:       field(shop.Address),
		Access:        field(shop.Access),
		Open:          field(shop.Open),
		Close:         field(shop.Close),
		OtherMemo:     field(shop.OtherMemo),
		Capacity:      shop.Capacity,
		PartyCapacity: shop.PartyCapacity,
		URL:           shop.URL,
	}
	if shop.NameKana != "" {
		card.Romaji = romaji.Romanize(shop.NameKana)
	}

	for _, a := range amenities {
		value := strings.TrimSpace(a.Value)
		la := LocalizedAmenity{
			Label:    a.Label,
			Original: value,
			Status:   ParseStatus(value),
		}
		if IsKnown(value) {
			la.Value = Localise(value)
		} else {
			la.Value = field(value).Translated
		}
		card.Amenities = append(card.Amenities, la)
	}

	return card
}
