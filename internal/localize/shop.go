package localize

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrNoShops is returned when a document holds no shop records.
var ErrNoShops = errors.New("no shop records found")

// Shop is the subset of a HotPepper shop record the localizer uses.
type Shop struct {
	ID            string
	Name          string
	NameKana      string
	Address       string
	StationName   string
	GenreName     string
	GenreCatch    string
	BudgetCode    string
	BudgetAverage string
	Access        string
	Catch         string
	Open          string
	Close         string
	Capacity      int
	PartyCapacity int
	OtherMemo     string
	URL           string

	// Raw amenity values keyed by API field name.
	Amenities map[string]string
}

// Amenity is one labelled amenity value of a shop.
type Amenity struct {
	Label string
	Value string
}

// amenityFields lists the amenity fields in display order.
var amenityFields = []struct {
	field string
	label string
}{
	{"wifi", "WiFi"},
	{"english", "English Menu"},
	{"card", "Credit Cards"},
	{"non_smoking", "Non-smoking"},
	{"child", "Children"},
	{"parking", "Parking"},
	{"private_room", "Private Rooms"},
	{"barrier_free", "Barrier-free"},
	{"lunch", "Lunch Service"},
	{"midnight", "Late Night"},
	{"open_air", "Outdoor Seating"},
	{"tatami", "Tatami Seating"},
	{"horigotatsu", "Sunken Kotatsu"},
	{"course", "Course Meals"},
	{"free_drink", "All-you-can-drink"},
	{"free_food", "All-you-can-eat"},
	{"karaoke", "Karaoke"},
	{"charter", "Private Hire"},
	{"pet", "Pets"},
	{"show", "Live Shows"},
	{"sommelier", "Sommelier"},
}

// AmenityList returns the shop's non-blank amenities in display order.
func (s Shop) AmenityList() []Amenity {
	var out []Amenity
	for _, f := range amenityFields {
		if v := s.Amenities[f.field]; strings.TrimSpace(v) != "" {
			out = append(out, Amenity{Label: f.label, Value: v})
		}
	}
	return out
}

// DecodeShops reads shop records from a search response envelope
// ({"results":{"shop":[...]}}), a bare array of shops, or a single shop.
func DecodeShops(data []byte) ([]Shop, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid shop JSON")
	}

	doc := gjson.ParseBytes(data)

	if apiErr := doc.Get("results.error.0.message"); apiErr.Exists() {
		return nil, errors.New("search API error: " + apiErr.String())
	}

	var records []gjson.Result
	switch {
	case doc.Get("results.shop").IsArray():
		records = doc.Get("results.shop").Array()
	case doc.IsArray():
		records = doc.Array()
	case doc.IsObject() && doc.Get("id").Exists():
		records = []gjson.Result{doc}
	}

	if len(records) == 0 {
		return nil, ErrNoShops
	}

	shops := make([]Shop, 0, len(records))
	for _, r := range records {
		shops = append(shops, decodeShop(r))
	}
	return shops, nil
}

func decodeShop(r gjson.Result) Shop {
	s := Shop{
		ID:            r.Get("id").String(),
		Name:          r.Get("name").String(),
		NameKana:      r.Get("name_kana").String(),
		Address:       r.Get("address").String(),
		StationName:   r.Get("station_name").String(),
		GenreName:     r.Get("genre.name").String(),
		GenreCatch:    r.Get("genre.catch").String(),
		BudgetCode:    r.Get("budget.code").String(),
		BudgetAverage: r.Get("budget.average").String(),
		Access:        r.Get("access").String(),
		Catch:         r.Get("catch").String(),
		Open:          r.Get("open").String(),
		Close:         r.Get("close").String(),
		// The API sends capacities as numbers or as "" when unknown.
		Capacity:      int(r.Get("capacity").Int()),
		PartyCapacity: int(r.Get("party_capacity").Int()),
		OtherMemo:     r.Get("other_memo").String(),
		URL:           r.Get("urls.pc").String(),
		Amenities:     make(map[string]string, len(amenityFields)),
	}

	for _, f := range amenityFields {
		if v := r.Get(f.field); v.Exists() {
			s.Amenities[f.field] = v.String()
		}
	}
	return s
}
