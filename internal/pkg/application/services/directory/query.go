package directory

import (
	"cmp"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/diwise/api-datgateway/internal/pkg/domain"
	"golang.org/x/exp/slices"
)

const DefaultSort = "date-desc"

// Query narrows and orders a directory listing the way the marketplace
// controls do. It never touches the cached list itself.
type Query struct {
	Type     domain.Registry
	Text     string
	Owner    string
	MinPrice *float64
	MaxPrice *float64
	Sort     string
}

var sorters = map[string]func(a, b domain.DAT) int{
	"date-desc":  func(a, b domain.DAT) int { return byID(b, a) },
	"date-asc":   func(a, b domain.DAT) int { return byID(a, b) },
	"price-desc": func(a, b domain.DAT) int { return cmp.Compare(b.Price, a.Price) },
	"price-asc":  func(a, b domain.DAT) int { return cmp.Compare(a.Price, b.Price) },
	"name-asc":   func(a, b domain.DAT) int { return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)) },
	"name-desc":  func(a, b domain.DAT) int { return strings.Compare(strings.ToLower(b.Name), strings.ToLower(a.Name)) },
}

func byID(a, b domain.DAT) int {
	if c := cmp.Compare(a.ID, b.ID); c != 0 {
		return c
	}
	return strings.Compare(string(a.Type), string(b.Type))
}

// ParseQuery reads type, q, owner, minPrice, maxPrice and sort from the
// request parameters. The refresh flag is not part of the query.
func ParseQuery(params url.Values) (Query, error) {
	q := Query{
		Text:  strings.ToLower(strings.TrimSpace(params.Get("q"))),
		Owner: strings.TrimSpace(params.Get("owner")),
		Sort:  DefaultSort,
	}

	if t := params.Get("type"); t != "" && t != "all" {
		q.Type = domain.ParseRegistry(t)
		if !q.Type.IsKnown() {
			return Query{}, fmt.Errorf("%w: %q", domain.ErrInvalidRegistry, t)
		}
	}

	if s := params.Get("sort"); s != "" {
		if _, ok := sorters[s]; !ok {
			return Query{}, fmt.Errorf("unsupported sort option %q", s)
		}
		q.Sort = s
	}

	var err error
	if q.MinPrice, err = parsePrice(params, "minPrice"); err != nil {
		return Query{}, err
	}
	if q.MaxPrice, err = parsePrice(params, "maxPrice"); err != nil {
		return Query{}, err
	}

	if q.MinPrice != nil && q.MaxPrice != nil && *q.MinPrice > *q.MaxPrice {
		return Query{}, fmt.Errorf("minPrice %v is greater than maxPrice %v", *q.MinPrice, *q.MaxPrice)
	}

	return q, nil
}

func parsePrice(params url.Values, name string) (*float64, error) {
	value := params.Get(name)
	if value == "" {
		return nil, nil
	}

	price, err := strconv.ParseFloat(value, 64)
	if err != nil || price < 0 {
		return nil, fmt.Errorf("%s must be a non-negative number", name)
	}

	return &price, nil
}

// Apply returns the matching dats in the requested order.
func (q Query) Apply(dats []domain.DAT) []domain.DAT {
	result := make([]domain.DAT, 0, len(dats))

	for _, d := range dats {
		if q.matches(d) {
			result = append(result, d)
		}
	}

	slices.SortStableFunc(result, sorters[q.sortOrDefault()])

	return result
}

func (q Query) sortOrDefault() string {
	if _, ok := sorters[q.Sort]; ok {
		return q.Sort
	}
	return DefaultSort
}

func (q Query) matches(d domain.DAT) bool {
	if q.Type != "" && d.Type != q.Type {
		return false
	}

	if q.Owner != "" && !strings.EqualFold(d.Owner, q.Owner) {
		return false
	}

	if q.MinPrice != nil && d.Price < *q.MinPrice {
		return false
	}

	if q.MaxPrice != nil && d.Price > *q.MaxPrice {
		return false
	}

	if q.Text != "" {
		return strings.Contains(strings.ToLower(d.Name), q.Text) ||
			strings.Contains(strings.ToLower(d.Description), q.Text)
	}

	return true
}
