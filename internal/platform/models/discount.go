package models

import (
	"math"
	"regexp"
	"strconv"
)

// tagPercentPattern matches the number immediately preceding a percent
// sign in free-text badges like "51% OFF".
var tagPercentPattern = regexp.MustCompile(`(\d+)%`)

// discountResolver derives the discount percentage of a product.
// It returns false when it can't and the next resolver should be tried.
type discountResolver func(p *Product) (float64, bool)

// Resolution precedence: explicit value, then value computed from the
// original price, then the number mined from the discount tag.
var discountResolvers = []discountResolver{
	explicitDiscount,
	computedDiscount,
	taggedDiscount,
}

// HasDiscount reports whether the product carries any discount evidence:
// a positive discount percentage, an original price above the current
// price, or a discount tag.
func (p *Product) HasDiscount() bool {
	return (p.DiscountPercentage != nil && *p.DiscountPercentage > 0) ||
		(p.OriginalPrice != nil && p.Price < *p.OriginalPrice) ||
		p.DiscountTag != nil
}

// EffectiveDiscountPercentage resolves the product's discount percentage.
// It returns false when no resolver can derive a value, which happens for
// products whose only discount evidence is a tag without a number in it.
func (p *Product) EffectiveDiscountPercentage() (float64, bool) {
	for _, resolve := range discountResolvers {
		if pct, ok := resolve(p); ok {
			return pct, true
		}
	}

	return 0, false
}

func explicitDiscount(p *Product) (float64, bool) {
	if p.DiscountPercentage == nil || *p.DiscountPercentage <= 0 {
		return 0, false
	}

	return round2(*p.DiscountPercentage), true
}

func computedDiscount(p *Product) (float64, bool) {
	if p.OriginalPrice == nil || *p.OriginalPrice <= p.Price {
		return 0, false
	}

	return round2((*p.OriginalPrice - p.Price) / *p.OriginalPrice * 100), true
}

func taggedDiscount(p *Product) (float64, bool) {
	if p.DiscountTag == nil {
		return 0, false
	}

	match := tagPercentPattern.FindStringSubmatch(*p.DiscountTag)
	if match == nil {
		return 0, false
	}

	pct, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, false
	}

	return pct, true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
