package modelstesting

import (
	"fmt"
	"math/rand"

	"github.com/go-faker/faker/v4"
	"github.com/harbifirsat/shopping-agent/internal/platform/models"
	"github.com/samber/lo"
)

// FakeProduct returns models.Product with fake data, a positive price and
// a product link, so it is valid for deal staging unless overridden.
func FakeProduct(ops ...func(p *models.Product)) models.Product {
	price := fakePrice()

	product := models.Product{
		ProductID:    faker.UUIDDigit(),
		Title:        faker.Sentence(),
		Source:       faker.Word(),
		Price:        price,
		Currency:     faker.Currency(),
		Thumbnail:    lo.ToPtr(fakeURL("img")),
		ProductLink:  lo.ToPtr(fakeURL("product")),
		Rating:       lo.ToPtr(float64(rand.Intn(5)) + 0.5),
		Reviews:      lo.ToPtr(rand.Intn(10000)),
		DeliveryInfo: lo.ToPtr(faker.Word()),
	}

	for _, op := range ops {
		op(&product)
	}

	return product
}

// FakeDiscountedProduct returns a fake product with an original price
// above the current price.
func FakeDiscountedProduct(ops ...func(p *models.Product)) models.Product {
	return FakeProduct(append([]func(p *models.Product){
		func(p *models.Product) {
			p.OriginalPrice = lo.ToPtr(p.Price * 2)
		},
	}, ops...)...)
}

// FakeSearchQuery returns models.SearchQuery with fake data.
func FakeSearchQuery(ops ...func(q *models.SearchQuery)) models.SearchQuery {
	query := models.SearchQuery{
		Keyword:  faker.Word(),
		OnSale:   true,
		Priority: rand.Intn(10),
	}

	for _, op := range ops {
		op(&query)
	}

	return query
}

func fakePrice() float64 {
	return float64(rand.Intn(99900)+100) / 100
}

func fakeURL(path string) string {
	return fmt.Sprintf("https://%s.example.com/%s/%s", faker.Word(), path, faker.UUIDDigit())
}
