package fakers

import (
	"math"
	"math/rand"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"github.com/velamart/catalog-admin/app/models"
)

var sampleImageURLs = []string{
	"https://cdn.example.com/images/products/sample-1.jpg",
	"https://cdn.example.com/images/products/sample-2.jpg",
	"https://cdn.example.com/images/products/sample-3.jpg",
}

func ProductFaker(creatorID string, category *models.Category) *models.Product {
	name := faker.Name()
	productID := uuid.New().String()

	numImages := rand.Intn(3) + 1
	productImages := make([]models.ProductImage, numImages)
	for i := 0; i < numImages; i++ {
		url := sampleImageURLs[rand.Intn(len(sampleImageURLs))]
		productImages[i] = models.ProductImage{
			ID:        uuid.New().String(),
			ProductID: productID,
			URL:       url,
			AltText:   name,
			SortOrder: i,
			CreatedBy: creatorID,
		}
	}

	return &models.Product{
		ID:               productID,
		CreatedBy:        creatorID,
		Name:             name,
		Slug:             slug.Make(name + "-" + uuid.NewString()[:6]),
		ShortDescription: faker.Sentence(),
		Description:      faker.Paragraph(),
		Sku:              slug.Make(name),
		Price:            decimal.NewFromFloat(fakePrice()),
		Stock:            rand.Intn(20) + 1,
		Status:           models.ProductStatusPublish,
		ProductType:      models.ProductTypeSimple,
		Categories:       []models.Category{*category},
		ProductImages:    productImages,
	}
}

func fakePrice() float64 {
	return precision(rand.Float64()*math.Pow10(rand.Intn(4)+1), 2)
}

func precision(val float64, pre int) float64 {
	a := math.Pow10(pre)
	return float64(int(val*a)) / a
}
