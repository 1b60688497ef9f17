package fakers

import (
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/velamart/catalog-admin/app/models"
)

func CategoryFaker() *models.Category {
	name := faker.Word() + " " + faker.Word()
	return &models.Category{
		ID:   uuid.New().String(),
		Name: name,
		Slug: slug.Make(name + "-" + uuid.NewString()[:6]),
	}
}

func BrandFaker(ownerID string) *models.Brand {
	name := faker.LastName()
	return &models.Brand{
		ID:          uuid.New().String(),
		Name:        name,
		Slug:        slug.Make(name + "-" + uuid.NewString()[:6]),
		Description: faker.Sentence(),
		CreatedBy:   ownerID,
	}
}

func TagFaker(ownerID string) *models.Tag {
	name := faker.Word()
	return &models.Tag{
		ID:        uuid.New().String(),
		Name:      name,
		Slug:      slug.Make(name + "-" + uuid.NewString()[:6]),
		CreatedBy: ownerID,
	}
}
