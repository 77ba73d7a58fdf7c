package mappers

import (
	"github.com/roamly/roamly/internal/domain/models"
	"github.com/roamly/roamly/internal/infrastructures/catalogfile/dto"
)

func ToDomainCatalog(doc dto.Document) models.Catalog {
	catalog := models.Catalog{
		Temples: toDomainPlaces(doc.Temples),
		Beaches: toDomainPlaces(doc.Beaches),
	}

	if len(doc.Countries) > 0 {
		catalog.Countries = make([]models.Country, 0, len(doc.Countries))
		for _, country := range doc.Countries {
			catalog.Countries = append(catalog.Countries, models.Country{
				Name:   strValue(country.Name),
				Cities: toDomainPlaces(country.Cities),
			})
		}
	}

	return catalog
}

func toDomainPlaces(places []dto.Place) []models.Destination {
	if len(places) == 0 {
		return nil
	}

	out := make([]models.Destination, 0, len(places))
	for _, p := range places {
		out = append(out, models.Destination{
			Name:        strValue(p.Name),
			Description: strValue(p.Description),
			ImageURL:    strValue(p.ImageURL),
			TimeZone:    strValue(p.TimeZone),
		})
	}

	return out
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
