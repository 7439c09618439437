package catalogRepo

import "fixora/models"

// CatalogRepository defines read access to the service catalog and stored
// customer addresses. Lookups return (nil, nil) when no document matches so
// callers can tell "not found" apart from a datastore failure.
type CatalogRepository interface {
	// FindActiveServiceByID retrieves an active, non-deleted service template.
	FindActiveServiceByID(id string) (*models.ServiceTemplate, error)
	// FindAddressByID retrieves a stored customer address.
	FindAddressByID(id string) (*models.Address, error)
}
