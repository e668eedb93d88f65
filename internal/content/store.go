package content

import "fmt"

// ErrUnknownCountry is returned when a country ID is not in the dataset.
var ErrUnknownCountry = fmt.Errorf("unknown country")

// Store serves the static per-country datasets. The data is authored in
// this package, resident in memory from init, and never mutated.
type Store struct {
	data map[CountryID]*CountryDataset
}

// NewStore builds a Store over the built-in datasets.
func NewStore() *Store {
	return &Store{
		data: map[CountryID]*CountryDataset{
			Sudan:  sudanData,
			Oman:   omanData,
			Uganda: ugandaData,
		},
	}
}

// Country returns the dataset for a market.
func (s *Store) Country(id CountryID) (*CountryDataset, error) {
	ds, ok := s.data[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCountry, id)
	}
	return ds, nil
}

// CountryIDs returns the supported markets in display order.
func (s *Store) CountryIDs() []CountryID {
	return Countries
}
