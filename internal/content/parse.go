package content

import "fmt"

// ParseCountry validates a country identifier.
func ParseCountry(s string) (CountryID, error) {
	id := CountryID(s)
	for _, c := range Countries {
		if id == c {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownCountry, s)
}

// ParsePlatform validates a platform identifier, accepting "all".
func ParsePlatform(s string) (PlatformID, error) {
	id := PlatformID(s)
	if id == All {
		return id, nil
	}
	for _, p := range PlatformOrder {
		if id == p {
			return id, nil
		}
	}
	return "", fmt.Errorf("unknown platform: %s", s)
}
