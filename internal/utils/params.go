package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ParseCountriesParam splits the comma-separated "countries" query value
// into country names, dropping empty entries. A missing or empty
// parameter yields nil, which downstream means "all countries".
func ParseCountriesParam(params url.Values) []string {
	raw := params.Get("countries")
	if raw == "" {
		return nil
	}

	var countries []string
	for _, part := range strings.Split(raw, ",") {
		name := strings.TrimSpace(part)
		if name != "" {
			countries = append(countries, name)
		}
	}
	return countries
}

// ParseYearParam retrieves an integer year from the provided URL query parameters.
// If the key is not present it returns the fallback; if the value is invalid, it
// returns the fallback and updates the fieldErrors map.
// - params: URL query parameters.
// - key: The key to look for in the query parameters.
// - fallback: The value to use when the parameter is missing or invalid.
// - fieldErrors: A map to collect validation errors for fields.
// Returns:
// - The parsed year (or the fallback).
// - The updated fieldErrors map containing any validation errors.
func ParseYearParam(params url.Values, key string, fallback int, fieldErrors map[string][]string) (int, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		return fallback, fieldErrors
	}

	year, err := strconv.Atoi(val)
	if err != nil {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
		return fallback, fieldErrors
	}
	return year, fieldErrors
}
