// Package academy adapts the loosely typed academy records returned by the
// various backends into a strict Profile.
package academy

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Aliases lists, per Profile field, the wire keys that may carry it in order
// of preference.
var Aliases = map[string][]string{
	"id":          {"id", "academy_id", "uuid"},
	"name":        {"name", "academy_name", "title"},
	"description": {"description", "about", "bio"},
	"logo_url":    {"logo_url", "logo", "profile_image", "avatar_url"},
	"website":     {"website", "website_url", "url"},
	"email":       {"email", "contact_email"},
	"phone":       {"phone", "phone_number", "contact_phone"},
	"location":    {"location", "address", "city"},
	"verified":    {"is_verified", "verified"},
}

// FromWire builds a Profile from a decoded JSON object. Missing or mistyped
// values leave the field empty. When no name alias is present the name is
// assembled from first_name and last_name.
func FromWire(raw map[string]any) Profile {
	if raw == nil {
		return Profile{}
	}

	p := Profile{
		ID:          firstString(raw, Aliases["id"]),
		Name:        firstString(raw, Aliases["name"]),
		Description: firstString(raw, Aliases["description"]),
		LogoURL:     firstString(raw, Aliases["logo_url"]),
		Website:     firstString(raw, Aliases["website"]),
		Email:       strings.ToLower(firstString(raw, Aliases["email"])),
		Phone:       firstString(raw, Aliases["phone"]),
		Location:    firstString(raw, Aliases["location"]),
		Verified:    firstBool(raw, Aliases["verified"]),
	}

	if p.Name == "" {
		first := stringValue(raw["first_name"])
		last := stringValue(raw["last_name"])
		p.Name = strings.TrimSpace(first + " " + last)
	}
	return p
}

func firstString(raw map[string]any, keys []string) string {
	for _, k := range keys {
		if s := stringValue(raw[k]); s != "" {
			return s
		}
	}
	return ""
}

func firstBool(raw map[string]any, keys []string) bool {
	for _, k := range keys {
		v, ok := raw[k]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case bool:
			return t
		case string:
			b, err := strconv.ParseBool(strings.TrimSpace(t))
			if err == nil {
				return b
			}
		case float64:
			return t != 0
		}
	}
	return false
}

func stringValue(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return ""
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case fmt.Stringer:
		return strings.TrimSpace(t.String())
	default:
		return ""
	}
}
