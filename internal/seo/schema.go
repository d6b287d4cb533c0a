// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package seo

import (
	"encoding/json"
	"html/template"
	"sync"
)

// Site is the static site-wide configuration driving SEO output. It is
// fixed at startup; only BaseURL comes from the environment.
type Site struct {
	Name         string
	Description  string
	BaseURL      string
	DefaultImage string
	Phone        string
	Email        string
	Street       string
	City         string
	PostalCode   string
	Country      string
	Latitude     float64
	Longitude    float64
	SameAs       []string

	schemaOnce sync.Once
	schemaJSON template.JS
}

// NewSite returns the club's site configuration with the given public
// base URL.
func NewSite(baseURL string) *Site {
	return &Site{
		Name:         "TKD Dźwirzyno",
		Description:  "Klub Taekwondo Dźwirzyno - Treningi, zawody, pasja. Budujemy charakter, siłę i dyscyplinę.",
		BaseURL:      baseURL,
		DefaultImage: "/static/img/logo.svg",
		Phone:        "+48 600 000 000",
		Email:        "kontakt@tkd-dzwirzyno.pl",
		Street:       "ul. Sportowa 1",
		City:         "Dźwirzyno",
		PostalCode:   "78-131",
		Country:      "PL",
		Latitude:     54.15,
		Longitude:    15.41,
		SameAs: []string{
			"https://www.facebook.com/tkddzwirzyno",
			"https://www.instagram.com/tkddzwirzyno",
		},
	}
}

// SportsClubSchema is the JSON-LD description of the club.
type SportsClubSchema struct {
	Context     string         `json:"@context"`
	Type        string         `json:"@type"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Image       string         `json:"image,omitempty"`
	URL         string         `json:"url"`
	Telephone   string         `json:"telephone,omitempty"`
	Email       string         `json:"email,omitempty"`
	PriceRange  string         `json:"priceRange,omitempty"`
	Address     *AddressSchema `json:"address,omitempty"`
	Geo         *GeoSchema     `json:"geo,omitempty"`
	SameAs      []string       `json:"sameAs,omitempty"`
}

// AddressSchema is a JSON-LD PostalAddress.
type AddressSchema struct {
	Type            string `json:"@type"`
	StreetAddress   string `json:"streetAddress,omitempty"`
	AddressLocality string `json:"addressLocality,omitempty"`
	PostalCode      string `json:"postalCode,omitempty"`
	AddressCountry  string `json:"addressCountry,omitempty"`
}

// GeoSchema is a JSON-LD GeoCoordinates.
type GeoSchema struct {
	Type      string  `json:"@type"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SchemaJSON returns the SportsClub JSON-LD block. The schema depends only
// on the static site configuration, so it is marshaled once and reused on
// every render.
func (s *Site) SchemaJSON() template.JS {
	s.schemaOnce.Do(func() {
		schema := SportsClubSchema{
			Context:     "https://schema.org",
			Type:        "SportsClub",
			Name:        s.Name,
			Description: s.Description,
			Image:       makeAbsoluteURL(s.DefaultImage, s.BaseURL),
			URL:         s.BaseURL,
			Telephone:   s.Phone,
			Email:       s.Email,
			PriceRange:  "$",
			Address: &AddressSchema{
				Type:            "PostalAddress",
				StreetAddress:   s.Street,
				AddressLocality: s.City,
				PostalCode:      s.PostalCode,
				AddressCountry:  s.Country,
			},
			Geo: &GeoSchema{
				Type:      "GeoCoordinates",
				Latitude:  s.Latitude,
				Longitude: s.Longitude,
			},
			SameAs: s.SameAs,
		}
		data, err := json.Marshal(schema)
		if err != nil {
			return
		}
		s.schemaJSON = template.JS(data)
	})
	return s.schemaJSON
}
