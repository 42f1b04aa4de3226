package geoinfo

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"
)

const (
	logPrefix      = "geoinfo"
	defaultTimeout = 5 * time.Second
)

var ErrNoResult = fmt.Errorf("no geocoding result for the given address")

// GeoInfo - interface to operate google maps
type GeoInfo interface {
	LookupCoordinates(address string) (latitude, longitude float64, err error)
}

type geoInfo struct {
	client *maps.Client
}

// LookupCoordinates forward-geocodes a free-text location into a lat/lng pair
func (g geoInfo) LookupCoordinates(address string) (float64, float64, error) {
	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"address": address,
	}).Info("query geo info")

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return 0, 0, err
	}
	if len(results) == 0 {
		return 0, 0, ErrNoResult
	}

	loc := results[0].Geometry.Location
	return loc.Lat, loc.Lng, nil
}

// New - new GeoInfo interface
func New(apiKey string) (GeoInfo, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("new map client")

		return nil, err
	}

	return &geoInfo{
		client: client,
	}, nil
}
