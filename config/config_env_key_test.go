package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_FollowsYAMLCasing(t *testing.T) {
	existing := map[string]any{
		"reviews": map[string]any{
			"exposeTokenInListings": false,
			"maxRadiusKm":           100,
		},
		"images": map[string]any{
			"bucketUrl": "mem://",
		},
		"geocoding": map[string]any{
			"cacheTtl": "24h",
		},
		"googleOAuth": map[string]any{
			"clientSecret": "",
		},
		"worker": map[string]any{
			"dedupeTtl": "24h",
		},
	}

	tests := map[string]string{
		"REVIEWS_EXPOSETOKENINLISTINGS": "reviews.exposeTokenInListings",
		"REVIEWS_MAXRADIUSKM":           "reviews.maxRadiusKm",
		"IMAGES_BUCKETURL":              "images.bucketUrl",
		"GEOCODING_CACHETTL":            "geocoding.cacheTtl",
		"GOOGLEOAUTH_CLIENTSECRET":      "googleOAuth.clientSecret",
		"WORKER_DEDUPETTL":              "worker.dedupeTtl",
		"JWT_SECRET":                    "jwt.secret",
		"__HTTP__PORT":                  "http.port",
	}

	for envKey, want := range tests {
		assert.Equal(t, want, canonicalizeEnvKey(envKey, existing), envKey)
	}
}
