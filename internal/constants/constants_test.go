package constants

import (
	"strings"
	"testing"
)

func TestDefaultValues(t *testing.T) {
	if DefaultPort != "2333" {
		t.Errorf("Expected DefaultPort to be '2333', got '%s'", DefaultPort)
	}

	if DefaultQuality != "high" {
		t.Errorf("Expected DefaultQuality to be 'high', got '%s'", DefaultQuality)
	}

	if !strings.HasPrefix(DefaultAPIBaseURL, "https://") {
		t.Errorf("Expected DefaultAPIBaseURL to be an https URL, got '%s'", DefaultAPIBaseURL)
	}

	if DefaultMaxSearchResults <= MaxSearchResults {
		t.Errorf("Expected DefaultMaxSearchResults (%d) to exceed the hard cap (%d)", DefaultMaxSearchResults, MaxSearchResults)
	}
}

func TestLimitsAndSeverity(t *testing.T) {
	if MaxReportedTracks < MaxSearchResults {
		t.Errorf("Expected MaxReportedTracks (%d) to allow padding past one page (%d)", MaxReportedTracks, MaxSearchResults)
	}

	if SeverityFault != "fault" {
		t.Errorf("Expected SeverityFault to be 'fault', got '%s'", SeverityFault)
	}
}

func TestQualityLevels(t *testing.T) {
	qualities := []string{
		QualityLowest,
		QualityLow,
		QualityMedium,
		QualityHigh,
	}

	seen := make(map[string]bool)
	for _, q := range qualities {
		if q == "" {
			t.Error("Quality constant should not be empty")
		}
		if seen[q] {
			t.Errorf("Duplicate quality constant %q", q)
		}
		seen[q] = true
	}
}

func TestBitrateLabels(t *testing.T) {
	labels := []string{Bitrate12, Bitrate48, Bitrate96, Bitrate160, Bitrate320}

	for _, l := range labels {
		if !strings.HasSuffix(l, "kbps") {
			t.Errorf("Bitrate label %q should end in kbps", l)
		}
	}
}

func TestPrefixes(t *testing.T) {
	for _, p := range []string{SearchPrefix, RecommendationPrefix} {
		if !strings.HasSuffix(p, ":") {
			t.Errorf("Prefix %q should end with ':'", p)
		}
	}
}

func TestPaths(t *testing.T) {
	paths := []string{PathSongs, PathAlbums, PathPlaylists, PathSearchSongs, PathSuggestions}

	for _, p := range paths {
		if !strings.HasPrefix(p, "/") {
			t.Errorf("Path %q should start with '/'", p)
		}
	}
}
