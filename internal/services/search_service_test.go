package services

import (
	"testing"
	"time"

	"travelbook/internal/store"
)

func TestSearchTravelDelhiMumbaiTrain(t *testing.T) {
	svc := SearchService{Store: store.New(store.DefaultSeed())}

	got := svc.SearchTravel("Delhi", "Mumbai", "train", nil)
	if len(got) != 1 || got[0].ID != "train1" {
		t.Fatalf("SearchTravel returned %v, want exactly train1", got)
	}
}

func TestSearchTravelCaseInsensitive(t *testing.T) {
	svc := SearchService{Store: store.New(store.DefaultSeed())}

	upper := svc.SearchTravel("Delhi", "Mumbai", "train", nil)
	lower := svc.SearchTravel("delhi", "mumbai", "train", nil)
	if len(upper) != len(lower) {
		t.Fatalf("case changed result count: %d vs %d", len(upper), len(lower))
	}
	for i := range upper {
		if upper[i].ID != lower[i].ID {
			t.Fatalf("case changed results at %d: %s vs %s", i, upper[i].ID, lower[i].ID)
		}
	}
}

func TestSearchTravelDateFiltersByCalendarDay(t *testing.T) {
	svc := SearchService{Store: store.New(store.DefaultSeed())}

	day := time.Date(2024, 12, 25, 23, 59, 0, 0, time.Local)
	got := svc.SearchTravel("Delhi", "Mumbai", "train", &day)
	if len(got) != 1 {
		t.Fatalf("same-day search returned %d results, want 1", len(got))
	}

	other := time.Date(2024, 12, 26, 8, 0, 0, 0, time.Local)
	if got := svc.SearchTravel("Delhi", "Mumbai", "train", &other); len(got) != 0 {
		t.Fatalf("next-day search returned %d results, want 0", len(got))
	}
}

func TestSearchHotelsExcludesTooFewRooms(t *testing.T) {
	svc := SearchService{Store: store.New(store.DefaultSeed())}

	// 4 guests need 2 rooms; hotel2 in Goa has only 1.
	got := svc.SearchHotels("Goa", nil, nil, 4)
	if len(got) == 0 {
		t.Fatalf("expected Goa results")
	}
	for _, h := range got {
		if h.ID == "hotel2" {
			t.Fatalf("hotel2 should be excluded for 4 guests")
		}
		if h.AvailableRooms < 2 {
			t.Fatalf("hotel %s has %d rooms, below the 2 needed", h.ID, h.AvailableRooms)
		}
	}
}

func TestSearchHotelsNoGuestFilter(t *testing.T) {
	svc := SearchService{Store: store.New(store.DefaultSeed())}

	all := svc.SearchHotels("Goa", nil, nil, 0)
	found := false
	for _, h := range all {
		if h.ID == "hotel2" {
			found = true
		}
	}
	if !found {
		t.Fatalf("without a guest count hotel2 should be listed")
	}
}

func TestSearchHotelsMatchesLocation(t *testing.T) {
	svc := SearchService{Store: store.New(store.DefaultSeed())}

	got := svc.SearchHotels("calangute", nil, nil, 0)
	if len(got) != 1 || got[0].ID != "hotel1" {
		t.Fatalf("location search returned %v, want hotel1", got)
	}
}
