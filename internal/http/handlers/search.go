package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"travelbook/internal/store"
	"travelbook/internal/utils"

	"github.com/gin-gonic/gin"
)

type quickSearchRequest struct {
	Mode string `json:"mode"`
	From string `json:"from"`
	To   string `json:"to"`
	Date string `json:"date"`
}

// POST /api/search
//
// Lightweight teaser search used by the landing page. Returns canned
// one-line summaries per mode; the real catalog search lives under
// /api/travel/search.
func (h Handler) QuickSearch(c *gin.Context) {
	var req quickSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: mode, from, to"})
		return
	}
	if req.Mode == "" || req.From == "" || req.To == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: mode, from, to"})
		return
	}

	var results []string
	switch req.Mode {
	case "train":
		results = []string{
			fmt.Sprintf("Train from %s to %s - Express Service - ₹850 - 6h 30m", req.From, req.To),
			fmt.Sprintf("Train from %s to %s - Superfast - ₹1200 - 5h 45m", req.From, req.To),
			fmt.Sprintf("Train from %s to %s - Local - ₹420 - 8h 15m", req.From, req.To),
		}
	case "bus":
		results = []string{
			fmt.Sprintf("Bus from %s to %s - AC Sleeper - ₹650 - 7h 30m", req.From, req.To),
			fmt.Sprintf("Bus from %s to %s - AC Seater - ₹450 - 8h 00m", req.From, req.To),
			fmt.Sprintf("Bus from %s to %s - Non-AC - ₹320 - 9h 15m", req.From, req.To),
		}
	case "flight":
		results = []string{
			fmt.Sprintf("Flight from %s to %s - IndiGo - ₹4500 - 1h 30m", req.From, req.To),
			fmt.Sprintf("Flight from %s to %s - SpiceJet - ₹4200 - 1h 45m", req.From, req.To),
			fmt.Sprintf("Flight from %s to %s - Air India - ₹5200 - 1h 25m", req.From, req.To),
		}
	default:
		results = []string{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"results": results,
		"query":   gin.H{"mode": req.Mode, "from": req.From, "to": req.To},
	})
}

// GET /api/travel/search?from=&to=&type=&date=
func (h Handler) SearchTravel(c *gin.Context) {
	var date *time.Time
	if raw := strings.TrimSpace(c.Query("date")); raw != "" {
		d, err := utils.ParseDate(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", err)
			return
		}
		date = &d
	}

	results := h.Search.SearchTravel(c.Query("from"), c.Query("to"), c.Query("type"), date)
	c.JSON(http.StatusOK, gin.H{
		"results": results,
		"count":   len(results),
	})
}

// GET /api/hotels/search?city=&check_in=&check_out=&guests=
func (h Handler) SearchHotels(c *gin.Context) {
	var checkIn, checkOut *time.Time
	if raw := strings.TrimSpace(c.Query("check_in")); raw != "" {
		d, err := utils.ParseDate(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid check_in, expected YYYY-MM-DD", err)
			return
		}
		checkIn = &d
	}
	if raw := strings.TrimSpace(c.Query("check_out")); raw != "" {
		d, err := utils.ParseDate(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid check_out, expected YYYY-MM-DD", err)
			return
		}
		checkOut = &d
	}

	guests := 0
	if raw := strings.TrimSpace(c.Query("guests")); raw != "" {
		g, err := strconv.Atoi(raw)
		if err != nil || g < 0 {
			RespondError(c, http.StatusBadRequest, "invalid guests", err)
			return
		}
		guests = g
	}

	results := h.Search.SearchHotels(c.Query("city"), checkIn, checkOut, guests)
	c.JSON(http.StatusOK, gin.H{
		"results": results,
		"count":   len(results),
	})
}

// GET /api/destinations
func (h Handler) Destinations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"destinations": store.PopularDestinations()})
}
