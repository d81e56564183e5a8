package services

import (
	"math"
	"strconv"
	"strings"
)

// PageQuery holds the raw page/limit query values.
type PageQuery struct {
	Page  string
	Limit string
}

type pageWindow struct {
	page  int
	limit int
	skip  int64
}

// resolvePage parses page and limit; anything that is not a positive
// integer falls back to page 1 and defaultLimit.
func resolvePage(q PageQuery, defaultLimit int) pageWindow {
	page := parsePositive(q.Page, 1)
	limit := parsePositive(q.Limit, defaultLimit)
	return pageWindow{page: page, limit: limit, skip: skipFor(page, limit)}
}

func parsePositive(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

// skipFor computes (page-1)*limit, saturating instead of overflowing.
func skipFor(page, limit int) int64 {
	p := int64(page - 1)
	l := int64(limit)
	if p > 0 && p > math.MaxInt64/l {
		return math.MaxInt64
	}
	return p * l
}

func totalPages(total int64, limit int) int64 {
	if total <= 0 {
		return 0
	}
	l := int64(limit)
	return (total-1)/l + 1
}
