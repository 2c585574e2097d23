package selector

import (
	"sort"
	"time"

	"adminconsole/internal/domain/entity"
)

// LiveBanners returns the banners shown to shoppers at t, in display order.
func LiveBanners(banners []entity.Banner, t time.Time) []entity.Banner {
	var out []entity.Banner
	for _, b := range banners {
		if b.Live(t) {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// ActiveBannerCount counts banners switched on, regardless of schedule.
func ActiveBannerCount(banners []entity.Banner) int {
	n := 0
	for _, b := range banners {
		if b.IsActive {
			n++
		}
	}
	return n
}
