package converter

import "time"

// ImportResultRedisModel — итог импорта в том виде, в каком он хранится в Redis.
type ImportResultRedisModel struct {
	SiteURL           string    `json:"site_url"`
	Products          int       `json:"products"`
	Variations        int       `json:"variations"`
	Skipped           int       `json:"skipped"`
	DroppedVariations int       `json:"dropped_variations"`
	StartedAt         time.Time `json:"started_at"`
	FinishedAt        time.Time `json:"finished_at"`
}
