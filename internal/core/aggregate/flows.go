package aggregate

import (
	"net/url"
	"strings"

	"gadash/internal/core/decode"
)

// Entrance labels page views with no referrer
const Entrance = "(entrance)"

// FlowHit is one (page, referrer) view count
type FlowHit struct {
	Page     string
	Referrer string
	Views    int64
}

// FlowSource is where views of a page came from
type FlowSource struct {
	From  string `json:"from"`
	Views int64  `json:"views"`
}

// Flow is a destination page with its leading sources
type Flow struct {
	Page       string       `json:"page"`
	TotalViews int64        `json:"totalViews"`
	Sources    []FlowSource `json:"sources"`
}

// ClassifyReferrer names the source of a page view
// same-site referrers reduce to their path, others to their host, blanks to (entrance)
func ClassifyReferrer(referrer, siteHost string) string {
	v := decode.Normalize(referrer)
	if !v.Known {
		return Entrance
	}
	u, err := url.Parse(v.Raw)
	if err != nil || u.Hostname() == "" {
		return v.Raw
	}
	host := strings.ToLower(u.Hostname())
	if isSameSite(host, siteHost) {
		if u.Path == "" {
			return "/"
		}
		return u.Path
	}
	return host
}

func isSameSite(host, site string) bool {
	site = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(site)), "www.")
	if site == "" {
		return false
	}
	host = strings.TrimPrefix(host, "www.")
	return host == site || strings.HasSuffix(host, "."+site)
}

// GroupFlows folds hits into per-page source lists
// each page keeps its perPage biggest sources and only the pages biggest pages survive
func GroupFlows(hits []FlowHit, siteHost string, perPage, pages int) []Flow {
	var order []string
	byPage := make(map[string]*Flow)
	for _, h := range hits {
		f, ok := byPage[h.Page]
		if !ok {
			f = &Flow{Page: h.Page}
			byPage[h.Page] = f
			order = append(order, h.Page)
		}
		f.TotalViews += h.Views
		from := ClassifyReferrer(h.Referrer, siteHost)
		merged := false
		for i := range f.Sources {
			if f.Sources[i].From == from {
				f.Sources[i].Views += h.Views
				merged = true
				break
			}
		}
		if !merged {
			f.Sources = append(f.Sources, FlowSource{From: from, Views: h.Views})
		}
	}

	flows := make([]Flow, 0, len(order))
	for _, p := range order {
		f := byPage[p]
		f.Sources = TopN(f.Sources, func(s FlowSource) float64 { return float64(s.Views) }, perPage)
		flows = append(flows, *f)
	}
	return TopN(flows, func(f Flow) float64 { return float64(f.TotalViews) }, pages)
}
