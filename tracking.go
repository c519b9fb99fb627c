package linkharvest

import (
	"sort"
	"strings"
)

// DefaultTrackingParams lists the query keys stripped by default: UTM tags,
// ad click identifiers, affiliate and campaign markers.
var DefaultTrackingParams = []string{
	// UTM
	"utm_source", "utm_medium", "utm_campaign", "utm_term", "utm_content", "utm_id",
	// ad click ids
	"gclid", "fbclid", "msclkid", "twclid", "li_fat_id", "mc_cid", "mc_eid",
	// affiliate
	"affiliate_id", "aff_id", "aff", "af_id", "af", "ref", "referrer", "source",
	// campaign
	"campaign_id", "campaign", "cmp_id",
	// other
	"_ga", "_gl", "igshid", "igsh", "si", "s", "mibextid", "feature",
	"mkt_tok", "trk", "trk_info", "ncid", "nc", "ocid", "oc",
	"clickid", "click_id", "partner_id", "partner", "pid", "rid", "r",
	"ref_id", "refid", "ref_src", "ref_source", "ref_medium", "ref_campaign",
	"ref_term", "ref_content",
}

// TrackingParams is an immutable, case-insensitive set of query keys.
type TrackingParams struct {
	set map[string]struct{}
}

// NewTrackingParams builds a set from names. Names are case-folded.
func NewTrackingParams(names ...string) TrackingParams {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[strings.ToLower(name)] = struct{}{}
	}
	return TrackingParams{set: set}
}

// Has reports whether key, case-folded, is in the set.
func (p TrackingParams) Has(key string) bool {
	_, ok := p.set[strings.ToLower(key)]
	return ok
}

// Len returns the number of distinct keys.
func (p TrackingParams) Len() int {
	return len(p.set)
}

// Names returns the keys in sorted order.
func (p TrackingParams) Names() []string {
	names := make([]string, 0, len(p.set))
	for name := range p.set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
