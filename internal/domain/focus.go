package domain

import "fmt"

// FocusTag marks which life-change program an entry supports.
type FocusTag string

const (
	FocusAwareness FocusTag = "P1_TUDAT"
	FocusValues    FocusTag = "P2_ERTEK"
	FocusHealth    FocusTag = "P3_EGESZSEG"
	FocusCommunity FocusTag = "P4_KOZOSSEG"
	FocusEconomy   FocusTag = "P5_GAZDASAG"
	FocusSpirit    FocusTag = "P6_SPIRIT"
)

// MaxFocusTags caps how many programs one entry may be tagged with,
// keeping data entry fast.
const MaxFocusTags = 2

// ValidFocusTags is the canonical set of accepted focus tag strings.
var ValidFocusTags = map[FocusTag]bool{
	FocusAwareness: true,
	FocusValues:    true,
	FocusHealth:    true,
	FocusCommunity: true,
	FocusEconomy:   true,
	FocusSpirit:    true,
}

// ValidateFocusTags rejects unknown tags and selections above MaxFocusTags.
func ValidateFocusTags(tags []FocusTag) error {
	if len(tags) > MaxFocusTags {
		return fmt.Errorf("at most %d focus tags may be selected, got %d", MaxFocusTags, len(tags))
	}
	for _, t := range tags {
		if !ValidFocusTags[t] {
			return fmt.Errorf("unknown focus tag %q", t)
		}
	}
	return nil
}
