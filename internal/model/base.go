package model

import "time"

type BaseModel struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TestTier identifies one of the five test categories. Each tier has its own
// foreign key column on questiontext_instrument and its own gating rules.
type TestTier string

const (
	TierPretest        TestTier = "pretest"
	TierPosttest       TestTier = "posttest"
	TierLevelTestOne   TestTier = "leveltestone"
	TierLevelTestTwo   TestTier = "leveltesttwo"
	TierLevelTestThree TestTier = "leveltestthree"
)

func (t TestTier) Valid() bool {
	switch t {
	case TierPretest, TierPosttest, TierLevelTestOne, TierLevelTestTwo, TierLevelTestThree:
		return true
	}
	return false
}
