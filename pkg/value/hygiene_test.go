package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Northroot-Labs/northroot/pkg/value"
)

func TestHygieneReport_InvalidateNeverRegresses(t *testing.T) {
	r := value.NewHygieneReport("p")
	r.Invalidate(value.WarnScaleOutOfRange)
	r.AddWarning(value.WarnBadFloatBits)
	assert.Equal(t, value.StatusInvalid, r.Status)
}

func TestHygieneReport_MergeKeepsStrongerStatus(t *testing.T) {
	a := value.NewHygieneReport("p")
	b := value.NewHygieneReport("p")
	b.Invalidate(value.WarnMantissaTooLong)

	a.Merge(b)
	assert.Equal(t, value.StatusInvalid, a.Status)
	assert.Contains(t, a.Warnings, value.WarnMantissaTooLong)
}

func TestHygieneReport_MergeNilIsNoop(t *testing.T) {
	a := value.NewHygieneReport("p")
	a.Merge(nil)
	assert.Equal(t, value.StatusOk, a.Status)
}
