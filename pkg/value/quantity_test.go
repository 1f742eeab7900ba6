package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Northroot-Labs/northroot/pkg/value"
)

func mustParse(t *testing.T, s string) *value.Value {
	t.Helper()
	v, err := value.Parse([]byte(s))
	require.NoError(t, err)
	return v
}

func TestValidateQuantity_DecimalAccepted(t *testing.T) {
	v := mustParse(t, `{"t":"dec","m":"1050","s":2}`)
	kind, ok := value.IsQuantityObject(v)
	require.True(t, ok)
	report := value.NewHygieneReport("test")
	valid := value.ValidateQuantity(kind, v, value.DefaultQuantityBounds, report)
	assert.True(t, valid)
	assert.Equal(t, value.StatusOk, report.Status)
}

func TestValidateQuantity_DecimalRejectsLeadingZero(t *testing.T) {
	v := mustParse(t, `{"t":"dec","m":"01","s":0}`)
	report := value.NewHygieneReport("test")
	valid := value.ValidateQuantity("dec", v, value.DefaultQuantityBounds, report)
	assert.False(t, valid)
	assert.Equal(t, value.StatusInvalid, report.Status)
	assert.Contains(t, report.Warnings, value.WarnNonMinimalInteger)
}

func TestValidateQuantity_DecimalRejectsNegativeZero(t *testing.T) {
	v := mustParse(t, `{"t":"dec","m":"-0","s":0}`)
	report := value.NewHygieneReport("test")
	valid := value.ValidateQuantity("dec", v, value.DefaultQuantityBounds, report)
	assert.False(t, valid)
	assert.Contains(t, report.Warnings, value.WarnNegativeZero)
}

func TestValidateQuantity_DecimalScaleOutOfRange(t *testing.T) {
	v := mustParse(t, `{"t":"dec","m":"1","s":19}`)
	report := value.NewHygieneReport("test")
	valid := value.ValidateQuantity("dec", v, value.DefaultQuantityBounds, report)
	assert.False(t, valid)
	assert.Contains(t, report.Warnings, value.WarnScaleOutOfRange)
}

func TestValidateQuantity_IntAccepted(t *testing.T) {
	v := mustParse(t, `{"t":"int","v":"-42"}`)
	report := value.NewHygieneReport("test")
	valid := value.ValidateQuantity("int", v, value.DefaultQuantityBounds, report)
	assert.True(t, valid)
}

func TestValidateQuantity_RationalMustBeReduced(t *testing.T) {
	v := mustParse(t, `{"t":"rat","n":"2","d":"4"}`)
	report := value.NewHygieneReport("test")
	valid := value.ValidateQuantity("rat", v, value.DefaultQuantityBounds, report)
	assert.False(t, valid)
	assert.Contains(t, report.Warnings, value.WarnRationalNotReduced)
}

func TestValidateQuantity_RationalReducedAccepted(t *testing.T) {
	v := mustParse(t, `{"t":"rat","n":"1","d":"3"}`)
	report := value.NewHygieneReport("test")
	valid := value.ValidateQuantity("rat", v, value.DefaultQuantityBounds, report)
	assert.True(t, valid)
}

func TestValidateQuantity_RationalRejectsNonPositiveDenominator(t *testing.T) {
	v := mustParse(t, `{"t":"rat","n":"1","d":"0"}`)
	report := value.NewHygieneReport("test")
	valid := value.ValidateQuantity("rat", v, value.DefaultQuantityBounds, report)
	assert.False(t, valid)
	assert.Contains(t, report.Warnings, value.WarnNonPositiveDenom)
}

func TestValidateQuantity_F64AcceptsCanonicalBits(t *testing.T) {
	v := mustParse(t, `{"t":"f64","bits":"3ff0000000000000"}`)
	report := value.NewHygieneReport("test")
	valid := value.ValidateQuantity("f64", v, value.DefaultQuantityBounds, report)
	assert.True(t, valid)
}

func TestValidateQuantity_F64RejectsNaN(t *testing.T) {
	v := mustParse(t, `{"t":"f64","bits":"7ff8000000000000"}`)
	report := value.NewHygieneReport("test")
	valid := value.ValidateQuantity("f64", v, value.DefaultQuantityBounds, report)
	assert.False(t, valid)
	assert.Contains(t, report.Warnings, value.WarnBadFloatBits)
}

func TestValidateQuantity_F64AcceptsInfinity(t *testing.T) {
	v := mustParse(t, `{"t":"f64","bits":"7ff0000000000000"}`)
	report := value.NewHygieneReport("test")
	valid := value.ValidateQuantity("f64", v, value.DefaultQuantityBounds, report)
	assert.True(t, valid)
}

func TestValidateQuantity_UnknownTypeRejected(t *testing.T) {
	report := value.NewHygieneReport("test")
	valid := value.ValidateQuantity("bogus", mustParse(t, `{"t":"bogus"}`), value.DefaultQuantityBounds, report)
	assert.False(t, valid)
	assert.Contains(t, report.Warnings, value.WarnUnknownQuantityType)
}

func TestIsQuantityObject_NonObjectIsFalse(t *testing.T) {
	_, ok := value.IsQuantityObject(mustParse(t, `42`))
	assert.False(t, ok)
}
