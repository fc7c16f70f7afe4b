package preview

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func sampleValues() *Values {
	return &Values{
		ArmLength:                f(60),
		HandleToHammerHeadLength: f(20),
		HammerHeadHeight:         f(4),
		TravelTime:               f(0.3),
		HammerWeight:             f(1.2),
		ArmWeight:                f(4),
		Diameter:                 f(40),
		NailLength:               f(12),
		ConeLength:               f(2),
		ConeAngleDeg:             f(30),
		MaterialHardness:         f(200),
		MaterialHeight:           f(5),
		NailFrictionCoefficient:  f(0.4),
	}
}

func TestCompute_Unrounded(t *testing.T) {
	res := Compute(sampleValues())
	require.NotNil(t, res)

	assert.InDelta(t, 0.82, res.TotalArmLength, 1e-12)
	assert.InDelta(t, 2.7333333333, res.Velocity, 1e-9)
	assert.InDelta(t, 5.2, res.TotalMass, 1e-12)
	assert.InDelta(t, 19.4248888889, res.KineticEnergy, 1e-9)
	// the rounded pipeline reports 2.0 for the same strike
	assert.InDelta(t, 3.3603990062, res.PenetrationPercentage, 1e-9)
}

func TestCompute_MissingArmSection(t *testing.T) {
	assert.Nil(t, Compute(nil))

	v := sampleValues()
	v.TravelTime = nil
	assert.Nil(t, Compute(v))

	v = sampleValues()
	v.ArmWeight = f(math.NaN())
	assert.Nil(t, Compute(v))
}

func TestCompute_IncompleteNailSection(t *testing.T) {
	v := sampleValues()
	v.MaterialHardness = nil

	res := Compute(v)
	require.NotNil(t, res)
	assert.InDelta(t, 19.4248888889, res.KineticEnergy, 1e-9)
	assert.True(t, math.IsNaN(res.PenetrationPercentage))
}

func TestCompute_NoFriction(t *testing.T) {
	v := sampleValues()
	v.NailFrictionCoefficient = f(0)

	res := Compute(v)
	require.NotNil(t, res)
	assert.True(t, math.IsNaN(res.PenetrationPercentage))
}

func TestCompute_ShaftLengthClamped(t *testing.T) {
	v := sampleValues()
	v.NailLength = f(1)

	res := Compute(v)
	require.NotNil(t, res)
	assert.InDelta(t, 25.7630590473, res.PenetrationPercentage, 1e-9)
}

func TestHandler_Calc(t *testing.T) {
	h := &Handler{}

	rec := httptest.NewRecorder()
	h.Calc(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(
		`{"armLength":60,"handleToHammerHeadLength":20,"hammerHeadHeight":4,"travelTime":0.3,"hammerWeight":1.2,"armWeight":4}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	var out Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.NotNil(t, out.TotalMass)
	assert.InDelta(t, 5.2, *out.TotalMass, 1e-12)
	assert.Nil(t, out.PenetrationPercentage)

	rec = httptest.NewRecorder()
	h.Calc(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"armLength":60}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))
}
