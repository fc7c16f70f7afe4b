package kinematics

import (
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Hammerforce/internal/calc/numeric"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldOf(t *testing.T, err error) string {
	t.Helper()
	var verr *numeric.ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
	return verr.Field
}

func TestTotalArmLength(t *testing.T) {
	// 0.6 + 0.3 + 0.02 = 0.92 in decimal, 0.9199999999999999 in binary
	got, err := TotalArmLength(0.6, 0.3, 0.04)
	require.NoError(t, err)
	assert.Equal(t, 0.919, got)

	got, err = TotalArmLength(0.75, 0.125, 0.03)
	require.NoError(t, err)
	assert.InDelta(t, 0.89, got, 1e-9)
}

func TestTotalArmLength_Rejects(t *testing.T) {
	_, err := TotalArmLength(-0.6, 0.3, 0.04)
	assert.Equal(t, "armLength", fieldOf(t, err))
	_, err = TotalArmLength(0.6, 0, 0.04)
	assert.Equal(t, "handleToHammerHeadLength", fieldOf(t, err))
	_, err = TotalArmLength(0.6, 0.3, 0)
	assert.Equal(t, "hammerHeadHeight", fieldOf(t, err))
}

func TestTotalArmLength_OverflowIsNotAnError(t *testing.T) {
	got, err := TotalArmLength(1e306, 0.3, 0.04)
	require.NoError(t, err)
	assert.True(t, math.IsInf(got, 1))

	_, err = Velocity(got, 0.3)
	require.Error(t, err)
	assert.Equal(t, "distance", fieldOf(t, err))
	assert.Contains(t, err.Error(), "Expected a finite number > 0.")
}

func TestVelocity(t *testing.T) {
	v, err := Velocity(10, 2)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)

	v, err = Velocity(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 0.333, v)

	_, err = Velocity(-10, 2)
	assert.Equal(t, "distance", fieldOf(t, err))
	_, err = Velocity(10, -2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid value")
}

func TestTotalMass(t *testing.T) {
	m, err := TotalMass(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 3.0, m)

	m, err = TotalMass(1.25, 0.75)
	require.NoError(t, err)
	assert.Equal(t, 2.0, m)

	_, err = TotalMass(0, 1)
	assert.Equal(t, "hammerWeight", fieldOf(t, err))
	_, err = TotalMass(1, -1)
	assert.Equal(t, "armWeight", fieldOf(t, err))
}

func TestKineticEnergy(t *testing.T) {
	ke, err := KineticEnergy(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 9.0, ke)

	ke, err = KineticEnergy(1.5, 2.2)
	require.NoError(t, err)
	assert.Equal(t, 3.63, ke)

	_, err = KineticEnergy(-1, 2)
	assert.Equal(t, "totalMass", fieldOf(t, err))
	_, err = KineticEnergy(1, -2)
	assert.Equal(t, "velocity", fieldOf(t, err))
}

func TestCalculate(t *testing.T) {
	res, err := Calculate(Input{
		ArmLength:                0.6,
		HandleToHammerHeadLength: 0.2,
		HammerHeadHeight:         0.04,
		TravelTime:               0.3,
		HammerWeight:             1.2,
		ArmWeight:                4,
	})

	require.NoError(t, err)
	assert.Equal(t, 0.82, res.TotalArmLength)
	assert.Equal(t, 2.733, res.Velocity)
	assert.Equal(t, 5.2, res.TotalMass)
	assert.Equal(t, 19.42, res.KineticEnergy)
}

func TestHandler_Calc(t *testing.T) {
	h := &Handler{}

	body := `{"armLength":0.6,"handleToHammerHeadLength":0.3,"hammerHeadHeight":0.04,"travelTime":1,"hammerWeight":2,"armWeight":1}`
	rec := httptest.NewRecorder()
	h.Calc(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"totalArmLength":0.919,"velocity":0.919,"totalMass":3,"kineticEnergy":1.266}`, rec.Body.String())
}

func TestHandler_Calc_Errors(t *testing.T) {
	h := &Handler{}

	rec := httptest.NewRecorder()
	h.Calc(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.Calc(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"armLength":0.6}`)))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"handleToHammerHeadLength"`)
}
