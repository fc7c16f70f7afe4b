package ipc

import (
	"context"
	"encoding/json"
	"fmt"

	"Hammerforce/internal/calc/penetration"
)

const (
	ChannelPenetration     = "calc:penetration"
	ChannelFormSubmit      = "form:submit"
	ChannelPenetrationDone = "calc:penetration:done"
)

// RegisterCalculator wires the calculator channels. Both take a strike already
// normalized to SI units and answer NaN on any failure. form:submit delivers its
// result on calc:penetration:done.
func RegisterCalculator(d *Dispatcher, opts ...penetration.Option) {
	compute := func(_ context.Context, e Event) (any, error) {
		var in penetration.SIInput
		if err := json.Unmarshal(e.Payload, &in); err != nil {
			return nil, fmt.Errorf("decode payload: %w", err)
		}
		return penetration.ComputePercentage(in, opts...)
	}

	d.Register(ChannelPenetration, compute, NaNOnError())
	d.Register(ChannelFormSubmit, compute, NaNOnError(), RepliesOn(ChannelPenetrationDone))
}
