package ipc

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "Hammerforce/internal/ipc"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}
