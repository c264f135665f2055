package timeline

import (
	"log"
	"math"
)

// Rate defines the type of stepping rate, in steps per time unit.
type Rate float64

// Defines the unit of rate.
const (
	PerUnit  Rate = 1
	KPerUnit Rate = 1e3
	MPerUnit Rate = 1e6
)

// Period returns the time between two consecutive steps.
func (r Rate) Period() VTime {
	if r == 0 {
		log.Panic("rate cannot be 0")
	}
	return VTime(1.0 / r)
}

// StepCount converts a time span to the number of steps taken since time 0.
func (r Rate) StepCount(span VTime) uint64 {
	return uint64(math.Round(float64(span) * float64(r)))
}
