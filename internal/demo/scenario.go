package demo

// DefaultScenario walks through every operation: building sections in 15%
// increments, selecting then deleting the last one, and resetting.
func DefaultScenario() []Step {
	return []Step{
		{Op: OpSet, Value: 10},
		{Op: OpAdvance, Value: 15},
		{Op: OpSplit},
		{Op: OpAdvance, Value: 15},
		{Op: OpAdvance, Value: 15},
		{Op: OpSplit},
		{Op: OpToggle},
		{Op: OpToggle},
		{Op: OpAdvance, Value: 15},
		{Op: OpSplit},
		{Op: OpAdvance, Value: 15},
		{Op: OpSplit},
		{Op: OpSelect},
		{Op: OpAdvance, Value: 15},
		{Op: OpAdvance, Value: 15},
		{Op: OpSplit},
		{Op: OpReset},
	}
}
